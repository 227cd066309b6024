package easybill

import (
	"fmt"
	"net/http"

	"github.com/andyle182810/easybill/httpclient"
)

const documentPaymentsPath = "/document-payments"

type DocumentPaymentFilters struct {
	DocumentID string `json:"document_id,omitempty"`
	PaymentAt  string `json:"payment_at,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

type GetDocumentPaymentsParams struct {
	ListOptions
	DocumentPaymentFilters
}

func (p GetDocumentPaymentsParams) Request() (httpclient.Request, error) {
	query, err := toQuery(p.DocumentPaymentFilters)
	if err != nil {
		return httpclient.Request{}, err
	}

	return httpclient.Request{
		Method: http.MethodGet,
		Path:   documentPaymentsPath,
		Query:  mergeQuery(query, p.query()),
	}, nil
}

type CreateDocumentPaymentParams struct {
	Amount       Amount `json:"amount"                   validate:"required"`
	DocumentID   int64  `json:"document_id"              validate:"required,gt=0"`
	Paid         *bool  `json:"paid,omitempty"`
	IsOverdueFee *bool  `json:"is_overdue_fee,omitempty"`
	Notice       string `json:"notice,omitempty"`
	PaymentAt    string `json:"payment_at,omitempty"     validate:"omitempty,isodate"`
	Provider     string `json:"provider,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Type         string `json:"type,omitempty"`
}

type documentPaymentBody struct {
	Amount       Amount `json:"amount"`
	DocumentID   int64  `json:"document_id"`
	IsOverdueFee *bool  `json:"is_overdue_fee,omitempty"`
	Notice       string `json:"notice,omitempty"`
	PaymentAt    string `json:"payment_at,omitempty"`
	Provider     string `json:"provider,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Type         string `json:"type,omitempty"`
}

// Request puts "paid" on the query string. The remaining optional fields
// travel in the body next to amount and document_id.
func (p CreateDocumentPaymentParams) Request() (httpclient.Request, error) {
	var query map[string]any
	if p.Paid != nil {
		query = map[string]any{"paid": *p.Paid}
	}

	return httpclient.Request{
		Method: http.MethodPost,
		Path:   documentPaymentsPath,
		Query:  query,
		Body: documentPaymentBody{
			Amount:       p.Amount,
			DocumentID:   p.DocumentID,
			IsOverdueFee: p.IsOverdueFee,
			Notice:       p.Notice,
			PaymentAt:    dateOnly(p.PaymentAt),
			Provider:     p.Provider,
			Reference:    p.Reference,
			Type:         p.Type,
		},
	}, nil
}

type GetDocumentPaymentParams struct {
	DocumentPaymentID int64 `json:"document_payment_id" validate:"required,gt=0"`
}

func (p GetDocumentPaymentParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodGet, Path: documentPaymentPath(p.DocumentPaymentID)}, nil
}

type DeleteDocumentPaymentParams struct {
	DocumentPaymentID int64 `json:"document_payment_id" validate:"required,gt=0"`
}

func (p DeleteDocumentPaymentParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodDelete, Path: documentPaymentPath(p.DocumentPaymentID)}, nil
}

func documentPaymentPath(id int64) string {
	return fmt.Sprintf("%s/%d", documentPaymentsPath, id)
}
