package easybill

import (
	"fmt"
	"net/http"

	"github.com/andyle182810/easybill/httpclient"
)

const sepaPaymentsPath = "/sepa-payments"

type GetSEPAPaymentsParams struct {
	ListOptions

	DocumentID string `json:"document_id,omitempty"`
}

func (p GetSEPAPaymentsParams) Request() (httpclient.Request, error) {
	query := p.query()
	if p.DocumentID != "" {
		query["document_id"] = p.DocumentID
	}

	return httpclient.Request{
		Method: http.MethodGet,
		Path:   sepaPaymentsPath,
		Query:  query,
	}, nil
}

// SEPAOptionalFields are sent only when set.
type SEPAOptionalFields struct {
	CreditorBIC           string `json:"creditor_bic,omitempty"`
	CreditorIBAN          string `json:"creditor_iban,omitempty"          validate:"omitempty,sepa_iban"`
	CreditorName          string `json:"creditor_name,omitempty"`
	DebitorBIC            string `json:"debitor_bic,omitempty"`
	DebitorAddressLine1   string `json:"debitor_address_line_1,omitempty"`
	DebitorAddressLine2   string `json:"debitor_address_line_2,omitempty"`
	DebitorCountry        string `json:"debitor_country,omitempty"        validate:"omitempty,len=2"`
	ExportAt              string `json:"export_at,omitempty"`
	RemittanceInformation string `json:"remittance_information,omitempty"`
	Type                  string `json:"type,omitempty"                   validate:"omitempty,oneof=CREDIT DEBIT"`
}

type CreateSEPAPaymentParams struct {
	DocumentID             int64  `json:"document_id"               validate:"required,gt=0"`
	DebitorName            string `json:"debitor_name"              validate:"required"`
	DebitorIBAN            string `json:"debitor_iban"              validate:"required,sepa_iban"`
	MandateID              string `json:"mandate_id"                validate:"required"`
	MandateDateOfSignature string `json:"mandate_date_of_signature" validate:"required,isodate"`
	LocalInstrument        string `json:"local_instrument"          validate:"required,oneof=CORE COR1 B2B"`
	SequenceType           string `json:"sequence_type"             validate:"required,oneof=FRST OOFF FNAL RCUR"`
	Amount                 Amount `json:"amount"                    validate:"required"`
	Reference              string `json:"reference"                 validate:"required"`
	RequestedAt            string `json:"requested_at"              validate:"required,isodate"`
	SEPAOptionalFields
}

func (p CreateSEPAPaymentParams) Request() (httpclient.Request, error) {
	body := p
	body.MandateDateOfSignature = dateOnly(p.MandateDateOfSignature)
	body.RequestedAt = dateOnly(p.RequestedAt)

	return httpclient.Request{
		Method: http.MethodPost,
		Path:   sepaPaymentsPath,
		Body:   body,
	}, nil
}

type GetSEPAPaymentParams struct {
	SEPAPaymentID int64 `json:"sepa_payment_id" validate:"required,gt=0"`
}

func (p GetSEPAPaymentParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodGet, Path: sepaPaymentPath(p.SEPAPaymentID)}, nil
}

// UpdateSEPAPaymentParams always sends document_id. Other fields are sent
// only when set.
type UpdateSEPAPaymentParams struct {
	SEPAPaymentID          int64   `json:"sepa_payment_id"                     validate:"required,gt=0"`
	DocumentID             int64   `json:"document_id"                         validate:"required,gt=0"`
	DebitorName            string  `json:"debitor_name,omitempty"`
	DebitorIBAN            string  `json:"debitor_iban,omitempty"              validate:"omitempty,sepa_iban"`
	MandateID              string  `json:"mandate_id,omitempty"`
	MandateDateOfSignature string  `json:"mandate_date_of_signature,omitempty" validate:"omitempty,isodate"`
	LocalInstrument        string  `json:"local_instrument,omitempty"          validate:"omitempty,oneof=CORE COR1 B2B"`
	SequenceType           string  `json:"sequence_type,omitempty"             validate:"omitempty,oneof=FRST OOFF FNAL RCUR"`
	Amount                 *Amount `json:"amount,omitempty"`
	Reference              string  `json:"reference,omitempty"`
	RequestedAt            string  `json:"requested_at,omitempty"              validate:"omitempty,isodate"`
	SEPAOptionalFields
}

type sepaPaymentChanges struct {
	DocumentID             int64   `json:"document_id"`
	DebitorName            string  `json:"debitor_name,omitempty"`
	DebitorIBAN            string  `json:"debitor_iban,omitempty"`
	MandateID              string  `json:"mandate_id,omitempty"`
	MandateDateOfSignature string  `json:"mandate_date_of_signature,omitempty"`
	LocalInstrument        string  `json:"local_instrument,omitempty"`
	SequenceType           string  `json:"sequence_type,omitempty"`
	Amount                 *Amount `json:"amount,omitempty"`
	Reference              string  `json:"reference,omitempty"`
	RequestedAt            string  `json:"requested_at,omitempty"`
	SEPAOptionalFields
}

func (p UpdateSEPAPaymentParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodPut,
		Path:   sepaPaymentPath(p.SEPAPaymentID),
		Body: sepaPaymentChanges{
			DocumentID:             p.DocumentID,
			DebitorName:            p.DebitorName,
			DebitorIBAN:            p.DebitorIBAN,
			MandateID:              p.MandateID,
			MandateDateOfSignature: dateOnly(p.MandateDateOfSignature),
			LocalInstrument:        p.LocalInstrument,
			SequenceType:           p.SequenceType,
			Amount:                 p.Amount,
			Reference:              p.Reference,
			RequestedAt:            dateOnly(p.RequestedAt),
			SEPAOptionalFields:     p.SEPAOptionalFields,
		},
	}, nil
}

type DeleteSEPAPaymentParams struct {
	SEPAPaymentID int64 `json:"sepa_payment_id" validate:"required,gt=0"`
}

func (p DeleteSEPAPaymentParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodDelete, Path: sepaPaymentPath(p.SEPAPaymentID)}, nil
}

func sepaPaymentPath(id int64) string {
	return fmt.Sprintf("%s/%d", sepaPaymentsPath, id)
}
