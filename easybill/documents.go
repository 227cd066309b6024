package easybill

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/andyle182810/easybill/httpclient"
)

const documentsPath = "/documents"

type DocumentItem struct {
	BookingAccount   string  `json:"booking_account,omitempty"`
	CostPriceNet     *Amount `json:"cost_price_net,omitempty"`
	Description      string  `json:"description,omitempty"`
	Discount         *Amount `json:"discount,omitempty"`
	DiscountType     string  `json:"discount_type,omitempty"      validate:"omitempty,oneof=PERCENT AMOUNT"`
	DocumentNote     string  `json:"document_note,omitempty"`
	ExportCost1      *Amount `json:"export_cost_1,omitempty"`
	ExportCost2      *Amount `json:"export_cost_2,omitempty"`
	ItemType         string  `json:"itemType,omitempty"`
	Number           string  `json:"number,omitempty"`
	Position         *int    `json:"position,omitempty"`
	PositionID       *int64  `json:"position_id,omitempty"`
	Quantity         *Amount `json:"quantity,omitempty"`
	QuantityStr      string  `json:"quantity_str,omitempty"`
	SinglePriceGross *Amount `json:"single_price_gross,omitempty"`
	SinglePriceNet   *Amount `json:"single_price_net,omitempty"`
	Type             string  `json:"type,omitempty"               validate:"omitempty,oneof=POSITION POSITION_NOCALC TEXT"`
	Unit             string  `json:"unit,omitempty"`
	VATPercent       *Amount `json:"vat_percent,omitempty"`
}

// ItemEntry is one row of an item collection. A row either wraps its
// position in "item" or carries the position fields directly.
type ItemEntry struct {
	Item *DocumentItem `json:"item,omitempty"`
	DocumentItem
}

func (e ItemEntry) flatten() DocumentItem {
	if e.Item != nil {
		return *e.Item
	}

	return e.DocumentItem
}

type ItemCollection struct {
	ItemsValues []ItemEntry `json:"itemsValues" validate:"dive"`
}

type FileFormat struct {
	Type string `json:"type"`
}

type RecurringOptions struct {
	AsDraft                   *bool  `json:"as_draft,omitempty"`
	EndDateOrCount            string `json:"end_date_or_count,omitempty"`
	Frequency                 string `json:"frequency,omitempty"`
	FrequencySpecial          string `json:"frequency_special,omitempty"`
	Interval                  *int   `json:"interval,omitempty"`
	IsNotify                  *bool  `json:"is_notify,omitempty"`
	IsPaid                    *bool  `json:"is_paid,omitempty"`
	IsSEPA                    *bool  `json:"is_sepa,omitempty"`
	IsSign                    *bool  `json:"is_sign,omitempty"`
	NextDate                  string `json:"next_date,omitempty"`
	PaidDateOption            string `json:"paid_date_option,omitempty"`
	SendAs                    string `json:"send_as,omitempty"`
	SEPALocalInstrument       string `json:"sepa_local_instrument,omitempty"`
	SEPAReference             string `json:"sepa_reference,omitempty"`
	SEPARemittanceInformation string `json:"sepa_remittance_information,omitempty"`
	SEPASequenceType          string `json:"sepa_sequence_type,omitempty"`
	Status                    string `json:"status,omitempty"`
	TargetType                string `json:"target_type,omitempty"`
}

func (o *RecurringOptions) empty() bool {
	return o == nil || *o == RecurringOptions{}
}

type RecurringCollection struct {
	RecurringOption *RecurringOptions `json:"recurring_option,omitempty"`
}

type ServiceDate struct {
	Date     string `json:"date,omitempty"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
	Type     string `json:"type,omitempty"     validate:"omitempty,oneof=DEFAULT SERVICE DELIVERY"`
}

// DocumentFields are the optional document attributes sent as they are.
type DocumentFields struct {
	AnonymizeDueDate           *bool        `json:"anonymize_due_date,omitempty"`
	BankDebitForm              string       `json:"bank_debit_form,omitempty"`
	BuyerReference             string       `json:"buyer_reference,omitempty"`
	CalcVATFrom                *int         `json:"calc_vat_from,omitempty"`
	CashAllowance              *Amount      `json:"cash_allowance,omitempty"`
	CashAllowanceDays          *int         `json:"cash_allowance_days,omitempty"`
	CashAllowanceText          string       `json:"cash_allowance_text,omitempty"`
	ContactID                  *int64       `json:"contact_id,omitempty"`
	ContactLabel               string       `json:"contact_label,omitempty"`
	ContactText                string       `json:"contact_text,omitempty"`
	Currency                   string       `json:"currency,omitempty"`
	Discount                   *Amount      `json:"discount,omitempty"`
	DiscountType               string       `json:"discount_type,omitempty"`
	DocumentDate               string       `json:"document_date,omitempty"`
	DueInDays                  *int         `json:"due_in_days,omitempty"`
	ExternalID                 string       `json:"external_id,omitempty"`
	FulfillmentCountry         string       `json:"fulfillment_country,omitempty"`
	GracePeriod                *int         `json:"grace_period,omitempty"`
	IsAcceptableOnPublicDomain *bool        `json:"is_acceptable_on_public_domain,omitempty"`
	IsArchive                  *bool        `json:"is_archive,omitempty"`
	IsOSS                      *bool        `json:"is_oss,omitempty"`
	IsReplica                  *bool        `json:"is_replica,omitempty"`
	LoginID                    *int64       `json:"login_id,omitempty"`
	Number                     string       `json:"number,omitempty"`
	OrderNumber                string       `json:"order_number,omitempty"`
	PDFTemplate                string       `json:"pdf_template,omitempty"`
	ProjectID                  *int64       `json:"project_id,omitempty"`
	RefID                      *int64       `json:"ref_id,omitempty"`
	ReplicaURL                 string       `json:"replica_url,omitempty"`
	ServiceDate                *ServiceDate `json:"service_date,omitempty"`
	ShippingCountry            string       `json:"shipping_country,omitempty"`
	Status                     string       `json:"status,omitempty"`
	Text                       string       `json:"text,omitempty"`
	TextPrefix                 string       `json:"text_prefix,omitempty"`
	TextTax                    string       `json:"text_tax,omitempty"`
	Title                      string       `json:"title,omitempty"`
	Type                       string       `json:"type,omitempty"`
	UseShippingAddress         *bool        `json:"use_shipping_address,omitempty"`
	VATCountry                 string       `json:"vat_country,omitempty"`
	VATOption                  string       `json:"vat_option,omitempty"`
}

// DocumentInput is the editable part of a document as callers supply it:
// plain fields plus the collections that are reshaped before sending.
type DocumentInput struct {
	DocumentFields

	FileFormatConfigType     string               `json:"file_format_config_type,omitempty"`
	FixedColRecurringOptions *RecurringCollection `json:"fixedcol_recurring_options,omitempty"`
	ItemsFixedCol            *ItemCollection      `json:"itemsFixedCol,omitempty"`
}

type documentBody struct {
	CustomerID *int64 `json:"customer_id,omitempty"`
	DocumentFields

	FileFormatConfig []FileFormat      `json:"file_format_config,omitempty"`
	RecurringOptions *RecurringOptions `json:"recurring_options,omitempty"`
	Items            []DocumentItem    `json:"items,omitempty"`
}

func (in DocumentInput) body(customerID *int64) documentBody {
	body := documentBody{
		CustomerID:       customerID,
		DocumentFields:   in.DocumentFields,
		FileFormatConfig: nil,
		RecurringOptions: nil,
		Items:            nil,
	}

	body.DocumentDate = dateOnly(body.DocumentDate)

	if in.ServiceDate != nil {
		serviceDate := *in.ServiceDate
		serviceDate.Date = dateOnly(serviceDate.Date)
		serviceDate.DateFrom = dateOnly(serviceDate.DateFrom)
		serviceDate.DateTo = dateOnly(serviceDate.DateTo)
		body.ServiceDate = &serviceDate
	}

	if in.FileFormatConfigType != "" {
		body.FileFormatConfig = []FileFormat{{Type: in.FileFormatConfigType}}
	}

	if in.FixedColRecurringOptions != nil && !in.FixedColRecurringOptions.RecurringOption.empty() {
		body.RecurringOptions = in.FixedColRecurringOptions.RecurringOption
	}

	if in.ItemsFixedCol != nil && in.ItemsFixedCol.ItemsValues != nil {
		body.Items = make([]DocumentItem, 0, len(in.ItemsFixedCol.ItemsValues))
		for _, entry := range in.ItemsFixedCol.ItemsValues {
			body.Items = append(body.Items, entry.flatten())
		}
	}

	return body
}

type CreateDocumentParams struct {
	CustomerID *int64 `json:"customer_id,omitempty"`
	DocumentInput
}

func (p CreateDocumentParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodPost,
		Path:   documentsPath,
		Body:   p.body(p.CustomerID),
	}, nil
}

type UpdateDocumentParams struct {
	DocumentID int64 `json:"document_id" validate:"required,gt=0"`
	DocumentInput

	RefreshCustomerData *bool  `json:"refresh_customer_data,omitempty"`
	ReasonForChange     string `json:"reason_for_change,omitempty"`
}

func (p UpdateDocumentParams) Request() (httpclient.Request, error) {
	query := map[string]any{}
	if p.RefreshCustomerData != nil {
		query["refresh_customer_data"] = *p.RefreshCustomerData
	}

	if p.ReasonForChange != "" {
		query["reason_for_change"] = p.ReasonForChange
	}

	return httpclient.Request{
		Method: http.MethodPut,
		Path:   documentPath(p.DocumentID),
		Query:  query,
		Body:   p.body(nil),
	}, nil
}

type DocumentFilters struct {
	CancelID           string `json:"cancel_id,omitempty"`
	CustomerID         string `json:"customer_id,omitempty"`
	DocumentDate       string `json:"document_date,omitempty"`
	FulfillmentCountry string `json:"fulfillment_country,omitempty"`
	IsArchive          string `json:"is_archive,omitempty"          validate:"omitempty,oneof=0 1"`
	IsDraft            string `json:"is_draft,omitempty"            validate:"omitempty,oneof=0 1"`
	Number             string `json:"number,omitempty"`
	PaidAt             string `json:"paid_at,omitempty"`
	ProjectID          string `json:"project_id,omitempty"`
	RefID              string `json:"ref_id,omitempty"`
	ShippingCountry    string `json:"shipping_country,omitempty"`
	Status             string `json:"status,omitempty"`
	Title              string `json:"title,omitempty"`
	Type               string `json:"type,omitempty"`
	VATCountry         string `json:"vat_country,omitempty"`
}

type GetDocListParams struct {
	ListOptions
	DocumentFilters
}

func (p GetDocListParams) Request() (httpclient.Request, error) {
	query, err := toQuery(p.DocumentFilters)
	if err != nil {
		return httpclient.Request{}, err
	}

	return httpclient.Request{
		Method: http.MethodGet,
		Path:   documentsPath,
		Query:  mergeQuery(query, p.query()),
	}, nil
}

type DocumentIDParams struct {
	DocumentID int64 `json:"document_id" validate:"required,gt=0"`
}

type GetDocumentParams struct {
	DocumentIDParams
}

func (p GetDocumentParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodGet, Path: documentPath(p.DocumentID)}, nil
}

type DeleteDocumentParams struct {
	DocumentIDParams
}

func (p DeleteDocumentParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodDelete, Path: documentPath(p.DocumentID)}, nil
}

type CompleteDocumentParams struct {
	DocumentIDParams

	ReasonForChange string `json:"reason_for_change,omitempty"`
}

func (p CompleteDocumentParams) Request() (httpclient.Request, error) {
	var query map[string]any
	if p.ReasonForChange != "" {
		query = map[string]any{"reason_for_change": p.ReasonForChange}
	}

	return httpclient.Request{
		Method: http.MethodPut,
		Path:   documentPath(p.DocumentID) + "/done",
		Query:  query,
	}, nil
}

type CancelDocumentParams struct {
	DocumentIDParams

	UseTextFromTemplate *bool `json:"use_text_from_template,omitempty"`
}

func (p CancelDocumentParams) Request() (httpclient.Request, error) {
	var query map[string]any
	if p.UseTextFromTemplate != nil {
		query = map[string]any{"use_text_from_template": *p.UseTextFromTemplate}
	}

	return httpclient.Request{
		Method: http.MethodPost,
		Path:   documentPath(p.DocumentID) + "/cancel",
		Query:  query,
	}, nil
}

type SendFields struct {
	To                 string `json:"to,omitempty"`
	CC                 string `json:"cc,omitempty"`
	From               string `json:"from,omitempty"`
	Subject            string `json:"subject,omitempty"`
	Message            string `json:"message,omitempty"`
	Date               string `json:"date,omitempty"`
	DocumentFileType   string `json:"document_file_type,omitempty"`
	PostSendType       string `json:"post_send_type,omitempty"       validate:"omitempty,oneof=post_send_type_standard post_send_type_registered post_send_type_registered_and_personal post_send_type_registered_and_receipt post_send_type_registered_throwin"` //nolint:lll
	SendBySelf         *bool  `json:"send_by_self,omitempty"`
	SendWithAttachment *bool  `json:"send_with_attachment,omitempty"`
}

type SendDocumentParams struct {
	DocumentIDParams
	SendFields

	// Type is the delivery channel and part of the path.
	Type string `json:"type" validate:"required,oneof=email fax post"`
}

func (p SendDocumentParams) Request() (httpclient.Request, error) {
	fields := p.SendFields
	fields.Date = dateOnly(fields.Date)

	return httpclient.Request{
		Method: http.MethodPost,
		Path:   documentPath(p.DocumentID) + "/send/" + p.Type,
		Body:   fields,
	}, nil
}

type GetPDFParams struct {
	DocumentIDParams
}

func (p GetPDFParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodGet, Path: documentPath(p.DocumentID) + "/pdf"}, nil
}

type DownloadJPEGParams struct {
	DocumentIDParams

	Offset *int `json:"offset,omitempty" validate:"omitempty,gte=0"`
	Limit  *int `json:"limit,omitempty"  validate:"omitempty,gte=1"`
}

func (p DownloadJPEGParams) Request() (httpclient.Request, error) {
	query := map[string]any{}
	if p.Offset != nil {
		query["offset"] = *p.Offset
	}

	if p.Limit != nil {
		query["limit"] = *p.Limit
	}

	return httpclient.Request{
		Method: http.MethodGet,
		Path:   documentPath(p.DocumentID) + "/jpg",
		Query:  query,
	}, nil
}

type ConvertDocumentParams struct {
	DocumentIDParams

	// Type is the target document type, e.g. INVOICE or DUNNING.
	Type        string `json:"type"                   validate:"required,oneof=DUNNING REMINDER CHARGE_CONFIRM CHARGE CREDIT DELIVERY INVOICE ORDER"` //nolint:lll
	PDFTemplate string `json:"pdf_template,omitempty"`
}

func (p ConvertDocumentParams) Request() (httpclient.Request, error) {
	var query map[string]any
	if p.PDFTemplate != "" {
		query = map[string]any{"pdf_template": p.PDFTemplate}
	}

	return httpclient.Request{
		Method: http.MethodPost,
		Path:   documentPath(p.DocumentID) + "/" + url.PathEscape(p.Type),
		Query:  query,
	}, nil
}

func documentPath(id int64) string {
	return fmt.Sprintf("%s/%d", documentsPath, id)
}
