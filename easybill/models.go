package easybill

// Page is the envelope returned by every list endpoint.
type Page[T any] struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Items []T `json:"items"`
}

type Customer struct {
	ID          int64    `json:"id"`
	Number      string   `json:"number"`
	CompanyName string   `json:"company_name"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Emails      []string `json:"emails"`
	Country     string   `json:"country"`
	GroupID     *int64   `json:"group_id"`
	CreatedAt   string   `json:"created_at"`
}

type CustomerGroup struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
}

type Document struct {
	ID             int64          `json:"id"`
	Number         string         `json:"number"`
	Type           string         `json:"type"`
	Title          string         `json:"title"`
	Status         string         `json:"status"`
	CustomerID     *int64         `json:"customer_id"`
	DocumentDate   string         `json:"document_date"`
	Currency       string         `json:"currency"`
	AmountNet      Amount         `json:"amount_net"`
	Amount         Amount         `json:"amount"`
	IsDraft        bool           `json:"is_draft"`
	CancelID       *int64         `json:"cancel_id"`
	Items          []DocumentItem `json:"items"`
	PaidAt         *string        `json:"paid_at"`
	ExternalID     *string        `json:"external_id"`
	FileFormatConf []FileFormat   `json:"file_format_config"`
}

type Discount struct {
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customer_id"`
	PositionID   int64  `json:"position_id"`
	Discount     Amount `json:"discount"`
	DiscountType string `json:"discount_type"`
}

type DocumentPayment struct {
	ID           int64  `json:"id"`
	DocumentID   int64  `json:"document_id"`
	Amount       Amount `json:"amount"`
	IsOverdueFee bool   `json:"is_overdue_fee"`
	Notice       string `json:"notice"`
	PaymentAt    string `json:"payment_at"`
	Provider     string `json:"provider"`
	Reference    string `json:"reference"`
	Type         string `json:"type"`
}

type SEPAPayment struct {
	ID                     int64  `json:"id"`
	DocumentID             int64  `json:"document_id"`
	Amount                 Amount `json:"amount"`
	DebitorName            string `json:"debitor_name"`
	DebitorIBAN            string `json:"debitor_iban"`
	MandateID              string `json:"mandate_id"`
	MandateDateOfSignature string `json:"mandate_date_of_signature"`
	LocalInstrument        string `json:"local_instrument"`
	SequenceType           string `json:"sequence_type"`
	Reference              string `json:"reference"`
	RequestedAt            string `json:"requested_at"`
	ExportAt               string `json:"export_at"`
	Type                   string `json:"type"`
}
