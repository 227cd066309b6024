package easybill

import (
	"fmt"
	"net/http"

	"github.com/andyle182810/easybill/httpclient"
)

const customersPath = "/customers"

// CustomerFields are the writable customer attributes shared by create and
// update. Empty values are not sent.
type CustomerFields struct {
	AcquireOptions      string   `json:"acquire_options,omitempty"`
	AdditionalGroupsIDs []int64  `json:"additional_groups_ids,omitempty"`
	BankAccount         string   `json:"bank_account,omitempty"`
	BankAccountOwner    string   `json:"bank_account_owner,omitempty"`
	BankBIC             string   `json:"bank_bic,omitempty"`
	BankCode            string   `json:"bank_code,omitempty"`
	BankIBAN            string   `json:"bank_iban,omitempty"          validate:"omitempty,sepa_iban"`
	BankName            string   `json:"bank_name,omitempty"`
	BirthDate           string   `json:"birth_date,omitempty"         validate:"omitempty,isodate"`
	CashAllowance       *Amount  `json:"cash_allowance,omitempty"`
	CashAllowanceDays   *int     `json:"cash_allowance_days,omitempty"`
	CashDiscount        *Amount  `json:"cash_discount,omitempty"`
	CashDiscountType    string   `json:"cash_discount_type,omitempty" validate:"omitempty,oneof=PERCENT AMOUNT"`
	City                string   `json:"city,omitempty"`
	State               string   `json:"state,omitempty"`
	CompanyName         string   `json:"company_name,omitempty"`
	Country             string   `json:"country,omitempty"            validate:"omitempty,len=2"`
	DeliveryTitle       string   `json:"delivery_title,omitempty"`
	DeliveryState       string   `json:"delivery_state,omitempty"`
	Emails              []string `json:"emails,omitempty"             validate:"omitempty,dive,email"`
	Fax                 string   `json:"fax,omitempty"`
	FirstName           string   `json:"first_name,omitempty"`
	GracePeriod         *int     `json:"grace_period,omitempty"`
	GroupID             *int64   `json:"group_id,omitempty"`
	LastName            string   `json:"last_name,omitempty"`
	Internet            string   `json:"internet,omitempty"`
	Phone1              string   `json:"phone_1,omitempty"`
	Street              string   `json:"street,omitempty"`
	ZipCode             string   `json:"zip_code,omitempty"`
	VATIdentifier       string   `json:"vat_identifier,omitempty"`
}

type CreateCustomerParams struct {
	CustomerFields

	// Type is sent as query parameter.
	Type string `json:"type,omitempty"`
}

func (p CreateCustomerParams) Request() (httpclient.Request, error) {
	if p.LastName == "" && p.CompanyName == "" {
		return httpclient.Request{}, fmt.Errorf("%w: last_name or company_name is required", ErrInvalidParams)
	}

	return httpclient.Request{
		Method: http.MethodPost,
		Path:   customersPath,
		Query:  typeQuery(p.Type),
		Body:   p.CustomerFields,
	}, nil
}

type UpdateCustomerParams struct {
	CustomerFields

	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
	Type       string `json:"type,omitempty"`
}

func (p UpdateCustomerParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("%s/%d", customersPath, p.CustomerID),
		Query:  typeQuery(p.Type),
		Body:   p.CustomerFields,
	}, nil
}

type GetCustomerParams struct {
	CustomerID int64 `json:"customer_id" validate:"required,gt=0"`
}

func (p GetCustomerParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("%s/%d", customersPath, p.CustomerID),
	}, nil
}

type DeleteCustomerParams struct {
	CustomerID int64 `json:"customer_id" validate:"required,gt=0"`
}

func (p DeleteCustomerParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("%s/%d", customersPath, p.CustomerID),
	}, nil
}

// CustomerFilters narrow the customer list. Comma separated values select
// several matches where the API allows it.
type CustomerFilters struct {
	AdditionalGroupID string `json:"additional_group_id,omitempty"`
	CompanyName       string `json:"company_name,omitempty"`
	Country           string `json:"country,omitempty"`
	CreatedAt         string `json:"created_at,omitempty"`
	Emails            string `json:"emails,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	GroupID           string `json:"group_id,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Number            string `json:"number,omitempty"`
	Type              string `json:"type,omitempty"`
	ZipCode           string `json:"zip_code,omitempty"`
}

type GetCustomerListParams struct {
	ListOptions
	CustomerFilters
}

func (p GetCustomerListParams) Request() (httpclient.Request, error) {
	query, err := toQuery(p.CustomerFilters)
	if err != nil {
		return httpclient.Request{}, err
	}

	return httpclient.Request{
		Method: http.MethodGet,
		Path:   customersPath,
		Query:  mergeQuery(query, p.query()),
	}, nil
}

func typeQuery(customerType string) map[string]any {
	if customerType == "" {
		return nil
	}

	return map[string]any{"type": customerType}
}
