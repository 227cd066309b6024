package easybill

import (
	"fmt"
	"net/http"

	"github.com/andyle182810/easybill/httpclient"
)

const customerGroupsPath = "/customer-groups"

type GetCustomerGroupsParams struct {
	ListOptions
}

func (p GetCustomerGroupsParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodGet,
		Path:   customerGroupsPath,
		Query:  p.query(),
	}, nil
}

type CreateCustomerGroupParams struct {
	Name        string `json:"name"                  validate:"required"`
	Number      string `json:"number"                validate:"required"`
	Description string `json:"description,omitempty"`
}

func (p CreateCustomerGroupParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodPost,
		Path:   customerGroupsPath,
		Body:   p,
	}, nil
}

type GetCustomerGroupParams struct {
	GroupID int64 `json:"group_id" validate:"required,gt=0"`
}

func (p GetCustomerGroupParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodGet, Path: customerGroupPath(p.GroupID)}, nil
}

type customerGroupChanges struct {
	Name        string `json:"name,omitempty"`
	Number      string `json:"number,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateCustomerGroupParams sends only the fields that are set.
type UpdateCustomerGroupParams struct {
	GroupID     int64  `json:"group_id"              validate:"required,gt=0"`
	Name        string `json:"name,omitempty"`
	Number      string `json:"number,omitempty"`
	Description string `json:"description,omitempty"`
}

func (p UpdateCustomerGroupParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodPut,
		Path:   customerGroupPath(p.GroupID),
		Body: customerGroupChanges{
			Name:        p.Name,
			Number:      p.Number,
			Description: p.Description,
		},
	}, nil
}

type DeleteCustomerGroupParams struct {
	GroupID int64 `json:"group_id" validate:"required,gt=0"`
}

func (p DeleteCustomerGroupParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodDelete, Path: customerGroupPath(p.GroupID)}, nil
}

func customerGroupPath(id int64) string {
	return fmt.Sprintf("%s/%d", customerGroupsPath, id)
}
