package easybill

import (
	"fmt"
	"net/http"

	"github.com/andyle182810/easybill/httpclient"
)

// DiscountTarget selects between discounts on single positions and on
// position groups. Both share the same request shapes.
type DiscountTarget string

const (
	DiscountPosition      DiscountTarget = "position"
	DiscountPositionGroup DiscountTarget = "position-group"
)

func (t DiscountTarget) path() string {
	return "/discounts/" + string(t)
}

func (t DiscountTarget) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", t.path(), id)
}

// DiscountFields is the discount body. For position groups PositionID holds
// the group id.
type DiscountFields struct {
	CustomerID   *int64  `json:"customer_id,omitempty"   validate:"omitempty,gt=0"`
	PositionID   *int64  `json:"position_id,omitempty"   validate:"omitempty,gt=0"`
	Discount     *Amount `json:"discount,omitempty"`
	DiscountType string  `json:"discount_type,omitempty" validate:"omitempty,oneof=AMOUNT QUANTITY PERCENT FIX"`
}

type GetDiscountsParams struct {
	ListOptions

	Target     DiscountTarget `json:"-" validate:"required,oneof=position position-group"`
	CustomerID string         `json:"customer_id,omitempty"`
}

func (p GetDiscountsParams) Request() (httpclient.Request, error) {
	query := p.query()
	if p.CustomerID != "" {
		query["customer_id"] = p.CustomerID
	}

	return httpclient.Request{
		Method: http.MethodGet,
		Path:   p.Target.path(),
		Query:  query,
	}, nil
}

type CreateDiscountParams struct {
	DiscountFields

	Target DiscountTarget `json:"-" validate:"required,oneof=position position-group"`
}

func (p CreateDiscountParams) Request() (httpclient.Request, error) {
	if p.CustomerID == nil || p.PositionID == nil {
		return httpclient.Request{}, fmt.Errorf("%w: customer_id and position_id are required", ErrInvalidParams)
	}

	return httpclient.Request{
		Method: http.MethodPost,
		Path:   p.Target.path(),
		Body:   p.DiscountFields,
	}, nil
}

type GetDiscountParams struct {
	Target     DiscountTarget `json:"-" validate:"required,oneof=position position-group"`
	DiscountID int64          `json:"discount_id" validate:"required,gt=0"`
}

func (p GetDiscountParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodGet, Path: p.Target.itemPath(p.DiscountID)}, nil
}

type UpdateDiscountParams struct {
	DiscountFields

	Target     DiscountTarget `json:"-" validate:"required,oneof=position position-group"`
	DiscountID int64          `json:"discount_id" validate:"required,gt=0"`
}

func (p UpdateDiscountParams) Request() (httpclient.Request, error) {
	return httpclient.Request{
		Method: http.MethodPut,
		Path:   p.Target.itemPath(p.DiscountID),
		Body:   p.DiscountFields,
	}, nil
}

type DeleteDiscountParams struct {
	Target     DiscountTarget `json:"-" validate:"required,oneof=position position-group"`
	DiscountID int64          `json:"discount_id" validate:"required,gt=0"`
}

func (p DeleteDiscountParams) Request() (httpclient.Request, error) {
	return httpclient.Request{Method: http.MethodDelete, Path: p.Target.itemPath(p.DiscountID)}, nil
}
