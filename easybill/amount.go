package easybill

import (
	"github.com/shopspring/decimal"
)

// Amount is a decimal value that encodes as a bare JSON number. easybill
// expects prices in cents and quantities as plain numbers, never as strings.
type Amount struct {
	decimal.Decimal
}

func NewAmount(value int64) Amount {
	return Amount{Decimal: decimal.NewFromInt(value)}
}

func MustAmount(value string) Amount {
	return Amount{Decimal: decimal.RequireFromString(value)}
}

// AmountPtr is a convenience for optional fields.
func AmountPtr(value string) *Amount {
	amount := MustAmount(value)

	return &amount
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}
