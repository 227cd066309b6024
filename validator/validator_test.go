package validator_test

import (
	"errors"
	"testing"

	"github.com/andyle182810/easybill/validator"
	gvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type paymentInput struct {
	DocumentID int64           `json:"document_id" validate:"required,gt=0"`
	Amount     decimal.Decimal `json:"amount"      validate:"gt=0"`
	IBAN       string          `json:"debitor_iban" validate:"required,sepa_iban"`
	Date       string          `json:"requested_at" validate:"isodate"`
	Sequence   string          `json:"sequence_type" validate:"omitempty,oneof=FRST OOFF FNAL RCUR"`
}

func validPayment() paymentInput {
	return paymentInput{
		DocumentID: 12,
		Amount:     decimal.RequireFromString("19.99"),
		IBAN:       "DE89 3704 0044 0532 0130 00",
		Date:       "2026-10-19",
		Sequence:   "FRST",
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.Default()
	require.NotNil(t, validatorInstance)
	require.NotNil(t, validatorInstance.Validator)
}

func TestValidate_Success(t *testing.T) {
	t.Parallel()

	err := validator.Default().Validate(validPayment())
	require.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	input := validPayment()
	input.DocumentID = 0

	err := validator.Default().Validate(input)
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Equal(t, []string{"document_id"}, validationErrs.Fields())
	require.Equal(t, "document_id is required", validationErrs[0].Message)
}

func TestValidate_DecimalAmount(t *testing.T) {
	t.Parallel()

	input := validPayment()
	input.Amount = decimal.Zero

	err := validator.Default().Validate(input)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Equal(t, "amount must be greater than 0", validationErrs[0].Message)
}

func TestValidate_IBAN(t *testing.T) {
	t.Parallel()

	input := validPayment()
	input.IBAN = "DE00 3704 0044 0532 0130 00"

	err := validator.Default().Validate(input)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Equal(t, "debitor_iban must be a valid IBAN", validationErrs[0].Message)
}

func TestValidate_ISODate(t *testing.T) {
	t.Parallel()

	input := validPayment()
	input.Date = "19.10.2026"

	err := validator.Default().Validate(input)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Equal(t, "requested_at must be a date in YYYY-MM-DD format", validationErrs[0].Message)
}

func TestValidate_ISODateWithTime(t *testing.T) {
	t.Parallel()

	input := validPayment()
	input.Date = "2026-10-19T08:30:00.000Z"

	require.NoError(t, validator.Default().Validate(input))
}

func TestValidate_OneOf(t *testing.T) {
	t.Parallel()

	input := validPayment()
	input.Sequence = "ONCE"

	err := validator.Default().Validate(input)

	require.EqualError(t, err, "sequence_type must be one of [FRST OOFF FNAL RCUR]")
}

func TestIsValidIBAN(t *testing.T) {
	t.Parallel()

	require.True(t, validator.IsValidIBAN("DE89370400440532013000"))
	require.True(t, validator.IsValidIBAN("gb82 west 1234 5698 7654 32"))
	require.False(t, validator.IsValidIBAN("DE89"))
	require.False(t, validator.IsValidIBAN("DE89-3704-0044-0532-0130-00"))
}

func TestRegisterCustomValidation(t *testing.T) {
	t.Parallel()

	validatorInstance := validator.Default()
	err := validatorInstance.RegisterCustomValidation("easybill_type", func(fl gvalidator.FieldLevel) bool {
		return fl.Field().String() == "INVOICE"
	})
	require.NoError(t, err)

	type input struct {
		Type string `json:"type" validate:"easybill_type"`
	}

	require.NoError(t, validatorInstance.Validate(input{Type: "INVOICE"}))
	require.EqualError(t, validatorInstance.Validate(input{Type: "OFFER"}), "type failed validation on 'easybill_type'")
}

func TestValidate_LengthAndDive(t *testing.T) {
	t.Parallel()

	type customer struct {
		Country string   `json:"country" validate:"omitempty,len=2"`
		Emails  []string `json:"emails"  validate:"omitempty,dive,email"`
	}

	err := validator.Default().Validate(customer{Country: "DEU", Emails: []string{"a@example.com", "nope"}})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	require.Equal(t, []string{"country", "emails[1]"}, validationErrs.Fields())
	require.Equal(t, "country must be exactly 2 characters long", validationErrs[0].Message)
	require.Equal(t, "emails[1] must be a valid email address", validationErrs[1].Message)
}
