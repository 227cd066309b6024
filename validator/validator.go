package validator

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	tagIBAN    = "sepa_iban"
	tagISODate = "isodate"
)

type Validator struct {
	Validator *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, err := range v {
		msgs = append(msgs, err.Message)
	}

	return strings.Join(msgs, "; ")
}

// Fields lists the offending field names in order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, err := range v {
		fields = append(fields, err.Field)
	}

	return fields
}

// Default returns a validator that reports json field names, validates
// decimal amounts numerically and knows the sepa_iban and isodate tags.
func Default() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		const maxSplits = 2
		name := strings.SplitN(fld.Tag.Get("json"), ",", maxSplits)[0]

		if name == "-" {
			return ""
		}

		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if val, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := val.Float64()

			return f
		}

		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation(tagIBAN, validateIBAN)
	_ = v.RegisterValidation(tagISODate, validateISODate)

	return &Validator{Validator: v}
}

// Validate checks the struct tags of params. Field errors are returned as
// ValidationErrors, anything else such as a non struct argument as is.
func (v *Validator) Validate(params any) error {
	err := v.Validator.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	return v.formatValidationErrors(fieldErrs)
}

// Messages for tags without a parameter.
//
//nolint:gochecknoglobals
var plainMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"url":      "must be a valid URL",
	"numeric":  "must be numeric",
	tagIBAN:    "must be a valid IBAN",
	tagISODate: "must be a date in YYYY-MM-DD format",
}

// Message formats for tags whose parameter is part of the message.
//
//nolint:gochecknoglobals
var paramMessages = map[string]string{
	"len":   "must be exactly %s characters long",
	"min":   "must be at least %s",
	"max":   "must be at most %s",
	"gt":    "must be greater than %s",
	"gte":   "must be greater than or equal to %s",
	"lte":   "must be less than or equal to %s",
	"oneof": "must be one of [%s]",
}

func (v *Validator) formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))

	for _, fieldErr := range errs {
		// Errors inside dive report names like "emails[1]".
		name := fieldErr.Field()
		if name == "" {
			name = fieldErr.StructField()
		}

		out = append(out, ValidationError{
			Field:   name,
			Tag:     fieldErr.Tag(),
			Value:   fmt.Sprintf("%v", fieldErr.Value()),
			Message: name + " " + describeTag(fieldErr),
		})
	}

	return out
}

func describeTag(fieldErr validator.FieldError) string {
	if msg, ok := plainMessages[fieldErr.Tag()]; ok {
		return msg
	}

	if format, ok := paramMessages[fieldErr.Tag()]; ok {
		return fmt.Sprintf(format, fieldErr.Param())
	}

	return fmt.Sprintf("failed validation on '%s'", fieldErr.Tag())
}

// RegisterCustomValidation adds a validation tag.
func (v *Validator) RegisterCustomValidation(tag string, fn validator.Func) error {
	return v.Validator.RegisterValidation(tag, fn)
}

// RegisterCustomType makes values of types validate as the value fn returns.
func (v *Validator) RegisterCustomType(fn validator.CustomTypeFunc, types ...any) {
	v.Validator.RegisterCustomTypeFunc(fn, types...)
}

func validateIBAN(fl validator.FieldLevel) bool {
	return IsValidIBAN(fl.Field().String())
}

// IsValidIBAN checks length, character set and the ISO 13616 mod-97 checksum.
// Spaces are ignored.
func IsValidIBAN(value string) bool {
	const (
		minLength = 15
		maxLength = 34
	)

	iban := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	if len(iban) < minLength || len(iban) > maxLength {
		return false
	}

	rearranged := iban[4:] + iban[:4]

	var digits strings.Builder

	for _, r := range rearranged {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			fmt.Fprintf(&digits, "%d", r-'A'+10)
		default:
			return false
		}
	}

	number, ok := new(big.Int).SetString(digits.String(), 10)
	if !ok {
		return false
	}

	return new(big.Int).Mod(number, big.NewInt(97)).Int64() == 1
}

func validateISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	// A trailing time part is tolerated, only the date is checked.
	date, _, _ := strings.Cut(value, "T")
	_, err := time.Parse(time.DateOnly, date)

	return err == nil
}
