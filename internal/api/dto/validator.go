package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/ttacon/libphonenumber"

	apperrors "github.com/spec-kit/delivery-ops/pkg/util/errorutil"
)

// Validator checks request payloads against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a validator whose phone tag parses numbers for region.
func NewValidator(region string) *Validator {
	if region == "" {
		region = "KE"
	}
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String(), region)
	})
	return &Validator{validate: v}
}

// Struct validates s and converts failures to a VALIDATION_FAILED error.
func (v *Validator) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return apperrors.FromValidation("request validation failed", err)
	}
	return nil
}

// ValidPhone reports whether number is a valid phone number, reading local
// formats in region.
func ValidPhone(number, region string) bool {
	p, err := libphonenumber.Parse(number, region)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(p)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
