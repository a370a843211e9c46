package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the request rules that gin's default validator lacks.
//
//	decimal_nonneg: a decimal.Decimal that is >= 0; a nil *decimal.Decimal passes
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("decimal_nonneg", decimalNonNegative, true)
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative()
}
