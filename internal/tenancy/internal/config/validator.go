package config

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

// use a single instance of go-playground/validator Validate, it
// caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("provider_kind", providerKindValidator); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("positive_duration", positiveDurationValidator); err != nil {
		panic(err)
	}
}

// providerKindValidator accepts the supported managed cluster provider kinds.
func providerKindValidator(fl validator.FieldLevel) bool {
	val, kind, _ := fl.ExtractType(fl.Field())
	if kind != reflect.String {
		return false
	}
	switch ProviderKind(val.String()) {
	case ProviderKindSelfManaged, ProviderKindManagedCloud:
		return true
	default:
		return false
	}
}

var _ validator.Func = providerKindValidator

func positiveDurationValidator(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(Duration)
	if !ok {
		return false
	}
	return time.Duration(d) > 0
}

var _ validator.Func = positiveDurationValidator
