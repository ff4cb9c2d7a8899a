package apperror_test

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func validatorWithJSONNames() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}
