package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("billstatus", func(fl validator.FieldLevel) bool {
		return BillStatus(fl.Field().String()).Valid()
	})
	return v
}

// validationMessage turns the first validation failure into the message
// returned to API callers. It returns "" when err is nil.
func validationMessage(err error) string {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Field %s must not be empty", fe.Field())
		}
		return fmt.Sprintf("Field %s must be at least %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("Field %s must be a valid email address", fe.Field())
	case "billstatus":
		return fmt.Sprintf("Field %s must be one of: %s", fe.Field(), statusList())
	default:
		return fmt.Sprintf("Field %s is invalid", fe.Field())
	}
}
