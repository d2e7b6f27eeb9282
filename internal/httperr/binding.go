package httperr

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UseJSONFieldNames makes gin's validator report json tag names instead of Go field names.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FromBinding turns a gin bind error into field-level validation errors.
func FromBinding(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(FieldErrors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Reason: reasonFor(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return InvalidField(typeErr.Field, "invalid type, expected "+typeErr.Type.String())
	}

	return ErrBusiness("invalid_request")
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		if fe.Kind() == reflect.String {
			return "ensure this field has no more than " + fe.Param() + " characters"
		}
		return "ensure this value is at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "ensure this field has at least " + fe.Param() + " characters"
		}
		return "ensure this value is at least " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
