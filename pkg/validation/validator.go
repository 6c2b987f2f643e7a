package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var initOnce sync.Once

// Init configures the global validator used by Gin's binding.
// - Uses JSON/uri/form tag names in errors.
// - Registers alias tags shared with the domain rules.
// Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerTagNames(v)
			registerAliases(v)
		}
	})
}

func registerTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "uri", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

func registerAliases(v *validator.Validate) {
	v.RegisterAlias("userid", identifierRule)
	v.RegisterAlias("useremail", emailRule)
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	// Domain rule failures
	switch {
	case errors.Is(err, ErrInvalidIdentifier):
		return map[string]string{"id": "must be a positive integer"}
	case errors.Is(err, ErrInvalidEmail):
		return map[string]string{"email": "must be a valid email"}
	}

	// Validation errors from validator.v10
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	// Fallback
	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "useremail":
		return "must be a valid email"
	case "userid":
		return "must be a positive integer"
	default:
		if fe.Param() != "" {
			return "validation failed for '" + fe.Tag() + "' with parameter '" + fe.Param() + "'"
		}
		return "validation failed for '" + fe.Tag() + "'"
	}
}
