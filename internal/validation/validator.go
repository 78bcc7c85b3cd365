package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// nonblank rejects empty and whitespace-only strings.
	if err := v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Errorf("failed to register nonblank validation: %w", err))
	}
	return v
}

// Struct runs the struct tag rules of s and reports failures with field
// paths relative to prefix.
func Struct(prefix string, s any) Result {
	var res Result
	err := validate.Struct(s)
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Add(prefix, CodeInvalidFormat, err.Error())
		return res
	}

	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		res.Add(join(prefix, field), codeFor(fe.Tag()), messageFor(fe))
	}
	return res
}

func codeFor(tag string) string {
	switch tag {
	case "nonblank", "required", "min":
		return CodeRequired
	case "gte", "lte", "gt", "lt":
		return CodeOutOfRange
	default:
		return CodeInvalidFormat
	}
}

func messageFor(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "nonblank", "required":
		return name + " is required"
	case "min":
		return fmt.Sprintf("at least %s %s required", fe.Param(), name)
	case "email":
		return name + " must be a valid email"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}

// isEmail checks a single value with the same rule used for struct tags.
func isEmail(s string) bool {
	return validate.Var(s, "email") == nil
}
