// Package validation wraps go-playground/validator and reports failures as
// a list of field errors keyed by their JSON location.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Loc  []any  `json:"loc"`
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		loc := make([]string, 0, len(f.Loc))
		for _, l := range f.Loc {
			loc = append(loc, fmt.Sprint(l))
		}
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(loc, "."), f.Msg))
	}
	return strings.Join(parts, "; ")
}

func AsError(err error) (*Error, bool) {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "env"} {
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
	return &Validator{validate: v}
}

// Struct validates s and prefixes every reported location with loc.
// Errors other than field failures (e.g. s is not a struct) are returned as is.
func (v *Validator) Struct(s any, loc ...string) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		path := make([]any, 0, len(loc)+1)
		for _, l := range loc {
			path = append(path, l)
		}
		path = append(path, fe.Field())

		msg, typ := describe(fe)
		out.Fields = append(out.Fields, FieldError{Loc: path, Msg: msg, Type: typ})
	}
	return out
}

func describe(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return "Field required", "missing"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String should have at least %s characters", fe.Param()), "string_too_short"
		}
		return fmt.Sprintf("Input should be greater than or equal to %s", fe.Param()), "greater_than_equal"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String should have at most %s characters", fe.Param()), "string_too_long"
		}
		return fmt.Sprintf("Input should be less than or equal to %s", fe.Param()), "less_than_equal"
	case "gt":
		return fmt.Sprintf("Input should be greater than %s", fe.Param()), "greater_than"
	case "email":
		return "value is not a valid email address", "value_error"
	case "numeric":
		return "Input should be a valid number", "numeric"
	case "oneof":
		return fmt.Sprintf("Input should be one of: %s", fe.Param()), "enum"
	default:
		return fmt.Sprintf("Input failed the '%s' rule", fe.Tag()), fe.Tag()
	}
}
