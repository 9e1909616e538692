package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violations maps a field path to the rule it failed.
type Violations map[string]string

// Error reports input that failed struct validation.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f := range e.Violations {
		fields = append(fields, f)
	}

	slices.Sort(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e.Violations[f]
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// Nest returns a copy of e with every field path placed under prefix.
func (e *Error) Nest(prefix string) *Error {
	nested := make(Violations, len(e.Violations))
	for f, r := range e.Violations {
		nested[prefix+"."+f] = r
	}

	return &Error{Violations: nested}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so violations match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return f.Name
		}

		return name
	})

	return v
}

// Struct validates s against its `validate` tags. A failed rule yields *Error.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("validating: %w", err)
	}

	violations := make(Violations, len(ves))
	for _, fe := range ves {
		violations[fieldPath(fe)] = rule(fe)
	}

	return &Error{Violations: violations}
}

// fieldPath drops the top-level struct name from the namespace:
// "createInvoiceRequest.customer.email" becomes "customer.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}

	return fe.Tag() + "=" + fe.Param()
}

// Is reports whether err carries validation violations.
func Is(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}
