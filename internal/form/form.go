// Package form holds the field-level validation and server violation
// plumbing shared by the interactive editors. Fields carry declarative
// rules checked locally before submit; violations returned by the API are
// mapped back onto fields by path after submit.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Field is a single editable value in a form. Path addresses the field in
// the payload the form submits (see ParsePath for the wire notation).
type Field struct {
	Path    []string
	Label   string
	Rules   string
	Value   string
	Errors  []string
	Numeric bool
}

// Name returns the wire name of the field, e.g. "bankAccount.agency".
func (f *Field) Name() string {
	return JoinPath(f.Path)
}

// Validate checks the field's value against its rules and replaces its
// error list with whatever failed. It reports whether the field is valid.
func (f *Field) Validate() bool {
	f.Errors = nil
	if f.Rules == "" {
		return true
	}

	err := validate.Var(strings.TrimSpace(f.Value), f.Rules)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		f.Errors = []string{"invalid value"}
		return false
	}

	for _, fe := range verrs {
		f.Errors = append(f.Errors, messageFor(f.Label, fe.Tag(), fe.Param()))
	}
	return false
}

func messageFor(label, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, param)
	case "email":
		return fmt.Sprintf("%s must be a valid e-mail address", label)
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", label)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, param)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
