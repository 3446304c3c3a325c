// Package forms holds the validation-error shape shared by the shop and
// booking create/edit dialogs, so both surfaces fail the same way.
package forms

import (
	"errors"
	"sort"
	"strings"
)

// Errors maps field name to the message shown next to it.
type Errors map[string]string

func (e Errors) Add(field, message string) {
	if _, taken := e[field]; taken {
		return
	}
	e[field] = message
}

func (e Errors) Any() bool { return len(e) > 0 }

// ValidationError is returned by usecases when input fails structural
// validation. Nothing was sent over the network when this comes back.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation: " + strings.Join(parts, "; ")
}

func NewValidationError(fields Errors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AsValidation unwraps a validation failure, if that is what err is.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
