package model

import (
	"fmt"

	"github.com/Laisky/errors/v2"
)

// Sentinel errors for request assembly failures. Match them with errors.Is;
// use errors.As with the typed errors below to recover the offending field.
var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidValue     = errors.New("invalid field value")
	ErrUnsupportedModel = errors.New("unsupported model")
)

// MissingFieldError reports a required request field that was not set.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("'%s' is a required parameter", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidValueError reports a request field holding a value outside its domain.
type InvalidValueError struct {
	Field string
	Value string
	// Reason is a human-readable explanation of the accepted values.
	Reason string
}

func (e *InvalidValueError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid value %q for '%s': %s", e.Value, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid value %q for '%s'", e.Value, e.Field)
}

func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// UnsupportedModelError reports a model id absent from the vendor table.
type UnsupportedModelError struct {
	ModelID string
}

func (e *UnsupportedModelError) Error() string {
	return "Unsupported modelId: " + e.ModelID
}

func (e *UnsupportedModelError) Is(target error) bool {
	return target == ErrUnsupportedModel
}

// ErrorCode maps an assembly error to the code reported to HTTP clients.
// It returns an empty string for errors outside the taxonomy.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, ErrUnsupportedModel):
		return "unsupported_model"
	default:
		return ""
	}
}
