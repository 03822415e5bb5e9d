package model

import (
	"net/http"

	"github.com/Laisky/errors/v2"
)

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param"`
	Code    any    `json:"code"`
	// RawError preserves the original upstream or internal error for diagnostics.
	// Omitted from JSON to avoid leaking provider internals.
	RawError error `json:"-"`
}

type ErrorWithStatusCode struct {
	Error
	StatusCode int `json:"status_code"`
}

// NewErrorWithStatusCode classifies err: assembly failures become 400
// invalid_request_error responses carrying the field name, anything else a 500.
func NewErrorWithStatusCode(err error) *ErrorWithStatusCode {
	if code := ErrorCode(err); code != "" {
		return &ErrorWithStatusCode{
			StatusCode: http.StatusBadRequest,
			Error: Error{
				Message:  err.Error(),
				Type:     "invalid_request_error",
				Param:    errorParam(err),
				Code:     code,
				RawError: err,
			},
		}
	}

	return &ErrorWithStatusCode{
		StatusCode: http.StatusInternalServerError,
		Error: Error{
			Message:  err.Error(),
			Type:     "contentgen_error",
			Code:     "internal_error",
			RawError: err,
		},
	}
}

func errorParam(err error) string {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		return missing.Field
	}
	var invalid *InvalidValueError
	if errors.As(err, &invalid) {
		return invalid.Field
	}
	var unsupported *UnsupportedModelError
	if errors.As(err, &unsupported) {
		return "modelId"
	}
	return ""
}
