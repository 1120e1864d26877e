package core

import "strings"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err *ValidationError) Error() string {
	if len(err.Fields) > 0 {
		lines := make([]string, 0, len(err.Fields))
		for _, fld := range err.Fields {
			lines = append(lines, fld.Field+": "+fld.Error)
		}
		return strings.Join(lines, "\n")
	}
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIFieldDetail is a server-side validation error on a single field.
type APIFieldDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// APIError is the structured error shape returned by the backend for any
// failed call. The request gateway is the only place that constructs it;
// everything above treats all failures as this one type.
type APIError struct {
	Code        string           `json:"code"`
	Description string           `json:"description"`
	Detail      string           `json:"detail"`
	Details     []APIFieldDetail `json:"details,omitempty"`
}

// Error renders the most specific message available:
// detail, then per-field details as "field: reason" lines,
// then description, then code.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.Details) > 0 {
		lines := make([]string, 0, len(e.Details))
		for _, d := range e.Details {
			lines = append(lines, d.Field+": "+d.Reason)
		}
		return strings.Join(lines, "\n")
	}
	if e.Description != "" {
		return e.Description
	}
	return e.Code
}

// NewSessionExpiredError reports a server-side session invalidation (401/403),
// regardless of what the response body contained.
func NewSessionExpiredError(detail string) *APIError {
	return &APIError{Code: "401", Description: "UNAUTHORIZED", Detail: detail}
}
