package util

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError reports rejected input at the request boundary.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_ERROR", message, http.StatusBadRequest, details)
}

// NewNotFound reports a missing resource.
func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "RESOURCE_NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewInvalidStatus reports status text that names no known status.
func NewInvalidStatus(value string, valid []string) error {
	return NewDomainError(
		"INVALID_STATUS",
		fmt.Sprintf("invalid status %q: valid values are %s", value, strings.Join(valid, ", ")),
		http.StatusBadRequest,
		map[string]any{"value": value, "valid_values": valid},
	)
}

// NewInvalidVisibility reports visibility text that names no known
// visibility.
func NewInvalidVisibility(value string, valid []string) error {
	return NewDomainError(
		"INVALID_VISIBILITY",
		fmt.Sprintf("invalid visibility %q: valid values are %s", value, strings.Join(valid, ", ")),
		http.StatusBadRequest,
		map[string]any{"value": value, "valid_values": valid},
	)
}

// NewBusinessRuleViolation reports an operation the domain rules forbid.
func NewBusinessRuleViolation(message string, details map[string]any) error {
	return NewDomainError("BUSINESS_RULE_VIOLATION", message, http.StatusConflict, details)
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
