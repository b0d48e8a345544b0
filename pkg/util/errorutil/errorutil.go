package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared by the dispatcher and the console.
const (
	CodeNetworkError    = "NETWORK_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeServerError     = "SERVER_ERROR"
	CodeRequestFailed   = "REQUEST_FAILED"
	CodeConfigError     = "CONFIG_ERROR"
	CodeInvalidResponse = "INVALID_RESPONSE"
	CodeValidation      = "VALIDATION_FAILED"
	CodeInternal        = "INTERNAL_ERROR"
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

// NewNetworkError reports a call that never received a response.
func NewNetworkError(err error) *DomainError {
	return &DomainError{
		Code:       CodeNetworkError,
		Message:    "network error, please check your connection",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

// NewUnauthorized reports a rejected credential.
func NewUnauthorized(message string) *DomainError {
	if message == "" {
		message = "unauthorized, please log in again"
	}
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

// NewForbidden reports a denied operation.
func NewForbidden(message string) *DomainError {
	if message == "" {
		message = "access denied"
	}
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

// NewNotFound reports a missing upstream resource.
func NewNotFound(message string) *DomainError {
	if message == "" {
		message = "requested resource not found"
	}
	return NewDomainError(CodeNotFound, message, http.StatusNotFound, nil)
}

// NewServerError reports an upstream 5xx.
func NewServerError(status int) *DomainError {
	return NewDomainError(CodeServerError, "server error", http.StatusBadGateway, map[string]any{"status": status})
}

// NewRequestFailed reports any other non-2xx status. An empty message falls back to a generic one.
func NewRequestFailed(status int, message string) *DomainError {
	if message == "" {
		message = "request failed"
	}
	return NewDomainError(CodeRequestFailed, message, status, map[string]any{"status": status})
}

// NewConfigError reports a request that could not be built or sent.
func NewConfigError(err error) *DomainError {
	return &DomainError{
		Code:       CodeConfigError,
		Message:    "request configuration error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewInvalidResponse reports a payload that does not decode into the expected shape.
func NewInvalidResponse(err error) *DomainError {
	return &DomainError{
		Code:       CodeInvalidResponse,
		Message:    "unexpected response payload",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsCode reports whether err carries a DomainError with the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
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
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
