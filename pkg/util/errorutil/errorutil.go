package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeMissingParameter = "MISSING_PARAMETER"
	CodeValidation       = "VALIDATION_FAILED"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternal         = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
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
func NewDomainError(code, message string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status}
}

// NewMissingParameter reports a required request field that was absent or empty.
func NewMissingParameter(field string) error {
	return NewDomainError(CodeMissingParameter, "Missing parameter: "+field, http.StatusBadRequest)
}

func NewValidationError(message string) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest)
}

// NewUnauthorized hides cause from the caller. Message is identical for every
// authentication failure.
func NewUnauthorized(cause error) error {
	return &DomainError{
		Code:       CodeUnauthorized,
		Message:    http.StatusText(http.StatusUnauthorized),
		HTTPStatus: http.StatusUnauthorized,
		Err:        cause,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
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
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code := CodeValidation
		switch {
		case fiberErr.Code == http.StatusUnauthorized:
			code = CodeUnauthorized
		case fiberErr.Code >= http.StatusInternalServerError:
			code = CodeInternal
		case fiberErr.Code == http.StatusNotFound:
			code = "NOT_FOUND"
		case fiberErr.Code == http.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		}
		return NewDomainError(code, fiberErr.Message, fiberErr.Code)
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err carries a DomainError with the given code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
