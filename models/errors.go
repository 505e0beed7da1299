package models

import "fmt"

// Error codes used in API responses and internal error handling.
const (
	ErrCodeUnknownSource = "UNKNOWN_SOURCE"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeRateLimited   = "RATE_LIMITED"
	ErrCodeInternal      = "INTERNAL_ERROR"
)

// ErrorDetail is the structured error in API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AddonError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type AddonError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *AddonError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AddonError) Unwrap() error {
	return e.Err
}

// NewAddonError creates a new AddonError.
func NewAddonError(code, message string, err error) *AddonError {
	return &AddonError{Code: code, Message: message, Err: err}
}

// ToDetail converts an internal error to an API-facing ErrorDetail.
func (e *AddonError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: e.Code, Message: e.Message}
}
