package errors

import "fmt"

// HTTPError is an error that carries the HTTP status and a client-safe message.
type HTTPError struct {
	Code       int    `json:"error_code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates an HTTPError whose error code equals its status code.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Code: status, Message: message, StatusCode: status}
}

// NewHTTPErrorWithCode creates an HTTPError with a business error code distinct from the status.
func NewHTTPErrorWithCode(status, code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
