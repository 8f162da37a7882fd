package pokedex

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork wraps transport failures: the server was never reached or
	// the connection dropped.
	ErrNetwork = errors.New("network error")
	// ErrEmptyID is returned when an operation is called without a Pokémon id.
	ErrEmptyID = errors.New("pokemon id is required")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an APIError with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

// Retryable reports whether repeating the operation may succeed.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, ErrNetwork) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusTooManyRequests || apiErr.Status >= http.StatusInternalServerError
	}
	return false
}

// Message turns err into a message fit for an end user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNetwork) {
		return "Network connection failed. Please check your internet connection."
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The request timed out. Please try again."
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return "An unexpected error occurred"
	}

	switch apiErr.Status {
	case http.StatusBadRequest:
		return orDefault(apiErr.Message, "Invalid request. Please check your input.")
	case http.StatusUnauthorized:
		return "Authentication required. Please log in."
	case http.StatusForbidden:
		return orDefault(apiErr.Message, "You do not have permission to perform this action.")
	case http.StatusNotFound:
		return orDefault(apiErr.Message, "The requested resource was not found.")
	case http.StatusConflict:
		return orDefault(apiErr.Message, "A conflict occurred. The resource may already exist.")
	case http.StatusUnprocessableEntity:
		return orDefault(apiErr.Message, "Invalid data provided. Please check your input.")
	case http.StatusTooManyRequests:
		return "Too many requests. Please wait a moment and try again."
	case http.StatusInternalServerError:
		return "Server error. Please try again later."
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return "Service temporarily unavailable. Please try again later."
	default:
		return orDefault(apiErr.Message, "An unexpected error occurred")
	}
}

func orDefault(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}
