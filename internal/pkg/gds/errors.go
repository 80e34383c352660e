package gds

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

var ErrAuthFailed = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "Failed to authenticate with the GDS API",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "GDS rate limit exceeded",
}

// APIError is a non-2xx answer from the GDS.
type APIError struct {
	Operation  string
	StatusCode int
	Errors     []ErrorItem
}

func (e *APIError) Error() string {
	if detail := e.Detail(); detail != "" {
		return fmt.Sprintf("gds %s: status %d: %s", e.Operation, e.StatusCode, detail)
	}

	return fmt.Sprintf("gds %s: status %d", e.Operation, e.StatusCode)
}

// Detail returns the first error detail reported by the GDS, falling back to its title.
func (e *APIError) Detail() string {
	if len(e.Errors) == 0 {
		return ""
	}

	if e.Errors[0].Detail != "" {
		return e.Errors[0].Detail
	}

	return e.Errors[0].Title
}
