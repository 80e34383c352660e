package visa

import (
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

var ErrMissingAPIKey = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "API configuration error",
}

var ErrRequirementsUnavailable = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "Failed to fetch visa requirements",
}

var ErrInternal = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "Internal server error",
}
