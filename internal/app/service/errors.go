package service

import (
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

var ErrNoFlightsFound = exception.ApplicationError{
	Message:    "no flights found",
	StatusCode: http.StatusNotFound,
}

var ErrFlightSearchFailed = exception.ApplicationError{
	Message:    "Failed to fetch flight data. Please try again later.",
	StatusCode: http.StatusBadGateway,
}

var ErrNoFlightData = exception.ApplicationError{
	Message:    "No flight data found. Please select a flight to proceed with booking.",
	StatusCode: http.StatusNotFound,
	RedirectTo: "/flights",
}

var ErrInvalidTravelerDetails = exception.ApplicationError{
	Message:    "Please fix the errors in the form before proceeding.",
	StatusCode: http.StatusUnprocessableEntity,
}

var ErrBookingInProgress = exception.ApplicationError{
	Message:    "Your booking is already being processed.",
	StatusCode: http.StatusConflict,
}

var ErrPriceConfirmationFailed = exception.ApplicationError{
	Message:    "Failed to confirm flight price and availability.",
	StatusCode: http.StatusBadGateway,
}

var ErrOrderCreationFailed = exception.ApplicationError{
	Message:    "Failed to create flight order.",
	StatusCode: http.StatusBadGateway,
}

var ErrBookingLookupFailed = exception.ApplicationError{
	Message:    "Failed to fetch booking details.",
	StatusCode: http.StatusBadGateway,
}

var ErrBookingsUnavailable = exception.ApplicationError{
	Message:    "Failed to load your bookings.",
	StatusCode: http.StatusInternalServerError,
}

var ErrCheckoutUnavailable = exception.ApplicationError{
	Message:    "Checkout is temporarily unavailable. Please try again.",
	StatusCode: http.StatusServiceUnavailable,
}
