package dto

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

const bookingIDParam = "bookingID"

var ErrInvalidBookingID = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "Invalid booking ID.",
}

// BookingRecord points at an order held by the GDS. It carries no booking data of its own.
type BookingRecord struct {
	BookingID string `json:"bookingId" bson:"bookingId"`
	Email     string `json:"email" bson:"email"`
}

type BookingListResponse struct {
	Bookings []BookingRecord `json:"bookings"`
	Total    int             `json:"total"`
}

type BookingLookup struct {
	BookingID string `json:"-"`
}

func (b *BookingLookup) Bind(r *http.Request) error {
	b.BookingID = strings.TrimSpace(chi.URLParam(r, bookingIDParam))
	if b.BookingID == "" {
		return ErrInvalidBookingID
	}

	return nil
}

type BookingTraveler struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type BookedOffer struct {
	Itineraries []Itinerary `json:"itineraries"`
	TotalPrice  Price       `json:"total_price"`
}

// BookingDetail is an order as re-fetched from the GDS.
type BookingDetail struct {
	BookingID string            `json:"booking_id"`
	Travelers []BookingTraveler `json:"travelers"`
	Offers    []BookedOffer     `json:"offers"`
}
