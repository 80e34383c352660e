package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/logger"
)

// BookingService lists stored booking pointers and re-fetches orders from the GDS.
type BookingService struct {
	Gateway  FlightGateway
	Bookings BookingStore
}

func NewBookingService(gateway FlightGateway, bookings BookingStore) *BookingService {
	return &BookingService{
		Gateway:  gateway,
		Bookings: bookings,
	}
}

// ListBookings godoc
// @Summary      List stored bookings
// @Tags         Bookings
// @Success      200  {object}  dto.BookingListResponse
// @Router       /api/v1/bookings [get]
func (s *BookingService) ListBookings(ctx context.Context) (dto.BookingListResponse, error) {
	records, err := s.Bookings.GetAll(ctx)
	if err != nil {
		return dto.BookingListResponse{}, ErrBookingsUnavailable.WithCause(err)
	}

	if records == nil {
		records = []dto.BookingRecord{}
	}

	return dto.BookingListResponse{
		Bookings: records,
		Total:    len(records),
	}, nil
}

// GetBooking godoc
// @Summary      Booking details
// @Tags         Bookings
// @Param        bookingID  path      string  true  "GDS order id"
// @Success      200        {object}  dto.BookingDetail
// @Failure      502        {object}  dto.ErrorResponse
// @Router       /api/v1/bookings/{bookingID} [get]
func (s *BookingService) GetBooking(ctx context.Context, req dto.BookingLookup) (dto.BookingDetail, error) {
	ctx = logger.WithBookingID(ctx, req.BookingID)

	token, err := s.Gateway.Authenticate(ctx)
	if err != nil {
		slog.WarnContext(ctx, "booking lookup authentication failed", slog.Any("error", err))
		return dto.BookingDetail{}, ErrBookingLookupFailed.WithCause(err)
	}

	order, err := s.Gateway.GetOrder(ctx, token, req.BookingID)
	if err != nil {
		slog.WarnContext(ctx, "booking lookup failed", slog.Any("error", err))
		return dto.BookingDetail{}, lookupError(err)
	}

	return toBookingDetail(order), nil
}

// lookupError surfaces the GDS error detail when there is one.
func lookupError(err error) error {
	appErr := ErrBookingLookupFailed.WithCause(err)

	var apiErr *gds.APIError
	if !errors.As(err, &apiErr) {
		return appErr
	}

	if detail := apiErr.Detail(); detail != "" {
		appErr.Message = detail
	}

	if apiErr.StatusCode >= http.StatusBadRequest && apiErr.StatusCode < http.StatusInternalServerError {
		appErr.StatusCode = apiErr.StatusCode
	}

	return appErr
}

func toBookingDetail(order gds.FlightOrder) dto.BookingDetail {
	travelers := make([]dto.BookingTraveler, 0, len(order.Travelers))
	for _, t := range order.Travelers {
		travelers = append(travelers, dto.BookingTraveler{
			ID:        t.ID,
			FirstName: t.Name.FirstName,
			LastName:  t.Name.LastName,
			Email:     t.Contact.EmailAddress,
		})
	}

	offers := make([]dto.BookedOffer, 0, len(order.FlightOffers))
	for _, o := range order.FlightOffers {
		offers = append(offers, dto.BookedOffer{
			Itineraries: toItineraries(o),
			TotalPrice:  dto.NewPrice(o.TotalPrice(), offerCurrency(o)),
		})
	}

	return dto.BookingDetail{
		BookingID: order.ID,
		Travelers: travelers,
		Offers:    offers,
	}
}
