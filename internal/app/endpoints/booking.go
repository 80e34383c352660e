package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type BookingService interface {
	ListBookings(ctx context.Context) (dto.BookingListResponse, error)
	GetBooking(ctx context.Context, req dto.BookingLookup) (dto.BookingDetail, error)
}

type BookingEndpoint struct {
	ListBookings endpoint.Endpoint
	GetBooking   endpoint.Endpoint
}

func MakeBookingEndpoint(service BookingService) BookingEndpoint {
	return BookingEndpoint{
		ListBookings: makeListBookingsEndpoint(service),
		GetBooking:   makeGetBookingEndpoint(service),
	}
}

func makeListBookingsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		bookings, err := service.ListBookings(ctx)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return bookings, nil
	}
}

func makeGetBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.BookingLookup)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		booking, err := service.GetBooking(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return booking, nil
	}
}
