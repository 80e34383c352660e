package service

import (
	"context"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/airport"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/mailer"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/visa"
)

// FlightGateway is the GDS as seen by the services. Callers authenticate explicitly
// and pass the token to every call of the same flow.
type FlightGateway interface {
	Authenticate(ctx context.Context) (string, error)
	SearchOffers(ctx context.Context, token string, query gds.SearchQuery) ([]gds.FlightOffer, error)
	ConfirmPrice(ctx context.Context, token string, offer gds.FlightOffer) (gds.FlightOffer, error)
	CreateOrder(ctx context.Context, token string, offer gds.FlightOffer, travelers []gds.Traveler) (gds.FlightOrder, error)
	GetOrder(ctx context.Context, token string, orderID string) (gds.FlightOrder, error)
}

type SelectionStore interface {
	SaveSelection(ctx context.Context, selection dto.CheckoutSelection, expiration time.Duration) error
	GetSelection(ctx context.Context, id string) (dto.CheckoutSelection, error)
	AcquireLock(ctx context.Context, id string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, id string) error
}

type BookingStore interface {
	Append(ctx context.Context, record dto.BookingRecord) error
	GetAll(ctx context.Context) ([]dto.BookingRecord, error)
}

type Mailer interface {
	Send(ctx context.Context, email mailer.Email) error
}

type VisaProvider interface {
	Check(ctx context.Context, passport, destination string) (visa.Requirement, error)
}

type AirportCatalogue interface {
	Search(query string) []airport.Airport
}
