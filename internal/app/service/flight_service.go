package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/flight"
)

type FlightService struct {
	Gateway FlightGateway
}

func NewFlightService(gateway FlightGateway) *FlightService {
	return &FlightService{
		Gateway: gateway,
	}
}

// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Search GDS fares for a one-way, round-trip or multi-city trip
// @Param        request  body      dto.SearchCriteria  true  "Search Criteria"
// @Success      200      {object}  dto.SearchFlightResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *FlightService) SearchFlights(
	ctx context.Context,
	req dto.SearchCriteria,
) (dto.SearchFlightResponse, error) {
	startTime := time.Now()
	legs := req.SearchLegs()

	token, err := s.Gateway.Authenticate(ctx)
	if err != nil {
		slog.WarnContext(ctx, "flight search authentication failed", slog.Any("error", err))
		return dto.SearchFlightResponse{}, ErrFlightSearchFailed.WithCause(err)
	}

	// legs are searched one after another; the first failure discards everything
	var offers []dto.FareOffer

	for i, query := range legs {
		found, err := s.Gateway.SearchOffers(ctx, token, query)
		if err != nil {
			slog.WarnContext(ctx, "flight search failed",
				slog.Int("leg", i),
				slog.String("origin", query.Origin),
				slog.String("destination", query.Destination),
				slog.Any("error", err),
			)

			return dto.SearchFlightResponse{}, ErrFlightSearchFailed.WithCause(fmt.Errorf("leg %d: %w", i, err))
		}

		for _, offer := range found {
			offers = append(offers, toFareOffer(offer, i, req.FareClass, req.Adults))
		}
	}

	if len(offers) == 0 {
		return dto.SearchFlightResponse{}, ErrNoFlightsFound
	}

	offers = flight.SortOffers(offers, req.SortOption)

	slog.DebugContext(ctx, "flight search completed",
		slog.Int("legs", len(legs)),
		slog.Int("offers", len(offers)),
	)

	return dto.SearchFlightResponse{
		SearchCriteria: req,
		Metadata: dto.Metadata{
			TotalResults: len(offers),
			LegsSearched: len(legs),
			SearchTimeMs: int(time.Since(startTime).Milliseconds()),
		},
		Offers: offers,
	}, nil
}

// QuoteFare prices a base total in a fare class. Display only.
func (s *FlightService) QuoteFare(_ context.Context, req dto.FareQuoteRequest) (dto.FareQuoteResponse, error) {
	option := toFareOption(req.BasePrice, req.Currency, req.FareClass, req.Adults)

	return dto.FareQuoteResponse{
		FareClass:         req.FareClass,
		Adults:            req.Adults,
		Multiplier:        option.Multiplier,
		AdjustedPrice:     option.AdjustedPrice,
		PerPassengerPrice: option.PerPassengerPrice,
	}, nil
}
