package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type FlightService interface {
	SearchFlights(ctx context.Context, req dto.SearchCriteria) (dto.SearchFlightResponse, error)
	QuoteFare(ctx context.Context, req dto.FareQuoteRequest) (dto.FareQuoteResponse, error)
}

type FlightEndpoint struct {
	SearchFlights endpoint.Endpoint
	QuoteFare     endpoint.Endpoint
}

func MakeFlightEndpoint(service FlightService) FlightEndpoint {
	return FlightEndpoint{
		SearchFlights: makeSearchFlightsEndpoint(service),
		QuoteFare:     makeQuoteFareEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchCriteria)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		flights, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return flights, nil
	}
}

func makeQuoteFareEndpoint(service FlightService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FareQuoteRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		quote, err := service.QuoteFare(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("flight service: %w", err)
		}

		return quote, nil
	}
}
