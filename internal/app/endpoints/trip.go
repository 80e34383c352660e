package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type TripService interface {
	PlanTrip(ctx context.Context, req dto.TripPlanRequest) (dto.TripPlanResponse, error)
}

type TripEndpoint struct {
	PlanTrip endpoint.Endpoint
}

func MakeTripEndpoint(service TripService) TripEndpoint {
	return TripEndpoint{
		PlanTrip: makePlanTripEndpoint(service),
	}
}

func makePlanTripEndpoint(service TripService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TripPlanRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		plan, err := service.PlanTrip(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return plan, nil
	}
}
