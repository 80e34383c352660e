package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/visa"
)

type VisaService interface {
	ListCountries(ctx context.Context) (dto.CountryListResponse, error)
	CheckRequirement(ctx context.Context, req dto.VisaCheckRequest) (visa.Requirement, error)
}

type VisaEndpoint struct {
	ListCountries    endpoint.Endpoint
	CheckRequirement endpoint.Endpoint
}

func MakeVisaEndpoint(service VisaService) VisaEndpoint {
	return VisaEndpoint{
		ListCountries:    makeListCountriesEndpoint(service),
		CheckRequirement: makeCheckRequirementEndpoint(service),
	}
}

func makeListCountriesEndpoint(service VisaService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		countries, err := service.ListCountries(ctx)
		if err != nil {
			return nil, fmt.Errorf("visa service: %w", err)
		}

		return countries, nil
	}
}

func makeCheckRequirementEndpoint(service VisaService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.VisaCheckRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		requirement, err := service.CheckRequirement(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("visa service: %w", err)
		}

		return requirement, nil
	}
}
