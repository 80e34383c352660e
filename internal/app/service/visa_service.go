package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/visa"
)

type VisaService struct {
	Provider VisaProvider
}

func NewVisaService(provider VisaProvider) *VisaService {
	return &VisaService{
		Provider: provider,
	}
}

// ListCountries godoc
// @Summary      Supported visa countries
// @Tags         Visa
// @Success      200  {object}  dto.CountryListResponse
// @Router       /api/v1/visa/countries [get]
func (s *VisaService) ListCountries(_ context.Context) (dto.CountryListResponse, error) {
	return dto.CountryListResponse{Countries: visa.Countries()}, nil
}

// CheckRequirement godoc
// @Summary      Visa requirement for a passport and destination
// @Tags         Visa
// @Param        request  body      dto.VisaCheckRequest  true  "Countries"
// @Success      200      {object}  visa.Requirement
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Failure      502      {object}  dto.ErrorResponse
// @Router       /api/v1/visa/check [post]
func (s *VisaService) CheckRequirement(ctx context.Context, req dto.VisaCheckRequest) (visa.Requirement, error) {
	requirement, err := s.Provider.Check(ctx, req.Passport, req.Destination)
	if err != nil {
		slog.WarnContext(ctx, "visa check failed",
			slog.String("passport", req.Passport),
			slog.String("destination", req.Destination),
			slog.Any("error", err),
		)

		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return visa.Requirement{}, err
		}

		return visa.Requirement{}, visa.ErrInternal.WithCause(err)
	}

	return requirement, nil
}
