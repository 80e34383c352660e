package service

import (
	"context"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

type AirportService struct {
	Catalogue AirportCatalogue
}

func NewAirportService(catalogue AirportCatalogue) *AirportService {
	return &AirportService{
		Catalogue: catalogue,
	}
}

// SearchAirports godoc
// @Summary      Search airports by code, city or name
// @Tags         Airports
// @Param        q    query     string  false  "Search text"
// @Success      200  {object}  dto.AirportListResponse
// @Router       /api/v1/airports [get]
func (s *AirportService) SearchAirports(_ context.Context, req dto.AirportSearchRequest) (dto.AirportListResponse, error) {
	return dto.AirportListResponse{Airports: s.Catalogue.Search(req.Query)}, nil
}
