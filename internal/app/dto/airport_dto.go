package dto

import (
	"net/http"
	"strings"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/airport"
)

type AirportSearchRequest struct {
	Query string `json:"-"`
}

func (a *AirportSearchRequest) Bind(r *http.Request) error {
	a.Query = strings.TrimSpace(r.URL.Query().Get("q"))

	return nil
}

type AirportListResponse struct {
	Airports []airport.Airport `json:"airports"`
}
