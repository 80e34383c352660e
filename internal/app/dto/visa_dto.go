package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/visa"
)

type VisaCheckRequest struct {
	Passport    string `json:"passport" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

func (v *VisaCheckRequest) Bind(r *http.Request) error {
	return v.Validate()
}

// Validate rejects unknown or identical country codes before the provider is called.
func (v *VisaCheckRequest) Validate() error {
	v.Passport = strings.ToUpper(strings.TrimSpace(v.Passport))
	v.Destination = strings.ToUpper(strings.TrimSpace(v.Destination))

	if v.Passport == "" || v.Destination == "" {
		return badRequest("Please select both passport and destination countries")
	}

	if err := ValidateSingleError(v); err != nil {
		return badRequest(err.Error())
	}

	if _, ok := visa.LookupCountry(v.Passport); !ok {
		return badRequest(fmt.Sprintf("unknown passport country %s", v.Passport))
	}

	if _, ok := visa.LookupCountry(v.Destination); !ok {
		return badRequest(fmt.Sprintf("unknown destination country %s", v.Destination))
	}

	if v.Passport == v.Destination {
		return badRequest("passport and destination countries must be different")
	}

	return nil
}

type CountryListResponse struct {
	Countries []visa.Country `json:"countries"`
}
