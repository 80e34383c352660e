package dto

import (
	"net/http"
	"strings"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
)

// TripTypes and RequirementOptions are the choices offered by the trip-planning form.
var TripTypes = []string{
	"Honeymoon",
	"Family",
	"Adventure",
	"Luxury",
	"Business",
	"Solo Travel",
	"Group Tour",
	"Pilgrimage",
}

var RequirementOptions = []string{
	"Flights",
	"Hotel",
	"Land Package",
	"Visa",
	"Insurance",
}

// TripPlanRequest is a lead captured by the trip-planning form. Only the contact
// fields are required.
type TripPlanRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone"`
	Destination  string   `json:"destination,omitempty"`
	TravelDates  string   `json:"travel_dates,omitempty"`
	Adults       *int     `json:"adults,omitempty" validate:"omitempty,min=1"`
	Children     *int     `json:"children,omitempty" validate:"omitempty,min=0"`
	Budget       *int64   `json:"budget,omitempty" validate:"omitempty,gte=0"`
	TripType     string   `json:"trip_type,omitempty" validate:"omitempty,trip_type"`
	Requirements []string `json:"requirements,omitempty" validate:"omitempty,dive,trip_requirement"`
	Notes        string   `json:"notes,omitempty"`
}

func (t *TripPlanRequest) Bind(r *http.Request) error {
	return t.Validate()
}

func (t *TripPlanRequest) Validate() error {
	t.Name = strings.TrimSpace(t.Name)
	t.Email = strings.TrimSpace(t.Email)
	t.Phone = strings.TrimSpace(t.Phone)

	if len([]rune(t.Name)) < 2 {
		return badRequest("Name must be at least 2 characters")
	}

	if t.Email == "" || Validate.Var(t.Email, "email") != nil {
		return badRequest("Please enter a valid email")
	}

	if len(utils.DigitsOnly(t.Phone)) < 10 {
		return badRequest("Please enter a valid phone number")
	}

	if err := ValidateSingleError(t); err != nil {
		return badRequest(err.Error())
	}

	return nil
}

type TripPlanResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
