package dto

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
)

type CheckoutState string

const (
	StateAwaitingContext           CheckoutState = "awaiting-context"
	StateCollectingTravelerDetails CheckoutState = "collecting-traveler-details"
	StateValidating                CheckoutState = "validating"
	StateConfirmingPrice           CheckoutState = "confirming-price"
	StateCreatingOrder             CheckoutState = "creating-order"
	StateBooked                    CheckoutState = "booked"
	StateFailed                    CheckoutState = "failed"
)

const (
	DeviceTypeMobile = "MOBILE"

	selectionIDParam = "selectionID"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

var ErrInvalidFlightData = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "Invalid flight data. Please go back and try again.",
}

// CheckoutSelectionRequest is the offer picked on the results list, handed to checkout.
type CheckoutSelectionRequest struct {
	Offer     gds.FlightOffer `json:"offer"`
	FareClass string          `json:"fare_class" validate:"required,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
	Adults    int             `json:"adults" validate:"required,min=1,max=4"`
	TripType  TripType        `json:"trip_type" validate:"required,oneof=one-way round-trip multi-city"`
}

func (c *CheckoutSelectionRequest) Bind(r *http.Request) error {
	if err := ValidateSingleError(c); err != nil {
		return badRequest(err.Error())
	}

	if c.Offer.ID == "" || len(c.Offer.Itineraries) == 0 || len(c.Offer.Itineraries[0].Segments) == 0 {
		return ErrInvalidFlightData
	}

	return nil
}

// CheckoutSelection is the navigation payload kept between the results list and checkout.
type CheckoutSelection struct {
	ID        string          `json:"id"`
	Offer     gds.FlightOffer `json:"offer"`
	FareClass string          `json:"fare_class"`
	Adults    int             `json:"adults"`
	TripType  TripType        `json:"trip_type"`
	CreatedAt time.Time       `json:"created_at"`
}

type CheckoutSelectionResponse struct {
	SelectionID  string        `json:"selection_id"`
	State        CheckoutState `json:"state"`
	FareClass    string        `json:"fare_class"`
	Adults       int           `json:"adults"`
	TripType     TripType      `json:"trip_type"`
	Offer        FareOffer     `json:"offer"`
	PriceSummary FareOption    `json:"price_summary"`
	Travelers    []Traveler    `json:"travelers"`
	ExpiresAt    time.Time     `json:"expires_at"`
}

type CheckoutSelectionLookup struct {
	SelectionID string `json:"-"`
}

func (c *CheckoutSelectionLookup) Bind(r *http.Request) error {
	c.SelectionID = chi.URLParam(r, selectionIDParam)

	return nil
}

type Phone struct {
	CountryCallingCode string `json:"country_calling_code"`
	Number             string `json:"number"`
	DeviceType         string `json:"device_type"`
}

type Traveler struct {
	ID          string `json:"id"`
	DateOfBirth string `json:"date_of_birth"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	Phone       Phone  `json:"phone"`
}

// NewTravelerTemplates returns one empty traveler per adult, numbered from 1.
func NewTravelerTemplates(adults int, countryCode string) []Traveler {
	travelers := make([]Traveler, adults)
	for i := range travelers {
		travelers[i] = Traveler{
			ID: fmt.Sprintf("%d", i+1),
			Phone: Phone{
				CountryCallingCode: countryCode,
				DeviceType:         DeviceTypeMobile,
			},
		}
	}

	return travelers
}

// Problems lists what is wrong with the traveler at the given 1-based position.
func (t Traveler) Problems(position int) []string {
	var problems []string

	if strings.TrimSpace(t.FirstName) == "" {
		problems = append(problems, fmt.Sprintf("First name is required for Traveler %d", position))
	}

	if strings.TrimSpace(t.LastName) == "" {
		problems = append(problems, fmt.Sprintf("Last name is required for Traveler %d", position))
	}

	if t.DateOfBirth == "" {
		problems = append(problems, fmt.Sprintf("Date of birth is required for Traveler %d", position))
	} else if _, err := time.Parse(DateLayout, t.DateOfBirth); err != nil {
		problems = append(problems, fmt.Sprintf("Date of birth must use the YYYY-MM-DD format for Traveler %d", position))
	}

	switch t.Gender {
	case "":
		problems = append(problems, fmt.Sprintf("Gender is required for Traveler %d", position))
	case "MALE", "FEMALE":
	default:
		problems = append(problems, fmt.Sprintf("Gender must be MALE or FEMALE for Traveler %d", position))
	}

	if !emailPattern.MatchString(t.Email) {
		problems = append(problems, fmt.Sprintf("A valid email is required for Traveler %d", position))
	}

	if !phonePattern.MatchString(t.Phone.Number) {
		problems = append(problems, fmt.Sprintf("A valid 10-digit phone number is required for Traveler %d", position))
	}

	return problems
}

// ToGDS converts the form traveler to the order-creation shape.
func (t Traveler) ToGDS(id string, countryCode string) gds.Traveler {
	if t.Phone.CountryCallingCode != "" {
		countryCode = t.Phone.CountryCallingCode
	}

	return gds.Traveler{
		ID:          id,
		DateOfBirth: t.DateOfBirth,
		Name: gds.Name{
			FirstName: strings.TrimSpace(t.FirstName),
			LastName:  strings.TrimSpace(t.LastName),
		},
		Gender: t.Gender,
		Contact: gds.Contact{
			EmailAddress: t.Email,
			Phones: []gds.Phone{{
				DeviceType:         DeviceTypeMobile,
				CountryCallingCode: countryCode,
				Number:             t.Phone.Number,
			}},
		},
	}
}

type BookingRequest struct {
	SelectionID string     `json:"-"`
	Travelers   []Traveler `json:"travelers"`
}

// Bind only reads the selection id; travelers are validated by the checkout flow so that
// every problem can be reported at once.
func (b *BookingRequest) Bind(r *http.Request) error {
	b.SelectionID = chi.URLParam(r, selectionIDParam)

	return nil
}

type BookingResponse struct {
	BookingID       string        `json:"booking_id"`
	State           CheckoutState `json:"state"`
	Email           string        `json:"email"`
	Message         string        `json:"message"`
	RedirectTo      string        `json:"redirect_to"`
	RedirectAfterMs int64         `json:"redirect_after_ms"`
}
