package dto

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
)

const DateLayout = "2006-01-02"

type TripType string

const (
	TripTypeOneWay    TripType = "one-way"
	TripTypeRoundTrip TripType = "round-trip"
	TripTypeMultiCity TripType = "multi-city"
)

var AllowedSortField = map[string]bool{
	"price":          true,
	"duration":       true,
	"departure_time": true,
}

// now is replaced in tests.
var now = time.Now

type Leg struct {
	Origin        string `json:"origin" validate:"required,len=3"`
	Destination   string `json:"destination" validate:"required,len=3"`
	DepartureDate string `json:"departure_date" validate:"required"`
}

type SearchCriteria struct {
	TripType      TripType    `json:"trip_type" validate:"required,oneof=one-way round-trip multi-city"`
	Origin        string      `json:"origin,omitempty" validate:"omitempty,len=3"`
	Destination   string      `json:"destination,omitempty" validate:"omitempty,len=3"`
	DepartureDate string      `json:"departure_date,omitempty"`
	ReturnDate    string      `json:"return_date,omitempty"`
	Legs          []Leg       `json:"legs,omitempty"`
	Adults        int         `json:"adults" validate:"required,min=1,max=4"`
	FareClass     string      `json:"fare_class" validate:"required,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
	SortOption    *SortOption `json:"sort_option,omitempty"`
}

type SortOption struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

func (s *SearchCriteria) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

// Validate checks the criteria before any call to the GDS is made.
func (s *SearchCriteria) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return badRequest(err.Error())
	}

	switch s.TripType {
	case TripTypeMultiCity:
		if len(s.Legs) == 0 {
			return badRequest("legs must contain at least one leg for a multi-city search")
		}

		for i, leg := range s.Legs {
			if leg.Origin == "" || leg.Destination == "" || leg.DepartureDate == "" {
				return badRequest(fmt.Sprintf("leg %d requires origin, destination and departure_date", i+1))
			}

			// legs are checked one by one so the message carries the leg number
			if err := ValidateSingleError(leg); err != nil {
				return badRequest(fmt.Sprintf("leg %d: %s", i+1, err.Error()))
			}

			if _, err := parseTravelDate(leg.DepartureDate); err != nil {
				return badRequest(fmt.Sprintf("leg %d: %s", i+1, err.Error()))
			}
		}
	default:
		if s.Origin == "" {
			return badRequest("origin is a required field")
		}

		if s.Destination == "" {
			return badRequest("destination is a required field")
		}

		if s.DepartureDate == "" {
			return badRequest("departure_date is a required field")
		}

		departure, err := parseTravelDate(s.DepartureDate)
		if err != nil {
			return badRequest(err.Error())
		}

		if s.TripType == TripTypeRoundTrip {
			if s.ReturnDate == "" {
				return badRequest("return_date is a required field for a round-trip search")
			}

			returnDate, err := time.Parse(DateLayout, s.ReturnDate)
			if err != nil {
				return badRequest(fmt.Sprintf("return_date must use the %s format", DateLayout))
			}

			if returnDate.Before(departure) {
				return badRequest("return_date cannot be earlier than departure_date")
			}
		}
	}

	if s.SortOption != nil && !AllowedSortField[s.SortOption.Field] {
		return badRequest(fmt.Sprintf("Invalid sort field %s", s.SortOption.Field))
	}

	return nil
}

// SearchLegs expands the criteria into the origin/destination pairs that are searched.
// One-way and round-trip searches have a single pair carrying the return date.
func (s *SearchCriteria) SearchLegs() []gds.SearchQuery {
	if s.TripType == TripTypeMultiCity {
		queries := make([]gds.SearchQuery, len(s.Legs))
		for i, leg := range s.Legs {
			queries[i] = gds.SearchQuery{
				Origin:        leg.Origin,
				Destination:   leg.Destination,
				DepartureDate: leg.DepartureDate,
				Adults:        s.Adults,
				TravelClass:   s.FareClass,
			}
		}

		return queries
	}

	query := gds.SearchQuery{
		Origin:        s.Origin,
		Destination:   s.Destination,
		DepartureDate: s.DepartureDate,
		Adults:        s.Adults,
		TravelClass:   s.FareClass,
	}

	if s.TripType == TripTypeRoundTrip {
		query.ReturnDate = s.ReturnDate
	}

	return []gds.SearchQuery{query}
}

func parseTravelDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("departure_date must use the %s format", DateLayout)
	}

	current := now()
	today := time.Date(current.Year(), current.Month(), current.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, fmt.Errorf("departure_date cannot be in the past")
	}

	return date, nil
}

func badRequest(message string) error {
	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

type Airline struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type FlightPoint struct {
	Airport  string `json:"airport"`
	Terminal string `json:"terminal,omitempty"`
	Datetime string `json:"datetime"`
}

type Segment struct {
	Airline      Airline     `json:"airline"`
	FlightNumber string      `json:"flight_number"`
	Departure    FlightPoint `json:"departure"`
	Arrival      FlightPoint `json:"arrival"`
	Duration     Duration    `json:"duration"`
	Cabin        string      `json:"cabin,omitempty"`
	Baggage      string      `json:"baggage,omitempty"`
}

type Itinerary struct {
	Direction  string    `json:"direction"`
	Duration   Duration  `json:"duration"`
	Stops      int       `json:"stops"`
	StopsLabel string    `json:"stops_label"`
	Segments   []Segment `json:"segments"`
}

// FareOption is the display price of an offer in one fare class.
// SeatsLeft is a generated placeholder, not inventory reported by the GDS.
type FareOption struct {
	FareClass            string  `json:"fare_class"`
	Multiplier           float64 `json:"multiplier"`
	AdjustedPrice        Price   `json:"adjusted_price"`
	PerPassengerPrice    Price   `json:"per_passenger_price"`
	SeatsLeft            int     `json:"seats_left"`
	SeatsLeftPlaceholder bool    `json:"seats_left_placeholder"`
}

type FareOffer struct {
	ID           string          `json:"id"`
	Leg          int             `json:"leg"`
	Airline      Airline         `json:"airline"`
	Itineraries  []Itinerary     `json:"itineraries"`
	BasePrice    Price           `json:"base_price"`
	SelectedFare FareOption      `json:"selected_fare"`
	Fares        []FareOption    `json:"fares"`
	GDSOffer     gds.FlightOffer `json:"gds_offer"`
}

type Metadata struct {
	TotalResults int `json:"total_results"`
	LegsSearched int `json:"legs_searched"`
	SearchTimeMs int `json:"search_time_ms"`
}

// SearchFlightResponse is the response struct for the search flight endpoint
type SearchFlightResponse struct {
	SearchCriteria SearchCriteria `json:"search_criteria"`
	Metadata       Metadata       `json:"metadata"`
	Offers         []FareOffer    `json:"offers"`
}

type FareQuoteRequest struct {
	BasePrice float64 `json:"base_price" validate:"required,gt=0"`
	Currency  string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	FareClass string  `json:"fare_class" validate:"required,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
	Adults    int     `json:"adults" validate:"gte=0,max=4"`
}

func (q *FareQuoteRequest) Bind(r *http.Request) error {
	if err := ValidateSingleError(q); err != nil {
		return badRequest(err.Error())
	}

	if q.Currency == "" {
		q.Currency = "INR"
	}

	return nil
}

type FareQuoteResponse struct {
	FareClass         string  `json:"fare_class"`
	Adults            int     `json:"adults"`
	Multiplier        float64 `json:"multiplier"`
	AdjustedPrice     Price   `json:"adjusted_price"`
	PerPassengerPrice Price   `json:"per_passenger_price"`
}
