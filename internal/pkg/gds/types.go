package gds

import (
	"encoding/json"
	"strconv"
)

// FlightOffer is a priced flight option as returned by the fare-search endpoint.
// The original payload is kept so that the offer can be sent back to the pricing and
// order endpoints exactly as it was received.
type FlightOffer struct {
	Type                   string            `json:"type,omitempty"`
	ID                     string            `json:"id"`
	Source                 string            `json:"source,omitempty"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes,omitempty"`
	Itineraries            []Itinerary       `json:"itineraries"`
	Price                  Price             `json:"price"`
	TravelerPricings       []TravelerPricing `json:"travelerPricings,omitempty"`

	raw json.RawMessage
}

type flightOfferFields FlightOffer

func (o *FlightOffer) UnmarshalJSON(data []byte) error {
	var fields flightOfferFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*o = FlightOffer(fields)
	o.raw = append(json.RawMessage(nil), data...)

	return nil
}

func (o FlightOffer) MarshalJSON() ([]byte, error) {
	if len(o.raw) > 0 {
		return o.raw, nil
	}

	return json.Marshal(flightOfferFields(o))
}

// Raw returns the payload the offer was decoded from, nil for offers built in code.
func (o FlightOffer) Raw() json.RawMessage {
	return o.raw
}

// TotalPrice parses the decimal string total. Malformed totals yield 0.
func (o FlightOffer) TotalPrice() float64 {
	total, err := strconv.ParseFloat(o.Price.Total, 64)
	if err != nil {
		return 0
	}

	return total
}

type Itinerary struct {
	Duration string    `json:"duration,omitempty"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	ID            string         `json:"id,omitempty"`
	CarrierCode   string         `json:"carrierCode"`
	Number        string         `json:"number"`
	Departure     FlightEndpoint `json:"departure"`
	Arrival       FlightEndpoint `json:"arrival"`
	Duration      string         `json:"duration,omitempty"`
	NumberOfStops int            `json:"numberOfStops,omitempty"`
}

type FlightEndpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base,omitempty"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

type TravelerPricing struct {
	TravelerID           string       `json:"travelerId,omitempty"`
	FareOption           string       `json:"fareOption,omitempty"`
	TravelerType         string       `json:"travelerType,omitempty"`
	FareDetailsBySegment []FareDetail `json:"fareDetailsBySegment"`
}

type FareDetail struct {
	SegmentID           string       `json:"segmentId,omitempty"`
	Cabin               string       `json:"cabin,omitempty"`
	IncludedCheckedBags *CheckedBags `json:"includedCheckedBags,omitempty"`
}

type CheckedBags struct {
	Quantity   int    `json:"quantity,omitempty"`
	Weight     int    `json:"weight,omitempty"`
	WeightUnit string `json:"weightUnit,omitempty"`
}

// Traveler is the passenger record sent to order creation.
type Traveler struct {
	ID          string  `json:"id"`
	DateOfBirth string  `json:"dateOfBirth"`
	Name        Name    `json:"name"`
	Gender      string  `json:"gender"`
	Contact     Contact `json:"contact"`
}

type Name struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Contact struct {
	EmailAddress string  `json:"emailAddress"`
	Phones       []Phone `json:"phones,omitempty"`
}

type Phone struct {
	DeviceType         string `json:"deviceType"`
	CountryCallingCode string `json:"countryCallingCode"`
	Number             string `json:"number"`
}

// FlightOrder is a created or retrieved booking.
type FlightOrder struct {
	Type         string        `json:"type,omitempty"`
	ID           string        `json:"id"`
	FlightOffers []FlightOffer `json:"flightOffers"`
	Travelers    []Traveler    `json:"travelers"`
}

// SearchQuery holds the fare-search parameters of one origin/destination pair.
type SearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	TravelClass   string
	NonStop       bool
}

type searchResponse struct {
	Data []FlightOffer `json:"data"`
}

type pricingRequest struct {
	Data pricingRequestData `json:"data"`
}

type pricingRequestData struct {
	Type         string        `json:"type"`
	FlightOffers []FlightOffer `json:"flightOffers"`
}

type pricingResponse struct {
	Data struct {
		Type         string        `json:"type"`
		FlightOffers []FlightOffer `json:"flightOffers"`
	} `json:"data"`
}

type orderRequest struct {
	Data orderRequestData `json:"data"`
}

type orderRequestData struct {
	Type         string        `json:"type"`
	FlightOffers []FlightOffer `json:"flightOffers"`
	Travelers    []Traveler    `json:"travelers"`
}

type orderResponse struct {
	Data FlightOrder `json:"data"`
}

type errorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

type ErrorItem struct {
	Status int    `json:"status,omitempty"`
	Code   int    `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}
