package service

import (
	"fmt"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/gds"
	"github.com/ijalalfrz/travel-booking-service/internal/pkg/utils"
)

const defaultCurrency = "INR"

var airlineNames = map[string]string{
	"AI": "Air India",
	"UK": "Vistara",
	"6E": "IndiGo",
	"SG": "SpiceJet",
	"G8": "GoAir",
}

func airlineOf(code string) dto.Airline {
	name, ok := airlineNames[code]
	if !ok {
		name = code
	}

	return dto.Airline{Name: name, Code: code}
}

func stopsLabel(stops int) string {
	switch {
	case stops <= 0:
		return "Non-stop"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

func toDuration(iso string) dto.Duration {
	minutes, _ := utils.ParseISODuration(iso)

	return dto.Duration{
		TotalMinutes: int(minutes),
		Formatted:    utils.FormatISODuration(iso),
	}
}

func baggageLabel(bags *gds.CheckedBags) string {
	switch {
	case bags == nil:
		return "0 kg"
	case bags.Weight > 0:
		return fmt.Sprintf("%d kg", bags.Weight)
	case bags.Quantity == 1:
		return "1 piece"
	case bags.Quantity > 1:
		return fmt.Sprintf("%d pieces", bags.Quantity)
	default:
		return "0 kg"
	}
}

// fareDetails indexes the first traveler's fare details by segment id.
func fareDetails(offer gds.FlightOffer) map[string]gds.FareDetail {
	details := make(map[string]gds.FareDetail)
	if len(offer.TravelerPricings) == 0 {
		return details
	}

	for _, d := range offer.TravelerPricings[0].FareDetailsBySegment {
		details[d.SegmentID] = d
	}

	return details
}

func toItineraries(offer gds.FlightOffer) []dto.Itinerary {
	details := fareDetails(offer)

	itineraries := make([]dto.Itinerary, 0, len(offer.Itineraries))
	for i, it := range offer.Itineraries {
		direction := "outbound"
		if i == 1 {
			direction = "return"
		}

		segments := make([]dto.Segment, 0, len(it.Segments))
		for _, seg := range it.Segments {
			detail := details[seg.ID]

			segments = append(segments, dto.Segment{
				Airline:      airlineOf(seg.CarrierCode),
				FlightNumber: seg.CarrierCode + " " + seg.Number,
				Departure: dto.FlightPoint{
					Airport:  seg.Departure.IATACode,
					Terminal: seg.Departure.Terminal,
					Datetime: seg.Departure.At,
				},
				Arrival: dto.FlightPoint{
					Airport:  seg.Arrival.IATACode,
					Terminal: seg.Arrival.Terminal,
					Datetime: seg.Arrival.At,
				},
				Duration: toDuration(seg.Duration),
				Cabin:    detail.Cabin,
				Baggage:  baggageLabel(detail.IncludedCheckedBags),
			})
		}

		itineraries = append(itineraries, dto.Itinerary{
			Direction:  direction,
			Duration:   toDuration(it.Duration),
			Stops:      len(it.Segments) - 1,
			StopsLabel: stopsLabel(len(it.Segments) - 1),
			Segments:   segments,
		})
	}

	return itineraries
}

func offerCurrency(offer gds.FlightOffer) string {
	if offer.Price.Currency == "" {
		return defaultCurrency
	}

	return offer.Price.Currency
}

func toFareOption(base float64, currency, fareClass string, adults int) dto.FareOption {
	adjusted := flight.AdjustedPrice(base, fareClass)

	return dto.FareOption{
		FareClass:         fareClass,
		Multiplier:        flight.Multiplier(fareClass),
		AdjustedPrice:     dto.NewPrice(adjusted, currency),
		PerPassengerPrice: dto.NewPrice(flight.PerPassenger(adjusted, adults), currency),
	}
}

// toFareOptions prices the offer in every fare class with a seats-left placeholder.
func toFareOptions(base float64, currency string, adults int) []dto.FareOption {
	options := make([]dto.FareOption, 0, len(flight.FareClasses))
	for _, fareClass := range flight.FareClasses {
		option := toFareOption(base, currency, fareClass, adults)
		option.SeatsLeft = flight.SeatsLeft()
		option.SeatsLeftPlaceholder = true

		options = append(options, option)
	}

	return options
}

func toFareOffer(offer gds.FlightOffer, leg int, fareClass string, adults int) dto.FareOffer {
	var airline dto.Airline

	switch {
	case len(offer.Itineraries) > 0 && len(offer.Itineraries[0].Segments) > 0:
		airline = airlineOf(offer.Itineraries[0].Segments[0].CarrierCode)
	case len(offer.ValidatingAirlineCodes) > 0:
		airline = airlineOf(offer.ValidatingAirlineCodes[0])
	}

	base := offer.TotalPrice()
	currency := offerCurrency(offer)
	fares := toFareOptions(base, currency, adults)

	selected := toFareOption(base, currency, fareClass, adults)
	for _, f := range fares {
		if f.FareClass == fareClass {
			selected = f
		}
	}

	return dto.FareOffer{
		ID:           offer.ID,
		Leg:          leg,
		Airline:      airline,
		Itineraries:  toItineraries(offer),
		BasePrice:    dto.NewPrice(base, currency),
		SelectedFare: selected,
		Fares:        fares,
		GDSOffer:     offer,
	}
}
