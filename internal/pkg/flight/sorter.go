package flight

import (
	"sort"

	"github.com/ijalalfrz/travel-booking-service/internal/app/dto"
)

// SortOffers orders offers within each leg. Legs keep their search order and offers
// keep the GDS order when no sort option is given.
func SortOffers(offers []dto.FareOffer, sortOption *dto.SortOption) []dto.FareOffer {
	if sortOption == nil {
		return offers
	}

	desc := sortOption.Order == "desc"

	var less func(a, b dto.FareOffer) bool

	switch sortOption.Field {
	case "price":
		less = func(a, b dto.FareOffer) bool {
			return a.SelectedFare.AdjustedPrice.Amount < b.SelectedFare.AdjustedPrice.Amount
		}
	case "duration":
		less = func(a, b dto.FareOffer) bool {
			return totalMinutes(a) < totalMinutes(b)
		}
	case "departure_time":
		less = func(a, b dto.FareOffer) bool {
			return departureTime(a) < departureTime(b)
		}
	default:
		return offers
	}

	sort.SliceStable(offers, func(i, j int) bool {
		if offers[i].Leg != offers[j].Leg {
			return offers[i].Leg < offers[j].Leg
		}

		if desc {
			return less(offers[j], offers[i])
		}

		return less(offers[i], offers[j])
	})

	return offers
}

func totalMinutes(offer dto.FareOffer) int {
	total := 0
	for _, it := range offer.Itineraries {
		total += it.Duration.TotalMinutes
	}

	return total
}

// departureTime compares as a string; GDS timestamps are local ISO-8601 without offset.
func departureTime(offer dto.FareOffer) string {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return ""
	}

	return offer.Itineraries[0].Segments[0].Departure.Datetime
}
