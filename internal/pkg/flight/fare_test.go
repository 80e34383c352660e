//go:build unit

package flight

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustedPrice_Closure(t *testing.T) {
	adjustedRequest := func(base float64, fareClass string, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.InDelta(t, want, AdjustedPrice(base, fareClass), 0.0001)
		}
	}

	t.Run("economy", adjustedRequest(25000, FareClassEconomy, 25000))
	t.Run("premium_economy", adjustedRequest(25000, FareClassPremiumEconomy, 37500))
	t.Run("business", adjustedRequest(25000, FareClassBusiness, 50000))
	t.Run("first", adjustedRequest(25000, FareClassFirst, 75000))
	t.Run("unknown_class_prices_as_economy", adjustedRequest(25000, "LUXURY", 25000))
}

func TestPerPassenger_Closure(t *testing.T) {
	perPassengerRequest := func(adjusted float64, adults int, want float64) func(t *testing.T) {
		return func(t *testing.T) {
			assert.InDelta(t, want, PerPassenger(adjusted, adults), 0.0001)
		}
	}

	t.Run("two_adults", perPassengerRequest(50000, 2, 25000))
	t.Run("one_adult", perPassengerRequest(50000, 1, 50000))
	t.Run("zero_adults_falls_back_to_total", perPassengerRequest(50000, 0, 50000))
	t.Run("negative_adults_falls_back_to_total", perPassengerRequest(50000, -1, 50000))
}

func TestSeatsLeft(t *testing.T) {
	for i := 0; i < 100; i++ {
		seats := SeatsLeft()
		assert.GreaterOrEqual(t, seats, 1)
		assert.LessOrEqual(t, seats, maxSeatsLeft)
	}
}
