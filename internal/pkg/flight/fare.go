package flight

import (
	"math/rand"
	"sync"
	"time"
)

const (
	FareClassEconomy        = "ECONOMY"
	FareClassPremiumEconomy = "PREMIUM_ECONOMY"
	FareClassBusiness       = "BUSINESS"
	FareClassFirst          = "FIRST"

	maxSeatsLeft = 9
)

// FareClasses in display order.
var FareClasses = []string{
	FareClassEconomy,
	FareClassPremiumEconomy,
	FareClassBusiness,
	FareClassFirst,
}

var multipliers = map[string]float64{
	FareClassEconomy:        1,
	FareClassPremiumEconomy: 1.5,
	FareClassBusiness:       2,
	FareClassFirst:          3,
}

var (
	seatRandMu sync.Mutex
	seatRand   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Multiplier returns the display multiplier for a fare class. Unknown classes price as economy.
func Multiplier(fareClass string) float64 {
	if m, ok := multipliers[fareClass]; ok {
		return m
	}

	return 1
}

// AdjustedPrice applies the fare-class multiplier to the GDS total. The result is
// display-only; the GDS prices the order itself at checkout.
func AdjustedPrice(base float64, fareClass string) float64 {
	return base * Multiplier(fareClass)
}

// PerPassenger splits an adjusted total across adults.
func PerPassenger(adjusted float64, adults int) float64 {
	if adults <= 0 {
		return adjusted
	}

	return adjusted / float64(adults)
}

// SeatsLeft returns a placeholder seat count in [1, 9]. It is not inventory.
func SeatsLeft() int {
	seatRandMu.Lock()
	defer seatRandMu.Unlock()

	return seatRand.Intn(maxSeatsLeft) + 1
}
