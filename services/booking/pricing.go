package booking

import "math"

// DiscountRate returns the tiered discount for a number of booked hours.
// Tier boundaries are strict greater-than: 3-4 hours earn 10%, 5+ earn 15%.
func DiscountRate(count int) float64 {
	switch {
	case count > 4:
		return 0.15
	case count > 2:
		return 0.10
	default:
		return 0
	}
}

// TotalPrice computes the discounted total for booking 'count' hours at the
// given hourly rate, rounded to the nearest whole currency unit. With no rate
// or no hours there is nothing to charge.
func TotalPrice(rate float64, count int) float64 {
	if rate <= 0 || count <= 0 {
		return 0
	}
	return math.Round(rate * float64(count) * (1 - DiscountRate(count)))
}
