package utils

import "math"

// RoundWithTwoDecimalPlace rounds monetary values for API responses. Stored
// metric rows keep full precision; only the read path rounds.
func RoundWithTwoDecimalPlace(f float64) float64 {
	return math.Round(f*100) / 100
}
