package helpers

import "math"

// Percentage computes part/total*100 rounded to one decimal place.
// A zero total yields 0 rather than a division fault; aggregations over
// empty scopes rely on this.
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
