package utils

import "math"

// RoundHalfUp arredonda meios sempre para cima, inclusive em negativos (-2.5 vira -2)
func RoundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

// Percentage retorna round(part/total*100), ou 0 quando total é zero
func Percentage(part, total float64) int {
	if total == 0 {
		return 0
	}

	return int(RoundHalfUp(part / total * 100))
}
