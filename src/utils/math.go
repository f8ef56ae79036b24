package utils

import "math"

func RoundToDecimals(f float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(f*pow) / pow
}

// RemoveDecimals truncates toward zero. Non finite input yields 0.
func RemoveDecimals(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int64(math.Trunc(f))
}
