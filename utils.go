package meshsvg

import "math"

const (
	pi      = math.Pi
	epsilon = 1e-12
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b.
// NaN is clamped to a.
func Clamp(x, a, b float64) float64 {
	if x > b {
		return b
	}
	if !(x > a) {
		return a
	}
	return x
}
