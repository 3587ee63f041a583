package vector_math

import "math"

// Epsilon is the tolerance used for degenerate-case detection (zero axes,
// nearly parallel quaternions) and approximate comparisons.
const Epsilon = 0.00001

// ToRad is a helper function to turn degree to radians
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDeg is a helper function to turn radians to degree
func ToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Lerp blends linearly from -> to by the given amount.
func Lerp(from float32, to float32, by float32) float32 {
	return from*(1-by) + to*by
}

func clamp(v float64, min float64, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}

func f64(v float32) float64 {
	return float64(v)
}
