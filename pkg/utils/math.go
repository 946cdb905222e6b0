// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to the range [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sign returns -1 for negative x and 1 otherwise, so zero counts as positive.
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
