// internal/utils/math.go
package utils

// Lerp performs linear interpolation between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
