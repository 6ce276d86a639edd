package phys2d

import "math"

// SaneMod returns a modulo b using floored division, so the result takes
// the sign of b: SaneMod(5, 4) == 1 and SaneMod(-6, 4) == 2.
func SaneMod(a, b float64) float64 {
	return a - math.Floor(a/b)*b
}

// WrapAngle maps an angle in radians into [0, 2π).
func WrapAngle(theta float64) float64 {
	return SaneMod(theta, 2*math.Pi)
}
