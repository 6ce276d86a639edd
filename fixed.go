package phys2d

import "golang.org/x/image/math/fixed"

// fixedOne is 1.0 in 26.6 fixed point.
const fixedOne = 64

// FromPoint26_6 wraps a 26.6 fixed-point point as a Vec2.
// Arithmetic on the result operates on the raw 26.6 values: Add and Sub
// stay in 26.6 units, while Mul and Div treat the scalar as a raw integer.
func FromPoint26_6(p fixed.Point26_6) Vec2[fixed.Int26_6] {
	return Vec2[fixed.Int26_6]{X: p.X, Y: p.Y}
}

// ToPoint26_6 converts a fixed-point vector back to a fixed.Point26_6.
func ToPoint26_6(v Vec2[fixed.Int26_6]) fixed.Point26_6 {
	return fixed.Point26_6{X: v.X, Y: v.Y}
}

// Fixed26_6ToFloat converts a 26.6 fixed-point vector to float64 units.
func Fixed26_6ToFloat(v Vec2[fixed.Int26_6]) Vec2[float64] {
	return Vec2[float64]{X: float64(v.X) / fixedOne, Y: float64(v.Y) / fixedOne}
}

// FloatToFixed26_6 converts a float64 vector to 26.6 fixed point,
// truncating toward zero. Components must be finite and fit in 26.6
// (magnitude below 2^25); NaN, ±Inf and out-of-range values convert to
// an implementation-defined Int26_6.
func FloatToFixed26_6(v Vec2[float64]) Vec2[fixed.Int26_6] {
	return Vec2[fixed.Int26_6]{X: fixed.Int26_6(v.X * fixedOne), Y: fixed.Int26_6(v.Y * fixedOne)}
}
