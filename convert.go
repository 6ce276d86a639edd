package phys2d

// FromInt32 widens an int32 vector to float64. Every int32 is exactly
// representable as a float64, so the conversion is lossless.
func FromInt32(v Vec2[int32]) Vec2[float64] {
	return Vec2[float64]{X: float64(v.X), Y: float64(v.Y)}
}

// Float64 converts each component to float64 with a native conversion.
// Integers wider than 53 bits may round.
func (v Vec2[T]) Float64() Vec2[float64] {
	return Vec2[float64]{X: float64(v.X), Y: float64(v.Y)}
}
