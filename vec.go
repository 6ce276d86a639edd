package phys2d

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Vec2 represents a point or displacement in a 2D integer or real plane.
// The two components are independent values of T; there is no implied
// unit length or sign.
type Vec2[T Scalar] struct {
	X, Y T
}

// New creates a Vec2 from its components.
func New[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// V2 is a convenience function to create a float64 Vec2.
func V2(x, y float64) Vec2[float64] {
	return Vec2[float64]{X: x, Y: y}
}

// XY returns both components.
func (v Vec2[T]) XY() (x, y T) {
	return v.X, v.Y
}

// Add returns the sum of two vectors.
// Overflow follows the native arithmetic of T.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
//
// Division is the native division of T: it truncates toward zero for
// integers and panics on an integer zero divisor, while floating-point
// division by zero yields ±Inf or NaN.
func (v Vec2[T]) Div(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// AddAssign adds w to v in place.
func (v *Vec2[T]) AddAssign(w Vec2[T]) {
	v.X += w.X
	v.Y += w.Y
}

// SubAssign subtracts w from v in place.
func (v *Vec2[T]) SubAssign(w Vec2[T]) {
	v.X -= w.X
	v.Y -= w.Y
}

// MulAssign scales v by s in place.
func (v *Vec2[T]) MulAssign(s T) {
	v.X *= s
	v.Y *= s
}

// DivAssign divides v by s in place, with the same semantics as Div.
func (v *Vec2[T]) DivAssign(s T) {
	v.X /= s
	v.Y /= s
}

// Neg returns the negation of v. It is only defined for signed scalars.
func Neg[T Signed](v Vec2[T]) Vec2[T] {
	return Vec2[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors in their own scalar type.
func Dot[T Scalar](a, b Vec2[T]) T {
	return a.X*b.X + a.Y*b.Y
}

// Dot returns the dot product of v and w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return Dot(v, w)
}

// MagnitudeSquared returns x*x + y*y computed in T.
func (v Vec2[T]) MagnitudeSquared() T {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns the Euclidean length of the vector.
//
// The squared norm is formed in T before the conversion to float64, so a
// narrow integer type can overflow before the square root is taken.
func (v Vec2[T]) Magnitude() float64 {
	return math.Sqrt(float64(v.MagnitudeSquared()))
}

// Angle returns the angle of the vector in radians, in (-π, π].
func (v Vec2[T]) Angle() float64 {
	return math.Atan2(float64(v.Y), float64(v.X))
}

// ToUnit returns the float64 unit vector with the same direction as v.
// The result is not guarded: the zero vector yields NaN components, and
// a debug record is emitted when debug logging is enabled.
func (v Vec2[T]) ToUnit() Vec2[float64] {
	mag := v.Magnitude()
	if mag == 0 {
		if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
			l.Debug("phys2d: normalizing zero-length vector", "vec", v)
		}
	}
	f := v.Float64()
	return Vec2[float64]{X: f.X / mag, Y: f.Y / mag}
}

// ProjectOnto returns the vector projection of v onto the direction of b.
// The computation is done in float64 regardless of T. Projecting onto
// the zero vector yields NaN components.
func (v Vec2[T]) ProjectOnto(b Vec2[T]) Vec2[float64] {
	unitB := b.ToUnit()
	return unitB.Mul(Dot(v.Float64(), unitB))
}

// Projection returns the vector projection of a onto b.
// It is the function form of a.ProjectOnto(b).
func Projection[T Scalar](a, b Vec2[T]) Vec2[float64] {
	return a.ProjectOnto(b)
}

// Abs is reserved for a per-component absolute value and is not
// implemented. It always panics with an error wrapping ErrNotImplemented.
func (v Vec2[T]) Abs() Vec2[T] {
	panic(fmt.Errorf("phys2d: Vec2.Abs: %w", ErrNotImplemented))
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// String formats the vector as "(x, y)".
func (v Vec2[T]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
