// Package phys2d provides a generic two-dimensional vector type.
//
// # Overview
//
// [Vec2] is parameterized over any integer or floating-point [Scalar].
// Operators behave exactly like the native arithmetic of the scalar type:
// integer division truncates, floating-point division follows IEEE-754,
// and integer overflow wraps while floating-point overflow goes to ±Inf.
// Geometric queries that are inherently real-valued ([Vec2.Magnitude],
// [Vec2.Angle], [Vec2.ToUnit], [Vec2.ProjectOnto]) always return float64
// results.
//
//	a := phys2d.New(3, 7)
//	a.Magnitude()               // 7.615773105863909
//	a.Div(2)                    // (1, 3)
//	phys2d.V2(5, 5).ProjectOnto(phys2d.V2(0, 1)) // (0, 5)
//
// # Capabilities
//
// Operations every Scalar supports are methods. Negation needs a signed
// scalar and is the package function [Neg], so it does not compile for
// unsigned vectors.
//
// # Ordering
//
// Equality and ordering are component-wise partial orders. A vector with
// a NaN component is never equal to anything and is incomparable under
// [Vec2.PartialCompare].
//
// # Conversions
//
// Widening to float64 is always explicit: [FromInt32] for the exact
// int32 case and [Vec2.Float64] for any scalar. [FromPoint26_6] and
// [Fixed26_6ToFloat] bridge to golang.org/x/image/math/fixed.
//
// # Coordinate System
//
// Angles are in radians, measured counter-clockwise from the positive X
// axis. [WrapAngle] maps them into [0, 2π).
package phys2d
