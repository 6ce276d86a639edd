package phys2d

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the component types a Vec2 can hold.
//
// Every Scalar supports +, -, *, / and ordering natively and converts to
// float64, so the vector operations built on those are methods on Vec2.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed is the subset of Scalar that supports unary negation with a
// meaningful result. Unsigned integers are excluded.
type Signed interface {
	constraints.Signed | constraints.Float
}
