package phys2d

// Equal reports whether both components of v and w are equal.
// Floating-point components follow IEEE-754, so a vector holding NaN is
// never equal to anything, itself included. This matches v == w.
func (v Vec2[T]) Equal(w Vec2[T]) bool {
	return v.X == w.X && v.Y == w.Y
}

// PartialCompare orders v and w lexicographically, X first, then Y.
//
// It returns -1, 0 or +1 with ok set to true when the vectors are
// comparable. When a component comparison involves NaN the vectors are
// incomparable and ok is false. Y is only consulted when the X
// components compare equal, so a NaN in Y does not matter if X already
// decides the order.
func (v Vec2[T]) PartialCompare(w Vec2[T]) (c int, ok bool) {
	if c, ok = partialCmp(v.X, w.X); !ok || c != 0 {
		return c, ok
	}
	return partialCmp(v.Y, w.Y)
}

// Less reports whether v orders strictly before w.
func (v Vec2[T]) Less(w Vec2[T]) bool {
	c, ok := v.PartialCompare(w)
	return ok && c < 0
}

// LessEqual reports whether v orders before or equal to w.
func (v Vec2[T]) LessEqual(w Vec2[T]) bool {
	c, ok := v.PartialCompare(w)
	return ok && c <= 0
}

// Greater reports whether v orders strictly after w.
func (v Vec2[T]) Greater(w Vec2[T]) bool {
	c, ok := v.PartialCompare(w)
	return ok && c > 0
}

// GreaterEqual reports whether v orders after or equal to w.
func (v Vec2[T]) GreaterEqual(w Vec2[T]) bool {
	c, ok := v.PartialCompare(w)
	return ok && c >= 0
}

// partialCmp compares two scalars without imposing a total order:
// NaN is incomparable to every value.
func partialCmp[T Scalar](a, b T) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}
