package phys2d

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestFromPoint26_6(t *testing.T) {
	p := fixed.P(1, 2)
	v := FromPoint26_6(p)
	if v.X != 64 || v.Y != 128 {
		t.Errorf("FromPoint26_6(%v) = %v, want (64, 128)", p, v)
	}
	if back := ToPoint26_6(v); back != p {
		t.Errorf("ToPoint26_6(%v) = %v, want %v", v, back, p)
	}
}

func TestFixed26_6Arithmetic(t *testing.T) {
	a := FromPoint26_6(fixed.P(1, 2))
	b := FromPoint26_6(fixed.Point26_6{X: 32, Y: -16})

	if got := Fixed26_6ToFloat(a.Add(b)); got != V2(1.5, 1.75) {
		t.Errorf("a+b = %v, want (1.5, 1.75)", got)
	}
	if got := Fixed26_6ToFloat(Neg(a)); got != V2(-1, -2) {
		t.Errorf("Neg(a) = %v, want (-1, -2)", got)
	}
	if got := Fixed26_6ToFloat(a.Div(2)); got != V2(0.5, 1) {
		t.Errorf("a/2 = %v, want (0.5, 1)", got)
	}
}

func TestFloatToFixed26_6(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2[float64]
		expect Vec2[fixed.Int26_6]
	}{
		{"whole", V2(1, -2), New[fixed.Int26_6](64, -128)},
		{"fractions", V2(1.5, -0.25), New[fixed.Int26_6](96, -16)},
		{"truncates", V2(0.01, -0.01), New[fixed.Int26_6](0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FloatToFixed26_6(tt.v); got != tt.expect {
				t.Errorf("FloatToFixed26_6(%v) = %v, want %v", tt.v, got, tt.expect)
			}
		})
	}

	if got := Fixed26_6ToFloat(FloatToFixed26_6(V2(3.125, -7.5))); got != V2(3.125, -7.5) {
		t.Errorf("round trip = %v, want (3.125, -7.5)", got)
	}
}

func TestFloatToFixed26_6Range(t *testing.T) {
	// The extremes of 26.6 are -2^25 and 2^25 - 1/64.
	v := V2(-(1 << 25), (1<<25)-1.0/64)
	got := FloatToFixed26_6(v)
	want := New[fixed.Int26_6](math.MinInt32, math.MaxInt32)
	if got != want {
		t.Errorf("FloatToFixed26_6(%v) = %v, want %v", v, got, want)
	}
}
