package phys2d

import "testing"

var (
	sinkVec   Vec2[float64]
	sinkInt   Vec2[int]
	sinkFloat float64
)

func BenchmarkVec2_AddInt(b *testing.B) {
	v, w := New(3, 7), New(-2, 5)
	b.ReportAllocs()
	for b.Loop() {
		sinkInt = v.Add(w)
	}
}

func BenchmarkVec2_Magnitude(b *testing.B) {
	v := New(3, 7)
	b.ReportAllocs()
	for b.Loop() {
		sinkFloat = v.Magnitude()
	}
}

func BenchmarkVec2_ToUnit(b *testing.B) {
	v := New(3, 7)
	b.ReportAllocs()
	for b.Loop() {
		sinkVec = v.ToUnit()
	}
}

func BenchmarkVec2_ProjectOnto(b *testing.B) {
	v, w := New(5, 5), New(1, 2)
	b.ReportAllocs()
	for b.Loop() {
		sinkVec = v.ProjectOnto(w)
	}
}
