package geom

import (
	"math"
	"testing"
)

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"Crossing", Seg(V(0, 0), V(10, 10)), Seg(V(0, 10), V(10, 0)), true},
		{"Touching endpoint", Seg(V(0, 0), V(5, 5)), Seg(V(5, 5), V(10, 0)), true},
		{"Disjoint", Seg(V(0, 0), V(1, 1)), Seg(V(5, 0), V(6, -1)), false},
		{"Parallel", Seg(V(0, 0), V(10, 0)), Seg(V(0, 1), V(10, 1)), false},
		{"Collinear overlap", Seg(V(0, 0), V(10, 0)), Seg(V(5, 0), V(15, 0)), false},
		{"Degenerate point", Seg(V(3, 3), V(3, 3)), Seg(V(0, 0), V(10, 10)), false},
		{"Lines cross outside segments", Seg(V(0, 0), V(1, 0)), Seg(V(5, -1), V(5, 1)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentsIntersect(tt.a, tt.b); got != tt.want {
				t.Errorf("SegmentsIntersect(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := SegmentsIntersect(tt.b, tt.a); got != tt.want {
				t.Errorf("SegmentsIntersect reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentIntersectsRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name string
		s    Segment
		want bool
	}{
		{"Through the middle", Seg(V(0, 20), V(40, 20)), true},
		{"Ends inside", Seg(V(0, 20), V(20, 20)), true},
		{"Passes above", Seg(V(0, 5), V(40, 5)), false},
		{"Fully inside", Seg(V(15, 15), V(25, 25)), false},
		{"Diagonal clip of corner", Seg(V(0, 25), V(25, 0)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentIntersectsRect(tt.s, r); got != tt.want {
				t.Errorf("SegmentIntersectsRect(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestRectQueries(t *testing.T) {
	r := RectAt(V(50, 50), 20, 10)
	if r.X != 40 || r.Y != 45 {
		t.Fatalf("RectAt top-left = (%v, %v), want (40, 45)", r.X, r.Y)
	}
	if c := r.Center(); c != V(50, 50) {
		t.Errorf("Center = %v, want (50, 50)", c)
	}
	if !r.Contains(V(40, 45)) || r.Contains(V(60, 50)) {
		t.Errorf("Contains must include top-left and exclude right edge")
	}
	if !r.Overlaps(Rect{X: 55, Y: 50, W: 10, H: 10}) {
		t.Errorf("expected overlapping rects")
	}
	if r.Overlaps(Rect{X: 60, Y: 45, W: 10, H: 10}) {
		t.Errorf("rects sharing only an edge must not overlap")
	}
}

func TestVectorGuards(t *testing.T) {
	if n, ok := (Vec2{}).Normalize(); ok || !n.IsZero() {
		t.Errorf("Normalize of zero vector = %v, %v; want zero, false", n, ok)
	}
	if v := (Vec2{}).WithLen(5); !v.IsZero() {
		t.Errorf("WithLen of zero vector = %v, want zero", v)
	}
	v := V(30, 40).Limit(10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Errorf("Limit length = %v, want 10", v.Len())
	}
	if v := V(1, 1).Limit(10); v != V(1, 1) {
		t.Errorf("Limit must not grow short vectors, got %v", v)
	}
	f := FromAngle(math.Pi/2, 2)
	if math.Abs(f.X) > 1e-9 || math.Abs(f.Y-2) > 1e-9 {
		t.Errorf("FromAngle(pi/2, 2) = %v", f)
	}
}
