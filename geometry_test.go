package layertree

import (
	"math"
	"testing"
)

func box(x0, y0, x1, y1 float64) Bounds {
	return Bounds{Min: Vec2{x0, y0}, Max: Vec2{x1, y1}}
}

func TestBoundsUnion(t *testing.T) {
	got := box(0, 0, 2, 2).Union(box(-1, 1, 1, 5))
	if got != box(-1, 0, 2, 5) {
		t.Errorf("Union = %v", got)
	}
}

func TestBoundsSizeCenter(t *testing.T) {
	b := box(2, 4, 6, 10)
	assertVec(t, "size", b.Size(), Vec2{4, 6})
	assertVec(t, "center", b.Center(), Vec2{4, 7})
}

func TestBoundsContainsIntersects(t *testing.T) {
	b := box(0, 0, 10, 10)
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{5, 5}, true},
		{Vec2{0, 10}, true},
		{Vec2{-0.1, 5}, false},
		{Vec2{5, 11}, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !b.Intersects(box(10, 10, 20, 20)) {
		t.Error("touching boxes should intersect")
	}
	if b.Intersects(box(11, 0, 20, 10)) {
		t.Error("separate boxes should not intersect")
	}
}

func TestBoundsNonzero(t *testing.T) {
	got := box(3, 3, 3, 8).Nonzero()
	if got != box(3, 3, 4, 8) {
		t.Errorf("Nonzero = %v", got)
	}
	got = Bounds{}.Nonzero()
	if got != box(0, 0, 1, 1) {
		t.Errorf("Nonzero(empty) = %v", got)
	}
	b := box(0, 0, 5, 5)
	if b.Nonzero() != b {
		t.Error("Nonzero should leave a real box alone")
	}
}

func TestQuadContains(t *testing.T) {
	// Diamond.
	q := Quad{{5, 0}, {10, 5}, {5, 10}, {0, 5}}
	if !q.Contains(Vec2{5, 5}) {
		t.Error("center should be inside")
	}
	if q.Contains(Vec2{1, 1}) {
		t.Error("corner of bounding box should be outside the diamond")
	}
	assertVec(t, "center", q.Center(), Vec2{5, 5})
	if q.BoundingBox() != box(0, 0, 10, 10) {
		t.Errorf("BoundingBox = %v", q.BoundingBox())
	}
}

func TestQuadIntersects(t *testing.T) {
	a := QuadFromBox(box(0, 0, 10, 10))
	tests := []struct {
		name string
		o    Quad
		want bool
	}{
		{"overlap", QuadFromBox(box(5, 5, 15, 15)), true},
		{"inside", QuadFromBox(box(2, 2, 3, 3)), true},
		{"around", QuadFromBox(box(-5, -5, 20, 20)), true},
		{"apart", QuadFromBox(box(20, 20, 30, 30)), false},
		{"rotated cross", Translate(5, 5).Mul(Rotate(math.Pi / 4)).ApplyQuad(QuadFromBox(box(-10, -1, 10, 1))), true},
	}
	for _, tt := range tests {
		if got := a.Intersects(tt.o); got != tt.want {
			t.Errorf("%s: Intersects = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSegmentsIntersect(t *testing.T) {
	if !segmentsIntersect(Vec2{0, 0}, Vec2{10, 10}, Vec2{0, 10}, Vec2{10, 0}) {
		t.Error("crossing diagonals should intersect")
	}
	if segmentsIntersect(Vec2{0, 0}, Vec2{10, 0}, Vec2{0, 1}, Vec2{10, 1}) {
		t.Error("parallel segments should not intersect")
	}
	if segmentsIntersect(Vec2{0, 0}, Vec2{1, 1}, Vec2{5, 0}, Vec2{0, 5}) {
		t.Error("segments that would only cross when extended should not intersect")
	}
	if !segmentsIntersect(Vec2{0, 0}, Vec2{10, 0}, Vec2{10, -5}, Vec2{10, 5}) {
		t.Error("touching endpoint should intersect")
	}
}

func TestPointOnSegment(t *testing.T) {
	tests := []struct {
		p    Vec2
		want bool
	}{
		{Vec2{5, 0}, true},
		{Vec2{0, 0}, true},
		{Vec2{10, 0}, true},
		{Vec2{5, 0.1}, false},
		{Vec2{11, 0}, false},
		{Vec2{-1, 0}, false},
	}
	for _, tt := range tests {
		if got := pointOnSegment(tt.p, Vec2{0, 0}, Vec2{10, 0}); got != tt.want {
			t.Errorf("pointOnSegment(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if !pointOnSegment(Vec2{2, 2}, Vec2{2, 2}, Vec2{2, 2}) {
		t.Error("a degenerate segment should contain its own point")
	}
	if pointOnSegment(Vec2{3, 2}, Vec2{2, 2}, Vec2{2, 2}) {
		t.Error("a degenerate segment should contain nothing else")
	}
}
