package layertree

import "math"

// Vec2 is a 2D point or vector. Y increases downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Min returns the component-wise minimum.
func (v Vec2) Min(o Vec2) Vec2 { return Vec2{math.Min(v.X, o.X), math.Min(v.Y, o.Y)} }

// Max returns the component-wise maximum.
func (v Vec2) Max(o Vec2) Vec2 { return Vec2{math.Max(v.X, o.X), math.Max(v.Y, o.Y)} }

// Bounds is an axis-aligned bounding box given by its minimum and maximum
// corners.
type Bounds struct {
	Min, Max Vec2
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Size returns the width and height of b.
func (b Bounds) Size() Vec2 {
	return b.Max.Sub(b.Min)
}

// Center returns the centre of b.
func (b Bounds) Center() Vec2 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Contains reports whether p lies inside b. Points on the edge are inside.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Intersects reports whether b and o overlap. Boxes sharing only an edge
// intersect.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}

// Nonzero returns b widened to at least one unit along any axis whose extent
// is (almost) zero.
func (b Bounds) Nonzero() Bounds {
	size := b.Size()
	if size.X < 1e-10 {
		b.Max.X = b.Min.X + 1
	}
	if size.Y < 1e-10 {
		b.Max.Y = b.Min.Y + 1
	}
	return b
}

// Quad is a quadrilateral, clockwise from the top-left corner: top-left,
// top-right, bottom-right, bottom-left. Quads keep their shape under rotation
// and skew, which is why hit testing maps quads rather than boxes between
// coordinate spaces.
type Quad [4]Vec2

// QuadFromBox converts a box to a quad.
func QuadFromBox(b Bounds) Quad {
	return Quad{b.Min, {b.Max.X, b.Min.Y}, b.Max, {b.Min.X, b.Max.Y}}
}

// QuadFromPoint returns a zero-sized quad at p.
func QuadFromPoint(p Vec2) Quad {
	return Quad{p, p, p, p}
}

// Center returns the average of the four corners.
func (q Quad) Center() Vec2 {
	return q[0].Add(q[1]).Add(q[2]).Add(q[3]).Scale(0.25)
}

// Edges returns the four edges in winding order.
func (q Quad) Edges() [4][2]Vec2 {
	return [4][2]Vec2{{q[0], q[1]}, {q[1], q[2]}, {q[2], q[3]}, {q[3], q[0]}}
}

// BoundingBox returns the axis-aligned box around q.
func (q Quad) BoundingBox() Bounds {
	b := Bounds{Min: q[0], Max: q[0]}
	for _, p := range q[1:] {
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Contains reports whether p lies inside q (even-odd rule).
func (q Quad) Contains(p Vec2) bool {
	return polygonContains(q[:], p)
}

// Intersects reports whether q and o overlap.
func (q Quad) Intersects(o Quad) bool {
	if q.Contains(o.Center()) || o.Contains(q.Center()) {
		return true
	}
	for _, e := range q.Edges() {
		for _, f := range o.Edges() {
			if segmentsIntersect(e[0], e[1], f[0], f[1]) {
				return true
			}
		}
	}
	return false
}

// polygonContains runs the even-odd crossing test over a closed polygon.
func polygonContains(points []Vec2, p Vec2) bool {
	inside := false
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// pointOnSegment reports whether p lies on segment ab, within a small
// tolerance scaled to the segment length.
func pointOnSegment(p, a, b Vec2) bool {
	const eps = 1e-9
	ab, ap := b.Sub(a), p.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return ap.X == 0 && ap.Y == 0
	}
	cross := ab.X*ap.Y - ab.Y*ap.X
	if math.Abs(cross) > eps*math.Max(1, lenSq) {
		return false
	}
	dot := ab.X*ap.X + ab.Y*ap.Y
	return dot >= -eps*lenSq && dot <= lenSq*(1+eps)
}

// segmentsIntersect reports whether segment ab crosses segment cd. Parallel
// segments never intersect.
func segmentsIntersect(a, b, c, d Vec2) bool {
	den := (a.X-b.X)*(c.Y-d.Y) - (a.Y-b.Y)*(c.X-d.X)
	if den == 0 {
		return false
	}
	t := ((a.X-c.X)*(c.Y-d.Y) - (a.Y-c.Y)*(c.X-d.X)) / den
	u := ((a.X-c.X)*(a.Y-b.Y) - (a.Y-c.Y)*(a.X-b.X)) / den
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
