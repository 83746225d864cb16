package layertree

import "math"

// circleSegments is the number of edges used to approximate a circle outline.
const circleSegments = 32

// ClickTarget is precomputed hit-test geometry for a layer, in layer space.
// The outline is a polyline; when Closed is set it is also a filled region.
type ClickTarget struct {
	Outline     []Vec2
	Closed      bool
	StrokeWidth float64
}

// RectTarget returns a closed rectangular target with its top-left corner at
// (x, y).
func RectTarget(x, y, width, height float64) ClickTarget {
	return ClickTarget{
		Outline: []Vec2{{x, y}, {x + width, y}, {x + width, y + height}, {x, y + height}},
		Closed:  true,
	}
}

// CircleTarget returns a closed target approximating a circle.
func CircleTarget(cx, cy, radius float64) ClickTarget {
	pts := make([]Vec2, circleSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = Vec2{cx + cos*radius, cy + sin*radius}
	}
	return ClickTarget{Outline: pts, Closed: true}
}

// PolygonTarget returns a closed target with the given corners, in either
// winding order.
func PolygonTarget(points ...Vec2) ClickTarget {
	return ClickTarget{Outline: points, Closed: true}
}

// PathTarget returns an open polyline target. Only its stroke is clickable.
func PathTarget(strokeWidth float64, points ...Vec2) ClickTarget {
	return ClickTarget{Outline: points, StrokeWidth: strokeWidth}
}

// segments calls fn for every outline segment, including the closing segment
// of a closed outline. It stops early when fn returns true and reports
// whether it did.
func (c ClickTarget) segments(fn func(a, b Vec2) bool) bool {
	n := len(c.Outline)
	for i := 0; i+1 < n; i++ {
		if fn(c.Outline[i], c.Outline[i+1]) {
			return true
		}
	}
	if c.Closed && n > 2 {
		return fn(c.Outline[n-1], c.Outline[0])
	}
	return false
}

// IntersectRectangle reports whether the target, placed in document space by
// layerTransform, touches documentQuad. A target with a singular transform
// never intersects.
func (c ClickTarget) IntersectRectangle(documentQuad Quad, layerTransform Affine) bool {
	if len(c.Outline) == 0 || !layerTransform.IsInvertible() {
		return false
	}
	quad := layerTransform.Inverse().ApplyQuad(documentQuad)

	// Outline crosses the quad.
	edges := quad.Edges()
	crossed := c.segments(func(a, b Vec2) bool {
		for _, e := range edges {
			if segmentsIntersect(a, b, e[0], e[1]) {
				return true
			}
		}
		return false
	})
	if crossed {
		return true
	}

	// Quad lies entirely inside the shape.
	if c.Closed && polygonContains(c.Outline, quad.Center()) {
		return true
	}

	// Shape lies entirely inside the quad.
	return quad.Contains(c.Outline[0])
}

// IntersectPoint reports whether the document-space point hits the target,
// accounting for stroke width. Points on the outline always hit.
func (c ClickTarget) IntersectPoint(point Vec2, layerTransform Affine) bool {
	if len(c.Outline) == 0 || !layerTransform.IsInvertible() {
		return false
	}
	local := layerTransform.Inverse().Apply(point)
	onOutline := c.segments(func(a, b Vec2) bool {
		return pointOnSegment(local, a, b)
	})
	if onOutline {
		return true
	}
	half := Vec2{c.StrokeWidth / 2, c.StrokeWidth / 2}
	inflated := QuadFromBox(Bounds{Min: point.Sub(half), Max: point.Add(half)})
	return c.IntersectRectangle(inflated, layerTransform)
}

// BoundingBoxWithTransform returns the axis-aligned bounds of the outline
// after applying transform. It reports false for an empty outline.
func (c ClickTarget) BoundingBoxWithTransform(transform Affine) (Bounds, bool) {
	if len(c.Outline) == 0 {
		return Bounds{}, false
	}
	p := transform.Apply(c.Outline[0])
	b := Bounds{Min: p, Max: p}
	for _, pt := range c.Outline[1:] {
		p = transform.Apply(pt)
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b, true
}
