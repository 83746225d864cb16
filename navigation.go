package layertree

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Zoom limits applied by SetZoom, ZoomAt, FitBounds and ZoomTo.
const (
	DefaultMinZoom = 0.01
	DefaultMaxZoom = 256.0
)

// panAnim holds active pan tweens for the two axes.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Navigation tracks pan, zoom and tilt of a viewport and produces the
// document-to-viewport transform:
//
//	Translate(viewport centre) * Scale(Zoom) * Rotate(Tilt) * Translate(-Pan)
type Navigation struct {
	// Pan is the document-space point shown at the viewport centre.
	Pan Vec2
	// Zoom is the scale factor (1 = one document unit per pixel).
	Zoom float64
	// Tilt is the view rotation in radians.
	Tilt float64
	// Viewport is the viewport size in pixels.
	Viewport Vec2

	MinZoom, MaxZoom float64

	zoomTween *gween.Tween
	panTween  *panAnim
}

// NewNavigation returns an untilted navigation at zoom 1 centred on the
// document origin.
func NewNavigation(width, height float64) *Navigation {
	return &Navigation{
		Zoom:     1,
		Viewport: Vec2{width, height},
		MinZoom:  DefaultMinZoom,
		MaxZoom:  DefaultMaxZoom,
	}
}

// DocumentToViewport returns the current document-to-viewport transform.
func (n *Navigation) DocumentToViewport() Affine {
	return Translate(n.Viewport.X/2, n.Viewport.Y/2).
		Mul(n.linear()).
		Mul(Translate(-n.Pan.X, -n.Pan.Y))
}

// ViewportToDocument returns the inverse of DocumentToViewport.
func (n *Navigation) ViewportToDocument() Affine {
	return n.DocumentToViewport().Inverse()
}

// linear is the scale and rotation part of the view.
func (n *Navigation) linear() Affine {
	return Scale(n.Zoom, n.Zoom).Mul(Rotate(n.Tilt))
}

// Apply pushes the current transform into sg.
func (n *Navigation) Apply(sg *SceneGraph) {
	sg.SetDocumentToViewport(n.DocumentToViewport())
}

func (n *Navigation) clampZoom(z float64) float64 {
	return math.Max(n.MinZoom, math.Min(z, n.MaxZoom))
}

// SetZoom sets the zoom about the viewport centre, clamped to the limits.
func (n *Navigation) SetZoom(z float64) {
	n.Zoom = n.clampZoom(z)
}

// PanBy moves the document content by delta viewport pixels.
func (n *Navigation) PanBy(delta Vec2) {
	n.Pan = n.Pan.Sub(n.linear().Inverse().Apply(delta))
}

// ZoomAt multiplies the zoom by factor while keeping the document point under
// viewportPoint fixed on screen.
func (n *Navigation) ZoomAt(viewportPoint Vec2, factor float64) {
	anchor := n.ViewportToDocument().Apply(viewportPoint)
	n.SetZoom(n.Zoom * factor)
	n.PanBy(viewportPoint.Sub(n.DocumentToViewport().Apply(anchor)))
}

// FitBounds centres b in the viewport and zooms so that it fits inside the
// viewport minus padding on every side. Tilt is ignored when sizing. A box
// with no area only re-centres.
func (n *Navigation) FitBounds(b Bounds, padding float64) {
	n.Pan = b.Center()
	size := b.Size()
	availW := n.Viewport.X - 2*padding
	availH := n.Viewport.Y - 2*padding
	if size.X <= 0 || size.Y <= 0 || availW <= 0 || availH <= 0 {
		return
	}
	n.SetZoom(math.Min(availW/size.X, availH/size.Y))
}

// ZoomTo animates the zoom to z over duration seconds.
func (n *Navigation) ZoomTo(z float64, duration float32, easeFn ease.TweenFunc) {
	n.zoomTween = gween.New(float32(n.Zoom), float32(n.clampZoom(z)), duration, easeFn)
}

// PanTo animates Pan to the document-space point p over duration seconds.
func (n *Navigation) PanTo(p Vec2, duration float32, easeFn ease.TweenFunc) {
	n.panTween = &panAnim{
		tweenX: gween.New(float32(n.Pan.X), float32(p.X), duration, easeFn),
		tweenY: gween.New(float32(n.Pan.Y), float32(p.Y), duration, easeFn),
	}
}

// Animating reports whether a ZoomTo or PanTo is still running.
func (n *Navigation) Animating() bool {
	return n.zoomTween != nil || n.panTween != nil
}

// Update advances running animations by dt seconds and reports whether the
// view changed.
func (n *Navigation) Update(dt float32) bool {
	prevPan, prevZoom := n.Pan, n.Zoom

	if n.zoomTween != nil {
		val, done := n.zoomTween.Update(dt)
		n.Zoom = float64(val)
		if done {
			n.zoomTween = nil
		}
	}

	if n.panTween != nil {
		if !n.panTween.doneX {
			val, done := n.panTween.tweenX.Update(dt)
			n.Pan.X = float64(val)
			n.panTween.doneX = done
		}
		if !n.panTween.doneY {
			val, done := n.panTween.tweenY.Update(dt)
			n.Pan.Y = float64(val)
			n.panTween.doneY = done
		}
		if n.panTween.doneX && n.panTween.doneY {
			n.panTween = nil
		}
	}

	return n.Pan != prevPan || n.Zoom != prevZoom
}
