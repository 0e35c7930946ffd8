package overlay

// PointerEvent is a pointer position in viewport coordinates, the same space
// the host reports drag events in.
type PointerEvent struct {
	X float64
	Y float64
}

// RenderTransform describes where and how large a page is currently drawn on
// screen. Scale is rendered pixels per document unit (rendered page width
// divided by the page's intrinsic width). Gesture handlers snapshot one of
// these at gesture start and reuse it for the whole gesture, so a zoom change
// mid-drag cannot corrupt the coordinate math.
type RenderTransform struct {
	Scale      float64
	PageLeft   float64
	PageTop    float64
	PageWidth  float64
	PageHeight float64
}

// Valid reports whether the transform can be used for coordinate conversion.
func (t RenderTransform) Valid() bool {
	return t.Scale > 0
}

// ToDocument converts a viewport position to document-space units.
func (t RenderTransform) ToDocument(x, y float64) (float64, float64) {
	return (x - t.PageLeft) / t.Scale, (y - t.PageTop) / t.Scale
}

// ToRendered converts a document-space position to viewport coordinates.
func (t RenderTransform) ToRendered(x, y float64) (float64, float64) {
	return t.PageLeft + x*t.Scale, t.PageTop + y*t.Scale
}

// clamp bounds v to [lo, hi], collapsing to lo when the interval is inverted
// (element rendered larger than the page).
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
