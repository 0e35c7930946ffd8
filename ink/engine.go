// Package ink turns pointer events into a smooth, variable-width signature
// stroke rendered to a raster surface. The engine is synchronous and holds no
// reference to any UI framework; the host feeds it pointer samples and reads
// back an encoded image.
package ink

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/Caqil/scanpro-annotate/encoding/strokes"
)

// Options tune the feel of the pen. Velocity maps inversely to line width:
// fast strokes come out thin, slow strokes thick, which is what makes a drawn
// signature look like ink instead of a plotter line.
type Options struct {
	MinWidth float64
	MaxWidth float64
	// VelocityFilterWeight is the exponential smoothing weight applied to the
	// segment width: smoothed = smoothed*w + new*(1-w).
	VelocityFilterWeight float64
	// MaxVelocity, in surface units per millisecond, clamps the velocity so a
	// fast flick cannot push the width below MinWidth.
	MaxVelocity float64
	DotRadius   float64
	Color       color.Color
	Background  color.Color
}

// DefaultOptions returns the tuning used by the signing surface.
func DefaultOptions() Options {
	return Options{
		MinWidth:             1.5,
		MaxWidth:             4.5,
		VelocityFilterWeight: 0.7,
		MaxVelocity:          10,
		DotRadius:            2,
		Color:                color.Black,
		Background:           color.Transparent,
	}
}

// Point is one sampled pointer location. Pressure is optional and recorded
// but does not influence the rendered width.
type Point struct {
	X        float64
	Y        float64
	TimeMs   int64
	Pressure float64
}

// minTimeDeltaMs guards the velocity division against duplicate timestamps.
const minTimeDeltaMs = 1.0

// Engine owns a raster drawing surface and the in-flight stroke state. All
// methods are no-ops until Resize has allocated a surface; none of them
// panic on a missing surface. Not safe for concurrent use.
type Engine struct {
	opts Options

	dc     *gg.Context
	width  int
	height int

	drawing     bool
	last        Point
	strokeWidth float64

	session strokes.Session
}

// NewEngine returns an engine with no allocated surface yet. Zero-valued
// option fields fall back to DefaultOptions.
func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.MinWidth <= 0 {
		opts.MinWidth = def.MinWidth
	}
	if opts.MaxWidth < opts.MinWidth {
		opts.MaxWidth = math.Max(def.MaxWidth, opts.MinWidth)
	}
	if opts.VelocityFilterWeight <= 0 || opts.VelocityFilterWeight >= 1 {
		opts.VelocityFilterWeight = def.VelocityFilterWeight
	}
	if opts.MaxVelocity <= 0 {
		opts.MaxVelocity = def.MaxVelocity
	}
	if opts.DotRadius <= 0 {
		opts.DotRadius = def.DotRadius
	}
	if opts.Color == nil {
		opts.Color = def.Color
	}
	if opts.Background == nil {
		opts.Background = def.Background
	}
	return &Engine{opts: opts, strokeWidth: opts.MinWidth}
}

// Resize reinitializes the backing store to the given display size. The
// backing pixels must match the display size or strokes land misaligned.
// With preserve set, existing ink is snapshotted and restored.
func (e *Engine) Resize(width, height int, preserve bool) {
	if width <= 0 || height <= 0 {
		return
	}

	var snapshot image.Image
	if preserve && e.dc != nil {
		snapshot = e.dc.Image()
	}

	e.dc = gg.NewContext(width, height)
	e.width = width
	e.height = height
	e.fillBackground()

	if snapshot != nil {
		e.dc.DrawImage(snapshot, 0, 0)
	} else {
		e.session = strokes.Session{}
	}

	e.drawing = false
	e.strokeWidth = e.opts.MinWidth
}

func (e *Engine) fillBackground() {
	e.dc.SetColor(e.opts.Background)
	e.dc.Clear()
}

// Begin starts a new stroke at p. A dot is drawn immediately so a single tap
// leaves a mark even when no move events follow.
func (e *Engine) Begin(p Point) {
	if e.dc == nil {
		return
	}
	e.drawing = true
	e.strokeWidth = e.opts.MinWidth
	e.last = p

	e.dc.SetColor(e.opts.Color)
	e.dc.DrawCircle(p.X, p.Y, e.opts.DotRadius)
	e.dc.Fill()

	e.session.Strokes = append(e.session.Strokes, strokes.Stroke{
		Points: []strokes.Point{recordPoint(p)},
	})
}

// Extend continues the current stroke to p, drawing one smoothed segment.
// No-op when no stroke is in progress.
func (e *Engine) Extend(p Point) {
	if e.dc == nil || !e.drawing {
		return
	}
	e.drawSegment(p)
	e.record(p)
	e.last = p
}

// End draws the final segment to p and finishes the stroke. Accumulated ink
// is kept.
func (e *Engine) End(p Point) {
	if e.dc == nil || !e.drawing {
		return
	}
	if p.X != e.last.X || p.Y != e.last.Y {
		e.drawSegment(p)
		e.record(p)
	}
	e.drawing = false
}

// Clear refills the surface with the background color and fully resets the
// stroke state, so the next Begin starts from a clean slate.
func (e *Engine) Clear() {
	if e.dc == nil {
		return
	}
	e.fillBackground()
	e.drawing = false
	e.strokeWidth = e.opts.MinWidth
	e.session = strokes.Session{}
}

// Empty reports whether anything has been drawn since the last clear/resize.
func (e *Engine) Empty() bool {
	return e.session.Empty()
}

// Image returns the current raster contents, or nil before the first Resize.
func (e *Engine) Image() image.Image {
	if e.dc == nil {
		return nil
	}
	return e.dc.Image()
}

// Session returns a copy of the strokes recorded since the last clear.
func (e *Engine) Session() strokes.Session {
	return e.session.Clone()
}

// Replay clears the surface and redraws a recorded session through the normal
// stroke path, so the rendered result matches a live drawing of it.
func (e *Engine) Replay(s strokes.Session) {
	if e.dc == nil {
		return
	}
	e.Clear()
	for _, stroke := range s.Strokes {
		if len(stroke.Points) == 0 {
			continue
		}
		e.Begin(playbackPoint(stroke.Points[0]))
		for _, p := range stroke.Points[1:] {
			e.Extend(playbackPoint(p))
		}
		e.End(playbackPoint(stroke.Points[len(stroke.Points)-1]))
	}
}

func (e *Engine) drawSegment(p Point) {
	target := e.segmentWidth(p)
	w := e.opts.VelocityFilterWeight
	e.strokeWidth = e.strokeWidth*w + target*(1-w)

	e.dc.SetColor(e.opts.Color)
	e.dc.SetLineWidth(e.strokeWidth)
	e.dc.SetLineCap(gg.LineCapRound)
	e.dc.SetLineJoin(gg.LineJoinRound)
	e.dc.DrawLine(e.last.X, e.last.Y, p.X, p.Y)
	e.dc.Stroke()
}

// segmentWidth maps the velocity from the previous point to p into a target
// line width within [MinWidth, MaxWidth].
func (e *Engine) segmentWidth(p Point) float64 {
	dt := float64(p.TimeMs - e.last.TimeMs)
	if dt < minTimeDeltaMs {
		dt = minTimeDeltaMs
	}
	dist := math.Hypot(p.X-e.last.X, p.Y-e.last.Y)
	v := dist / dt
	if v > e.opts.MaxVelocity {
		v = e.opts.MaxVelocity
	}
	return e.opts.MaxWidth - (e.opts.MaxWidth-e.opts.MinWidth)*(v/e.opts.MaxVelocity)
}

func (e *Engine) record(p Point) {
	n := len(e.session.Strokes)
	if n == 0 {
		return
	}
	e.session.Strokes[n-1].Points = append(e.session.Strokes[n-1].Points, recordPoint(p))
}

func recordPoint(p Point) strokes.Point {
	return strokes.Point{
		X:        float32(p.X),
		Y:        float32(p.Y),
		Pressure: float32(p.Pressure),
		TimeMs:   p.TimeMs,
	}
}

func playbackPoint(p strokes.Point) Point {
	return Point{
		X:        float64(p.X),
		Y:        float64(p.Y),
		Pressure: float64(p.Pressure),
		TimeMs:   p.TimeMs,
	}
}
