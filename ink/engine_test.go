package ink

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	e := NewEngine(Options{})
	e.Resize(300, 150, false)
	return e
}

func drawDiagonal(e *Engine) {
	e.Begin(Point{X: 10, Y: 10, TimeMs: 0})
	e.Extend(Point{X: 40, Y: 40, TimeMs: 16})
	e.Extend(Point{X: 70, Y: 70, TimeMs: 32})
	e.End(Point{X: 100, Y: 100, TimeMs: 48})
}

func TestUninitializedSurfaceIsSafe(t *testing.T) {
	e := NewEngine(Options{})

	// None of these may panic without a surface.
	e.Begin(Point{X: 1, Y: 1})
	e.Extend(Point{X: 2, Y: 2})
	e.End(Point{X: 3, Y: 3})
	e.Clear()

	assert.Equal(t, "", e.ExportImage(FormatPNG, 1))
	assert.Nil(t, e.Image())
	assert.True(t, e.Empty())
}

func TestExportAfterDrawing(t *testing.T) {
	e := newTestEngine()
	drawDiagonal(e)

	out := e.ExportImage("", 1)
	require.True(t, strings.HasPrefix(out, "data:image/png;base64,"))
	assert.False(t, e.Empty())

	jpg := e.ExportImage(FormatJPEG, 0.8)
	assert.True(t, strings.HasPrefix(jpg, "data:image/jpeg;base64,"))
}

func TestClearIsIdempotent(t *testing.T) {
	e := newTestEngine()
	fresh := e.ExportImage(FormatPNG, 1)

	drawDiagonal(e)
	require.NotEqual(t, fresh, e.ExportImage(FormatPNG, 1))

	e.Clear()
	assert.Equal(t, fresh, e.ExportImage(FormatPNG, 1))
	assert.True(t, e.Empty())

	// A second clear changes nothing.
	e.Clear()
	assert.Equal(t, fresh, e.ExportImage(FormatPNG, 1))
}

func TestExtendWithoutBeginIsNoop(t *testing.T) {
	e := newTestEngine()
	before := e.ExportImage(FormatPNG, 1)

	e.Extend(Point{X: 50, Y: 50, TimeMs: 10})
	e.End(Point{X: 60, Y: 60, TimeMs: 20})

	assert.Equal(t, before, e.ExportImage(FormatPNG, 1))
	assert.True(t, e.Empty())
}

func TestSegmentWidthBounds(t *testing.T) {
	e := newTestEngine()
	e.Begin(Point{X: 0, Y: 0, TimeMs: 0})

	cases := []Point{
		{X: 0, Y: 0, TimeMs: 100},        // zero velocity
		{X: 0.01, Y: 0, TimeMs: 1000},    // crawling
		{X: 5000, Y: 5000, TimeMs: 1},    // absurd flick, clamped
		{X: 100, Y: 0, TimeMs: 0},        // duplicate timestamp
		{X: 3, Y: 4, TimeMs: 1},          // moderate
	}
	for _, p := range cases {
		w := e.segmentWidth(p)
		assert.GreaterOrEqual(t, w, e.opts.MinWidth, "point %+v", p)
		assert.LessOrEqual(t, w, e.opts.MaxWidth, "point %+v", p)
	}

	// Zero velocity yields the thickest line, a clamped flick the thinnest.
	assert.InDelta(t, e.opts.MaxWidth, e.segmentWidth(Point{X: 0, Y: 0, TimeMs: 100}), 1e-9)
	assert.InDelta(t, e.opts.MinWidth, e.segmentWidth(Point{X: 5000, Y: 5000, TimeMs: 1}), 1e-9)
}

func TestSmoothedWidthStaysBounded(t *testing.T) {
	e := newTestEngine()
	e.Begin(Point{X: 0, Y: 0, TimeMs: 0})

	for i := 1; i <= 100; i++ {
		x := float64(i * 37 % 290)
		y := float64(i * 53 % 140)
		e.Extend(Point{X: x, Y: y, TimeMs: int64(i)})
		assert.GreaterOrEqual(t, e.strokeWidth, e.opts.MinWidth)
		assert.LessOrEqual(t, e.strokeWidth, e.opts.MaxWidth)
	}
}

func TestResizePreservesInk(t *testing.T) {
	e := newTestEngine()
	drawDiagonal(e)
	session := e.Session()

	e.Resize(400, 200, true)
	assert.False(t, e.Empty(), "preserving resize keeps the recording")
	assert.Equal(t, len(session.Strokes), len(e.Session().Strokes))

	// The preserved ink is still visible: the new surface does not export the
	// same bytes as a blank one.
	blank := NewEngine(Options{})
	blank.Resize(400, 200, false)
	assert.NotEqual(t, blank.ExportImage(FormatPNG, 1), e.ExportImage(FormatPNG, 1))

	e.Resize(400, 200, false)
	assert.True(t, e.Empty(), "non-preserving resize discards ink")
}

func TestReplayMatchesLiveDrawing(t *testing.T) {
	live := newTestEngine()
	drawDiagonal(live)

	replayed := newTestEngine()
	replayed.Replay(live.Session())

	assert.Equal(t, live.ExportImage(FormatPNG, 1), replayed.ExportImage(FormatPNG, 1))
}

func TestSingleTapLeavesDot(t *testing.T) {
	e := newTestEngine()
	blank := e.ExportImage(FormatPNG, 1)

	e.Begin(Point{X: 20, Y: 20, TimeMs: 0})
	e.End(Point{X: 20, Y: 20, TimeMs: 5})

	assert.NotEqual(t, blank, e.ExportImage(FormatPNG, 1))
	assert.False(t, e.Empty())
}

func TestBackgroundColorRespected(t *testing.T) {
	e := NewEngine(Options{Background: color.White})
	e.Resize(50, 50, false)

	img := e.Image()
	r, g, b, a := img.At(25, 25).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}
