package annotations

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caqil/scanpro-annotate/document"
	"github.com/Caqil/scanpro-annotate/encoding/dataurl"
	"github.com/Caqil/scanpro-annotate/ink"
	"github.com/Caqil/scanpro-annotate/internal/testpdf"
	"github.com/Caqil/scanpro-annotate/model"
)

func signaturePayload(t *testing.T) string {
	t.Helper()
	e := ink.NewEngine(ink.Options{})
	e.Resize(300, 150, false)
	e.Begin(ink.Point{X: 10, Y: 10, TimeMs: 0})
	e.Extend(ink.Point{X: 100, Y: 100, TimeMs: 40})
	e.End(ink.Point{X: 150, Y: 60, TimeMs: 80})
	out := e.ExportImage(ink.FormatPNG, 1)
	require.NotEmpty(t, out)
	return out
}

func TestFlattenSignatureAndText(t *testing.T) {
	source := testpdf.Single(600, 800)
	pages := []model.PageMetadata{{Width: 600, Height: 800, OriginalWidth: 600, OriginalHeight: 800}}

	elements := []model.Element{
		{
			ID:       "sig-1",
			Kind:     model.Signature,
			Position: model.Position{X: 100, Y: 600},
			Size:     model.Size{Width: 200, Height: 100},
			Payload:  signaturePayload(t),
			Scale:    1,
		},
		{
			ID:       "date-1",
			Kind:     model.Date,
			Position: model.Position{X: 320, Y: 610},
			Size:     model.Size{Width: 120, Height: 30},
			Payload:  "Aug 31, 2026",
			Scale:    1,
			FontSize: 12,
		},
	}

	var out bytes.Buffer
	err := Flatten(bytes.NewReader(source), &out, elements, pages, Options{})
	require.NoError(t, err)
	require.NotZero(t, out.Len())

	// The output is a readable PDF with the same page count.
	d, err := document.Read(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1, d.PageCount())
}

func TestFlattenSkipsSVGStamps(t *testing.T) {
	source := testpdf.Single(600, 800)
	pages := []model.PageMetadata{{OriginalWidth: 600, OriginalHeight: 800}}
	elements := []model.Element{{
		ID:      "stamp-1",
		Kind:    model.Stamp,
		Size:    model.Size{Width: 100, Height: 100},
		Payload: `<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`,
		Scale:   1,
	}}

	var out bytes.Buffer
	err := Flatten(bytes.NewReader(source), &out, elements, pages, Options{})
	require.NoError(t, err, "SVG stamps are skipped, not fatal")
	assert.NotZero(t, out.Len())
}

func TestFlattenElementsLandOnTheirPage(t *testing.T) {
	source := testpdf.Build([]testpdf.PageSize{
		{Width: 600, Height: 800},
		{Width: 600, Height: 800},
	})
	pages := []model.PageMetadata{
		{OriginalWidth: 600, OriginalHeight: 800},
		{OriginalWidth: 600, OriginalHeight: 800},
	}
	elements := []model.Element{
		{ID: "a", Kind: model.Name, PageIndex: 1, Payload: "Jane Doe",
			Position: model.Position{X: 50, Y: 50}, Size: model.Size{Width: 200, Height: 40}, Scale: 1},
	}

	var out bytes.Buffer
	require.NoError(t, Flatten(bytes.NewReader(source), &out, elements, pages, Options{}))

	d, err := document.Read(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, d.PageCount())
}

func TestCapImageWidth(t *testing.T) {
	big := newPNG(t, 2400, 600)
	capped, err := capImageWidth(big, 1200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(capped))
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy(), "aspect preserved")

	small := newPNG(t, 100, 50)
	same, err := capImageWidth(small, 1200)
	require.NoError(t, err)
	assert.Equal(t, small, same, "small images pass through untouched")
}

func newPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	e := ink.NewEngine(ink.Options{})
	e.Resize(w, h, false)
	e.Begin(ink.Point{X: 1, Y: 1})
	e.End(ink.Point{X: float64(w) - 1, Y: float64(h) - 1, TimeMs: 10})
	_, data, err := dataurl.Decode(e.ExportImage(ink.FormatPNG, 1))
	require.NoError(t, err)
	return data
}
