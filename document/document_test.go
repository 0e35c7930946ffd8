package document

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caqil/scanpro-annotate/internal/testpdf"
)

func TestReadSinglePage(t *testing.T) {
	d, err := Read(bytes.NewReader(testpdf.Single(600, 800)))
	require.NoError(t, err)

	assert.Equal(t, 1, d.PageCount())

	page, err := d.Page(0)
	require.NoError(t, err)
	assert.Equal(t, 600.0, page.OriginalWidth)
	assert.Equal(t, 800.0, page.OriginalHeight)
	assert.Equal(t, page.OriginalWidth, page.Width)
	assert.Equal(t, page.OriginalHeight, page.Height)
}

func TestReadMultiPage(t *testing.T) {
	d, err := Read(bytes.NewReader(testpdf.Build([]testpdf.PageSize{
		{Width: 612, Height: 792},
		{Width: 595, Height: 842},
		{Width: 400, Height: 400},
	})))
	require.NoError(t, err)

	require.Equal(t, 3, d.PageCount())
	p1, err := d.Page(1)
	require.NoError(t, err)
	assert.Equal(t, 595.0, p1.OriginalWidth)
	assert.Equal(t, 842.0, p1.OriginalHeight)

	pages := d.Pages()
	require.Len(t, pages, 3)
	pages[0].Width = -1
	again, _ := d.Page(0)
	assert.Equal(t, 612.0, again.Width, "Pages returns copies")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, testpdf.Single(300, 500), 0o644))

	d, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1, d.PageCount())
}

func TestPageOutOfRange(t *testing.T) {
	d, err := Read(bytes.NewReader(testpdf.Single(600, 800)))
	require.NoError(t, err)

	_, err = d.Page(-1)
	assert.Error(t, err)
	_, err = d.Page(1)
	assert.Error(t, err)
}

func TestRenderSizePreservesAspect(t *testing.T) {
	d, err := Read(bytes.NewReader(testpdf.Single(600, 800)))
	require.NoError(t, err)

	w, h, err := d.RenderSize(0, 900)
	require.NoError(t, err)
	assert.Equal(t, 900.0, w)
	assert.InDelta(t, 1200.0, h, 1e-9)

	_, _, err = d.RenderSize(0, 0)
	assert.Error(t, err)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("definitely not a pdf")))
	assert.Error(t, err)
}
