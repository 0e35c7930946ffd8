// Package document provides page metadata for a loaded PDF. It is the
// concrete form of the rendering capability the overlay depends on: report
// the page count and each page's intrinsic dimensions, and derive a render
// size for a requested pixel width. How pages are rasterized is someone
// else's problem.
package document

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"

	"github.com/Caqil/scanpro-annotate/model"
)

// Renderer is the black-box document-rendering capability: page count,
// intrinsic page dimensions, and an aspect-preserving render size for a
// requested pixel width. The overlay engine and the shell depend on this
// interface, not on a particular PDF backend.
type Renderer interface {
	PageCount() int
	Page(index int) (model.PageMetadata, error)
	RenderSize(index int, targetWidth float64) (width, height float64, err error)
}

// Fallback dimensions (US Letter in points) for pages without a usable
// MediaBox.
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

// Document is a pdfcpu-backed Renderer. Page metadata is captured once at
// load time; zoom is handled at render time and never mutates it.
type Document struct {
	ctx   *pdfmodel.Context
	pages []model.PageMetadata
}

var _ Renderer = (*Document)(nil)

// Open loads and validates a PDF file.
func Open(path string) (*Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read pdf")
	}
	return fromContext(ctx)
}

// Read loads and validates a PDF from a byte source.
func Read(rs io.ReadSeeker) (*Document, error) {
	ctx, err := api.ReadContext(rs, pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return nil, errors.Wrap(err, "read pdf")
	}
	return fromContext(ctx)
}

func fromContext(ctx *pdfmodel.Context) (*Document, error) {
	if err := api.ValidateContext(ctx); err != nil {
		return nil, errors.Wrap(err, "invalid pdf")
	}

	d := &Document{ctx: ctx}
	d.pages = make([]model.PageMetadata, ctx.PageCount)
	for i := 1; i <= ctx.PageCount; i++ {
		width, height := float64(defaultPageWidth), float64(defaultPageHeight)

		_, _, attrs, err := ctx.PageDict(i, false)
		if err != nil {
			return nil, errors.Wrapf(err, "page %d", i)
		}
		if attrs != nil && attrs.MediaBox != nil {
			width = attrs.MediaBox.Width()
			height = attrs.MediaBox.Height()
		}

		d.pages[i-1] = model.PageMetadata{
			Width:          width,
			Height:         height,
			OriginalWidth:  width,
			OriginalHeight: height,
		}
	}
	return d, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Pages returns a copy of the metadata for all pages.
func (d *Document) Pages() []model.PageMetadata {
	out := make([]model.PageMetadata, len(d.pages))
	copy(out, d.pages)
	return out
}

// Page returns the metadata of the zero-based page index.
func (d *Document) Page(index int) (model.PageMetadata, error) {
	if index < 0 || index >= len(d.pages) {
		return model.PageMetadata{}, errors.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// RenderSize derives the rendered pixel size of a page for a requested pixel
// width, preserving the page's aspect ratio.
func (d *Document) RenderSize(index int, targetWidth float64) (float64, float64, error) {
	page, err := d.Page(index)
	if err != nil {
		return 0, 0, err
	}
	if targetWidth <= 0 || page.OriginalWidth <= 0 {
		return 0, 0, errors.New("invalid render width")
	}
	return targetWidth, targetWidth * page.OriginalHeight / page.OriginalWidth, nil
}
