// Package annotations flattens overlay elements onto the source PDF, so a
// signed document can be produced locally without the remote sign API.
package annotations

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	_ "image/jpeg"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/unidoc/unipdf/v3/creator"
	pdf "github.com/unidoc/unipdf/v3/model"

	"github.com/Caqil/scanpro-annotate/encoding/dataurl"
	"github.com/Caqil/scanpro-annotate/log"
	"github.com/Caqil/scanpro-annotate/model"
)

// maxEmbedWidth caps embedded signature/stamp bitmaps. High-DPI drawing
// surfaces can export images far larger than their placed box; anything wider
// gets downscaled before embedding.
const maxEmbedWidth = 1200

// Options control flatten output.
type Options struct {
	AddPageNumbers bool
}

// Flattener renders annotation elements onto the pages of a source PDF.
type Flattener struct {
	inputPath  string
	outputPath string
	elements   []model.Element
	pages      []model.PageMetadata
	options    Options
}

// CreateFlattener prepares a flatten run from input to output file paths.
func CreateFlattener(inputPath, outputPath string, elements []model.Element, pages []model.PageMetadata, options Options) *Flattener {
	return &Flattener{
		inputPath:  inputPath,
		outputPath: outputPath,
		elements:   elements,
		pages:      pages,
		options:    options,
	}
}

// Generate writes the flattened PDF to the configured output path.
func (f *Flattener) Generate() error {
	file, err := os.Open(f.inputPath)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	out, err := os.Create(f.outputPath)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	return Flatten(file, out, f.elements, f.pages, f.options)
}

// Flatten reads a PDF from rs, draws every element onto its page and writes
// the result to w.
func Flatten(rs io.ReadSeeker, w io.Writer, elements []model.Element, pages []model.PageMetadata, options Options) error {
	pdfReader, err := pdf.NewPdfReader(rs)
	if err != nil {
		return errors.Wrap(err, "read pdf")
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return errors.Wrap(err, "page count")
	}

	c := creator.New()

	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return errors.Wrapf(err, "get page %d", i)
		}

		block, err := creator.NewBlockFromPage(page)
		if err != nil {
			return errors.Wrapf(err, "import page %d", i)
		}

		c.SetPageSize(creator.PageSize{block.Width(), block.Height()})
		block.SetPos(0, 0)
		c.NewPage()
		if err := c.Draw(block); err != nil {
			return errors.Wrapf(err, "draw page %d", i)
		}

		// Element coordinates are document-space units relative to the page
		// metadata captured at load time; the imported block may differ, so
		// scale through the ratio like any other render target.
		ratio := 1.0
		if meta := pageMeta(pages, i-1); meta.OriginalWidth > 0 {
			ratio = block.Width() / meta.OriginalWidth
		}

		for _, el := range elements {
			if el.PageIndex != i-1 {
				continue
			}
			if err := drawElement(c, el, ratio); err != nil {
				return errors.Wrapf(err, "element %s", el.ID)
			}
		}
	}

	if options.AddPageNumbers {
		c.DrawFooter(func(block *creator.Block, args creator.FooterFunctionArgs) {
			p := c.NewParagraph(fmt.Sprintf("%d", args.PageNum))
			p.SetFontSize(8)
			p.SetPos(block.Width()-20, block.Height()-10)
			block.Draw(p)
		})
	}

	return c.Write(w)
}

func pageMeta(pages []model.PageMetadata, index int) model.PageMetadata {
	if index < 0 || index >= len(pages) {
		return model.PageMetadata{}
	}
	return pages[index]
}

// drawElement dispatches on the element kind: image-bearing kinds embed
// their payload, the rest draw their display string.
func drawElement(c *creator.Creator, el model.Element, ratio float64) error {
	scale := el.Scale
	if scale <= 0 {
		scale = 1
	}
	x := el.Position.X * ratio
	y := el.Position.Y * ratio
	w := el.Size.Width * ratio * scale
	h := el.Size.Height * ratio * scale

	if el.Kind.HasImagePayload() && dataurl.IsDataURL(dataurl.ImageSource(el.Payload)) {
		return drawImageElement(c, el, x, y, w, h)
	}
	return drawTextElement(c, el, x, y, w)
}

func drawImageElement(c *creator.Creator, el model.Element, x, y, w, h float64) error {
	mime, data, err := dataurl.Decode(dataurl.ImageSource(el.Payload))
	if err != nil {
		return errors.Wrap(err, "decode payload")
	}
	if mime == "image/svg+xml" {
		// No vector rasterizer here; the remote API handles SVG stamps.
		log.Warning.Printf("skipping SVG stamp %s in local flatten", el.ID)
		return nil
	}

	data, err = capImageWidth(data, maxEmbedWidth)
	if err != nil {
		return errors.Wrap(err, "downscale payload")
	}

	img, err := c.NewImageFromData(data)
	if err != nil {
		return errors.Wrap(err, "embed image")
	}
	if img.Width() > 0 && img.Height() > 0 {
		img.Scale(w/img.Width(), h/img.Height())
	}
	img.SetPos(x, y)
	if el.Rotation != 0 {
		img.SetAngle(el.Rotation)
	}
	return c.Draw(img)
}

func drawTextElement(c *creator.Creator, el model.Element, x, y, w float64) error {
	p := c.NewParagraph(el.Payload)
	size := el.FontSize
	if size <= 0 {
		size = 14
	}
	p.SetFontSize(size)
	p.SetWidth(w)
	p.SetPos(x, y)
	if el.Rotation != 0 {
		p.SetAngle(el.Rotation)
	}
	return c.Draw(p)
}

// capImageWidth downscales a decoded raster image to at most maxWidth pixels
// wide, re-encoding as PNG. Images at or below the cap pass through.
func capImageWidth(data []byte, maxWidth uint) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if uint(img.Bounds().Dx()) <= maxWidth {
		return data, nil
	}

	scaled := resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
