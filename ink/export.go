package ink

import (
	"bytes"
	"image/jpeg"

	"github.com/Caqil/scanpro-annotate/encoding/dataurl"
	"github.com/Caqil/scanpro-annotate/log"
)

// Image formats accepted by ExportImage.
const (
	FormatPNG  = "image/png"
	FormatJPEG = "image/jpeg"
)

// ExportImage encodes the current raster contents as a data URL. The format
// defaults to PNG; quality only applies to JPEG and is expressed in [0, 1].
// An engine whose surface was never initialized returns "", so callers can
// test "is there a signature" by checking for emptiness instead of handling
// an error.
func (e *Engine) ExportImage(format string, quality float64) string {
	if e.dc == nil {
		return ""
	}
	if format == "" {
		format = FormatPNG
	}
	if quality <= 0 || quality > 1 {
		quality = 1
	}

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := jpeg.Encode(&buf, e.dc.Image(), &jpeg.Options{Quality: int(quality * 100)}); err != nil {
			log.Trace.Printf("jpeg export failed: %v", err)
			return ""
		}
	default:
		format = FormatPNG
		if err := e.dc.EncodePNG(&buf); err != nil {
			log.Trace.Printf("png export failed: %v", err)
			return ""
		}
	}

	return dataurl.Encode(format, buf.Bytes())
}
