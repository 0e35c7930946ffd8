package dataurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	url := Encode("image/png", raw)
	assert.True(t, IsDataURL(url))

	mime, data, err := Decode(url)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, raw, data)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"image/png;base64,AAAA",
		"data:image/png;base64",
		"data:image/png,plain-not-base64",
	} {
		_, _, err := Decode(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestIsSVG(t *testing.T) {
	assert.True(t, IsSVG(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.True(t, IsSVG(" \n <svg viewBox=\"0 0 10 10\"/>"))
	assert.True(t, IsSVG(`<?xml version="1.0"?><svg></svg>`))
	assert.True(t, IsSVG(`<!DOCTYPE svg><svg></svg>`))
	assert.False(t, IsSVG("data:image/svg+xml;base64,AAAA"))
	assert.False(t, IsSVG("<script>alert(1)</script>"))
	assert.False(t, IsSVG("hello"))
}

func TestImageSourceWrapsSVG(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`
	src := ImageSource(markup)
	assert.True(t, IsDataURL(src))

	mime, data, err := Decode(src)
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", mime)
	assert.Equal(t, markup, string(data))

	// Raster payloads pass through untouched.
	png := Encode("image/png", []byte{1, 2, 3})
	assert.Equal(t, png, ImageSource(png))
}
