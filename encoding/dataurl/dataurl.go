// Package dataurl encodes and decodes data URLs and classifies stamp/signature
// payloads (raster data URL vs inline SVG markup).
package dataurl

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const prefix = "data:"

// Encode builds a base64 data URL for the given mime type.
func Encode(mimeType string, data []byte) string {
	return prefix + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// IsDataURL reports whether s looks like a data URL.
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, prefix)
}

// Decode splits a base64 data URL into its mime type and raw bytes.
func Decode(s string) (mimeType string, data []byte, err error) {
	if !IsDataURL(s) {
		return "", nil, fmt.Errorf("not a data URL")
	}
	rest := s[len(prefix):]
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return "", nil, fmt.Errorf("malformed data URL: missing comma")
	}
	meta := rest[:comma]
	payload := rest[comma+1:]

	mimeType = meta
	b64 := false
	if i := strings.IndexByte(meta, ';'); i >= 0 {
		mimeType = meta[:i]
		b64 = strings.Contains(meta[i:], "base64")
	}
	if !b64 {
		return "", nil, fmt.Errorf("unsupported data URL encoding (want base64)")
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URL payload: %w", err)
	}
	return mimeType, data, nil
}

// IsSVG reports whether the payload is inline SVG markup. Detection is by the
// document root tag, not by extension, since stamp payloads arrive untyped.
func IsSVG(payload string) bool {
	s := strings.TrimSpace(payload)
	for strings.HasPrefix(s, "<?") || strings.HasPrefix(s, "<!") {
		end := strings.IndexByte(s, '>')
		if end < 0 {
			return false
		}
		s = strings.TrimSpace(s[end+1:])
	}
	return strings.HasPrefix(s, "<svg")
}

// ImageSource returns a payload in a form safe to use as an image source.
// Inline SVG markup is wrapped into a base64 data URL so it can never execute
// as live markup; data URLs pass through unchanged.
func ImageSource(payload string) string {
	if IsSVG(payload) {
		return Encode("image/svg+xml", []byte(payload))
	}
	return payload
}
