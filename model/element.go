// Package model holds the annotation data model shared by the overlay
// engine, the flattener and the sign API client.
package model

// ElementKind identifies what an annotation element displays. It is a closed
// set; rendering dispatches on the kind rather than on per-kind types so the
// serialized form stays a flat struct.
type ElementKind string

const (
	Signature ElementKind = "signature"
	Text      ElementKind = "text"
	Stamp     ElementKind = "stamp"
	Initials  ElementKind = "initials"
	Name      ElementKind = "name"
	Date      ElementKind = "date"
)

// Valid reports whether k is one of the known kinds.
func (k ElementKind) Valid() bool {
	switch k {
	case Signature, Text, Stamp, Initials, Name, Date:
		return true
	}
	return false
}

// HasImagePayload reports whether the element payload is an embedded image
// (data URL or inline SVG) rather than a display string.
func (k ElementKind) HasImagePayload() bool {
	return k == Signature || k == Stamp
}

// Position is a top-left offset in unscaled page-space units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is an element box size in unscaled page-space units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Element is the persisted unit of document annotation. Position and Size are
// always expressed in the page's intrinsic coordinate system, independent of
// any on-screen zoom, so a serialized element can be re-rendered at full
// resolution by the backend.
type Element struct {
	ID         string      `json:"id"`
	Kind       ElementKind `json:"type"`
	Position   Position    `json:"position"`
	Size       Size        `json:"size"`
	Payload    string      `json:"data"`
	Rotation   float64     `json:"rotation"`
	Scale      float64     `json:"scale"`
	PageIndex  int         `json:"page"`
	FontSize   float64     `json:"fontSize,omitempty"`
	FontFamily string      `json:"fontFamily,omitempty"`
}

// PageMetadata describes one page of the loaded document. Width and Height
// mirror the original dimensions at load time (scale 1); zoom is a render
// concern and never mutates stored metadata.
type PageMetadata struct {
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	OriginalWidth  float64 `json:"originalWidth"`
	OriginalHeight float64 `json:"originalHeight"`
}
