// Package overlay manages the annotation elements placed over a rendered
// multi-page document and translates on-screen gestures into document-space
// mutations. Element coordinates are stored in the page's intrinsic units;
// the render scale is a transient view concern that never leaks into them.
package overlay

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"

	"github.com/Caqil/scanpro-annotate/model"
)

// Default box for newly placed elements, in document-space units.
const (
	DefaultElementWidth  = 200
	DefaultElementHeight = 100
)

// Minimum element box, so resizing cannot shrink an element to invisibility.
const (
	MinElementWidth  = 50
	MinElementHeight = 25
)

// View zoom bounds for pinch gestures.
const (
	MinViewZoom = 0.5
	MaxViewZoom = 3.0
)

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureDrag
	gestureResize
)

type gesture struct {
	mode      gestureMode
	elementID string
	// transform is snapshotted at gesture start and reused for every
	// subsequent pointer event of the gesture.
	transform RenderTransform
}

// Viewport is the size of the visible area, in the same coordinate space as
// pointer events. New elements are centered in it.
type Viewport struct {
	Width  float64
	Height float64
}

// Engine is the annotation overlay state: the element collection, selection,
// current page and in-flight gesture. It is the single writer of its element
// collection and is not safe for concurrent use; the host event loop calls it
// synchronously.
type Engine struct {
	pages    []model.PageMetadata
	elements []*model.Element

	selected string
	page     int

	view     RenderTransform
	viewport Viewport
	viewZoom float64

	gesture gesture
}

// NewEngine creates an overlay for a document described by its page metadata.
func NewEngine(pages []model.PageMetadata) *Engine {
	copied := make([]model.PageMetadata, len(pages))
	copy(copied, pages)
	return &Engine{pages: copied, viewZoom: 1}
}

// Pages returns a copy of the page metadata captured at load time.
func (e *Engine) Pages() []model.PageMetadata {
	out := make([]model.PageMetadata, len(e.pages))
	copy(out, e.pages)
	return out
}

// PageCount returns the number of pages in the loaded document.
func (e *Engine) PageCount() int {
	return len(e.pages)
}

// SetCurrentPage switches the page new elements are assigned to. Out-of-range
// indexes are ignored.
func (e *Engine) SetCurrentPage(i int) {
	if i < 0 || i >= len(e.pages) {
		return
	}
	e.page = i
}

// CurrentPage returns the zero-based index of the active page.
func (e *Engine) CurrentPage() int {
	return e.page
}

// SetRenderTransform records where the active page is currently drawn.
// Gestures in progress are unaffected; they keep their snapshot.
func (e *Engine) SetRenderTransform(t RenderTransform) {
	e.view = t
}

// RenderTransform returns the current view transform.
func (e *Engine) RenderTransform() RenderTransform {
	return e.view
}

// SetViewport records the visible area used to center new elements.
func (e *Engine) SetViewport(v Viewport) {
	e.viewport = v
}

// SetViewZoom applies a pinch-zoom factor, clamped to [0.5, 3.0]. This is a
// viewport zoom only; it is never written into any element.
func (e *Engine) SetViewZoom(z float64) {
	e.viewZoom = clamp(z, MinViewZoom, MaxViewZoom)
}

// ViewZoom returns the current pinch-zoom factor.
func (e *Engine) ViewZoom() float64 {
	return e.viewZoom
}

// ElementOption customizes a newly added element.
type ElementOption func(*model.Element)

// WithPayload sets the element's display string or embedded image reference.
func WithPayload(payload string) ElementOption {
	return func(el *model.Element) { el.Payload = payload }
}

// WithSize overrides the default document-space box.
func WithSize(width, height float64) ElementOption {
	return func(el *model.Element) {
		el.Size = model.Size{Width: width, Height: height}
	}
}

// WithFont sets the font attributes of text-bearing kinds.
func WithFont(size float64, family string) ElementOption {
	return func(el *model.Element) {
		el.FontSize = size
		el.FontFamily = family
	}
}

// AddElement creates a new element of the given kind centered in the current
// viewport, assigns it to the current page and selects it. Returns nil when
// the kind is unknown, no document is loaded, or no render transform is
// available yet.
func (e *Engine) AddElement(kind model.ElementKind, opts ...ElementOption) *model.Element {
	if !kind.Valid() || len(e.pages) == 0 || !e.view.Valid() {
		return nil
	}

	el := &model.Element{
		ID:        newElementID(kind),
		Kind:      kind,
		Size:      model.Size{Width: DefaultElementWidth, Height: DefaultElementHeight},
		Scale:     1,
		PageIndex: e.page,
	}
	for _, opt := range opts {
		opt(el)
	}
	if el.Payload == "" {
		el.Payload = defaultPayload(kind)
	}

	cx, cy := e.viewportCenter()
	docX, docY := e.view.ToDocument(cx, cy)
	page := e.pages[e.page]
	el.Position = model.Position{
		X: clamp(docX-el.Size.Width/2, 0, page.OriginalWidth-el.Size.Width),
		Y: clamp(docY-el.Size.Height/2, 0, page.OriginalHeight-el.Size.Height),
	}

	e.elements = append(e.elements, el)
	e.selected = el.ID
	return el
}

func (e *Engine) viewportCenter() (float64, float64) {
	if e.viewport.Width > 0 && e.viewport.Height > 0 {
		return e.viewport.Width / 2, e.viewport.Height / 2
	}
	// Without a reported viewport, fall back to the page box center.
	return e.view.PageLeft + e.view.PageWidth/2, e.view.PageTop + e.view.PageHeight/2
}

func newElementID(kind model.ElementKind) string {
	return fmt.Sprintf("%s-%s-%d", kind, uuid.New().String()[:8], time.Now().UnixMilli())
}

func defaultPayload(kind model.ElementKind) string {
	switch kind {
	case model.Signature:
		return "Signature"
	case model.Stamp:
		return "Stamp"
	case model.Date:
		return time.Now().Format("Jan 2, 2006")
	default:
		return ""
	}
}

// SelectElement selects the element with the given id; selecting the already
// selected element deselects it. Unknown ids are ignored.
func (e *Engine) SelectElement(id string) {
	if e.find(id) == nil {
		return
	}
	if e.selected == id {
		e.selected = ""
		return
	}
	e.selected = id
}

// DeselectAll clears the selection.
func (e *Engine) DeselectAll() {
	e.selected = ""
}

// Selected returns the id of the selected element, or "".
func (e *Engine) Selected() string {
	return e.selected
}

// Element returns a copy of the element with the given id.
func (e *Engine) Element(id string) (model.Element, bool) {
	if el := e.find(id); el != nil {
		return *el, true
	}
	return model.Element{}, false
}

// SetPayload replaces the payload of an element. Unknown ids are ignored.
func (e *Engine) SetPayload(id, payload string) {
	if el := e.find(id); el != nil {
		el.Payload = payload
	}
}

// RemoveElement deletes an element, clearing selection and any gesture bound
// to it. Unknown ids are ignored.
func (e *Engine) RemoveElement(id string) {
	for i, el := range e.elements {
		if el.ID == id {
			e.elements = append(e.elements[:i], e.elements[i+1:]...)
			if e.selected == id {
				e.selected = ""
			}
			if e.gesture.elementID == id {
				e.EndGesture()
			}
			return
		}
	}
}

// Clear discards all elements, the selection and any gesture in progress.
func (e *Engine) Clear() {
	e.elements = nil
	e.selected = ""
	e.gesture = gesture{}
}

// Len returns the number of elements across all pages.
func (e *Engine) Len() int {
	return len(e.elements)
}

// ElementsForPage returns a lazy, restartable sequence of the elements on the
// given page, in insertion order.
func (e *Engine) ElementsForPage(pageIndex int) iter.Seq[model.Element] {
	return func(yield func(model.Element) bool) {
		for _, el := range e.elements {
			if el.PageIndex != pageIndex {
				continue
			}
			if !yield(*el) {
				return
			}
		}
	}
}

// Serialize returns copies of the element collection and page metadata, ready
// for the save API. Coordinates are already document-space; no transform is
// applied at this boundary.
func (e *Engine) Serialize() ([]model.Element, []model.PageMetadata) {
	elements := make([]model.Element, len(e.elements))
	for i, el := range e.elements {
		elements[i] = *el
	}
	return elements, e.Pages()
}

func (e *Engine) find(id string) *model.Element {
	for _, el := range e.elements {
		if el.ID == id {
			return el
		}
	}
	return nil
}
