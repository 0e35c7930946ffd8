package overlay

import "github.com/Caqil/scanpro-annotate/model"

// BeginMove starts dragging an element. The current render transform is
// snapshotted for the duration of the gesture. Ignored when another gesture
// is active, the element is unknown, or no usable transform exists.
func (e *Engine) BeginMove(elementID string, ev PointerEvent) {
	e.beginGesture(gestureDrag, elementID)
}

// ContinueMove repositions the dragged element under the pointer. The pointer
// position is taken relative to the rendered page box, centered on the
// element, clamped to the rendered page bounds, and only then divided by the
// snapshotted scale. Clamping happens in rendered space so the clamp bounds
// coincide with the visible page edges. No-op when no drag is active.
func (e *Engine) ContinueMove(ev PointerEvent) {
	if e.gesture.mode != gestureDrag {
		return
	}
	el := e.find(e.gesture.elementID)
	if el == nil {
		return
	}
	t := e.gesture.transform

	rw := el.Size.Width * t.Scale
	rh := el.Size.Height * t.Scale

	rx := ev.X - t.PageLeft - rw/2
	ry := ev.Y - t.PageTop - rh/2
	rx = clamp(rx, 0, t.PageWidth-rw)
	ry = clamp(ry, 0, t.PageHeight-rh)

	el.Position.X = rx / t.Scale
	el.Position.Y = ry / t.Scale
}

// BeginResize starts resizing an element, with the same snapshot semantics as
// BeginMove.
func (e *Engine) BeginResize(elementID string, ev PointerEvent) {
	e.beginGesture(gestureResize, elementID)
}

// ContinueResize sets the element box from the absolute pointer position
// relative to the element's rendered top-left corner. The result is floored
// at the minimum element size. No-op when no resize is active.
func (e *Engine) ContinueResize(ev PointerEvent) {
	if e.gesture.mode != gestureResize {
		return
	}
	el := e.find(e.gesture.elementID)
	if el == nil {
		return
	}
	t := e.gesture.transform

	left, top := t.ToRendered(el.Position.X, el.Position.Y)
	w := (ev.X - left) / t.Scale
	h := (ev.Y - top) / t.Scale

	if w < MinElementWidth {
		w = MinElementWidth
	}
	if h < MinElementHeight {
		h = MinElementHeight
	}
	el.Size = model.Size{Width: w, Height: h}
}

// EndGesture clears the transient drag/resize state. It is safe to call with
// no gesture active; pointer-up, pointer-leave and pointer-cancel all route
// here so a gesture can never get stuck.
func (e *Engine) EndGesture() {
	e.gesture = gesture{}
}

// GestureActive reports whether a drag or resize is in progress.
func (e *Engine) GestureActive() bool {
	return e.gesture.mode != gestureNone
}

func (e *Engine) beginGesture(mode gestureMode, elementID string) {
	if e.gesture.mode != gestureNone {
		return
	}
	if e.find(elementID) == nil || !e.view.Valid() {
		return
	}
	e.gesture = gesture{mode: mode, elementID: elementID, transform: e.view}
}
