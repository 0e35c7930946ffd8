package shell

import (
	"github.com/Caqil/scanpro-annotate/model"
	"github.com/Caqil/scanpro-annotate/overlay"
)

// pointerForMove returns the viewport position a pointer would have to be at
// for a drag to land the element's top-left corner at document position
// (x, y). Drags keep the element centered under the cursor.
func pointerForMove(t overlay.RenderTransform, x, y float64, size model.Size) overlay.PointerEvent {
	left, top := t.ToRendered(x, y)
	return overlay.PointerEvent{
		X: left + size.Width*t.Scale/2,
		Y: top + size.Height*t.Scale/2,
	}
}

// pointerForResize returns the viewport position of the bottom-right corner
// an element resized to width x height would have.
func pointerForResize(t overlay.RenderTransform, pos model.Position, width, height float64) overlay.PointerEvent {
	left, top := t.ToRendered(pos.X, pos.Y)
	return overlay.PointerEvent{
		X: left + width*t.Scale,
		Y: top + height*t.Scale,
	}
}
