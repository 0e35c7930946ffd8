// Package strokes defines the recorded form of a freehand signature session
// and its binary encoding, so a captured signature can be saved and replayed
// into a fresh drawing surface.
package strokes

// Point is one sampled pointer location within a stroke.
type Point struct {
	X        float32
	Y        float32
	Pressure float32
	TimeMs   int64
}

// Stroke is a single pen-down..pen-up sequence.
type Stroke struct {
	Points []Point
}

// Session is the full recording of a drawing surface since its last clear.
type Session struct {
	Strokes []Stroke
}

// Empty reports whether the session contains no drawn points.
func (s *Session) Empty() bool {
	for _, st := range s.Strokes {
		if len(st.Points) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() Session {
	out := Session{Strokes: make([]Stroke, len(s.Strokes))}
	for i, st := range s.Strokes {
		pts := make([]Point, len(st.Points))
		copy(pts, st.Points)
		out.Strokes[i] = Stroke{Points: pts}
	}
	return out
}
