package strokes

import (
	"bytes"
	"encoding/binary"
)

// Header identifies a stroke-session file.
const Header = "megapdf signature strokes, version=1\n"

// HeaderLen is the fixed header size in bytes.
const HeaderLen = len(Header)

// MarshalBinary implements encoding.BinaryMarshaler for a Session.
func (s *Session) MarshalBinary() (data []byte, err error) {
	w := new(writer)

	w.writeHeader()
	w.writeNumber(len(s.Strokes))

	for _, stroke := range s.Strokes {
		w.writeNumber(len(stroke.Points))
		for _, point := range stroke.Points {
			w.writePoint(point)
		}
	}

	return w.Bytes(), nil
}

type writer struct {
	b bytes.Buffer
}

func (w *writer) Bytes() []byte {
	return w.b.Bytes()
}

func (w *writer) writeHeader() {
	w.b.WriteString(Header)
}

func (w *writer) writeNumber(n int) {
	binary.Write(&w.b, binary.LittleEndian, uint32(n))
}

func (w *writer) writePoint(p Point) {
	binary.Write(&w.b, binary.LittleEndian, p.X)
	binary.Write(&w.b, binary.LittleEndian, p.Y)
	binary.Write(&w.b, binary.LittleEndian, p.Pressure)
	binary.Write(&w.b, binary.LittleEndian, p.TimeMs)
}
