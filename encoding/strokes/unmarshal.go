package strokes

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// maxCount caps stroke and point counts so a corrupted file cannot trigger a
// huge allocation.
const maxCount = 1 << 20

// UnmarshalBinary implements encoding.BinaryUnmarshaler for a Session.
func (s *Session) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.checkHeader(); err != nil {
		return err
	}

	nbStrokes, err := r.readNumber()
	if err != nil {
		return err
	}

	s.Strokes = make([]Stroke, nbStrokes)
	for i := uint32(0); i < nbStrokes; i++ {
		nbPoints, err := r.readNumber()
		if err != nil {
			return err
		}

		points := make([]Point, nbPoints)
		for j := uint32(0); j < nbPoints; j++ {
			p, err := r.readPoint()
			if err != nil {
				return err
			}
			points[j] = p
		}
		s.Strokes[i] = Stroke{Points: points}
	}

	return nil
}

type reader struct {
	bytes.Reader
}

func newReader(data []byte) *reader {
	return &reader{*bytes.NewReader(data)}
}

func (r *reader) checkHeader() error {
	buf := make([]byte, HeaderLen)

	n, err := r.Read(buf)
	if err != nil {
		return fmt.Errorf("short stroke file: %w", err)
	}
	if n != HeaderLen || string(buf) != Header {
		return fmt.Errorf("unknown stroke file header")
	}
	return nil
}

func (r *reader) readNumber() (uint32, error) {
	var nb uint32
	if err := binary.Read(r, binary.LittleEndian, &nb); err != nil {
		return 0, fmt.Errorf("truncated stroke count")
	}
	if nb > maxCount {
		return 0, fmt.Errorf("implausible stroke count %d", nb)
	}
	return nb, nil
}

func (r *reader) readPoint() (Point, error) {
	var p Point
	if err := binary.Read(r, binary.LittleEndian, &p.X); err != nil {
		return p, fmt.Errorf("truncated point")
	}
	if err := binary.Read(r, binary.LittleEndian, &p.Y); err != nil {
		return p, fmt.Errorf("truncated point")
	}
	if err := binary.Read(r, binary.LittleEndian, &p.Pressure); err != nil {
		return p, fmt.Errorf("truncated point")
	}
	if err := binary.Read(r, binary.LittleEndian, &p.TimeMs); err != nil {
		return p, fmt.Errorf("truncated point")
	}
	return p, nil
}
