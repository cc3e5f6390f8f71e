package source

import (
	"fmt"
)

// Span is a half-open byte range into the source text.
// Start <= End; End may point past the end of a line — the renderer
// clamps at draw time, never at construction.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover extends the span to include other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// At builds a zero-width span at pos.
func At(pos uint32) Span {
	return Span{Start: pos, End: pos}
}
