package source

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Source owns the source text and a precomputed line-start index.
// It answers (line, column) and line-text queries by byte offset.
// Immutable once constructed.
type Source struct {
	text       string
	lineStarts []uint32
}

// New builds the line-start index: index 0 is offset 0, and every
// newline byte contributes offset+1.
func New(text string) *Source {
	if _, err := safecast.Conv[uint32](len(text)); err != nil {
		panic(fmt.Errorf("source text too large: %w", err))
	}
	starts := []uint32{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, uint32(i)+1)
		}
	}
	return &Source{text: text, lineStarts: starts}
}

func (s *Source) Text() string {
	return s.text
}

func (s *Source) Len() uint32 {
	return uint32(len(s.text))
}

// LineCol resolves a byte offset into a 1-based (line, column) pair.
// An offset that lands exactly on a line start belongs to that line,
// not to the end of the previous one.
func (s *Source) LineCol(pos uint32) (line, col uint32) {
	// sort.Search finds the first start > pos; the owning line is the
	// one before it. An exact match on lineStarts[i] yields i itself.
	i := sort.Search(len(s.lineStarts), func(k int) bool {
		return s.lineStarts[k] > pos
	})
	idx := uint32(i - 1)
	return idx + 1, pos - s.lineStarts[idx] + 1
}

// LineText returns the text of a 1-based line with the trailing
// newline stripped.
func (s *Source) LineText(line uint32) string {
	start := s.lineStarts[line-1]
	end := s.Len()
	if int(line) < len(s.lineStarts) {
		end = s.lineStarts[line]
	}
	text := s.text[start:end]
	if len(text) > 0 && text[len(text)-1] == '\n' {
		text = text[:len(text)-1]
	}
	return text
}

// IsNewlineAt reports whether the byte at pos is a newline.
func (s *Source) IsNewlineAt(pos uint32) bool {
	return pos < s.Len() && s.text[pos] == '\n'
}
