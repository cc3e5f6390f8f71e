package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"druim/internal/source"
)

// Cursor is a byte position inside the source text.
type Cursor struct {
	src   string
	Off   uint32
	limit uint32
}

// NewCursor creates a cursor at the start of src.
func NewCursor(src *source.Source) Cursor {
	limit, err := safecast.Conv[uint32](len(src.Text()))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return Cursor{src: src.Text(), Off: 0, limit: limit}
}

// EOF reports whether the cursor has consumed all input.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.src[c.Off]
}

// Peek2 reads the current and next byte; ok is false when fewer than
// two bytes remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit {
		return 0, 0, false
	}
	return c.src[c.Off], c.src[c.Off+1], true
}

// Bump advances one byte and returns it, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.Off]
	c.Off++
	return b
}

// Mark remembers a position so a span can be cut later.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from the mark to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.Off}
}

// Slice returns the text between the mark and the current position.
func (c *Cursor) Slice(m Mark) string {
	return c.src[uint32(m):c.Off]
}
