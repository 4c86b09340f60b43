package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"velox/internal/source"
)

// Cursor is a byte position inside one source text.
type Cursor struct {
	file  *source.File
	off   uint32
	limit uint32
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return Cursor{file: f, off: 0, limit: limit}
}

// EOF reports whether the cursor reached the end of the file.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek reads the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.off]
}

// PeekAt reads the byte n positions ahead, or 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.off+n >= c.limit {
		return 0
	}
	return c.file.Content[c.off+n]
}

// Bump advances one byte and returns it, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	return b
}

// Eat advances past b if it is the current byte.
func (c *Cursor) Eat(b byte) bool {
	if c.Peek() != b {
		return false
	}
	c.off++
	return true
}

// Mark returns the current offset for later SpanFrom.
func (c *Cursor) Mark() uint32 {
	return c.off
}

// SpanFrom builds the span from a mark to the current offset.
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{Start: start, End: c.off}
}
