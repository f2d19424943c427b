package stream

import (
	"fmt"
	"math"
	"slices"
)

// BufferCursor is an in-memory stream over a growable buffer it owns.
//
// Writing at the end appends. Writing after a seek past the end first
// zero-fills the gap. Writing inside the buffer overwrites in place and
// appends whatever does not fit.
type BufferCursor struct{ cursor }

var _ interface {
	BufferedSource
	Sink
	Seeker
} = (*BufferCursor)(nil)

// NewBufferCursor creates a BufferCursor that takes ownership of b and is
// positioned at 0. A nil b starts an empty buffer.
func NewBufferCursor(b []byte) *BufferCursor {
	return &BufferCursor{cursor{b: b}}
}

// Write implements Sink. It always consumes the whole of p and advances the
// position by len(p).
func (c *BufferCursor) Write(p []byte) (int, error) {
	if c.pos > math.MaxInt-uint64(len(p)) {
		return 0, fmt.Errorf("%w: write of %d bytes at %d", ErrTooLarge, len(p), c.pos)
	}
	pos := int(c.pos)
	size := len(c.b)

	switch {
	case pos == size:
		c.b = append(c.b, p...)
	case pos > size:
		c.zeroFill(pos)
		c.b = append(c.b, p...)
	default:
		// overlay what fits, append the tail
		n := copy(c.b[pos:], p)
		c.b = append(c.b, p[n:]...)
	}

	c.pos += uint64(len(p))
	return len(p), nil
}

// zeroFill grows the buffer to n bytes, all new bytes zero.
func (c *BufferCursor) zeroFill(n int) {
	size := len(c.b)
	c.b = slices.Grow(c.b, n-size)[:n]
	clear(c.b[size:])
}

// Reset empties the buffer, keeping its capacity, and rewinds the position.
func (c *BufferCursor) Reset() {
	c.b = c.b[:0]
	c.pos = 0
}

// Truncate discards all bytes after the first n. The position is left alone.
func (c *BufferCursor) Truncate(n int) {
	if n < 0 || n > len(c.b) {
		panic("stream: BufferCursor.Truncate out of range")
	}
	c.b = c.b[:n]
}
