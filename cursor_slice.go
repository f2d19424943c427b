package stream

// SliceCursor is an in-memory stream over a mutable, fixed-length byte
// slice. Writes never grow the slice; once the position reaches the end
// Write reports 0 bytes written.
type SliceCursor struct{ cursor }

var _ interface {
	BufferedSource
	Sink
	Seeker
} = (*SliceCursor)(nil)

// NewSliceCursor creates a SliceCursor over b positioned at 0.
func NewSliceCursor(b []byte) *SliceCursor {
	return &SliceCursor{cursor{b: b}}
}

// Write implements Sink. It copies as much of p as fits between the position
// and the end of the slice. No room is not an error.
func (c *SliceCursor) Write(p []byte) (int, error) {
	if c.pos >= uint64(len(c.b)) {
		return 0, nil
	}
	n := copy(c.b[c.pos:], p)
	c.pos += uint64(n)
	return n, nil
}

// Reset rewinds the cursor so the slice can be reused.
func (c *SliceCursor) Reset() { c.pos = 0 }

// Written returns the bytes between the start of the slice and the position.
func (c *SliceCursor) Written() []byte {
	if c.pos >= uint64(len(c.b)) {
		return c.b
	}
	return c.b[:c.pos]
}
