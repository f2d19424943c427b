package stream

// cursor holds the position and seek logic shared by the three cursor kinds.
// The storage is either caller-provided (Cursor, SliceCursor) or owned by the
// cursor (BufferCursor); callers must not mutate a borrowed slice through
// another alias while the cursor is in use.
type cursor struct {
	b   []byte // storage
	pos uint64 // current position, may exceed len(b)
}

// Position returns the current position.
func (c *cursor) Position() uint64 { return c.pos }

// SetPosition moves the cursor to pos without touching the storage.
func (c *cursor) SetPosition(pos uint64) { c.pos = pos }

// Bytes returns the underlying storage.
func (c *cursor) Bytes() []byte { return c.b }

// Len returns the length of the underlying storage.
func (c *cursor) Len() int { return len(c.b) }

// Remaining returns the number of bytes between the position and the end of
// the storage.
func (c *cursor) Remaining() int {
	if c.pos >= uint64(len(c.b)) {
		return 0
	}
	return len(c.b) - int(c.pos)
}

// Read implements Source. A position past the end reads as end-of-stream.
func (c *cursor) Read(p []byte) (int, error) {
	if c.pos > uint64(len(c.b)) {
		return 0, nil
	}
	n := copy(p, c.b[c.pos:])
	c.pos += uint64(n)
	return n, nil
}

// Seek implements Seeker. The position may legally exceed the storage length.
func (c *cursor) Seek(t SeekTarget) (uint64, error) {
	pos, err := t.Resolve(c.pos, uint64(len(c.b)))
	if err != nil {
		return c.pos, err
	}
	c.pos = pos
	return pos, nil
}

// FillBuf implements BufferedSource by exposing storage[position:].
func (c *cursor) FillBuf() ([]byte, error) {
	if c.pos < uint64(len(c.b)) {
		return c.b[c.pos:], nil
	}
	return nil, nil
}

// Consume implements BufferedSource.
func (c *cursor) Consume(n int) {
	if n > 0 {
		c.pos += uint64(n)
	}
}

// Cursor is a read-only in-memory stream over a fixed byte slice.
type Cursor struct{ cursor }

var _ interface {
	BufferedSource
	Seeker
} = (*Cursor)(nil)

// NewCursor creates a Cursor over b positioned at 0.
func NewCursor(b []byte) *Cursor {
	return &Cursor{cursor{b: b}}
}
