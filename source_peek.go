package stream

const (
	defaultPeekSize = 4096
	minPeekSize     = 16
)

// PeekSource gives any Source the BufferedSource capability by reading
// ahead into an internal buffer.
type PeekSource struct {
	R    Source // underlying source
	buf  []byte
	r, w int // read and write offsets into buf
}

var _ BufferedSource = (*PeekSource)(nil)

// Peek returns a PeekSource over r with a default-sized buffer. If r is
// already a PeekSource it is returned directly.
func Peek(r Source) *PeekSource {
	return PeekSize(r, defaultPeekSize)
}

// PeekSize returns a PeekSource over r whose buffer holds at least size
// bytes. An existing PeekSource with a large enough buffer is reused.
func PeekSize(r Source, size int) *PeekSource {
	if pr, ok := r.(*PeekSource); ok && len(pr.buf) >= size {
		return pr
	}
	if size < minPeekSize {
		size = minPeekSize
	}
	return &PeekSource{R: r, buf: make([]byte, size)}
}

// Buffered returns the number of bytes that can be read without touching
// the underlying source.
func (p *PeekSource) Buffered() int { return p.w - p.r }

// Size returns the size of the internal buffer.
func (p *PeekSource) Size() int { return len(p.buf) }

// FillBuf implements BufferedSource. The underlying source is read only when
// nothing is buffered.
func (p *PeekSource) FillBuf() ([]byte, error) {
	if p.r == p.w {
		p.r, p.w = 0, 0
		n, err := p.R.Read(p.buf)
		if err != nil {
			return nil, err
		}
		if n < 0 || n > len(p.buf) {
			return nil, ErrInvalidRead
		}
		p.w = n
	}
	return p.buf[p.r:p.w], nil
}

// Consume implements BufferedSource. Consuming more than is buffered stops at
// the end of the buffer.
func (p *PeekSource) Consume(n int) {
	if n <= 0 {
		return
	}
	p.r = min(p.r+n, p.w)
}

// Read implements Source. Buffered bytes are returned first; reads at least
// as large as the buffer bypass it once it is empty.
func (p *PeekSource) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if p.r == p.w {
		if len(b) >= len(p.buf) {
			return p.R.Read(b)
		}
		if _, err := p.FillBuf(); err != nil {
			return 0, err
		}
	}
	n := copy(b, p.buf[p.r:p.w])
	p.r += n
	return n, nil
}

// Peek returns the next n bytes without consuming them. Fewer bytes are
// returned if the source ends first. A negative n fails with
// ErrNegativeCount and n larger than the buffer with ErrPeekTooLarge. On a
// read error the bytes gathered so far are returned with it; they stay
// buffered.
func (p *PeekSource) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n > len(p.buf) {
		return nil, ErrPeekTooLarge
	}
	for p.w-p.r < n {
		// Slide the unread bytes to the front to make room.
		if p.r > 0 {
			copy(p.buf, p.buf[p.r:p.w])
			p.w -= p.r
			p.r = 0
		}
		read, err := p.R.Read(p.buf[p.w:])
		if err != nil {
			return p.buf[p.r:p.w], err
		}
		if read < 0 || read > len(p.buf)-p.w {
			return p.buf[p.r:p.w], ErrInvalidRead
		}
		if read == 0 {
			break
		}
		p.w += read
	}
	return p.buf[p.r:min(p.r+n, p.w)], nil
}
