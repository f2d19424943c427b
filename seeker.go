package stream

import "fmt"

// forwardSeeker wraps a Source, adding a forward-only Seek capability. It
// simulates seeking by reading and discarding data.
type forwardSeeker struct {
	r      Source
	offset uint64
}

// ForwardSeeker wraps r to make it a forward-only SeekSource.
// If r can already seek, it is returned directly.
func ForwardSeeker(r Source) SeekSource {
	if r == nil {
		panic("stream: ForwardSeeker called with a nil Source")
	}
	if seeker, ok := r.(SeekSource); ok {
		return seeker
	}
	return &forwardSeeker{r: r}
}

// Read implements Source.
func (s *forwardSeeker) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err == nil && n > 0 {
		s.offset += uint64(n)
	}
	return n, err
}

// Seek provides forward-only seeking from the start or the current
// position. A backward seek fails with ErrUnsupportedNegativeSeek and
// FromEnd with ErrInvalidWhence. Seeking stops early, without error, if the
// source ends first; the returned position says where it stopped.
func (s *forwardSeeker) Seek(t SeekTarget) (uint64, error) {
	var skip uint64

	switch t.Whence {
	case SeekCurrent:
		if t.Offset < 0 {
			return s.offset, fmt.Errorf("%w: %s", ErrUnsupportedNegativeSeek, t)
		}
		skip = uint64(t.Offset)
	case SeekStart:
		if t.Start < s.offset {
			return s.offset, fmt.Errorf("%w: cannot seek from start to %d (current: %d)", ErrUnsupportedNegativeSeek, t.Start, s.offset)
		}
		skip = t.Start - s.offset
	default:
		return s.offset, fmt.Errorf("%w: %s is not supported by a forward-only seeker", ErrInvalidWhence, t.Whence)
	}

	skipped, err := Skip(s.r, skip)
	s.offset += skipped
	return s.offset, err
}
