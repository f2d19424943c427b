package stream

// BoundedSource reads from an inner source until a byte quota runs out.
type BoundedSource struct {
	R Source // underlying source
	N uint64 // remaining quota
}

// Take returns a BoundedSource that yields at most n bytes of r.
func Take(r Source, n uint64) *BoundedSource {
	return &BoundedSource{R: r, N: n}
}

// Read implements Source. Once the quota reaches 0 every read is
// end-of-stream, whatever the inner source still holds. The quota only
// shrinks by the bytes actually returned.
func (l *BoundedSource) Read(p []byte) (int, error) {
	if l.N == 0 {
		return 0, nil
	}
	p = p[:clampLen(len(p), l.N)]
	n, err := l.R.Read(p)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > len(p) {
		return 0, ErrInvalidRead
	}
	l.N -= uint64(n)
	return n, nil
}

// Limit returns the remaining quota.
func (l *BoundedSource) Limit() uint64 { return l.N }

// SetLimit replaces the remaining quota.
func (l *BoundedSource) SetLimit(n uint64) { l.N = n }
