package stream

// TeeSource mirrors every byte read from R into W.
type TeeSource struct {
	R Source
	W Sink
}

// Tee returns a TeeSource that writes to w everything it reads from r.
func Tee(r Source, w Sink) *TeeSource {
	return &TeeSource{R: r, W: w}
}

// Read implements Source. The bytes read are written in full to W before
// Read returns.
//
// If that write fails the failure is returned as the read's error and the
// count is 0, even though the bytes were already taken from R and sit in p.
// They are lost to the caller.
func (t *TeeSource) Read(p []byte) (int, error) {
	n, err := t.R.Read(p)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > len(p) {
		return 0, ErrInvalidRead
	}
	if err := WriteAll(t.W, p[:n]); err != nil {
		return 0, err
	}
	return n, nil
}
