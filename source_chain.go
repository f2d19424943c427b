package stream

// ChainedSource reads a first source to its end, then a second one.
//
// The switch is a one-way latch: once the first source reports
// end-of-stream it is never consulted again.
type ChainedSource struct {
	First     Source
	Second    Source
	doneFirst bool
}

// Chain returns a ChainedSource yielding first's bytes followed by second's.
func Chain(first, second Source) *ChainedSource {
	return &ChainedSource{First: first, Second: second}
}

// Read implements Source. A single call may bridge the boundary: when the
// first source reports end-of-stream the same call reads from the second.
func (c *ChainedSource) Read(p []byte) (int, error) {
	if !c.doneFirst {
		n, err := c.First.Read(p)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
		c.doneFirst = true
	}
	return c.Second.Read(p)
}

// Parts returns the two chained sources.
func (c *ChainedSource) Parts() (first, second Source) {
	return c.First, c.Second
}

// DoneFirst reports whether the first source has reached its end.
func (c *ChainedSource) DoneFirst() bool { return c.doneFirst }
