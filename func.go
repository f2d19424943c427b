package stream

// SourceFunc is a function that satisfies Source.
type SourceFunc func(p []byte) (n int, err error)

// Read implements Source.
func (f SourceFunc) Read(p []byte) (int, error) { return f(p) }

// SinkFunc is a function that satisfies Sink.
type SinkFunc func(p []byte) (n int, err error)

// Write implements Sink.
func (f SinkFunc) Write(p []byte) (int, error) { return f(p) }

// FlushFunc is a function that satisfies Flusher.
type FlushFunc func() error

// Flush implements Flusher.
func (f FlushFunc) Flush() error { return f() }

// SinkFlusher pairs a Sink with a Flusher, e.g. a SinkFunc with a FlushFunc.
type SinkFlusher struct {
	Sink
	Flusher
}

// Chunked limits every Read of r to at most n bytes. It is handy for
// exercising callers against sources that return short reads. If n is not
// positive, Chunked panics.
func Chunked(r Source, n int) Source {
	if n <= 0 {
		panic("stream: non-positive chunk size in Chunked")
	}
	return SourceFunc(func(p []byte) (int, error) {
		if len(p) > n {
			p = p[:n]
		}
		return r.Read(p)
	})
}
