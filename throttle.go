package stream

import "github.com/juju/ratelimit"

// ThrottledSource limits the rate at which bytes are read from R. Each byte
// read costs one token from Bucket; Read blocks until the bucket has paid
// for what was returned.
type ThrottledSource struct {
	R      Source
	Bucket *ratelimit.Bucket
}

// Throttle returns a ThrottledSource over r charging b. A bucket may be
// shared between several sources and sinks to cap their combined rate.
func Throttle(r Source, b *ratelimit.Bucket) *ThrottledSource {
	return &ThrottledSource{R: r, Bucket: b}
}

// Read implements Source.
func (t *ThrottledSource) Read(p []byte) (int, error) {
	n, err := t.R.Read(p)
	if err == nil && n > 0 {
		t.Bucket.Wait(int64(n))
	}
	return n, err
}

// ThrottledSink limits the rate at which bytes are accepted by W. Only the
// bytes W actually accepted are charged, so partial writes cost less.
type ThrottledSink struct {
	W      Sink
	Bucket *ratelimit.Bucket
}

// ThrottleSink returns a ThrottledSink over w charging b.
func ThrottleSink(w Sink, b *ratelimit.Bucket) *ThrottledSink {
	return &ThrottledSink{W: w, Bucket: b}
}

// Write implements Sink.
func (t *ThrottledSink) Write(p []byte) (int, error) {
	n, err := t.W.Write(p)
	if err == nil && n > 0 {
		t.Bucket.Wait(int64(n))
	}
	return n, err
}

// Flush implements Flusher.
func (t *ThrottledSink) Flush() error { return Flush(t.W) }
