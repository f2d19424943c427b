package stream

import "github.com/puzpuzpuz/xsync/v4"

// MeteredSource counts the bytes and calls that pass through R. The counters
// may be read from other goroutines while the owner keeps reading.
type MeteredSource struct {
	R     Source
	bytes *xsync.Counter
	calls *xsync.Counter
}

// MeterSource wraps r with byte and call counters.
func MeterSource(r Source) *MeteredSource {
	return &MeteredSource{R: r, bytes: xsync.NewCounter(), calls: xsync.NewCounter()}
}

// Read implements Source.
func (m *MeteredSource) Read(p []byte) (int, error) {
	n, err := m.R.Read(p)
	m.calls.Inc()
	if err == nil && n > 0 {
		m.bytes.Add(int64(n))
	}
	return n, err
}

// Count returns the number of bytes read so far.
func (m *MeteredSource) Count() int64 { return m.bytes.Value() }

// Calls returns the number of Read calls so far.
func (m *MeteredSource) Calls() int64 { return m.calls.Value() }

// MeteredSink counts the bytes and calls that pass through W.
type MeteredSink struct {
	W     Sink
	bytes *xsync.Counter
	calls *xsync.Counter
}

// MeterSink wraps w with byte and call counters.
func MeterSink(w Sink) *MeteredSink {
	return &MeteredSink{W: w, bytes: xsync.NewCounter(), calls: xsync.NewCounter()}
}

// Write implements Sink.
func (m *MeteredSink) Write(p []byte) (int, error) {
	n, err := m.W.Write(p)
	m.calls.Inc()
	if err == nil && n > 0 {
		m.bytes.Add(int64(n))
	}
	return n, err
}

// Flush implements Flusher.
func (m *MeteredSink) Flush() error { return Flush(m.W) }

// Count returns the number of bytes accepted so far.
func (m *MeteredSink) Count() int64 { return m.bytes.Value() }

// Calls returns the number of Write calls so far.
func (m *MeteredSink) Calls() int64 { return m.calls.Value() }
