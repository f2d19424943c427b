package stream

import "github.com/rs/zerolog"

// TracedSource logs every Read of R at debug level.
type TracedSource struct {
	R   Source
	log zerolog.Logger
}

// TraceSource wraps r so each Read emits one debug event on log.
func TraceSource(r Source, log zerolog.Logger) *TracedSource {
	return &TracedSource{R: r, log: log}
}

// Read implements Source.
func (t *TracedSource) Read(p []byte) (int, error) {
	n, err := t.R.Read(p)
	t.log.Debug().
		Str("op", "read").
		Int("len", len(p)).
		Int("n", n).
		Bool("eof", n == 0 && err == nil && len(p) > 0).
		Err(err).
		Msg("stream")
	return n, err
}

// TracedSink logs every Write and Flush of W at debug level.
type TracedSink struct {
	W   Sink
	log zerolog.Logger
}

// TraceSink wraps w so each Write and Flush emits one debug event on log.
func TraceSink(w Sink, log zerolog.Logger) *TracedSink {
	return &TracedSink{W: w, log: log}
}

// Write implements Sink.
func (t *TracedSink) Write(p []byte) (int, error) {
	n, err := t.W.Write(p)
	t.log.Debug().
		Str("op", "write").
		Int("len", len(p)).
		Int("n", n).
		Err(err).
		Msg("stream")
	return n, err
}

// Flush implements Flusher.
func (t *TracedSink) Flush() error {
	err := Flush(t.W)
	t.log.Debug().Str("op", "flush").Err(err).Msg("stream")
	return err
}
