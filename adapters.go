package stream

import "io"

// A Read that keeps returning (0, nil) is given up on after this many tries.
const maxConsecutiveEmptyReads = 100

// readerSource adapts an io.Reader. io.EOF becomes end-of-stream; an error
// delivered together with data is held back until the next call so the data
// is not lost.
type readerSource struct {
	r   io.Reader
	err error
}

// FromReader adapts an io.Reader (a file, a connection, a bytes.Reader) to
// the Source contract.
func FromReader(r io.Reader) Source {
	if r == nil {
		panic("stream: FromReader called with a nil io.Reader")
	}
	if sr, ok := r.(sourceReader); ok {
		return sr.s
	}
	return &readerSource{r: r}
}

// Read implements Source.
func (s *readerSource) Read(p []byte) (int, error) {
	if s.err != nil {
		err := s.err
		s.err = nil
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	for range maxConsecutiveEmptyReads {
		n, err := s.r.Read(p)
		if n < 0 || n > len(p) {
			return 0, ErrInvalidRead
		}
		switch {
		case err == io.EOF:
			return n, nil
		case err != nil && n > 0:
			s.err = err
			return n, nil
		case err != nil:
			return 0, err
		case n > 0:
			return n, nil
		}
	}
	return 0, io.ErrNoProgress
}

type readSeekerSource struct {
	readerSource
	s io.Seeker
}

// FromReadSeeker adapts an io.ReadSeeker to a SeekSource.
func FromReadSeeker(rs io.ReadSeeker) SeekSource {
	if rs == nil {
		panic("stream: FromReadSeeker called with a nil io.ReadSeeker")
	}
	return &readSeekerSource{readerSource: readerSource{r: rs}, s: rs}
}

// Seek implements Seeker.
func (s *readSeekerSource) Seek(t SeekTarget) (uint64, error) {
	offset, whence, err := ioSeekArgs(t)
	if err != nil {
		return 0, err
	}
	pos, err := s.s.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	if pos < 0 {
		return 0, ErrInvalidSeek
	}
	s.err = nil
	return uint64(pos), nil
}

// writerSink adapts an io.Writer. A short write that comes with an error
// reports the count now and the error on the next call.
type writerSink struct {
	w   io.Writer
	err error
}

// FromWriter adapts an io.Writer to the Sink contract. Flush is forwarded to
// the writer when it has a Flush() error method (bufio.Writer does).
func FromWriter(w io.Writer) Sink {
	if w == nil {
		panic("stream: FromWriter called with a nil io.Writer")
	}
	if sw, ok := w.(sinkWriter); ok {
		return sw.s
	}
	return &writerSink{w: w}
}

// Write implements Sink.
func (s *writerSink) Write(p []byte) (int, error) {
	if s.err != nil {
		err := s.err
		s.err = nil
		return 0, err
	}
	n, err := s.w.Write(p)
	if n < 0 || n > len(p) {
		return 0, ErrInvalidWrite
	}
	if err != nil {
		if n > 0 {
			s.err = err
			return n, nil
		}
		return 0, err
	}
	return n, nil
}

// Flush implements Flusher.
func (s *writerSink) Flush() error {
	if s.err != nil {
		err := s.err
		s.err = nil
		return err
	}
	if f, ok := s.w.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// sourceReader presents a Source as an io.Reader.
type sourceReader struct{ s Source }

// ToReader presents a Source as an io.Reader: end-of-stream becomes io.EOF.
func ToReader(s Source) io.Reader {
	if rs, ok := s.(*readerSource); ok && rs.err == nil {
		return rs.r
	}
	return sourceReader{s: s}
}

func (r sourceReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := r.s.Read(p)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// sinkWriter presents a Sink as an io.Writer.
type sinkWriter struct{ s Sink }

// ToWriter presents a Sink as an io.Writer. Each Write drives the sink until
// p is consumed, so a sink that stops accepting bytes surfaces as
// ErrEndOfStream together with the count written so far.
func ToWriter(s Sink) io.Writer {
	if ws, ok := s.(*writerSink); ok && ws.err == nil {
		return ws.w
	}
	return sinkWriter{s: s}
}

func (w sinkWriter) Write(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		n, err := w.s.Write(p[written:])
		if err != nil {
			return written, err
		}
		if n < 0 || n > len(p)-written {
			return written, ErrInvalidWrite
		}
		if n == 0 {
			return written, ErrEndOfStream
		}
		written += n
	}
	return written, nil
}

// Flush lets bufio-style callers flush through to the sink.
func (w sinkWriter) Flush() error { return Flush(w.s) }
