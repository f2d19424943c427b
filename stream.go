// Package stream is a small streaming byte I/O core: capability contracts
// for byte sources and sinks, in-memory seekable cursors, adaptors that
// compose them, lazy byte and UTF-8 decoders, and copy helpers.
package stream

// Source is a byte-oriented source.
//
// Read fills p with up to len(p) bytes and returns how many it produced.
// A return of (0, nil) is end-of-stream; callers treat it as permanent. An
// implementation that cannot produce bytes right now must return an error
// rather than (0, nil). Bytes of p beyond n carry no meaning.
//
// Unlike io.Reader, a Source never reports end-of-stream through io.EOF.
// Use FromReader and ToReader to cross between the two contracts.
type Source interface {
	Read(p []byte) (n int, err error)
}

// Sink is a byte-oriented sink.
//
// Write consumes as much of p as it can in a single attempt. A count below
// len(p) is a legitimate partial write, not an error. A non-nil error means
// none of p was consumed.
type Sink interface {
	Write(p []byte) (n int, err error)
}

// Flusher is implemented by sinks that buffer internally. Flush guarantees
// that every byte previously accepted by Write has reached the medium.
type Flusher interface {
	Flush() error
}

// Seeker moves a stream's position. Seeking past the logical end is legal;
// seeking below zero fails with ErrInvalidSeek.
type Seeker interface {
	Seek(target SeekTarget) (uint64, error)
}

// BufferedSource exposes its internal buffer to avoid an extra copy.
//
// FillBuf returns the buffered, unconsumed bytes without consuming them; an
// empty slice means end-of-stream. Consume marks n of those bytes as read;
// n must not exceed the length of the last FillBuf result.
type BufferedSource interface {
	Source
	FillBuf() ([]byte, error)
	Consume(n int)
}

// SeekSource is a Source that can also seek.
type SeekSource interface {
	Source
	Seeker
}

// SeekSink is a Sink that can also seek.
type SeekSink interface {
	Sink
	Seeker
}

// Flush flushes s if it implements Flusher and is a no-op otherwise.
func Flush(s Sink) error {
	if f, ok := s.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// WriteAll writes the whole of p to s, calling Write on the unconsumed
// remainder until nothing is left. A Write that returns 0 while bytes remain
// fails with ErrEndOfStream instead of looping forever.
func WriteAll(s Sink, p []byte) error {
	for len(p) > 0 {
		n, err := s.Write(p)
		if err != nil {
			return err
		}
		if n < 0 || n > len(p) {
			return ErrInvalidWrite
		}
		if n == 0 {
			return ErrEndOfStream
		}
		p = p[n:]
	}
	return nil
}
