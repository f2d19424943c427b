package stream

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// clampLen returns n capped to limit without overflowing either type.
func clampLen[L constraints.Unsigned](n int, limit L) int {
	if n <= 0 {
		return 0
	}
	if uint64(limit) < uint64(n) {
		return int(limit)
	}
	return n
}

// Copy copies src to dst until src reports end-of-stream, and returns the
// number of bytes copied. The first read or write failure aborts the copy;
// the count is only meaningful on success, so on failure Copy returns 0.
func Copy(dst Sink, src Source) (int64, error) {
	bufPtr := chunkPool.Get().(*[]byte)
	defer chunkPool.Put(bufPtr)
	return copyBuffer(dst, src, *bufPtr)
}

// CopyBuffer is like Copy but stages through buf. If buf is nil a pooled
// DefaultBufSize buffer is used. If buf has zero length, CopyBuffer panics.
func CopyBuffer(dst Sink, src Source, buf []byte) (int64, error) {
	if buf == nil {
		return Copy(dst, src)
	}
	if len(buf) == 0 {
		panic("stream: empty buffer in CopyBuffer")
	}
	return copyBuffer(dst, src, buf)
}

func copyBuffer(dst Sink, src Source, buf []byte) (int64, error) {
	var written int64
	for {
		n, err := src.Read(buf)
		if err != nil {
			return 0, err
		}
		if n < 0 || n > len(buf) {
			return 0, ErrInvalidRead
		}
		if n == 0 {
			return written, nil
		}
		if err := WriteAll(dst, buf[:n]); err != nil {
			return 0, err
		}
		written += int64(n)
	}
}

// DrainToEnd reads src into the spare capacity of *buf until end-of-stream,
// growing it by DefaultBufSize whenever it is full, and returns the number
// of bytes appended. On a read error the bytes appended so far stay in *buf.
func DrainToEnd(src Source, buf *[]byte) (int64, error) {
	var total int64
	b := *buf
	defer func() { *buf = b }()

	for {
		if len(b) == cap(b) {
			b = slices.Grow(b, DefaultBufSize)
		}
		n, err := src.Read(b[len(b):cap(b)])
		if err != nil {
			return total, err
		}
		if n < 0 || n > cap(b)-len(b) {
			return total, ErrInvalidRead
		}
		if n == 0 {
			return total, nil
		}
		b = b[:len(b)+n]
		total += int64(n)
	}
}

// ReadAll drains src and returns everything it produced. On error the bytes
// read before the failure are returned along with it.
func ReadAll(src Source) ([]byte, error) {
	bb := drainPool.Get()
	defer drainPool.Put(bb)

	_, err := DrainToEnd(src, &bb.B)
	return clone(bb.B), err
}

// WriteFormat formats according to a fmt specifier and writes the result to
// s with WriteAll. The sink's own error is returned, not a formatting one.
func WriteFormat(s Sink, format string, args ...any) error {
	_, err := fmt.Fprintf(sinkWriter{s: s}, format, args...)
	return err
}

// Skip reads and discards up to n bytes of src and returns how many it
// skipped; fewer than n means src ended.
func Skip(src Source, n uint64) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	if bs, ok := src.(BufferedSource); ok {
		return skipBuffered(bs, n)
	}
	bufPtr := chunkPool.Get().(*[]byte)
	defer chunkPool.Put(bufPtr)
	buf := *bufPtr

	var skipped uint64
	for skipped < n {
		read, err := src.Read(buf[:clampLen(len(buf), n-skipped)])
		if err != nil {
			return skipped, err
		}
		if read == 0 {
			break
		}
		skipped += uint64(read)
	}
	return skipped, nil
}

func skipBuffered(bs BufferedSource, n uint64) (uint64, error) {
	var skipped uint64
	for skipped < n {
		b, err := bs.FillBuf()
		if err != nil {
			return skipped, err
		}
		if len(b) == 0 {
			break
		}
		amt := clampLen(len(b), n-skipped)
		bs.Consume(amt)
		skipped += uint64(amt)
	}
	return skipped, nil
}

type empty struct{}

func (empty) Read([]byte) (int, error) { return 0, nil }

// Empty returns a Source that is always at end-of-stream.
func Empty() Source { return empty{} }

type repeat struct{ b byte }

func (r repeat) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.b
	}
	return len(p), nil
}

// Repeat returns a Source that yields b forever.
func Repeat(b byte) Source { return repeat{b: b} }

// Zero is a Source that reads an infinite stream of zero bytes.
var Zero Source = zero{}

type zero struct{}

func (zero) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

type discardSink struct{}

func (discardSink) Write(p []byte) (int, error) { return len(p), nil }

// Discard returns a Sink that accepts and drops everything.
func Discard() Sink { return discardSink{} }
