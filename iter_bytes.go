package stream

import (
	"io"
	"iter"
)

// ByteIterator lazily yields the bytes of a source one at a time.
// It consumes the source and cannot be restarted.
type ByteIterator struct {
	r   Source
	one [1]byte
}

var _ io.ByteReader = (*ByteIterator)(nil)

// Bytes returns a ByteIterator over r.
func Bytes(r Source) *ByteIterator {
	return &ByteIterator{r: r}
}

// ReadByte returns the next byte, io.EOF once the source reports
// end-of-stream, or the source's error. What follows an error is up to the
// source.
func (it *ByteIterator) ReadByte() (byte, error) {
	// Peek straight into the source's buffer when it has one.
	if br, ok := it.r.(BufferedSource); ok {
		b, err := br.FillBuf()
		if err != nil {
			return 0, err
		}
		if len(b) == 0 {
			return 0, io.EOF
		}
		c := b[0]
		br.Consume(1)
		return c, nil
	}

	n, err := it.r.Read(it.one[:])
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return it.one[0], nil
}

// All returns an iterator over the remaining bytes. Iteration ends at
// end-of-stream, or right after yielding the first error.
func (it *ByteIterator) All() iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for {
			b, err := it.ReadByte()
			if err == io.EOF {
				return
			}
			if !yield(b, err) || err != nil {
				return
			}
		}
	}
}
