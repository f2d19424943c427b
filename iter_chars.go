package stream

import (
	"fmt"
	"io"
	"iter"
	"unicode/utf8"
)

// CharError is the error CharDecoder yields. When Err is nil the bytes were
// not valid UTF-8 and Bytes holds the offending sequence; otherwise Err is
// the I/O error the source returned while the decoder was fetching bytes.
//
// errors.Is(err, ErrNotUTF8) distinguishes bad bytes from a failed medium.
type CharError struct {
	Bytes []byte
	Err   error
}

func (e *CharError) Error() string {
	if e.Err != nil {
		return "stream: reading utf8 sequence: " + e.Err.Error()
	}
	return fmt.Sprintf("%s: % x", ErrNotUTF8.Error(), e.Bytes)
}

func (e *CharError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotUTF8
}

// NotUTF8 reports whether the error is about the bytes rather than the medium.
func (e *CharError) NotUTF8() bool { return e.Err == nil }

// CharDecoder lazily decodes a source as UTF-8, one scalar value at a time.
// It consumes the source and cannot be restarted.
type CharDecoder struct {
	r   Source
	buf [utf8.UTFMax]byte
}

var _ io.RuneReader = (*CharDecoder)(nil)

// Chars returns a CharDecoder over r.
func Chars(r Source) *CharDecoder {
	return &CharDecoder{r: r}
}

// utf8Width returns the encoded width declared by a lead byte, or 0 when b
// cannot start a sequence.
func utf8Width(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b < 0xC2: // continuation bytes and overlong 2-byte leads
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF5:
		return 4
	default:
		return 0
	}
}

// ReadRune decodes the next scalar value and returns it with the number of
// bytes consumed. It returns io.EOF when the source ends between values and
// a *CharError otherwise. End-of-stream in the middle of a sequence is a
// decode error, not a truncation.
func (d *CharDecoder) ReadRune() (rune, int, error) {
	n, err := d.r.Read(d.buf[:1])
	if err != nil {
		return 0, 0, &CharError{Err: err}
	}
	if n == 0 {
		return 0, 0, io.EOF
	}

	width := utf8Width(d.buf[0])
	switch width {
	case 0:
		return 0, 1, &CharError{Bytes: []byte{d.buf[0]}}
	case 1:
		return rune(d.buf[0]), 1, nil
	}

	// The source may hand back fewer continuation bytes than asked for.
	for start := 1; start < width; {
		n, err := d.r.Read(d.buf[start:width])
		if err != nil {
			return 0, start, &CharError{Err: err}
		}
		if n < 0 || n > width-start {
			return 0, start, &CharError{Err: ErrInvalidRead}
		}
		if n == 0 {
			return 0, start, &CharError{Bytes: clone(d.buf[:start])}
		}
		start += n
	}

	r, size := utf8.DecodeRune(d.buf[:width])
	if size != width {
		return 0, width, &CharError{Bytes: clone(d.buf[:width])}
	}
	return r, width, nil
}

// All returns an iterator over the remaining scalar values. Decode errors are
// yielded and iteration continues with the next byte; iteration ends at
// end-of-stream or right after yielding an I/O error.
func (d *CharDecoder) All() iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for {
			r, _, err := d.ReadRune()
			if err == io.EOF {
				return
			}
			if !yield(r, err) {
				return
			}
			if ce, ok := err.(*CharError); ok && !ce.NotUTF8() {
				return
			}
		}
	}
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
