package stream

import "errors"

var (
	// ErrEndOfStream indicates that WriteAll could not make progress: a Write
	// returned 0 while bytes were still pending.
	ErrEndOfStream = errors.New("stream: failed to write whole buffer: end of stream reached")

	// ErrInvalidSeek indicates a seek would have moved the position below zero
	// (or beyond the range of a uint64).
	ErrInvalidSeek = errors.New("stream: invalid seek to a negative position")

	// ErrUnsupportedNegativeSeek indicates a backward seek was attempted on a forward-only seeker.
	ErrUnsupportedNegativeSeek = errors.New("stream: unsupported negative offset for forward-only seeker")

	// ErrInvalidWhence indicates a seek target the seeker cannot interpret.
	ErrInvalidWhence = errors.New("stream: unsupported whence")

	// ErrInvalidWrite indicates that a sink returned an invalid (negative or outbound) count from Write.
	ErrInvalidWrite = errors.New("stream: sink returned invalid count from Write")

	// ErrInvalidRead indicates that a source returned an invalid (negative or outbound) count from Read.
	ErrInvalidRead = errors.New("stream: source returned invalid count from Read")

	// ErrNotUTF8 is the decode error family of CharDecoder.
	ErrNotUTF8 = errors.New("stream: byte stream did not contain valid utf8")
)

// ErrTooLarge indicates a BufferCursor write would need more memory than a slice can address.
var ErrTooLarge = errors.New("stream: buffer cursor too large")

// ErrPeekTooLarge indicates a Peek larger than the PeekSource buffer.
var ErrPeekTooLarge = errors.New("stream: peek larger than buffer")

// ErrNegativeCount indicates a negative count passed to Peek.
var ErrNegativeCount = errors.New("stream: negative count")
