package stream

// BroadcastSink writes to a primary sink and mirrors what the primary
// accepted into a secondary sink.
type BroadcastSink struct {
	Primary   Sink
	Secondary Sink
}

// Broadcast returns a BroadcastSink over primary and secondary.
func Broadcast(primary, secondary Sink) *BroadcastSink {
	return &BroadcastSink{Primary: primary, Secondary: secondary}
}

// Write implements Sink. The secondary receives exactly the n bytes the
// primary absorbed, never more.
func (b *BroadcastSink) Write(p []byte) (int, error) {
	n, err := b.Primary.Write(p)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > len(p) {
		return 0, ErrInvalidWrite
	}
	if err := WriteAll(b.Secondary, p[:n]); err != nil {
		return 0, err
	}
	return n, nil
}

// Flush implements Flusher. Both sinks are flushed, primary first; the
// first failure is returned.
func (b *BroadcastSink) Flush() error {
	err := Flush(b.Primary)
	if err2 := Flush(b.Secondary); err == nil {
		err = err2
	}
	return err
}
