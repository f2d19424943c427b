//go:build test

package stream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunked(t *testing.T) {
	t.Run("CapsEveryRead", func(t *testing.T) {
		r := Chunked(NewCursor([]byte("abcdefg")), 3)
		buf := make([]byte, 10)
		for _, want := range []string{"abc", "def", "g", ""} {
			n, err := r.Read(buf)
			assert.NoError(t, err)
			assert.Equal(t, want, string(buf[:n]))
		}
	})

	t.Run("NonPositiveSizePanics", func(t *testing.T) {
		assert.Panics(t, func() { Chunked(Empty(), 0) })
		assert.Panics(t, func() { Chunked(Empty(), -1) })
	})
}

func TestChainedSource_LatchIsReadOnly(t *testing.T) {
	c := Chain(NewCursor([]byte("a")), NewCursor([]byte("b")))
	assert.False(t, c.DoneFirst())
	assert.Equal(t, "ab", string(drain(t, c, 1)))
	assert.True(t, c.DoneFirst())

	first, second := c.Parts()
	assert.NotNil(t, first)
	assert.NotNil(t, second)
}
