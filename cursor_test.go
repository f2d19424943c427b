//go:build test

package stream

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- BufferCursor Test Suite ---

type BufferCursorTestSuite struct {
	suite.Suite
	c *BufferCursor
}

func (s *BufferCursorTestSuite) SetupTest() {
	s.c = NewBufferCursor(nil)
}

func (s *BufferCursorTestSuite) write(p []byte) int {
	n, err := s.c.Write(p)
	s.Require().NoError(err)
	return n
}

func (s *BufferCursorTestSuite) seek(t SeekTarget) uint64 {
	pos, err := s.c.Seek(t)
	s.Require().NoError(err)
	return pos
}

func (s *BufferCursorTestSuite) TestSequentialWrites() {
	s.Assert().Equal(1, s.write([]byte{0}))
	s.Assert().Equal(3, s.write([]byte{1, 2, 3}))
	s.Assert().Equal(4, s.write([]byte{4, 5, 6, 7}))

	s.Assert().Equal([]byte{0, 1, 2, 3, 4, 5, 6, 7}, s.c.Bytes())
	s.Assert().EqualValues(8, s.c.Position())
}

func (s *BufferCursorTestSuite) TestOverwriteAndExtend() {
	s.write([]byte{0, 1, 2, 3, 4, 5, 6, 7})

	s.Assert().EqualValues(0, s.seek(FromStart(0)))
	s.write([]byte{3, 4})
	s.Assert().Equal([]byte{3, 4, 2, 3, 4, 5, 6, 7}, s.c.Bytes())

	s.Assert().EqualValues(3, s.seek(FromCurrent(1)))
	s.write([]byte{0, 1})
	s.Assert().Equal([]byte{3, 4, 2, 0, 1, 5, 6, 7}, s.c.Bytes())

	// Overlay the last byte and append the rest.
	s.Assert().EqualValues(7, s.seek(FromEnd(-1)))
	s.write([]byte{1, 2})
	s.Assert().Equal([]byte{3, 4, 2, 0, 1, 5, 6, 1, 2}, s.c.Bytes())

	// Past the end: the gap is zero-filled.
	s.Assert().EqualValues(10, s.seek(FromEnd(1)))
	s.write([]byte{1})
	s.Assert().Equal([]byte{3, 4, 2, 0, 1, 5, 6, 1, 2, 0, 1}, s.c.Bytes())
	s.Assert().EqualValues(11, s.c.Position())
}

func (s *BufferCursorTestSuite) TestZeroFillGap() {
	s.write([]byte{9, 9, 9})
	s.seek(FromStart(3 + 5))
	s.write([]byte{1, 2, 3})

	b := s.c.Bytes()
	s.Require().Len(b, 11)
	s.Assert().Equal(make([]byte, 5), b[3:8])
	s.Assert().Equal([]byte{1, 2, 3}, b[8:])
}

func (s *BufferCursorTestSuite) TestZeroFillReusesDirtyCapacity() {
	s.write([]byte{7, 7, 7, 7, 7, 7})
	s.c.Truncate(1)
	s.seek(FromStart(4))
	s.write([]byte{1})

	s.Assert().Equal([]byte{7, 0, 0, 0, 1}, s.c.Bytes())
}

func (s *BufferCursorTestSuite) TestSeekPastEndReadsEOF() {
	c := NewBufferCursor([]byte{10})
	pos, err := c.Seek(FromStart(10))
	s.Require().NoError(err)
	s.Assert().EqualValues(10, pos)

	n, err := c.Read(make([]byte, 1))
	s.Require().NoError(err)
	s.Assert().Zero(n)

	n, err = c.Write([]byte{3})
	s.Require().NoError(err)
	s.Assert().Equal(1, n)
}

func (s *BufferCursorTestSuite) TestSeekBeforeZero() {
	_, err := s.c.Seek(FromEnd(-1))
	s.Assert().ErrorIs(err, ErrInvalidSeek)
	s.Assert().EqualValues(0, s.c.Position(), "failed seek must not move the cursor")

	s.write([]byte{1, 2, 3})
	for n := int64(0); n >= -3; n-- {
		pos, err := s.c.Seek(FromEnd(n))
		s.Require().NoError(err)
		s.Assert().EqualValues(3+n, pos)
	}
	_, err = s.c.Seek(FromEnd(-4))
	s.Assert().ErrorIs(err, ErrInvalidSeek)
	_, err = s.c.Seek(FromCurrent(-1))
	s.Assert().ErrorIs(err, ErrInvalidSeek)
}

func (s *BufferCursorTestSuite) TestReset() {
	s.write([]byte{1, 2, 3})
	s.c.Reset()
	s.Assert().Zero(s.c.Len())
	s.Assert().Zero(s.c.Position())
}

func TestBufferCursor_WriteTooLarge(t *testing.T) {
	c := NewBufferCursor([]byte("abc"))
	c.SetPosition(math.MaxUint64)

	n, err := c.Write([]byte{1})
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Zero(t, n)
	assert.Equal(t, "abc", string(c.Bytes()), "storage untouched")
	assert.EqualValues(t, uint64(math.MaxUint64), c.Position())
}

func TestBufferCursor(t *testing.T) {
	suite.Run(t, new(BufferCursorTestSuite))
}

// --- Slice cursors ---

func TestSliceCursor_Write(t *testing.T) {
	buf := make([]byte, 9)
	c := NewSliceCursor(buf)

	write := func(p []byte) int {
		n, err := c.Write(p)
		require.NoError(t, err)
		return n
	}

	assert.EqualValues(t, 0, c.Position())
	assert.Equal(t, 1, write([]byte{0}))
	assert.EqualValues(t, 1, c.Position())
	assert.Equal(t, 3, write([]byte{1, 2, 3}))
	assert.Equal(t, 4, write([]byte{4, 5, 6, 7}))
	assert.EqualValues(t, 8, c.Position())
	assert.Equal(t, 0, write(nil))
	assert.EqualValues(t, 8, c.Position())

	assert.Equal(t, 1, write([]byte{8, 9}))
	assert.Equal(t, 0, write([]byte{10}))
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8}, buf)
	assert.Equal(t, buf, c.Written())
}

func TestSliceCursor_NoRoomIsNotAnError(t *testing.T) {
	c := NewSliceCursor(make([]byte, 2))

	n, err := c.Write([]byte{0})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.Write([]byte{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.Write([]byte{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSliceCursor_Seek(t *testing.T) {
	buf := make([]byte, 8)
	c := NewSliceCursor(buf)

	_, _ = c.Write([]byte{1})
	pos, err := c.Seek(FromStart(2))
	require.NoError(t, err)
	assert.EqualValues(t, 2, pos)
	_, _ = c.Write([]byte{2})
	assert.EqualValues(t, 3, c.Position())

	pos, err = c.Seek(FromCurrent(-2))
	require.NoError(t, err)
	assert.EqualValues(t, 1, pos)
	_, _ = c.Write([]byte{3})

	pos, err = c.Seek(FromEnd(-1))
	require.NoError(t, err)
	assert.EqualValues(t, 7, pos)
	_, _ = c.Write([]byte{4})
	assert.EqualValues(t, 8, c.Position())

	assert.Equal(t, []byte{1, 3, 2, 0, 0, 0, 0, 4}, buf)

	// Past the end the slice cannot grow.
	_, err = c.Seek(FromStart(10))
	require.NoError(t, err)
	n, err := c.Write([]byte{3})
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = c.Seek(FromEnd(-9))
	assert.ErrorIs(t, err, ErrInvalidSeek)
}

func TestCursor_Read(t *testing.T) {
	c := NewCursor([]byte{0, 1, 2, 3, 4, 5, 6, 7})

	n, err := c.Read(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.EqualValues(t, 0, c.Position())

	one := make([]byte, 1)
	n, _ = c.Read(one)
	assert.Equal(t, 1, n)
	assert.EqualValues(t, 1, c.Position())
	assert.Equal(t, []byte{0}, one)

	four := make([]byte, 4)
	n, _ = c.Read(four)
	assert.Equal(t, 4, n)
	assert.EqualValues(t, 5, c.Position())
	assert.Equal(t, []byte{1, 2, 3, 4}, four)

	n, _ = c.Read(four)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{5, 6, 7}, four[:n])

	n, err = c.Read(four)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCursor_SeekPastEndAndBeforeZero(t *testing.T) {
	c := NewCursor([]byte{0xff})
	pos, err := c.Seek(FromStart(10))
	require.NoError(t, err)
	assert.EqualValues(t, 10, pos)
	n, err := c.Read(make([]byte, 1))
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = c.Seek(FromEnd(-2))
	assert.ErrorIs(t, err, ErrInvalidSeek)
}

func TestCursor_FillBufConsume(t *testing.T) {
	c := NewCursor([]byte("hello"))

	b, err := c.FillBuf()
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), b)
	assert.EqualValues(t, 0, c.Position(), "FillBuf must not consume")

	c.Consume(3)
	b, _ = c.FillBuf()
	assert.Equal(t, []byte("lo"), b)
	assert.Equal(t, 2, c.Remaining())

	c.Consume(2)
	b, err = c.FillBuf()
	require.NoError(t, err)
	assert.Empty(t, b)

	c.SetPosition(1)
	b, _ = c.FillBuf()
	assert.Equal(t, []byte("ello"), b)
}
