package stream

import (
	"fmt"
	"io"
	"math"
)

// Whence selects the origin of a SeekTarget.
type Whence uint8

const (
	SeekStart Whence = iota
	SeekEnd
	SeekCurrent
)

func (w Whence) String() string {
	switch w {
	case SeekStart:
		return "FromStart"
	case SeekEnd:
		return "FromEnd"
	case SeekCurrent:
		return "FromCurrent"
	default:
		return fmt.Sprintf("Whence(%d)", uint8(w))
	}
}

// SeekTarget is a request to move a stream's position.
type SeekTarget struct {
	Whence Whence
	Start  uint64 // absolute offset, used by FromStart
	Offset int64  // relative offset, used by FromEnd and FromCurrent
}

// FromStart targets the absolute offset n.
func FromStart(n uint64) SeekTarget { return SeekTarget{Whence: SeekStart, Start: n} }

// FromEnd targets n bytes relative to the end of the stream.
func FromEnd(n int64) SeekTarget { return SeekTarget{Whence: SeekEnd, Offset: n} }

// FromCurrent targets n bytes relative to the current position.
func FromCurrent(n int64) SeekTarget { return SeekTarget{Whence: SeekCurrent, Offset: n} }

func (t SeekTarget) String() string {
	if t.Whence == SeekStart {
		return fmt.Sprintf("FromStart(%d)", t.Start)
	}
	return fmt.Sprintf("%s(%d)", t.Whence, t.Offset)
}

// Resolve computes the absolute position t designates for a stream whose
// current position is pos and whose logical length is size.
func (t SeekTarget) Resolve(pos, size uint64) (uint64, error) {
	switch t.Whence {
	case SeekStart:
		return t.Start, nil
	case SeekEnd:
		return offsetBy(size, t.Offset)
	case SeekCurrent:
		return offsetBy(pos, t.Offset)
	default:
		return pos, fmt.Errorf("%w: %s", ErrInvalidWhence, t.Whence)
	}
}

// offsetBy returns base+off, failing instead of wrapping.
func offsetBy(base uint64, off int64) (uint64, error) {
	if off >= 0 {
		if uint64(off) > math.MaxUint64-base {
			return 0, fmt.Errorf("%w: %d%+d overflows", ErrInvalidSeek, base, off)
		}
		return base + uint64(off), nil
	}
	// -(off+1)+1 keeps math.MinInt64 representable.
	back := uint64(-(off + 1)) + 1
	if back > base {
		return 0, fmt.Errorf("%w: %d%+d", ErrInvalidSeek, base, off)
	}
	return base - back, nil
}

// seekTargetOf converts an io.Seeker style (offset, whence) pair.
func seekTargetOf(offset int64, whence int) (SeekTarget, error) {
	switch whence {
	case io.SeekStart:
		if offset < 0 {
			return SeekTarget{}, fmt.Errorf("%w: %d", ErrInvalidSeek, offset)
		}
		return FromStart(uint64(offset)), nil
	case io.SeekCurrent:
		return FromCurrent(offset), nil
	case io.SeekEnd:
		return FromEnd(offset), nil
	default:
		return SeekTarget{}, fmt.Errorf("%w: value %d is not supported", ErrInvalidWhence, whence)
	}
}

// ioSeekArgs converts t into an io.Seeker style (offset, whence) pair.
func ioSeekArgs(t SeekTarget) (int64, int, error) {
	switch t.Whence {
	case SeekStart:
		if t.Start > math.MaxInt64 {
			return 0, 0, fmt.Errorf("%w: %d exceeds int64", ErrInvalidSeek, t.Start)
		}
		return int64(t.Start), io.SeekStart, nil
	case SeekEnd:
		return t.Offset, io.SeekEnd, nil
	case SeekCurrent:
		return t.Offset, io.SeekCurrent, nil
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidWhence, t.Whence)
	}
}
