package stream

import (
	"sync"

	"github.com/valyala/bytebufferpool"
)

// DefaultBufSize is the size of the scratch buffer Copy uses and the step by
// which DrainToEnd grows its destination.
const DefaultBufSize = 64 * 1024

// chunkPool reuses Copy's scratch buffers. We pool *[]byte so Put does not
// allocate.
var chunkPool = sync.Pool{
	New: func() any {
		b := make([]byte, DefaultBufSize)
		return &b
	},
}

// drainPool backs ReadAll. bytebufferpool calibrates its default capacity to
// the sizes callers actually drain.
var drainPool bytebufferpool.Pool
