// Package pool provides pooled byte buffers for table serialization.
//
// The encoder assembles a whole file image in memory before writing it out,
// so buffers are reused across encode calls to avoid re-allocating for every
// table.
package pool

import "sync"

const (
	// TableBufferDefaultSize is the initial capacity of a pooled buffer.
	// Most game data tables serialize to a few KiB.
	TableBufferDefaultSize = 1024 * 4 // 4KiB

	// TableBufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers from unusually large tables are dropped instead of
	// pinning memory.
	TableBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer wraps a byte slice that codec code appends to directly via B.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, retaining the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

var tableBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(TableBufferDefaultSize)
	},
}

// GetTableBuffer obtains an empty ByteBuffer from the pool.
func GetTableBuffer() *ByteBuffer {
	bb, _ := tableBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutTableBuffer returns a ByteBuffer to the pool. Buffers grown past
// TableBufferMaxThreshold are discarded.
func PutTableBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > TableBufferMaxThreshold {
		return
	}
	tableBufferPool.Put(bb)
}
