package pool

import "sync"

const (
	// StreamBufferDefaultSize is the default capacity, in values, of a
	// Uint32Buffer obtained from the stream pool.
	StreamBufferDefaultSize = 4096 // 16KiB backing array
	// StreamBufferMaxThreshold is the capacity above which buffers are
	// discarded instead of pooled, to avoid retaining memory bloat.
	StreamBufferMaxThreshold = 1024 * 256 // 1MiB backing array
)

// Uint32Buffer is a growable buffer of uint32 values used to accumulate
// primary and residual streams during incremental encoding.
type Uint32Buffer struct {
	// V is the underlying value slice.
	V []uint32
}

// NewUint32Buffer creates a new Uint32Buffer with the specified default capacity.
func NewUint32Buffer(defaultSize int) *Uint32Buffer {
	return &Uint32Buffer{
		V: make([]uint32, 0, defaultSize),
	}
}

// Values returns the underlying value slice.
func (ub *Uint32Buffer) Values() []uint32 {
	return ub.V
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (ub *Uint32Buffer) Reset() {
	ub.V = ub.V[:0]
}

// Len returns the number of values in the buffer.
func (ub *Uint32Buffer) Len() int {
	return len(ub.V)
}

// Cap returns the capacity of the buffer in values.
func (ub *Uint32Buffer) Cap() int {
	return cap(ub.V)
}

// Append appends a single value to the buffer, growing it if necessary.
func (ub *Uint32Buffer) Append(v uint32) {
	ub.V = append(ub.V, v)
}

// AppendSlice appends all values to the buffer, growing it if necessary.
func (ub *Uint32Buffer) AppendSlice(vs []uint32) {
	ub.V = append(ub.V, vs...)
}

// Grow grows the buffer to ensure it can hold requiredValues more values
// without reallocating. If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers, grow by StreamBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory
//     usage and reallocation cost.
func (ub *Uint32Buffer) Grow(requiredValues int) {
	available := cap(ub.V) - len(ub.V)
	if available >= requiredValues {
		return // Sufficient capacity
	}

	growBy := StreamBufferDefaultSize
	if cap(ub.V) > 4*StreamBufferDefaultSize {
		// For larger buffers, grow by 25% to balance memory and reallocation cost
		growBy = cap(ub.V) / 4
	}

	if growBy < requiredValues {
		growBy = requiredValues
	}

	newBuf := make([]uint32, len(ub.V), len(ub.V)+growBy)
	copy(newBuf, ub.V)
	ub.V = newBuf
}

// Uint32BufferPool is a pool of Uint32Buffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum capacity threshold to avoid
// retaining overly large buffers that could lead to memory bloat.
type Uint32BufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum capacity threshold for buffers
}

// NewUint32BufferPool creates a new Uint32BufferPool with buffers of the
// specified default capacity.
func NewUint32BufferPool(defaultSize int, maxThreshold int) *Uint32BufferPool {
	return &Uint32BufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewUint32Buffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a Uint32Buffer from the pool.
func (ubp *Uint32BufferPool) Get() *Uint32Buffer {
	ub, _ := ubp.pool.Get().(*Uint32Buffer)
	return ub
}

// Put returns a Uint32Buffer to the pool for reuse.
func (ubp *Uint32BufferPool) Put(ub *Uint32Buffer) {
	if ub == nil {
		return
	}

	if ubp.maxThreshold > 0 && cap(ub.V) > ubp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	ub.Reset()
	ubp.pool.Put(ub)
}

var streamDefaultPool = NewUint32BufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)

// GetStreamBuffer retrieves a Uint32Buffer from the default stream pool.
func GetStreamBuffer() *Uint32Buffer {
	return streamDefaultPool.Get()
}

// PutStreamBuffer returns a Uint32Buffer to the default stream pool.
func PutStreamBuffer(ub *Uint32Buffer) {
	streamDefaultPool.Put(ub)
}
