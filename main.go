package ring_deque_go

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// RingBuffer is a growable double-ended sequence backed by a single
// power-of-two array. Elements live at storage[start], storage[start+1], ...
// up to (but excluding) storage[end], all indices taken modulo the capacity.
// One slot is always left free so that start == end means empty.
//
// The zero value is an empty buffer ready to use. RingBuffer is not safe for
// concurrent use.
type RingBuffer[T any] struct {
	storage []T
	start   int
	end     int

	logger *zap.Logger
}

// New returns an empty buffer whose capacity is the next power of two that is
// at least initialCapacity (and at least 8). One slot is reserved, so a buffer
// of capacity 8 holds 7 elements before it grows.
func New[T any](initialCapacity int, opts ...Option) *RingBuffer[T] {
	o := newOptions(opts)

	return &RingBuffer[T]{
		storage: make([]T, calculateBufferSize(initialCapacity)),
		logger:  o.logger,
	}
}

// NewFrom returns a buffer holding a copy of values.
func NewFrom[T any](values []T, opts ...Option) *RingBuffer[T] {
	o := newOptions(opts)

	buffer := &RingBuffer[T]{
		storage: make([]T, capacityFor(len(values))),
		logger:  o.logger,
	}
	buffer.end = copy(buffer.storage, values)

	return buffer
}

// newSized returns an empty buffer sharing the receiver's logger, large enough
// for size elements without growing.
func (buffer *RingBuffer[T]) newSized(size int) *RingBuffer[T] {
	return &RingBuffer[T]{
		storage: make([]T, capacityFor(size)),
		logger:  buffer.logger,
	}
}

func (buffer *RingBuffer[T]) mod(x int) int {
	return x & (len(buffer.storage) - 1)
}

func (buffer *RingBuffer[T]) checkIndex(idx int) error {
	if idx < 0 || idx >= buffer.Len() {
		return outOfRange(idx, buffer.Len())
	}
	return nil
}

// Len returns the number of elements in the buffer.
func (buffer *RingBuffer[T]) Len() int {
	return buffer.mod(buffer.end - buffer.start)
}

// Cap returns the length of the backing array. At most Cap()-1 elements fit
// before the next append or prepend grows it.
func (buffer *RingBuffer[T]) Cap() int {
	return len(buffer.storage)
}

func (buffer *RingBuffer[T]) IsEmpty() bool {
	return buffer.start == buffer.end
}

func (buffer *RingBuffer[T]) isFull() bool {
	return len(buffer.storage) == 0 || buffer.Len() == len(buffer.storage)-1
}

// The zero RingBuffer has no logger.
func (buffer *RingBuffer[T]) log() *zap.Logger {
	if buffer.logger == nil {
		return zap.NewNop()
	}
	return buffer.logger
}

// Get returns the element at logical index idx.
func (buffer *RingBuffer[T]) Get(idx int) (T, error) {
	if err := buffer.checkIndex(idx); err != nil {
		var zero T
		return zero, err
	}
	return buffer.storage[buffer.mod(buffer.start+idx)], nil
}

// Set replaces the element at logical index idx.
func (buffer *RingBuffer[T]) Set(idx int, value T) error {
	if err := buffer.checkIndex(idx); err != nil {
		return err
	}
	buffer.storage[buffer.mod(buffer.start+idx)] = value
	return nil
}

// Head returns the first element.
func (buffer *RingBuffer[T]) Head() (T, error) {
	return buffer.Get(0)
}

// Last returns the final element.
func (buffer *RingBuffer[T]) Last() (T, error) {
	return buffer.Get(buffer.Len() - 1)
}

// Append adds value at the back, growing the backing array if it is full.
func (buffer *RingBuffer[T]) Append(value T) {
	if buffer.isFull() {
		buffer.grow()
	}
	buffer.storage[buffer.end] = value
	buffer.end = buffer.mod(buffer.end + 1)
}

// AppendAll appends values in order.
func (buffer *RingBuffer[T]) AppendAll(values ...T) {
	for _, value := range values {
		buffer.Append(value)
	}
}

// Prepend adds value at the front, growing the backing array if it is full.
func (buffer *RingBuffer[T]) Prepend(value T) {
	if buffer.isFull() {
		buffer.grow()
	}
	buffer.start = buffer.mod(buffer.start - 1)
	buffer.storage[buffer.start] = value
}

// PrependAll adds values at the front keeping their order, so that
// values[0] becomes the new head.
func (buffer *RingBuffer[T]) PrependAll(values ...T) {
	for i := len(values) - 1; i >= 0; i-- {
		buffer.Prepend(values[i])
	}
}

// InsertAll inserts values before logical index idx. idx may equal Len(), in
// which case the values are appended.
func (buffer *RingBuffer[T]) InsertAll(idx int, values ...T) error {
	size := buffer.Len()
	if idx < 0 || idx > size {
		return outOfRange(idx, size+1)
	}

	if len(values) == 0 {
		return nil
	}

	if idx == 0 {
		buffer.PrependAll(values...)
		return nil
	}

	suffix := make([]T, size-idx)
	buffer.copyRange(idx, suffix, 0, len(suffix))

	buffer.end = buffer.mod(buffer.start + idx)
	buffer.AppendAll(values...)
	buffer.AppendAll(suffix...)

	return nil
}

// Remove deletes and returns the element at logical index idx.
func (buffer *RingBuffer[T]) Remove(idx int) (T, error) {
	value, err := buffer.Get(idx)
	if err != nil {
		return value, err
	}

	head := idx == 0 && buffer.Len() > 1
	if err := buffer.RemoveRange(idx, 1); err != nil {
		return value, err
	}

	// Release the vacated slot.
	var zero T
	if head {
		buffer.storage[buffer.mod(buffer.start-1)] = zero
	} else {
		buffer.storage[buffer.end] = zero
	}

	return value, nil
}

// RemoveRange deletes up to count elements starting at logical index idx.
// Removing from either end is O(1); removing from the middle shifts the
// trailing elements left.
func (buffer *RingBuffer[T]) RemoveRange(idx int, count int) error {
	if err := buffer.checkIndex(idx); err != nil {
		return err
	}

	size := buffer.Len()

	switch {
	case count <= 0:
	case count >= size-idx:
		buffer.end = buffer.mod(buffer.start + idx)
	case idx == 0:
		buffer.start = buffer.mod(buffer.start + count)
	default:
		for i := idx + count; i < size; i++ {
			from := buffer.mod(buffer.start + i)
			to := buffer.mod(buffer.start + i - count)
			buffer.storage[to] = buffer.storage[from]
		}
		buffer.end = buffer.mod(buffer.end - count)
	}

	return nil
}

// Clear empties the buffer without releasing its backing array.
func (buffer *RingBuffer[T]) Clear() {
	buffer.start = buffer.end
}

// TrimStart drops the first n elements.
func (buffer *RingBuffer[T]) TrimStart(n int) {
	if n <= 0 {
		return
	}
	if n >= buffer.Len() {
		buffer.Clear()
		return
	}
	buffer.start = buffer.mod(buffer.start + n)
}

// TrimEnd drops the last n elements.
func (buffer *RingBuffer[T]) TrimEnd(n int) {
	if n <= 0 {
		return
	}
	if n >= buffer.Len() {
		buffer.Clear()
		return
	}
	buffer.end = buffer.mod(buffer.end - n)
}

// Clone returns an independent copy with identical layout.
func (buffer *RingBuffer[T]) Clone() *RingBuffer[T] {
	storage := make([]T, len(buffer.storage))
	copy(storage, buffer.storage)

	return &RingBuffer[T]{
		storage: storage,
		start:   buffer.start,
		end:     buffer.end,
		logger:  buffer.logger,
	}
}

// TrimToSize shrinks the backing array to the smallest power of two that
// still holds every element plus the reserved slot.
func (buffer *RingBuffer[T]) TrimToSize() {
	size := buffer.Len()
	capacity := capacityFor(size)
	if capacity == len(buffer.storage) {
		return
	}

	buffer.log().Debug("trimming ring buffer",
		zap.Int("from", len(buffer.storage)),
		zap.Int("to", capacity),
	)
	buffer.realloc(capacity)
}

// CopyTo copies up to n elements, starting at the front, into dest beginning
// at destStart. It returns the number of elements copied.
func (buffer *RingBuffer[T]) CopyTo(dest []T, destStart int, n int) (int, error) {
	if destStart < 0 || destStart >= len(dest) {
		return 0, outOfRange(destStart, len(dest))
	}

	n = min(n, buffer.Len(), len(dest)-destStart)
	if n <= 0 {
		return 0, nil
	}

	return buffer.copyRange(0, dest, destStart, n), nil
}

// ToSlice returns the elements in logical order as a new slice.
func (buffer *RingBuffer[T]) ToSlice() []T {
	values := make([]T, buffer.Len())
	buffer.copyRange(0, values, 0, len(values))
	return values
}

func (buffer *RingBuffer[T]) String() string {
	var sb strings.Builder
	sb.WriteString("RingBuffer[")
	for i, value := range buffer.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// grow doubles the backing array and moves the elements to offset 0.
func (buffer *RingBuffer[T]) grow() {
	capacity := max(len(buffer.storage)*2, defaultCapacity)

	buffer.log().Debug("growing ring buffer",
		zap.Int("from", len(buffer.storage)),
		zap.Int("to", capacity),
		zap.Int("size", buffer.Len()),
	)
	buffer.realloc(capacity)
}

func (buffer *RingBuffer[T]) realloc(capacity int) {
	size := buffer.Len()
	storage := make([]T, capacity)
	buffer.copyRange(0, storage, 0, size)

	buffer.storage = storage
	buffer.start = 0
	buffer.end = size
}

// copyRange copies n elements starting at logical index from into
// dest[destStart:]. The caller guarantees the range is valid on both sides.
// At most two copies are issued: up to the physical end of storage, then the
// remainder from offset 0.
func (buffer *RingBuffer[T]) copyRange(from int, dest []T, destStart int, n int) int {
	if n <= 0 {
		return 0
	}

	bufferCap := len(buffer.storage)
	bufferPosition := buffer.mod(buffer.start + from)

	if bufferPosition+n <= bufferCap {
		return copy(dest[destStart:destStart+n], buffer.storage[bufferPosition:bufferPosition+n])
	}

	firstPart := bufferCap - bufferPosition
	a := copy(dest[destStart:], buffer.storage[bufferPosition:])
	b := copy(dest[destStart+firstPart:destStart+n], buffer.storage[:n-firstPart])
	return a + b
}
