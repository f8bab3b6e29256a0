package ring_deque_go

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// GrowableDequeInterface defines the public API for the ring buffer.
//
// Logical indices run from 0 (the front) to Len()-1 (the back); internally the
// buffer maps them onto a power-of-two backing array with a bitmask.
//
// Notes on semantics:
//   - Direct indexing (Get, Set, Remove, RemoveRange, InsertAll, CopyTo) never
//     clamps: an index outside the valid range returns an error wrapping
//     ErrIndexOutOfRange and leaves the buffer untouched.
//   - Range-taking views (Slice, Drop, Take, SplitAt, ...) clamp their bounds
//     and always return a new buffer that shares no storage with the receiver.
//   - Sliding and Grouped return lazy, restartable sequences; they read the
//     receiver as it is when iterated.
//
// Implementations are not safe for concurrent use.
type GrowableDequeInterface[T any] interface {
	Len() int
	Cap() int
	IsEmpty() bool
	Get(idx int) (T, error)
	Set(idx int, value T) error
	Head() (T, error)
	Last() (T, error)
	Append(value T)
	AppendAll(values ...T)
	Prepend(value T)
	PrependAll(values ...T)
	InsertAll(idx int, values ...T) error
	Remove(idx int) (T, error)
	RemoveRange(idx int, count int) error
	Clear()
	TrimStart(n int)
	TrimEnd(n int)
	TrimToSize()
	CopyTo(dest []T, destStart int, n int) (int, error)
	ToSlice() []T
	All() iter.Seq2[int, T]
	Values() iter.Seq[T]
	Backward() iter.Seq2[int, T]
}

var _ GrowableDequeInterface[int] = &RingBuffer[int]{}
var _ fmt.Stringer = &RingBuffer[int]{}

// ErrIndexOutOfRange indicates a logical index (or destination offset) outside
// the valid range. Errors carrying the offending index are *IndexOutOfRangeError.
var ErrIndexOutOfRange = errors.New("ringbuffer: index out of range")

// ErrInvalidArgument indicates a non-positive window or step.
var ErrInvalidArgument = errors.New("ringbuffer: invalid argument")

// IndexOutOfRangeError reports the offending index and the size it was
// checked against.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("ringbuffer: index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

func outOfRange(idx int, size int) error {
	return errors.WithStack(&IndexOutOfRangeError{Index: idx, Size: size})
}
