package ring_deque_go

import (
	"iter"

	"github.com/pkg/errors"
)

// Slice returns a new buffer holding the elements in [from, until). Both
// bounds are clamped into [0, Len()].
func (buffer *RingBuffer[T]) Slice(from int, until int) *RingBuffer[T] {
	size := buffer.Len()
	from = min(max(from, 0), size)
	until = max(min(until, size), from)

	n := until - from
	if n <= 0 {
		return buffer.newSized(0)
	}
	if n >= size {
		return buffer.Clone()
	}

	slice := buffer.newSized(n)
	slice.end = buffer.copyRange(from, slice.storage, 0, n)

	return slice
}

// Drop returns all but the first n elements.
func (buffer *RingBuffer[T]) Drop(n int) *RingBuffer[T] {
	return buffer.Slice(n, buffer.Len())
}

// DropRight returns all but the last n elements.
func (buffer *RingBuffer[T]) DropRight(n int) *RingBuffer[T] {
	return buffer.Slice(0, buffer.Len()-max(n, 0))
}

// Take returns the first n elements.
func (buffer *RingBuffer[T]) Take(n int) *RingBuffer[T] {
	return buffer.Slice(0, n)
}

// TakeRight returns the last n elements.
func (buffer *RingBuffer[T]) TakeRight(n int) *RingBuffer[T] {
	return buffer.Slice(buffer.Len()-max(n, 0), buffer.Len())
}

// Init returns all but the last element.
func (buffer *RingBuffer[T]) Init() *RingBuffer[T] {
	return buffer.DropRight(1)
}

// Tail returns all but the first element.
func (buffer *RingBuffer[T]) Tail() *RingBuffer[T] {
	return buffer.Drop(1)
}

// SplitAt returns the elements before n and the elements from n onwards.
func (buffer *RingBuffer[T]) SplitAt(n int) (*RingBuffer[T], *RingBuffer[T]) {
	return buffer.Slice(0, n), buffer.Slice(n, buffer.Len())
}

// indexWhereNot returns the first index whose element fails predicate, or -1.
func (buffer *RingBuffer[T]) indexWhereNot(predicate func(T) bool) int {
	for i, value := range buffer.All() {
		if !predicate(value) {
			return i
		}
	}
	return -1
}

// TakeWhile returns the longest prefix whose elements all satisfy predicate.
func (buffer *RingBuffer[T]) TakeWhile(predicate func(T) bool) *RingBuffer[T] {
	prefix, _ := buffer.Span(predicate)
	return prefix
}

// DropWhile returns what remains after removing the longest prefix whose
// elements all satisfy predicate.
func (buffer *RingBuffer[T]) DropWhile(predicate func(T) bool) *RingBuffer[T] {
	_, rest := buffer.Span(predicate)
	return rest
}

// Span splits the buffer at the first element failing predicate, in a single
// pass.
func (buffer *RingBuffer[T]) Span(predicate func(T) bool) (*RingBuffer[T], *RingBuffer[T]) {
	idx := buffer.indexWhereNot(predicate)
	if idx < 0 {
		return buffer.Clone(), buffer.newSized(0)
	}
	return buffer.SplitAt(idx)
}

// Sliding returns the windows of at most window elements starting at 0, step,
// 2*step, ... The final windows may be shorter than window. The sequence is
// lazy and can be ranged over more than once; the receiver must not be
// modified while a range over it is in progress.
func (buffer *RingBuffer[T]) Sliding(window int, step int) (iter.Seq[*RingBuffer[T]], error) {
	if window < 1 || step < 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "sliding window %d, step %d", window, step)
	}

	return func(yield func(*RingBuffer[T]) bool) {
		for i := 0; i < buffer.Len(); i += step {
			remaining := buffer.Len() - i
			if !yield(buffer.Slice(i, i+min(window, remaining))) {
				return
			}
			if step >= remaining {
				return
			}
		}
	}, nil
}

// Grouped returns consecutive non-overlapping chunks of at most size elements.
func (buffer *RingBuffer[T]) Grouped(size int) (iter.Seq[*RingBuffer[T]], error) {
	return buffer.Sliding(size, size)
}

// All returns an iterator over logical indices and elements, front to back.
func (buffer *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < buffer.Len(); i++ {
			if !yield(i, buffer.storage[buffer.mod(buffer.start+i)]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements, front to back.
func (buffer *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range buffer.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// Backward returns an iterator over logical indices and elements, back to
// front.
func (buffer *RingBuffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := buffer.Len() - 1; i >= 0; i-- {
			if !yield(i, buffer.storage[buffer.mod(buffer.start+i)]) {
				return
			}
		}
	}
}
