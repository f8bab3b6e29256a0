package ring_deque_go

import "go.uber.org/zap"

// defaultCapacity is the smallest backing array ever allocated.
const defaultCapacity = 8

type options struct {
	logger *zap.Logger
}

// Option configures a RingBuffer.
type Option func(*options)

// WithLogger sets the logger used to report storage reallocation at debug
// level. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Calculates the nearest power of two that is at least size, never less than
// defaultCapacity.
func calculateBufferSize(size int) int {
	if size <= defaultCapacity {
		return defaultCapacity
	}

	size--
	size |= size >> 1
	size |= size >> 2
	size |= size >> 4
	size |= size >> 8
	size |= size >> 16
	size |= size >> 32

	return size + 1
}

// Capacity needed to hold size elements plus the sentinel slot.
func capacityFor(size int) int {
	return calculateBufferSize(size + 1)
}
