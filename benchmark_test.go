package ring_deque_go

import (
	"testing"
)

func BenchmarkAppend(b *testing.B) {
	buffer := New[int](0)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buffer.Append(i)
	}
}

func BenchmarkPrependTrimEnd(b *testing.B) {
	buffer := New[int](1024)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buffer.Prepend(i)
		if buffer.Len() == 1000 {
			buffer.TrimEnd(500)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	const size = 1 << 16

	buffer := New[int](size)
	for i := 0; i < size-1; i++ {
		buffer.Prepend(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := buffer.Get(i & (size - 2)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSlice(b *testing.B) {
	const dataSize = 1024

	buffer := New[byte](4 * dataSize)
	for i := 0; i < 3*dataSize; i++ {
		buffer.Append(byte(i))
	}
	buffer.TrimStart(2 * dataSize)
	for i := 0; i < 2*dataSize; i++ {
		buffer.Append(byte(i))
	}

	b.SetBytes(dataSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buffer.Slice(dataSize/2, dataSize/2+dataSize)
	}
}
