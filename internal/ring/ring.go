// Package ring provides the fixed-capacity sample history used by recorders.
package ring

import "iter"

// Float is a fixed-capacity FIFO ring buffer for float64 values.
// Pushing into a full buffer evicts the oldest value.
//
// Float is not safe for concurrent use.
type Float struct {
	data []float64
	head int // index of the oldest value
	n    int
}

// New creates a Float with the given capacity. A capacity below 1 is
// raised to 1.
func New(capacity int) *Float {
	if capacity < 1 {
		capacity = 1
	}
	return &Float{data: make([]float64, capacity)}
}

// Push appends v at the tail. If the buffer was full the oldest value is
// evicted and returned with ok set to true.
func (r *Float) Push(v float64) (evicted float64, ok bool) {
	if r.n == len(r.data) {
		evicted = r.data[r.head]
		r.data[r.head] = v
		r.head = (r.head + 1) % len(r.data)
		return evicted, true
	}
	r.data[(r.head+r.n)%len(r.data)] = v
	r.n++
	return 0, false
}

// Len returns the number of buffered values.
func (r *Float) Len() int {
	return r.n
}

// Cap returns the capacity.
func (r *Float) Cap() int {
	return len(r.data)
}

// Last returns the newest value.
func (r *Float) Last() (float64, bool) {
	if r.n == 0 {
		return 0, false
	}
	return r.data[(r.head+r.n-1)%len(r.data)], true
}

// Reset empties the buffer without releasing its storage.
func (r *Float) Reset() {
	r.head = 0
	r.n = 0
}

// All iterates oldest to newest. The index is the distance from the oldest value.
func (r *Float) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(i, r.data[(r.head+i)%len(r.data)]) {
				return
			}
		}
	}
}

// Backward iterates newest to oldest. The index is the distance from the
// newest value.
func (r *Float) Backward() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(i, r.data[(r.head+r.n-1-i)%len(r.data)]) {
				return
			}
		}
	}
}

// Slice returns a copy of the contents in insertion order.
func (r *Float) Slice() []float64 {
	out := make([]float64, r.n)
	if r.n == 0 {
		return out
	}
	end := r.head + r.n
	if end <= len(r.data) {
		copy(out, r.data[r.head:end])
	} else {
		k := copy(out, r.data[r.head:])
		copy(out[k:], r.data[:end-len(r.data)])
	}
	return out
}
