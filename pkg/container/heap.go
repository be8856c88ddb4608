package container

import (
	"cmp"

	"go.llib.dev/dsa/port/datastruct"
	"golang.org/x/exp/constraints"
)

// Heap is a binary min-heap stored in an Array.
//
// For every index i, the element at i is not greater than the elements at 2i+1 and 2i+2,
// so the smallest element is always at index 0.
// Equal elements have no defined relative order.
//
// A Heap must be made with one of the constructors.
// The zero Heap has no ordering: it reports itself empty, and Insert panics with ErrInvalidArgument.
type Heap[T any] struct {
	data Array[T]
	cmp  func(a, b T) int
}

var _ datastruct.PriorityQueue[int] = (*Heap[int])(nil)

// NewHeap makes an empty heap with room for capacity elements before the first growth.
func NewHeap[T constraints.Ordered](capacity int, opts ...ArrayOption) (*Heap[T], error) {
	return NewHeapFunc(capacity, cmp.Compare[T], opts...)
}

// NewHeapFrom makes a heap out of a copy of vs in linear time.
func NewHeapFrom[T constraints.Ordered](vs []T, opts ...ArrayOption) *Heap[T] {
	return heapify(vs, cmp.Compare[T], toArrayConfig(opts))
}

// NewHeapFunc makes an empty heap that orders its elements with cmp.
// cmp must return a negative number when a < b, a positive one when a > b and zero when they are equal.
func NewHeapFunc[T any](capacity int, cmp func(a, b T) int, opts ...ArrayOption) (*Heap[T], error) {
	if capacity < 0 {
		return nil, datastruct.ErrInvalidArgument.F("negative capacity: %d", capacity)
	}
	if cmp == nil {
		return nil, datastruct.ErrInvalidArgument.F("missing comparison function")
	}
	return &Heap[T]{
		data: makeArray[T](capacity, toArrayConfig(opts)),
		cmp:  cmp,
	}, nil
}

// NewHeapFromFunc is the NewHeapFrom variant of NewHeapFunc.
func NewHeapFromFunc[T any](vs []T, cmp func(a, b T) int, opts ...ArrayOption) (*Heap[T], error) {
	if cmp == nil {
		return nil, datastruct.ErrInvalidArgument.F("missing comparison function")
	}
	return heapify(vs, cmp, toArrayConfig(opts)), nil
}

func heapify[T any](vs []T, cmp func(a, b T) int, c ArrayConfig) *Heap[T] {
	h := &Heap[T]{data: makeArray[T](len(vs), c), cmp: cmp}
	h.data.length = copy(h.data.data, vs)
	for i := len(vs)/2 - 1; 0 <= i; i-- {
		h.down(i)
	}
	return h
}

func (h *Heap[T]) Len() int { return h.data.Len() }

func (h *Heap[T]) IsEmpty() bool { return h.data.IsEmpty() }

// Insert adds the values to the heap, each in logarithmic time.
// It panics when the heap was not made by a constructor.
func (h *Heap[T]) Insert(vs ...T) {
	if h.cmp == nil {
		panic(datastruct.ErrInvalidArgument.F("heap has no comparison function, use NewHeap or NewHeapFunc"))
	}
	for _, v := range vs {
		h.data.Append(v)
		h.up(h.data.length - 1)
	}
}

func (h *Heap[T]) Min() (T, error) {
	if h.data.IsEmpty() {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	return h.data.data[0], nil
}

func (h *Heap[T]) DeleteMin() (T, error) {
	if h.data.IsEmpty() {
		var zero T
		return zero, datastruct.ErrEmpty
	}
	v := h.data.data[0]
	h.data.swap(0, h.data.length-1)
	h.data.removeLast()
	h.down(0)
	return v, nil
}

// Clear removes every element but keeps the allocated capacity.
func (h *Heap[T]) Clear() {
	h.data.Clear()
}

// ToSlice returns a copy of the elements in their storage order.
func (h *Heap[T]) ToSlice() []T {
	return h.data.ToSlice()
}

func (h *Heap[T]) less(i, j int) bool {
	return h.cmp(h.data.data[i], h.data.data[j]) < 0
}

func (h *Heap[T]) up(i int) {
	for 0 < i {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.data.swap(i, parent)
		i = parent
	}
}

func (h *Heap[T]) down(i int) {
	n := h.data.length
	for {
		smallest := i
		if l := 2*i + 1; l < n && h.less(l, smallest) {
			smallest = l
		}
		if r := 2*i + 2; r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.data.swap(i, smallest)
		i = smallest
	}
}
