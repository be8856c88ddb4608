package container

import (
	"iter"

	"go.llib.dev/dsa/pkg/errorkit"
	"go.llib.dev/dsa/pkg/logging"
	"go.llib.dev/dsa/port/datastruct"
)

// Array is a contiguous, index addressable buffer that grows on demand.
//
// The storage is managed explicitly: when the buffer is full, a new one with
// doubled capacity is allocated and the live elements are copied over.
// Removals never shrink the capacity.
//
// The zero value is an empty Array with zero capacity, ready to use.
type Array[T any] struct {
	// data holds the storage, len(data) is the capacity.
	data   []T
	length int
	config ArrayConfig
}

// NewArray makes an empty Array with the given initial capacity.
func NewArray[T any](capacity int, opts ...ArrayOption) (*Array[T], error) {
	if capacity < 0 {
		return nil, datastruct.ErrInvalidArgument.F("negative capacity: %d", capacity)
	}
	arr := makeArray[T](capacity, toArrayConfig(opts))
	return &arr, nil
}

// NewArrayFrom makes an Array with the given capacity that holds a copy of the seed values.
// The capacity can't be smaller than the number of seed values.
func NewArrayFrom[T any](capacity int, seed []T, opts ...ArrayOption) (*Array[T], error) {
	var errs []error
	if capacity < 0 {
		errs = append(errs, datastruct.ErrInvalidArgument.F("negative capacity: %d", capacity))
	}
	if capacity < len(seed) {
		errs = append(errs, datastruct.ErrInvalidArgument.F("capacity %d can't hold %d seed values", capacity, len(seed)))
	}
	if err := errorkit.Merge(errs...); err != nil {
		return nil, err
	}
	arr := makeArray[T](capacity, toArrayConfig(opts))
	arr.length = copy(arr.data, seed)
	return &arr, nil
}

func makeArray[T any](capacity int, c ArrayConfig) Array[T] {
	return Array[T]{data: make([]T, capacity), config: c}
}

func (a *Array[T]) Len() int { return a.length }

func (a *Array[T]) Cap() int { return len(a.data) }

func (a *Array[T]) IsEmpty() bool { return a.length == 0 }

// Append adds the values to the end of the array.
func (a *Array[T]) Append(vs ...T) {
	a.reserve(a.length + len(vs))
	a.length += copy(a.data[a.length:], vs)
}

// Insert places the value at the given index, shifting the subsequent elements by one.
// Valid indexes are 0 <= index <= Len().
func (a *Array[T]) Insert(index int, v T) error {
	if index < 0 || a.length < index {
		return datastruct.IndexError(index, a.length+1)
	}
	a.reserve(a.length + 1)
	copy(a.data[index+1:a.length+1], a.data[index:a.length])
	a.data[index] = v
	a.length++
	return nil
}

// RemoveAt removes the element at the given index and returns it.
// The subsequent elements are shifted towards the front. The capacity is kept.
func (a *Array[T]) RemoveAt(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	v := a.data[index]
	copy(a.data[index:a.length-1], a.data[index+1:a.length])
	a.removeLast()
	return v, nil
}

// Get returns a reference to the stored element.
// The reference is valid until the next operation that grows the storage.
func (a *Array[T]) Get(index int) (*T, error) {
	if err := a.checkIndex(index); err != nil {
		return nil, err
	}
	return &a.data[index], nil
}

func (a *Array[T]) Lookup(index int) (T, bool) {
	if index < 0 || a.length <= index {
		var zero T
		return zero, false
	}
	return a.data[index], true
}

func (a *Array[T]) Set(index int, v T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.data[index] = v
	return nil
}

// Clear removes every element but keeps the allocated capacity.
func (a *Array[T]) Clear() {
	clear(a.data[:a.length])
	a.length = 0
}

func (a *Array[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(a.data[i]) {
				return
			}
		}
	}
}

func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.length)
	copy(out, a.data[:a.length])
	return out
}

func (a *Array[T]) checkIndex(index int) error {
	if a.length == 0 {
		return datastruct.EmptyIndexError()
	}
	if index < 0 || a.length <= index {
		return datastruct.IndexError(index, a.length)
	}
	return nil
}

// removeLast drops the last element, the caller must ensure the array is not empty.
func (a *Array[T]) removeLast() T {
	a.length--
	v := a.data[a.length]
	var zero T
	a.data[a.length] = zero
	return v
}

func (a *Array[T]) swap(i, j int) {
	a.data[i], a.data[j] = a.data[j], a.data[i]
}

// reserve ensures the storage can hold n elements.
func (a *Array[T]) reserve(n int) {
	if n <= len(a.data) {
		return
	}
	capacity := max(1, 2*len(a.data))
	for capacity < n {
		capacity *= 2
	}
	if l := a.config.logger(); l.IsEnabled(logging.LevelDebug) {
		l.Debug("container: growing array storage", logging.Fields{
			"from_capacity": len(a.data),
			"to_capacity":   capacity,
			"length":        a.length,
		})
	}
	data := make([]T, capacity)
	copy(data, a.data[:a.length])
	a.data = data
}
