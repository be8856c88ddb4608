// Package datastruct defines the role interfaces of the containers.
//
// Callers should depend on these interfaces rather than on a concrete backing,
// so an array-backed Stack and a list-backed Stack stay interchangeable.
//
// None of the containers are safe for concurrent use.
// Access to the same instance from multiple goroutines must be serialised by the caller.
package datastruct

import (
	"iter"
)

type Sizer interface {
	// Len returns the number of elements in the container.
	Len() int
	// IsEmpty reports whether Len is zero.
	IsEmpty() bool
}

type Slicer[T any] interface {
	// ToSlice returns the contents as a newly allocated slice of T.
	ToSlice() []T
}

type Iterable[T any] interface {
	Iter() iter.Seq[T]
}

type Appendable[T any] interface {
	Append(vs ...T)
}

// Stack is a last-in-first-out container.
type Stack[T any] interface {
	// Push places the value on the top of the stack.
	Push(v T)
	// Pop removes and returns the top element.
	// On an empty stack it fails with an error that matches both ErrEmpty and ErrIndexOutOfBounds.
	Pop() (T, error)
	// Top returns a reference to the top element without removing it.
	// It fails the same way as Pop on an empty stack.
	Top() (*T, error)
	Sizer
}

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	// Enqueue places the value at the back of the queue.
	Enqueue(v T)
	// Dequeue removes and returns the front element.
	// It fails with ErrEmpty when the queue has no elements.
	Dequeue() (T, error)
	// Front returns a reference to the element that Dequeue would return next.
	Front() (*T, error)
	// Back returns a reference to the most recently enqueued element.
	Back() (*T, error)
	Sizer
}

// LinkedList is an index addressable node chain.
type LinkedList[T any] interface {
	Appendable[T]
	// AddAt inserts the value so it ends up at the given index.
	// Valid indexes are 0 <= index <= Len().
	AddAt(index int, v T) error
	// DeleteAt removes the element at the given index and returns it.
	// Valid indexes are 0 <= index < Len().
	DeleteAt(index int) (T, error)
	// GetAt returns a reference to the stored value at the given index.
	GetAt(index int) (*T, error)
	// GetHead returns a reference to the first value.
	// On an empty list it fails with an error that matches both ErrEmpty and ErrIndexOutOfBounds.
	GetHead() (*T, error)
	// GetTail returns a reference to the last value.
	// On an empty list it fails with an error that matches both ErrEmpty and ErrIndexOutOfBounds.
	GetTail() (*T, error)
	Iterable[T]
	Slicer[T]
	Sizer
}

// PriorityQueue yields its elements from the smallest to the largest.
type PriorityQueue[T any] interface {
	Insert(vs ...T)
	// Min returns the smallest element without removing it.
	Min() (T, error)
	// DeleteMin removes and returns the smallest element.
	DeleteMin() (T, error)
	// Clear removes every element.
	Clear()
	Sizer
}
