package container

import (
	"go.llib.dev/dsa/port/datastruct"
)

// ArrayStack is a Stack backed by an Array, the top of the stack is the last array slot.
//
// The zero value is an empty stack ready to use.
type ArrayStack[T any] struct {
	arr Array[T]
}

var _ datastruct.Stack[int] = (*ArrayStack[int])(nil)

// NewArrayStack makes an empty stack with room for capacity elements before the first growth.
func NewArrayStack[T any](capacity int, opts ...ArrayOption) (*ArrayStack[T], error) {
	if capacity < 0 {
		return nil, datastruct.ErrInvalidArgument.F("negative capacity: %d", capacity)
	}
	return &ArrayStack[T]{arr: makeArray[T](capacity, toArrayConfig(opts))}, nil
}

func (s *ArrayStack[T]) Push(v T) {
	s.arr.Append(v)
}

func (s *ArrayStack[T]) Pop() (T, error) {
	if s.arr.IsEmpty() {
		var zero T
		return zero, datastruct.EmptyIndexError()
	}
	return s.arr.removeLast(), nil
}

func (s *ArrayStack[T]) Top() (*T, error) {
	if s.arr.IsEmpty() {
		return nil, datastruct.EmptyIndexError()
	}
	return &s.arr.data[s.arr.length-1], nil
}

func (s *ArrayStack[T]) Len() int { return s.arr.Len() }

func (s *ArrayStack[T]) IsEmpty() bool { return s.arr.IsEmpty() }

// LinkedListStack is a Stack backed by a SinglyLinkedList, the top of the stack is the list head.
//
// The zero value is an empty stack ready to use.
type LinkedListStack[T any] struct {
	list SinglyLinkedList[T]
}

var _ datastruct.Stack[int] = (*LinkedListStack[int])(nil)

func (s *LinkedListStack[T]) Push(v T) {
	s.list.prepend(v)
}

func (s *LinkedListStack[T]) Pop() (T, error) {
	v, ok := s.list.Shift()
	if !ok {
		return v, datastruct.EmptyIndexError()
	}
	return v, nil
}

func (s *LinkedListStack[T]) Top() (*T, error) {
	if s.list.IsEmpty() {
		return nil, datastruct.EmptyIndexError()
	}
	return &s.list.head.data, nil
}

func (s *LinkedListStack[T]) Len() int { return s.list.Len() }

func (s *LinkedListStack[T]) IsEmpty() bool { return s.list.IsEmpty() }
