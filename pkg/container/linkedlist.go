package container

import (
	"iter"

	"go.llib.dev/dsa/pkg/slicekit"
	"go.llib.dev/dsa/port/datastruct"
)

// LinkedList is a doubly linked list.
// Index addressed access walks from whichever end is nearer.
//
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head   *dlNode[T]
	tail   *dlNode[T]
	length int
}

var _ datastruct.LinkedList[int] = (*LinkedList[int])(nil)

type dlNode[T any] struct {
	data T
	prev *dlNode[T]
	next *dlNode[T]
}

func (ll *LinkedList[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for n := ll.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Backward iterates from the tail to the head.
func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if ll == nil {
			return
		}
		for n := ll.tail; n != nil; n = n.prev {
			if !yield(n.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	vs := make([]T, 0, ll.length)
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	n := &dlNode[T]{data: v, prev: ll.tail}
	if ll.tail == nil {
		ll.head = n
	} else {
		ll.tail.next = n
	}
	ll.tail = n
	ll.length++
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for _, v := range slicekit.IterReverse(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	n := &dlNode[T]{data: v, next: ll.head}
	if ll.head == nil {
		ll.tail = n
	} else {
		ll.head.prev = n
	}
	ll.head = n
	ll.length++
}

func (ll *LinkedList[T]) Len() int {
	return ll.length
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.length == 0
}

func (ll *LinkedList[T]) AddAt(index int, v T) error {
	if index < 0 || ll.length < index {
		return datastruct.IndexError(index, ll.length+1)
	}
	switch index {
	case 0:
		ll.prepend(v)
	case ll.length:
		ll.append(v)
	default:
		next := ll.nodeAt(index)
		n := &dlNode[T]{data: v, prev: next.prev, next: next}
		next.prev.next = n
		next.prev = n
		ll.length++
	}
	return nil
}

func (ll *LinkedList[T]) DeleteAt(index int) (T, error) {
	if err := ll.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return ll.unlink(ll.nodeAt(index)), nil
}

func (ll *LinkedList[T]) GetAt(index int) (*T, error) {
	if err := ll.checkIndex(index); err != nil {
		return nil, err
	}
	return &ll.nodeAt(index).data, nil
}

func (ll *LinkedList[T]) GetHead() (*T, error) {
	if ll.head == nil {
		return nil, datastruct.EmptyIndexError()
	}
	return &ll.head.data, nil
}

func (ll *LinkedList[T]) GetTail() (*T, error) {
	if ll.tail == nil {
		return nil, datastruct.EmptyIndexError()
	}
	return &ll.tail.data, nil
}

// Shift removes the first element and returns it.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	return ll.unlink(ll.head), true
}

// Pop removes the last element and returns it.
func (ll *LinkedList[T]) Pop() (T, bool) {
	if ll.tail == nil {
		var zero T
		return zero, false
	}
	return ll.unlink(ll.tail), true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	return ll.nodeAt(index).data, true
}

func (ll *LinkedList[T]) Clear() {
	for n := ll.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}
	ll.head, ll.tail, ll.length = nil, nil, 0
}

func (ll *LinkedList[T]) checkIndex(index int) error {
	if ll.length == 0 {
		return datastruct.EmptyIndexError()
	}
	if index < 0 || ll.length <= index {
		return datastruct.IndexError(index, ll.length)
	}
	return nil
}

// nodeAt expects a valid index.
func (ll *LinkedList[T]) nodeAt(index int) *dlNode[T] {
	if index < ll.length/2 {
		n := ll.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := ll.tail
	for i := ll.length - 1; index < i; i-- {
		n = n.prev
	}
	return n
}

func (ll *LinkedList[T]) unlink(n *dlNode[T]) T {
	if n.prev == nil {
		ll.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		ll.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	ll.length--
	return n.data
}
