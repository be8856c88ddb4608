package container

import (
	"iter"

	"go.llib.dev/dsa/pkg/slicekit"
	"go.llib.dev/dsa/port/datastruct"
)

// SinglyLinkedList is a forward-only linked list that tracks both of its ends,
// so appending and removing the head are constant time operations.
//
// The zero value is an empty list ready to use.
type SinglyLinkedList[T any] struct {
	head   *slNode[T]
	tail   *slNode[T]
	length int
}

var _ datastruct.LinkedList[int] = (*SinglyLinkedList[int])(nil)

type slNode[T any] struct {
	data T
	next *slNode[T]
}

func (ll *SinglyLinkedList[T]) Iter() iter.Seq[T] {
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

func (ll *SinglyLinkedList[T]) ToSlice() []T {
	vs := make([]T, 0, ll.length)
	for v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *SinglyLinkedList[T]) Len() int { return ll.length }

func (ll *SinglyLinkedList[T]) IsEmpty() bool { return ll.length == 0 }

func (ll *SinglyLinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *SinglyLinkedList[T]) append(v T) {
	n := &slNode[T]{data: v}
	if ll.tail == nil {
		ll.head = n
	} else {
		ll.tail.next = n
	}
	ll.tail = n
	ll.length++
}

// Prepend adds the values to the beginning of the list, keeping their order.
func (ll *SinglyLinkedList[T]) Prepend(vs ...T) {
	for _, v := range slicekit.IterReverse(vs) {
		ll.prepend(v)
	}
}

func (ll *SinglyLinkedList[T]) prepend(v T) {
	ll.head = &slNode[T]{data: v, next: ll.head}
	if ll.tail == nil {
		ll.tail = ll.head
	}
	ll.length++
}

func (ll *SinglyLinkedList[T]) AddAt(index int, v T) error {
	if index < 0 || ll.length < index {
		return datastruct.IndexError(index, ll.length+1)
	}
	switch index {
	case 0:
		ll.prepend(v)
	case ll.length:
		ll.append(v)
	default:
		prev := ll.nodeAt(index - 1)
		prev.next = &slNode[T]{data: v, next: prev.next}
		ll.length++
	}
	return nil
}

func (ll *SinglyLinkedList[T]) DeleteAt(index int) (T, error) {
	if err := ll.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	if index == 0 {
		v, _ := ll.Shift()
		return v, nil
	}
	prev := ll.nodeAt(index - 1)
	n := prev.next
	prev.next = n.next
	if n == ll.tail {
		ll.tail = prev
	}
	n.next = nil
	ll.length--
	return n.data, nil
}

func (ll *SinglyLinkedList[T]) GetAt(index int) (*T, error) {
	if err := ll.checkIndex(index); err != nil {
		return nil, err
	}
	return &ll.nodeAt(index).data, nil
}

func (ll *SinglyLinkedList[T]) GetHead() (*T, error) {
	if ll.head == nil {
		return nil, datastruct.EmptyIndexError()
	}
	return &ll.head.data, nil
}

func (ll *SinglyLinkedList[T]) GetTail() (*T, error) {
	if ll.tail == nil {
		return nil, datastruct.EmptyIndexError()
	}
	return &ll.tail.data, nil
}

// Shift removes the first element and returns it.
func (ll *SinglyLinkedList[T]) Shift() (T, bool) {
	n := ll.head
	if n == nil {
		var zero T
		return zero, false
	}
	ll.head = n.next
	if ll.head == nil {
		ll.tail = nil
	}
	n.next = nil
	ll.length--
	return n.data, true
}

func (ll *SinglyLinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	return ll.nodeAt(index).data, true
}

func (ll *SinglyLinkedList[T]) Clear() {
	for n := ll.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	ll.head, ll.tail, ll.length = nil, nil, 0
}

func (ll *SinglyLinkedList[T]) checkIndex(index int) error {
	if ll.length == 0 {
		return datastruct.EmptyIndexError()
	}
	if index < 0 || ll.length <= index {
		return datastruct.IndexError(index, ll.length)
	}
	return nil
}

// nodeAt expects a valid index.
func (ll *SinglyLinkedList[T]) nodeAt(index int) *slNode[T] {
	if index == ll.length-1 {
		return ll.tail
	}
	n := ll.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}
