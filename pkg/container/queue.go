package container

import (
	"go.llib.dev/dsa/port/datastruct"
)

// SinglyLinkedQueue is a Queue backed by a SinglyLinkedList.
// Elements are enqueued at the tail and dequeued from the head.
//
// The zero value is an empty queue ready to use.
type SinglyLinkedQueue[T any] struct {
	list SinglyLinkedList[T]
}

var _ datastruct.Queue[int] = (*SinglyLinkedQueue[int])(nil)

func (q *SinglyLinkedQueue[T]) Enqueue(v T) {
	q.list.append(v)
}

func (q *SinglyLinkedQueue[T]) Dequeue() (T, error) {
	v, ok := q.list.Shift()
	if !ok {
		return v, datastruct.ErrEmpty
	}
	return v, nil
}

func (q *SinglyLinkedQueue[T]) Front() (*T, error) {
	if q.list.IsEmpty() {
		return nil, datastruct.ErrEmpty
	}
	return &q.list.head.data, nil
}

func (q *SinglyLinkedQueue[T]) Back() (*T, error) {
	if q.list.IsEmpty() {
		return nil, datastruct.ErrEmpty
	}
	return &q.list.tail.data, nil
}

func (q *SinglyLinkedQueue[T]) Len() int { return q.list.Len() }

func (q *SinglyLinkedQueue[T]) IsEmpty() bool { return q.list.IsEmpty() }

// LinkedQueue is a Queue backed by the doubly linked LinkedList.
//
// The zero value is an empty queue ready to use.
type LinkedQueue[T any] struct {
	list LinkedList[T]
}

var _ datastruct.Queue[int] = (*LinkedQueue[int])(nil)

func (q *LinkedQueue[T]) Enqueue(v T) {
	q.list.append(v)
}

func (q *LinkedQueue[T]) Dequeue() (T, error) {
	v, ok := q.list.Shift()
	if !ok {
		return v, datastruct.ErrEmpty
	}
	return v, nil
}

func (q *LinkedQueue[T]) Front() (*T, error) {
	if q.list.IsEmpty() {
		return nil, datastruct.ErrEmpty
	}
	return &q.list.head.data, nil
}

func (q *LinkedQueue[T]) Back() (*T, error) {
	if q.list.IsEmpty() {
		return nil, datastruct.ErrEmpty
	}
	return &q.list.tail.data, nil
}

func (q *LinkedQueue[T]) Len() int { return q.list.Len() }

func (q *LinkedQueue[T]) IsEmpty() bool { return q.list.IsEmpty() }
