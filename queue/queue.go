// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue provides a singly linked first-in-first-out queue.
package queue

// A node is a single link in a [Queue]'s chain. It is owned by its
// predecessor, or by the [Queue] if it is the head.
type node[T any] struct {
	value T
	next  *node[T] // nil i.f.f. this is the tail
}

// A Queue is a FIFO queue backed by a singly linked list. The zero value is an
// empty queue ready for use.
//
// A Queue is not safe for concurrent use. Functions passed to traversal
// methods MUST NOT modify the Queue they are traversing; the resulting
// behaviour is undefined.
type Queue[T any] struct {
	head *node[T] // nil i.f.f. n == 0
	tail *node[T] // nil i.f.f. n == 0; tail.next MUST be nil
	n    int
}

// New constructs a [Queue] holding `xs`, with `xs[0]` at the front.
func New[T any](xs ...T) *Queue[T] {
	q := new(Queue[T])
	for _, x := range xs {
		q.Push(x)
	}
	return q
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.n
}

// Empty returns whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.n == 0
}

func zero[T any]() (z T) { return }

// Front returns the element at the front of the queue without removing it. If
// the queue is empty it returns the zero value and false.
func (q *Queue[T]) Front() (T, bool) {
	if q.n == 0 {
		return zero[T](), false
	}
	return q.head.value, true
}

// Back returns the element at the back of the queue, i.e. the most recently
// pushed. If the queue is empty it returns the zero value and false.
func (q *Queue[T]) Back() (T, bool) {
	if q.n == 0 {
		return zero[T](), false
	}
	return q.tail.value, true
}

// Push appends `x` to the back of the queue in constant time.
func (q *Queue[T]) Push(x T) {
	nd := &node[T]{value: x}
	if q.n == 0 {
		q.head = nd
	} else {
		q.tail.next = nd
	}
	q.tail = nd
	q.n++
}

// Pop removes and returns the element at the front of the queue in constant
// time. If the queue is empty it returns the zero value and false, and has no
// effect.
func (q *Queue[T]) Pop() (T, bool) {
	if q.n == 0 {
		return zero[T](), false
	}

	nd := q.head
	q.head = nd.next
	if q.head == nil {
		q.tail = nil
	}
	q.n--

	x := nd.value
	*nd = node[T]{} // don't retain the value or the rest of the chain
	return x, true
}

// Clear removes all elements from the queue.
func (q *Queue[T]) Clear() {
	*q = Queue[T]{}
}

// Clone returns a new [Queue] holding the same elements in the same order. The
// elements themselves are copied by assignment.
func (q *Queue[T]) Clone() *Queue[T] {
	return New(q.ToSlice()...)
}

// ToSlice returns a newly allocated slice of all elements, front first.
func (q *Queue[T]) ToSlice() []T {
	out := make([]T, 0, q.n)
	for nd := q.head; nd != nil; nd = nd.next {
		out = append(out, nd.value)
	}
	return out
}
