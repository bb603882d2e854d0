// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import "iter"

// All returns an iterator over index-value pairs, front first.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for nd := q.head; nd != nil; nd = nd.next {
			if !yield(i, nd.value) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements, front first.
func (q *Queue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := q.head; nd != nil; nd = nd.next {
			if !yield(nd.value) {
				return
			}
		}
	}
}

// Some reports whether `fn` returns true for any element. It stops at the first
// such element and returns false for an empty queue.
func (q *Queue[T]) Some(fn func(x T, index int) bool) bool {
	for i, x := range q.All() {
		if fn(x, i) {
			return true
		}
	}
	return false
}

// Every reports whether `fn` returns true for all elements. It stops at the
// first element for which `fn` returns false and returns true for an empty
// queue.
func (q *Queue[T]) Every(fn func(x T, index int) bool) bool {
	for i, x := range q.All() {
		if !fn(x, i) {
			return false
		}
	}
	return true
}

// Filter returns a newly allocated slice of the elements for which `fn`
// returns true, front first. The queue is not modified.
func (q *Queue[T]) Filter(fn func(x T, index int) bool) []T {
	var out []T
	for i, x := range q.All() {
		if fn(x, i) {
			out = append(out, x)
		}
	}
	return out
}

// Map returns the result of calling `fn` on every element of the queue, in
// order. The returned slice always has length `q.Len()`.
func Map[T, U any](q *Queue[T], fn func(x T, index int) U) []U {
	out := make([]U, 0, q.Len())
	for i, x := range q.All() {
		out = append(out, fn(x, i))
	}
	return out
}

// ForEach calls `fn` on every element of the queue, in order, until `fn`
// returns `stop == true`, in which case ForEach returns `fn`'s result and true.
// If `fn` never stops the iteration, ForEach returns the zero value and false.
func ForEach[T, R any](q *Queue[T], fn func(x T, index int) (_ R, stop bool)) (R, bool) {
	for i, x := range q.All() {
		if r, stop := fn(x, i); stop {
			return r, true
		}
	}
	return zero[R](), false
}
