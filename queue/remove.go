// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

// Remove removes the element nearest to the front of the queue that is equal to
// `x`, returning whether one was found.
func Remove[T comparable](q *Queue[T], x T) bool {
	return q.RemoveFunc(func(y T) bool { return y == x })
}

// RemoveAll removes every element equal to `x`, returning the number removed.
// The relative order of the remaining elements is unchanged.
func RemoveAll[T comparable](q *Queue[T], x T) int {
	return q.RemoveAllFunc(func(y T) bool { return y == x })
}

// RemoveFunc removes the element nearest to the front of the queue for which
// `match` returns true, returning whether one was found. It is the equivalent
// of [Remove] for types that aren't comparable.
func (q *Queue[T]) RemoveFunc(match func(T) bool) bool {
	var prev *node[T]
	for nd := q.head; nd != nil; prev, nd = nd, nd.next {
		if match(nd.value) {
			q.unlink(prev, nd)
			return true
		}
	}
	return false
}

// RemoveAllFunc removes every element for which `match` returns true,
// returning the number removed. It is the equivalent of [RemoveAll] for types
// that aren't comparable.
//
// Nodes are unlinked as they are found so the queue is valid at every call to
// `match`, even if one of them panics.
func (q *Queue[T]) RemoveAllFunc(match func(T) bool) int {
	var (
		prev    *node[T] // last retained node
		removed int
	)
	for nd := q.head; nd != nil; {
		next := nd.next
		if match(nd.value) {
			q.unlink(prev, nd)
			removed++
		} else {
			prev = nd
		}
		nd = next
	}
	return removed
}

// unlink removes `nd` from the chain, given its predecessor, which MUST be nil
// i.f.f. `nd` is the head.
func (q *Queue[T]) unlink(prev, nd *node[T]) {
	if prev == nil {
		q.head = nd.next
	} else {
		prev.next = nd.next
	}
	if nd == q.tail {
		q.tail = prev
	}
	q.n--
	*nd = node[T]{}
}
