// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package queue

import "fmt"

// CheckInvariants returns an error describing the first broken structural
// invariant of `q`, if any.
func CheckInvariants[T any](q *Queue[T]) error {
	switch {
	case q.n < 0:
		return fmt.Errorf("negative length %d", q.n)
	case q.n == 0 && (q.head != nil || q.tail != nil):
		return fmt.Errorf("empty queue with non-nil head (%p) or tail (%p)", q.head, q.tail)
	case q.n > 0 && (q.head == nil || q.tail == nil):
		return fmt.Errorf("queue of length %d with nil head (%p) or tail (%p)", q.n, q.head, q.tail)
	case q.n == 0:
		return nil
	}

	if q.tail.next != nil {
		return fmt.Errorf("tail has successor %p", q.tail.next)
	}

	// The loop is bounded by the cached length so that cycles can't hang it.
	var (
		last  *node[T]
		steps int
	)
	for nd := q.head; nd != nil && steps <= q.n; nd = nd.next {
		last = nd
		steps++
	}
	switch {
	case steps != q.n:
		return fmt.Errorf("%d nodes reachable from head; cached length %d", steps, q.n)
	case last != q.tail:
		return fmt.Errorf("last reachable node %p is not tail %p", last, q.tail)
	}
	return nil
}
