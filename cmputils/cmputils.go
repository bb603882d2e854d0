// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cmputils provides [cmp] options and utilities for their creation.
package cmputils

import (
	"github.com/google/go-cmp/cmp"

	"github.com/ava-labs/linkedq/queue"
)

// Queues returns a [cmp.Option] that compares [queue.Queue] pointers by their
// elements, front first. A nil pointer is only equal to another nil pointer,
// while an empty queue is equal to any other empty queue.
//
// Element comparison is subject to all other options passed to [cmp.Diff] or
// [cmp.Equal].
func Queues[T any]() cmp.Option {
	return cmp.FilterValues(
		bothNonNil[T],
		cmp.Transformer("ToSlice", (*queue.Queue[T]).ToSlice),
	)
}

func bothNonNil[T any](a, b *queue.Queue[T]) bool {
	return a != nil && b != nil
}
