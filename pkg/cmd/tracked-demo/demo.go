// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import "github.com/cockroachdb/tracked/pkg/util/tracked"

// trackOnClear fills one container of each clearable shape and clears
// it, producing one clear report per container.
func trackOnClear() {
	vector := tracked.VectorOf(1, 2, 3)
	defer vector.Close()
	deque := tracked.DequeOf(1, 2, 3)
	defer deque.Close()
	list := tracked.ListOf(1, 2, 3)
	defer list.Close()
	set := tracked.SetOf(1, 2, 3)
	defer set.Close()
	m := tracked.MapOf(tracked.KV(1, 1), tracked.KV(2, 2), tracked.KV(3, 3))
	defer m.Close()

	vector.Clear()
	deque.Clear()
	list.Clear()
	set.Clear()
	m.Clear()
}

// trackOnDeletion fills one container of each shape and lets them go out
// of scope, producing one deletion report per container in reverse order
// of construction.
func trackOnDeletion() {
	vector := tracked.VectorOf(1, 2, 3)
	defer vector.Close()
	deque := tracked.DequeOf(1, 2, 3)
	defer deque.Close()
	list := tracked.ListOf(1, 2, 3)
	defer list.Close()
	set := tracked.SetOf(1, 2, 3)
	defer set.Close()
	m := tracked.MapOf(tracked.KV(1, 1), tracked.KV(2, 2), tracked.KV(3, 3))
	defer m.Close()
	stack := tracked.StackOf(1, 2, 3)
	defer stack.Close()
	queue := tracked.QueueOf(1, 2, 3)
	defer queue.Close()
}
