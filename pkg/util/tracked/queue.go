// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"slices"

	"github.com/cockroachdb/tracked/pkg/util/queue"
)

// Queue is a FIFO queue of T backed by a chunked queue. Like Stack it has
// no Clear, and only reports when closed while non-empty.
type Queue[T any] struct {
	tracker
	q *queue.Queue[T]
}

// NewQueue returns an empty Queue whose creation site is the caller.
func NewQueue[T any](opts ...Option) *Queue[T] {
	return newQueue[T](buildOptions(1, opts))
}

// QueueOf returns a Queue holding elems, the first one at the front.
func QueueOf[T any](elems ...T) *Queue[T] {
	q := newQueue[T](buildOptions(1, nil))
	q.appendValues(elems)
	return q
}

// QueueFrom is like QueueOf but takes options.
func QueueFrom[T any](elems []T, opts ...Option) *Queue[T] {
	q := newQueue[T](buildOptions(1, opts))
	q.appendValues(elems)
	return q
}

func newQueue[T any](o options) *Queue[T] {
	return &Queue[T]{tracker: makeTracker(ShapeQueue, sizeOf[T](), o), q: newPayload[T]()}
}

func newPayload[T any]() *queue.Queue[T] {
	q, err := queue.NewQueue[T]()
	if err != nil {
		// The default chunk size is always valid.
		panic(err)
	}
	return q
}

func (q *Queue[T]) appendValues(elems []T) {
	for _, x := range elems {
		q.q.Enqueue(x)
	}
}

// Clone returns a copy of q whose creation site is the caller of Clone.
func (q *Queue[T]) Clone(opts ...Option) *Queue[T] {
	c := &Queue[T]{tracker: q.derive(buildOptions(1, opts)), q: newPayload[T]()}
	for x := range q.q.All() {
		c.q.Enqueue(x)
	}
	return c
}

// Move returns a new Queue that takes over q's elements, leaving q empty.
func (q *Queue[T]) Move(opts ...Option) *Queue[T] {
	m := &Queue[T]{tracker: q.derive(buildOptions(1, opts)), q: q.q}
	q.q = newPayload[T]()
	return m
}

// Assign replaces the contents of q with a copy of src's.
func (q *Queue[T]) Assign(src *Queue[T]) {
	if q == src {
		return
	}
	q.AssignValues(slices.Collect(src.q.All())...)
}

// MoveAssign replaces the contents of q with src's, leaving src empty.
func (q *Queue[T]) MoveAssign(src *Queue[T]) {
	if q == src {
		return
	}
	q.assertOpen(q)
	q.q, src.q = src.q, newPayload[T]()
}

// AssignValues replaces the contents of q with elems, the first one at
// the front.
func (q *Queue[T]) AssignValues(elems ...T) {
	q.assertOpen(q)
	q.q.Reset()
	q.appendValues(elems)
}

// Close releases q. It reports if q still holds elements.
func (q *Queue[T]) Close() {
	if q.close(q, q.q.Len()) {
		q.q.Reset()
	}
}

// Len returns the number of elements in q.
func (q *Queue[T]) Len() int { return q.q.Len() }

// Empty returns whether q holds no elements.
func (q *Queue[T]) Empty() bool { return q.q.Empty() }

// Push adds x at the back of q.
func (q *Queue[T]) Push(x T) {
	q.assertOpen(q)
	q.q.Enqueue(x)
}

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() (T, bool) { return q.q.Dequeue() }

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (T, bool) { return q.q.Front() }

// Back returns the most recently pushed element.
func (q *Queue[T]) Back() (T, bool) { return q.q.Back() }
