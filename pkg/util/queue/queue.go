// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package queue

import (
	"iter"

	"github.com/cockroachdb/errors"
)

const defaultChunkSize = 128

// Queue is a FIFO queue of T implemented as a linked list of fixed-size
// chunks. Unlike a slice-backed queue, dequeuing never shifts elements
// and memory from consumed chunks is released as soon as the chunk has
// been drained.
//
// The zero value is not usable; use NewQueue.
type Queue[T any] struct {
	chunkSize int
	head      *queueChunk[T]
	tail      *queueChunk[T]
	len       int
}

// Option configures a Queue.
type Option[T any] func(q *Queue[T])

// WithChunkSize sets the number of elements held by each chunk.
func WithChunkSize[T any](chunkSize int) Option[T] {
	return func(q *Queue[T]) {
		q.chunkSize = chunkSize
	}
}

// NewQueue returns an empty Queue.
func NewQueue[T any](opts ...Option[T]) (*Queue[T], error) {
	q := &Queue[T]{chunkSize: defaultChunkSize}
	for _, opt := range opts {
		opt(q)
	}
	if q.chunkSize < 1 {
		return nil, errors.Newf("chunk size must be positive, got %d", q.chunkSize)
	}
	return q, nil
}

// Enqueue appends e to the end of the queue.
func (q *Queue[T]) Enqueue(e T) {
	if q.tail == nil {
		q.head = newChunk[T](q.chunkSize)
		q.tail = q.head
	} else if q.tail.full() {
		c := newChunk[T](q.chunkSize)
		q.tail.next = c
		q.tail = c
	}
	q.tail.push(e)
	q.len++
}

// Dequeue removes and returns the element at the front of the queue. The
// boolean is false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.Empty() {
		var zero T
		return zero, false
	}
	e := q.head.pop()
	q.len--
	if q.head.finished() {
		// Drop the drained chunk. The queue never holds a finished chunk.
		if q.head == q.tail {
			q.head, q.tail = nil, nil
		} else {
			q.head = q.head.next
		}
	}
	return e, true
}

// Front returns the element at the front of the queue without removing it.
func (q *Queue[T]) Front() (T, bool) {
	if q.Empty() {
		var zero T
		return zero, false
	}
	return q.head.events[q.head.head], true
}

// Back returns the element at the end of the queue without removing it.
func (q *Queue[T]) Back() (T, bool) {
	if q.Empty() {
		var zero T
		return zero, false
	}
	return q.tail.events[q.tail.tail-1], true
}

// Empty returns true iff the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == nil || q.head.empty()
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.len
}

// All iterates over the queue from front to back.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := q.head; c != nil; c = c.next {
			for i := c.head; i < c.tail; i++ {
				if !yield(c.events[i]) {
					return
				}
			}
		}
	}
}

// Reset drops every chunk, and thereby every element, of the queue. The
// queue remains usable.
func (q *Queue[T]) Reset() {
	q.head, q.tail = nil, nil
	q.len = 0
}

// queueChunk is a fixed-size segment of the queue. Elements live in
// events[head:tail].
type queueChunk[T any] struct {
	events []T
	head   int
	tail   int
	next   *queueChunk[T]
}

func newChunk[T any](size int) *queueChunk[T] {
	return &queueChunk[T]{events: make([]T, size)}
}

func (c *queueChunk[T]) push(e T) {
	c.events[c.tail] = e
	c.tail++
}

func (c *queueChunk[T]) pop() T {
	var zero T
	e := c.events[c.head]
	c.events[c.head] = zero
	c.head++
	return e
}

func (c *queueChunk[T]) empty() bool {
	return c.head == c.tail
}

func (c *queueChunk[T]) full() bool {
	return c.tail == len(c.events)
}

// finished returns true once every slot of the chunk has been filled and
// then consumed.
func (c *queueChunk[T]) finished() bool {
	return c.head == len(c.events)
}
