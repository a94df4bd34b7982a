// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"iter"

	"github.com/cockroachdb/tracked/pkg/util/ring"
)

// Deque is a double-ended queue of T backed by a ring buffer.
type Deque[T any] struct {
	tracker
	buf ring.Buffer[T]
}

// NewDeque returns an empty Deque whose creation site is the caller.
func NewDeque[T any](opts ...Option) *Deque[T] {
	return newDeque[T](buildOptions(1, opts))
}

// DequeOf returns a Deque holding elems, front to back.
func DequeOf[T any](elems ...T) *Deque[T] {
	d := newDeque[T](buildOptions(1, nil))
	d.appendValues(elems)
	return d
}

// DequeFrom is like DequeOf but takes options.
func DequeFrom[T any](elems []T, opts ...Option) *Deque[T] {
	d := newDeque[T](buildOptions(1, opts))
	d.appendValues(elems)
	return d
}

func newDeque[T any](o options) *Deque[T] {
	return &Deque[T]{tracker: makeTracker(ShapeDeque, sizeOf[T](), o)}
}

func (d *Deque[T]) appendValues(elems []T) {
	d.buf.Reserve(d.buf.Len() + len(elems))
	for _, x := range elems {
		d.buf.AddLast(x)
	}
}

// Clone returns a copy of d whose creation site is the caller of Clone.
func (d *Deque[T]) Clone(opts ...Option) *Deque[T] {
	c := &Deque[T]{tracker: d.derive(buildOptions(1, opts))}
	c.appendValues(d.Values())
	return c
}

// Move returns a new Deque that takes over d's elements, leaving d empty.
func (d *Deque[T]) Move(opts ...Option) *Deque[T] {
	m := &Deque[T]{tracker: d.derive(buildOptions(1, opts)), buf: d.buf}
	d.buf = ring.Buffer[T]{}
	return m
}

// Assign replaces the contents of d with a copy of src's.
func (d *Deque[T]) Assign(src *Deque[T]) {
	if d == src {
		return
	}
	d.AssignValues(src.Values()...)
}

// MoveAssign replaces the contents of d with src's, leaving src empty.
func (d *Deque[T]) MoveAssign(src *Deque[T]) {
	if d == src {
		return
	}
	d.assertOpen(d)
	d.buf, src.buf = src.buf, ring.Buffer[T]{}
}

// AssignValues replaces the contents of d with elems.
func (d *Deque[T]) AssignValues(elems ...T) {
	d.assertOpen(d)
	d.buf.Reset()
	d.appendValues(elems)
}

// Clear removes all elements.
func (d *Deque[T]) Clear() {
	d.observe(d, EventClear, d.buf.Len())
	d.buf.Reset()
}

// Close releases d. It reports if d still holds elements.
func (d *Deque[T]) Close() {
	if d.close(d, d.buf.Len()) {
		d.buf.Discard()
	}
}

// Len returns the number of elements in d.
func (d *Deque[T]) Len() int { return d.buf.Len() }

// Empty returns whether d holds no elements.
func (d *Deque[T]) Empty() bool { return d.buf.Len() == 0 }

// At returns the element at position i from the front. It panics if i
// is out of range.
func (d *Deque[T]) At(i int) T { return d.buf.Get(i) }

// Set overwrites the element at position i from the front.
func (d *Deque[T]) Set(i int, x T) { d.buf.Set(i, x) }

// Front returns the first element.
func (d *Deque[T]) Front() (T, bool) {
	if d.buf.Len() == 0 {
		var zero T
		return zero, false
	}
	return d.buf.GetFirst(), true
}

// Back returns the last element.
func (d *Deque[T]) Back() (T, bool) {
	if d.buf.Len() == 0 {
		var zero T
		return zero, false
	}
	return d.buf.GetLast(), true
}

// PushFront adds x at the front of d.
func (d *Deque[T]) PushFront(x T) {
	d.assertOpen(d)
	d.buf.AddFirst(x)
}

// PushBack adds x at the back of d.
func (d *Deque[T]) PushBack(x T) {
	d.assertOpen(d)
	d.buf.AddLast(x)
}

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() (T, bool) {
	x, ok := d.Front()
	if ok {
		d.buf.RemoveFirst()
	}
	return x, ok
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() (T, bool) {
	x, ok := d.Back()
	if ok {
		d.buf.RemoveLast()
	}
	return x, ok
}

// All iterates over the position/element pairs of d, front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, n := 0, d.buf.Len(); i < n; i++ {
			if !yield(i, d.buf.Get(i)) {
				return
			}
		}
	}
}

// Values returns a copy of the elements of d, front to back.
func (d *Deque[T]) Values() []T {
	out := make([]T, 0, d.buf.Len())
	for _, x := range d.All() {
		out = append(out, x)
	}
	return out
}
