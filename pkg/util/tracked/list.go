// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"iter"
	"slices"

	"github.com/cockroachdb/tracked/pkg/util/container/list"
)

// List is a doubly linked list of T. Elements returned by List methods
// belong to the List they were obtained from; Move and MoveAssign
// transfer them to the destination.
type List[T any] struct {
	tracker
	l *list.List[T]
}

// NewList returns an empty List whose creation site is the caller.
func NewList[T any](opts ...Option) *List[T] {
	return newList[T](buildOptions(1, opts))
}

// ListOf returns a List holding elems, front to back.
func ListOf[T any](elems ...T) *List[T] {
	l := newList[T](buildOptions(1, nil))
	for _, x := range elems {
		l.l.PushBack(x)
	}
	return l
}

// ListFrom is like ListOf but takes options.
func ListFrom[T any](elems []T, opts ...Option) *List[T] {
	l := newList[T](buildOptions(1, opts))
	for _, x := range elems {
		l.l.PushBack(x)
	}
	return l
}

func newList[T any](o options) *List[T] {
	return &List[T]{
		tracker: makeTracker(ShapeList, sizeOf[T](), o),
		l:       list.New[T](),
	}
}

// Clone returns a copy of l whose creation site is the caller of Clone.
func (l *List[T]) Clone(opts ...Option) *List[T] {
	c := &List[T]{tracker: l.derive(buildOptions(1, opts)), l: list.New[T]()}
	c.l.PushBackList(l.l)
	return c
}

// Move returns a new List that takes over l's elements, leaving l empty.
func (l *List[T]) Move(opts ...Option) *List[T] {
	m := &List[T]{tracker: l.derive(buildOptions(1, opts)), l: l.l}
	l.l = list.New[T]()
	return m
}

// Assign replaces the contents of l with a copy of src's.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	l.assertOpen(l)
	l.l.Init()
	l.l.PushBackList(src.l)
}

// MoveAssign replaces the contents of l with src's, leaving src empty.
func (l *List[T]) MoveAssign(src *List[T]) {
	if l == src {
		return
	}
	l.assertOpen(l)
	l.l, src.l = src.l, list.New[T]()
}

// AssignValues replaces the contents of l with elems.
func (l *List[T]) AssignValues(elems ...T) {
	l.assertOpen(l)
	l.l.Init()
	for _, x := range elems {
		l.l.PushBack(x)
	}
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.observe(l, EventClear, l.l.Len())
	l.l.Init()
}

// Close releases l. It reports if l still holds elements.
func (l *List[T]) Close() {
	if l.close(l, l.l.Len()) {
		l.l.Init()
	}
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int { return l.l.Len() }

// Empty returns whether l holds no elements.
func (l *List[T]) Empty() bool { return l.l.Len() == 0 }

// Front returns the first element of l or nil if l is empty.
func (l *List[T]) Front() *list.Element[T] { return l.l.Front() }

// Back returns the last element of l or nil if l is empty.
func (l *List[T]) Back() *list.Element[T] { return l.l.Back() }

// PushFront inserts x at the front of l and returns its element.
func (l *List[T]) PushFront(x T) *list.Element[T] {
	l.assertOpen(l)
	return l.l.PushFront(x)
}

// PushBack inserts x at the back of l and returns its element.
func (l *List[T]) PushBack(x T) *list.Element[T] {
	l.assertOpen(l)
	return l.l.PushBack(x)
}

// PopFront removes and returns the first value.
func (l *List[T]) PopFront() (T, bool) {
	if e := l.l.Front(); e != nil {
		return l.l.Remove(e), true
	}
	var zero T
	return zero, false
}

// PopBack removes and returns the last value.
func (l *List[T]) PopBack() (T, bool) {
	if e := l.l.Back(); e != nil {
		return l.l.Remove(e), true
	}
	var zero T
	return zero, false
}

// InsertBefore inserts x immediately before mark and returns the new
// element. If mark is not an element of l, l is not modified and nil is
// returned.
func (l *List[T]) InsertBefore(x T, mark *list.Element[T]) *list.Element[T] {
	l.assertOpen(l)
	return l.l.InsertBefore(x, mark)
}

// InsertAfter is like InsertBefore but inserts after mark.
func (l *List[T]) InsertAfter(x T, mark *list.Element[T]) *list.Element[T] {
	l.assertOpen(l)
	return l.l.InsertAfter(x, mark)
}

// Remove removes e from l if it is an element of l, and returns its value.
func (l *List[T]) Remove(e *list.Element[T]) T { return l.l.Remove(e) }

// MoveToFront moves e to the front of l. e must belong to l.
func (l *List[T]) MoveToFront(e *list.Element[T]) { l.l.MoveToFront(e) }

// MoveToBack moves e to the back of l. e must belong to l.
func (l *List[T]) MoveToBack(e *list.Element[T]) { l.l.MoveToBack(e) }

// All iterates over the values of l, front to back.
func (l *List[T]) All() iter.Seq[T] { return l.l.All() }

// Values returns a copy of the values of l, front to back.
func (l *List[T]) Values() []T { return slices.Collect(l.l.All()) }
