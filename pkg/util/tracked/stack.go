// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import "slices"

// Stack is a LIFO stack of T. It has no Clear: popping every element is
// silent, and a Stack only reports when it is closed while non-empty.
type Stack[T any] struct {
	tracker
	elems []T
}

// NewStack returns an empty Stack whose creation site is the caller.
func NewStack[T any](opts ...Option) *Stack[T] {
	return newStack[T](nil, buildOptions(1, opts))
}

// StackOf returns a Stack holding elems, with the last one on top.
func StackOf[T any](elems ...T) *Stack[T] {
	return newStack(slices.Clone(elems), buildOptions(1, nil))
}

// StackFrom is like StackOf but takes options.
func StackFrom[T any](elems []T, opts ...Option) *Stack[T] {
	return newStack(slices.Clone(elems), buildOptions(1, opts))
}

func newStack[T any](elems []T, o options) *Stack[T] {
	return &Stack[T]{tracker: makeTracker(ShapeStack, sizeOf[T](), o), elems: elems}
}

// Clone returns a copy of s whose creation site is the caller of Clone.
func (s *Stack[T]) Clone(opts ...Option) *Stack[T] {
	return &Stack[T]{tracker: s.derive(buildOptions(1, opts)), elems: slices.Clone(s.elems)}
}

// Move returns a new Stack that takes over s's elements, leaving s empty.
func (s *Stack[T]) Move(opts ...Option) *Stack[T] {
	m := &Stack[T]{tracker: s.derive(buildOptions(1, opts)), elems: s.elems}
	s.elems = nil
	return m
}

// Assign replaces the contents of s with a copy of src's.
func (s *Stack[T]) Assign(src *Stack[T]) {
	if s == src {
		return
	}
	s.AssignValues(src.elems...)
}

// MoveAssign replaces the contents of s with src's, leaving src empty.
func (s *Stack[T]) MoveAssign(src *Stack[T]) {
	if s == src {
		return
	}
	s.assertOpen(s)
	clear(s.elems)
	s.elems, src.elems = src.elems, nil
}

// AssignValues replaces the contents of s with elems, the last on top.
func (s *Stack[T]) AssignValues(elems ...T) {
	s.assertOpen(s)
	clear(s.elems)
	s.elems = append(s.elems[:0], elems...)
}

// Close releases s. It reports if s still holds elements.
func (s *Stack[T]) Close() {
	if s.close(s, len(s.elems)) {
		s.elems = nil
	}
}

// Len returns the number of elements in s.
func (s *Stack[T]) Len() int { return len(s.elems) }

// Empty returns whether s holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.elems) == 0 }

// Push adds x on top of s.
func (s *Stack[T]) Push(x T) {
	s.assertOpen(s)
	s.elems = append(s.elems, x)
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	x, ok := s.Top()
	if ok {
		var zero T
		s.elems[len(s.elems)-1] = zero
		s.elems = s.elems[:len(s.elems)-1]
	}
	return x, ok
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, bool) {
	if len(s.elems) == 0 {
		var zero T
		return zero, false
	}
	return s.elems[len(s.elems)-1], true
}
