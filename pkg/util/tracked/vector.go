// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"iter"
	"slices"
)

// Vector is a growable array of T that reports when it is cleared or
// closed while holding elements.
type Vector[T any] struct {
	tracker
	elems []T
}

// NewVector returns an empty Vector whose creation site is the caller.
func NewVector[T any](opts ...Option) *Vector[T] {
	return newVector[T](nil, buildOptions(1, opts))
}

// VectorOf returns a Vector holding elems, in order.
func VectorOf[T any](elems ...T) *Vector[T] {
	return newVector(slices.Clone(elems), buildOptions(1, nil))
}

// VectorFrom is like VectorOf but takes options, for helpers that build a
// literal vector on behalf of their caller.
func VectorFrom[T any](elems []T, opts ...Option) *Vector[T] {
	return newVector(slices.Clone(elems), buildOptions(1, opts))
}

func newVector[T any](elems []T, o options) *Vector[T] {
	return &Vector[T]{
		tracker: makeTracker(ShapeVector, sizeOf[T](), o),
		elems:   elems,
	}
}

// Clone returns a copy of v. The copy's creation site is the caller of
// Clone.
func (v *Vector[T]) Clone(opts ...Option) *Vector[T] {
	return &Vector[T]{
		tracker: v.derive(buildOptions(1, opts)),
		elems:   slices.Clone(v.elems),
	}
}

// Move returns a new Vector that takes over v's elements, leaving v empty.
func (v *Vector[T]) Move(opts ...Option) *Vector[T] {
	w := &Vector[T]{
		tracker: v.derive(buildOptions(1, opts)),
		elems:   v.elems,
	}
	v.elems = nil
	return w
}

// Assign replaces the contents of v with a copy of src's.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	v.AssignValues(src.elems...)
}

// MoveAssign replaces the contents of v with src's, leaving src empty.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if v == src {
		return
	}
	v.assertOpen(v)
	clear(v.elems)
	v.elems, src.elems = src.elems, nil
}

// AssignValues replaces the contents of v with elems.
func (v *Vector[T]) AssignValues(elems ...T) {
	v.assertOpen(v)
	if len(elems) < len(v.elems) {
		clear(v.elems[len(elems):])
	}
	v.elems = append(v.elems[:0], elems...)
}

// Clear removes all elements, keeping the capacity.
func (v *Vector[T]) Clear() {
	v.observe(v, EventClear, len(v.elems))
	clear(v.elems)
	v.elems = v.elems[:0]
}

// Close releases v. It reports if v still holds elements.
func (v *Vector[T]) Close() {
	if v.close(v, len(v.elems)) {
		v.elems = nil
	}
}

// Len returns the number of elements in v.
func (v *Vector[T]) Len() int { return len(v.elems) }

// Cap returns the capacity of v.
func (v *Vector[T]) Cap() int { return cap(v.elems) }

// Empty returns whether v holds no elements.
func (v *Vector[T]) Empty() bool { return len(v.elems) == 0 }

// At returns the element at index i. It panics if i is out of range.
func (v *Vector[T]) At(i int) T { return v.elems[i] }

// Set overwrites the element at index i. It panics if i is out of range.
func (v *Vector[T]) Set(i int, x T) { v.elems[i] = x }

// Front returns the first element.
func (v *Vector[T]) Front() (T, bool) {
	if len(v.elems) == 0 {
		var zero T
		return zero, false
	}
	return v.elems[0], true
}

// Back returns the last element.
func (v *Vector[T]) Back() (T, bool) {
	if len(v.elems) == 0 {
		var zero T
		return zero, false
	}
	return v.elems[len(v.elems)-1], true
}

// PushBack appends xs to the end of v.
func (v *Vector[T]) PushBack(xs ...T) {
	v.assertOpen(v)
	v.elems = append(v.elems, xs...)
}

// PopBack removes and returns the last element.
func (v *Vector[T]) PopBack() (T, bool) {
	x, ok := v.Back()
	if ok {
		var zero T
		v.elems[len(v.elems)-1] = zero
		v.elems = v.elems[:len(v.elems)-1]
	}
	return x, ok
}

// Insert inserts xs at index i, shifting later elements up. It panics if
// i is out of range.
func (v *Vector[T]) Insert(i int, xs ...T) {
	v.assertOpen(v)
	v.elems = slices.Insert(v.elems, i, xs...)
}

// Erase removes the element at index i, shifting later elements down.
func (v *Vector[T]) Erase(i int) {
	v.elems = slices.Delete(v.elems, i, i+1)
}

// Reserve grows the capacity of v to at least n.
func (v *Vector[T]) Reserve(n int) {
	if n > cap(v.elems) {
		v.elems = slices.Grow(v.elems, n-len(v.elems))
	}
}

// Resize changes the length of v to n, truncating or appending zero
// values as needed.
func (v *Vector[T]) Resize(n int) {
	if n <= len(v.elems) {
		clear(v.elems[n:])
		v.elems = v.elems[:n]
		return
	}
	v.assertOpen(v)
	v.elems = append(v.elems, make([]T, n-len(v.elems))...)
}

// All iterates over the index/element pairs of v, in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.elems)
}

// Values returns a copy of the elements of v.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.elems)
}
