// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// btreeDegree is the degree of the B-trees backing Set and Map.
const btreeDegree = 32

// Set is an ordered set of T backed by a B-tree.
type Set[T any] struct {
	tracker
	less btree.LessFunc[T]
	t    *btree.BTreeG[T]
}

// NewSet returns an empty Set ordered by cmp.Less.
func NewSet[T cmp.Ordered](opts ...Option) *Set[T] {
	return newSet[T](cmp.Less[T], buildOptions(1, opts))
}

// NewSetFunc returns an empty Set ordered by less, which must be a strict
// weak ordering.
func NewSetFunc[T any](less func(a, b T) bool, opts ...Option) *Set[T] {
	return newSet[T](less, buildOptions(1, opts))
}

// SetOf returns a Set holding elems. Duplicates are collapsed, keeping
// the first occurrence.
func SetOf[T cmp.Ordered](elems ...T) *Set[T] {
	s := newSet[T](cmp.Less[T], buildOptions(1, nil))
	for _, x := range elems {
		s.insert(x)
	}
	return s
}

// SetFrom is like SetOf but takes options.
func SetFrom[T cmp.Ordered](elems []T, opts ...Option) *Set[T] {
	s := newSet[T](cmp.Less[T], buildOptions(1, opts))
	for _, x := range elems {
		s.insert(x)
	}
	return s
}

func newSet[T any](less btree.LessFunc[T], o options) *Set[T] {
	return &Set[T]{
		tracker: makeTracker(ShapeSet, sizeOf[T](), o),
		less:    less,
		t:       btree.NewG(btreeDegree, less),
	}
}

// Clone returns a copy of s whose creation site is the caller of Clone.
func (s *Set[T]) Clone(opts ...Option) *Set[T] {
	return &Set[T]{tracker: s.derive(buildOptions(1, opts)), less: s.less, t: s.t.Clone()}
}

// Move returns a new Set that takes over s's elements, leaving s empty.
func (s *Set[T]) Move(opts ...Option) *Set[T] {
	m := &Set[T]{tracker: s.derive(buildOptions(1, opts)), less: s.less, t: s.t}
	s.t = btree.NewG(btreeDegree, s.less)
	return m
}

// Assign replaces the contents of s with a copy of src's. s keeps its
// own ordering; src's elements are re-inserted under it.
func (s *Set[T]) Assign(src *Set[T]) {
	if s == src {
		return
	}
	s.assertOpen(s)
	s.t = btree.NewG(btreeDegree, s.less)
	src.t.Ascend(func(x T) bool {
		s.insert(x)
		return true
	})
}

// MoveAssign replaces the contents of s with src's, leaving src empty.
func (s *Set[T]) MoveAssign(src *Set[T]) {
	if s == src {
		return
	}
	s.assertOpen(s)
	s.less, s.t = src.less, src.t
	src.t = btree.NewG(btreeDegree, src.less)
}

// AssignValues replaces the contents of s with elems.
func (s *Set[T]) AssignValues(elems ...T) {
	s.assertOpen(s)
	s.t.Clear(false)
	for _, x := range elems {
		s.insert(x)
	}
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	s.observe(s, EventClear, s.t.Len())
	s.t.Clear(false)
}

// Close releases s. It reports if s still holds elements.
func (s *Set[T]) Close() {
	if s.close(s, s.t.Len()) {
		s.t.Clear(false)
	}
}

// Len returns the number of elements in s.
func (s *Set[T]) Len() int { return s.t.Len() }

// Empty returns whether s holds no elements.
func (s *Set[T]) Empty() bool { return s.t.Len() == 0 }

// Insert adds x to s. It returns false, leaving s unchanged, if an
// equivalent element is already present.
func (s *Set[T]) Insert(x T) bool {
	s.assertOpen(s)
	return s.insert(x)
}

func (s *Set[T]) insert(x T) bool {
	if s.t.Has(x) {
		return false
	}
	s.t.ReplaceOrInsert(x)
	return true
}

// Erase removes x from s and reports whether it was present.
func (s *Set[T]) Erase(x T) bool {
	_, ok := s.t.Delete(x)
	return ok
}

// Contains returns whether x is in s.
func (s *Set[T]) Contains(x T) bool { return s.t.Has(x) }

// Min returns the smallest element of s.
func (s *Set[T]) Min() (T, bool) { return s.t.Min() }

// Max returns the largest element of s.
func (s *Set[T]) Max() (T, bool) { return s.t.Max() }

// All iterates over the elements of s in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.t.Ascend(btree.ItemIteratorG[T](yield))
	}
}

// Values returns the elements of s in ascending order.
func (s *Set[T]) Values() []T {
	out := make([]T, 0, s.t.Len())
	s.t.Ascend(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}
