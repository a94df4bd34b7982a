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

// Pair is a key/value entry of a Map.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// KV returns a Pair, for use with MapOf and AssignPairs.
func KV[K, V any](k K, v V) Pair[K, V] {
	return Pair[K, V]{Key: k, Value: v}
}

// Map is an ordered map from K to V backed by a B-tree. The element size
// it reports is the size of K plus the size of V.
type Map[K, V any] struct {
	tracker
	less btree.LessFunc[Pair[K, V]]
	t    *btree.BTreeG[Pair[K, V]]
}

// NewMap returns an empty Map ordered by cmp.Less on keys.
func NewMap[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return newMap[K, V](cmp.Less[K], buildOptions(1, opts))
}

// NewMapFunc returns an empty Map whose keys are ordered by less.
func NewMapFunc[K, V any](less func(a, b K) bool, opts ...Option) *Map[K, V] {
	return newMap[K, V](less, buildOptions(1, opts))
}

// MapOf returns a Map holding pairs. When a key repeats, the first
// occurrence wins.
func MapOf[K cmp.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := newMap[K, V](cmp.Less[K], buildOptions(1, nil))
	for _, p := range pairs {
		m.insert(p)
	}
	return m
}

// MapFrom is like MapOf but takes options.
func MapFrom[K cmp.Ordered, V any](pairs []Pair[K, V], opts ...Option) *Map[K, V] {
	m := newMap[K, V](cmp.Less[K], buildOptions(1, opts))
	for _, p := range pairs {
		m.insert(p)
	}
	return m
}

func newMap[K, V any](less func(a, b K) bool, o options) *Map[K, V] {
	pairLess := func(a, b Pair[K, V]) bool { return less(a.Key, b.Key) }
	return &Map[K, V]{
		tracker: makeTracker(ShapeMap, sizeOf[K]()+sizeOf[V](), o),
		less:    pairLess,
		t:       btree.NewG(btreeDegree, pairLess),
	}
}

// Clone returns a copy of m whose creation site is the caller of Clone.
func (m *Map[K, V]) Clone(opts ...Option) *Map[K, V] {
	return &Map[K, V]{tracker: m.derive(buildOptions(1, opts)), less: m.less, t: m.t.Clone()}
}

// Move returns a new Map that takes over m's entries, leaving m empty.
func (m *Map[K, V]) Move(opts ...Option) *Map[K, V] {
	n := &Map[K, V]{tracker: m.derive(buildOptions(1, opts)), less: m.less, t: m.t}
	m.t = btree.NewG(btreeDegree, m.less)
	return n
}

// Assign replaces the contents of m with a copy of src's.
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	if m == src {
		return
	}
	m.assertOpen(m)
	m.t = btree.NewG(btreeDegree, m.less)
	src.t.Ascend(func(p Pair[K, V]) bool {
		m.insert(p)
		return true
	})
}

// MoveAssign replaces the contents of m with src's, leaving src empty.
func (m *Map[K, V]) MoveAssign(src *Map[K, V]) {
	if m == src {
		return
	}
	m.assertOpen(m)
	m.less, m.t = src.less, src.t
	src.t = btree.NewG(btreeDegree, src.less)
}

// AssignPairs replaces the contents of m with pairs. When a key repeats,
// the first occurrence wins.
func (m *Map[K, V]) AssignPairs(pairs ...Pair[K, V]) {
	m.assertOpen(m)
	m.t.Clear(false)
	for _, p := range pairs {
		m.insert(p)
	}
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.observe(m, EventClear, m.t.Len())
	m.t.Clear(false)
}

// Close releases m. It reports if m still holds entries.
func (m *Map[K, V]) Close() {
	if m.close(m, m.t.Len()) {
		m.t.Clear(false)
	}
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Empty returns whether m holds no entries.
func (m *Map[K, V]) Empty() bool { return m.t.Len() == 0 }

// Insert adds k → v unless k is already present, in which case m is
// unchanged and false is returned.
func (m *Map[K, V]) Insert(k K, v V) bool {
	m.assertOpen(m)
	return m.insert(Pair[K, V]{Key: k, Value: v})
}

func (m *Map[K, V]) insert(p Pair[K, V]) bool {
	if m.t.Has(p) {
		return false
	}
	m.t.ReplaceOrInsert(p)
	return true
}

// Set maps k to v, overwriting any previous value.
func (m *Map[K, V]) Set(k K, v V) {
	m.assertOpen(m)
	m.t.ReplaceOrInsert(Pair[K, V]{Key: k, Value: v})
}

// Get returns the value mapped to k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	p, ok := m.t.Get(Pair[K, V]{Key: k})
	return p.Value, ok
}

// Contains returns whether k is present in m.
func (m *Map[K, V]) Contains(k K) bool {
	return m.t.Has(Pair[K, V]{Key: k})
}

// Erase removes k and reports whether it was present.
func (m *Map[K, V]) Erase(k K) bool {
	_, ok := m.t.Delete(Pair[K, V]{Key: k})
	return ok
}

// All iterates over the entries of m in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.t.Ascend(func(p Pair[K, V]) bool {
			return yield(p.Key, p.Value)
		})
	}
}

// Keys returns the keys of m in ascending order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.t.Len())
	m.t.Ascend(func(p Pair[K, V]) bool {
		out = append(out, p.Key)
		return true
	})
	return out
}
