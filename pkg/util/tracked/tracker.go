// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"fmt"
	"unsafe"

	"github.com/cockroachdb/errors"
)

// tracker is embedded in every container. It owns the creation site and
// the "report iff non-empty" rule shared by Clear and Close.
type tracker struct {
	site     Site
	reporter Reporter
	shape    Shape
	elemSize uintptr
	closed   bool
}

func makeTracker(shape Shape, elemSize uintptr, o options) tracker {
	return tracker{
		site:     o.site,
		reporter: o.reporter,
		shape:    shape,
		elemSize: elemSize,
	}
}

// derive returns the tracker of a container constructed from t's
// container by Clone or Move. The new container inherits t's reporter
// unless o names one.
func (t *tracker) derive(o options) tracker {
	if o.reporter == nil {
		o.reporter = t.reporter
	}
	return makeTracker(t.shape, t.elemSize, o)
}

// Site returns the location at which the container was constructed.
func (t *tracker) Site() Site {
	return t.site
}

// Closed returns whether Close has been called.
func (t *tracker) Closed() bool {
	return t.closed
}

// observe emits a Record for self if n > 0.
func (t *tracker) observe(self any, ev Event, n int) {
	if n <= 0 {
		return
	}
	r := t.reporter
	if r == nil {
		r = DefaultReporter()
	}
	r.Report(Record{
		TypeName: fmt.Sprintf("%T", self),
		Shape:    t.shape,
		Event:    ev,
		Len:      n,
		ElemSize: t.elemSize,
		Site:     t.site,
	})
}

// close marks the container closed and reports a deletion if it still
// held n elements. It returns false if the container was already closed.
func (t *tracker) close(self any, n int) bool {
	if t.closed {
		return false
	}
	t.closed = true
	t.observe(self, EventDeletion, n)
	return true
}

func (t *tracker) assertOpen(self any) {
	if t.closed {
		panic(errors.AssertionFailedf("%T used after Close (created at %s)", self, t.site))
	}
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
