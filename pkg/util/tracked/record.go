// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import "github.com/cockroachdb/redact"

// Shape identifies the kind of container a Record was emitted for.
type Shape int8

const (
	_ Shape = iota
	ShapeVector
	ShapeDeque
	ShapeList
	ShapeSet
	ShapeMap
	ShapeStack
	ShapeQueue
)

var shapeNouns = [...]string{
	0:           "unknown",
	ShapeVector: "vector",
	ShapeDeque:  "deque",
	ShapeList:   "list",
	ShapeSet:    "set",
	ShapeMap:    "map",
	ShapeStack:  "stack",
	ShapeQueue:  "queue",
}

// String returns the noun used for the shape in reports.
func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNouns) {
		return shapeNouns[0]
	}
	return shapeNouns[s]
}

// SafeValue implements redact.SafeValue.
func (Shape) SafeValue() {}

// Event is the way in which a container lost its contents.
type Event int8

const (
	_ Event = iota
	// EventClear is an explicit call to Clear.
	EventClear
	// EventDeletion is the end of the container's life (Close).
	EventDeletion
)

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e {
	case EventClear:
		return "clear"
	case EventDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// SafeValue implements redact.SafeValue.
func (Event) SafeValue() {}

// Record describes a single loss of contents.
type Record struct {
	// TypeName identifies the Go type of the container, e.g.
	// "*tracked.Map[string,int]".
	TypeName string
	Shape    Shape
	Event    Event
	// Len is the number of elements held right before the event.
	Len int
	// ElemSize is the size in bytes of one element. For maps, it is the
	// size of the key plus the size of the value.
	ElemSize uintptr
	// Site is where the container was constructed.
	Site Site
}

// DataSize is the footprint of the lost elements, Len × ElemSize.
func (r Record) DataSize() uintptr {
	return uintptr(r.Len) * r.ElemSize
}

// SafeFormat implements redact.SafeFormatter.
func (r Record) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("'%s' %s %s with size %d, type size %d bytes, data size %d bytes, created at %s",
		redact.SafeString(r.TypeName), r.Shape, r.Event, redact.SafeInt(r.Len),
		redact.SafeUint(r.ElemSize), redact.SafeUint(r.DataSize()), r.Site)
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return redact.StringWithoutMarkers(r)
}
