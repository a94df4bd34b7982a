// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package tracked provides drop-in container types that report when a
// non-empty instance loses its contents.
//
// Seven shapes are provided: Vector (growable array), Deque, List
// (doubly linked), Set and Map (ordered, B-tree backed), Stack and Queue.
// Each behaves like the container it wraps. In addition, every instance
// remembers the Site (file, line, function) of the code that constructed
// it, and emits one Record to its Reporter when
//
//   - Clear is called while the instance holds elements (event "clear"),
//     or
//   - Close is called while the instance holds elements (event
//     "deletion").
//
// Emptying a container through ordinary removals (PopBack, Erase, ...)
// is never reported. Stack and Queue have no Clear and only report on
// Close.
//
// # Construction
//
// There are four ways to construct an instance, and each captures the
// site of its direct caller:
//
//	v := tracked.NewVector[int]()      // empty
//	v := tracked.VectorOf(1, 2, 3)     // from a literal list
//	w := v.Clone()                     // copy; w gets its own site
//	w := v.Move()                      // transfer; v is left empty
//
// Every construction path accepts options: the literal constructors have
// option-taking forms (VectorFrom, DequeFrom, ListFrom, SetFrom, MapFrom,
// StackFrom, QueueFrom). Helpers that construct containers on behalf of
// their caller pass WithDepth(1) (or WithSite) so that the report points
// at the code that asked for the container rather than at the helper.
//
// Assign, MoveAssign and AssignValues replace the contents of an existing
// instance. They never report and never change the instance's site.
//
// # Destruction
//
// Go has no destructors. The end of an instance's life is signaled by
// Close, which should be deferred right after construction:
//
//	v := tracked.VectorOf(1, 2, 3)
//	defer v.Close()
//
// Close is idempotent. An owning structure closes its tracked members
// from its own Close. Adding elements to a closed instance panics.
//
// # Reports
//
// A Record renders as a single line:
//
//	'*tracked.Vector[int]' vector clear with size 3, type size 8 bytes, data size 24 bytes, created at cmd/tracked-demo/demo.go:13: trackOnClear
//
// Records are sent to the instance's Reporter (see WithReporter), or to
// the process default, which writes to standard output. Records
// implement redact.SafeFormatter: they never include element values.
//
// Instances are not safe for concurrent use, like the containers they
// wrap.
package tracked
