// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
)

// scriptContainer erases the element type and shape of a container so
// that a single script can drive all of them. Elements are int64s, so
// that reported sizes do not depend on the platform; maps store k → 10*k
// and expose their keys.
type scriptContainer interface {
	Len() int
	Close()
	push(xs ...int64)
	pop() (int64, bool)
	clear() bool
	clone(opts ...Option) scriptContainer
	move(opts ...Option) scriptContainer
	assign(src scriptContainer)
	moveAssign(src scriptContainer)
	values() []int64
}

type scriptVector struct{ *Vector[int64] }

func (c scriptVector) push(xs ...int64)                     { c.PushBack(xs...) }
func (c scriptVector) pop() (int64, bool)                   { return c.PopBack() }
func (c scriptVector) clear() bool                          { c.Clear(); return true }
func (c scriptVector) clone(opts ...Option) scriptContainer { return scriptVector{c.Clone(opts...)} }
func (c scriptVector) move(opts ...Option) scriptContainer  { return scriptVector{c.Move(opts...)} }
func (c scriptVector) assign(src scriptContainer)           { c.Assign(src.(scriptVector).Vector) }
func (c scriptVector) moveAssign(src scriptContainer)       { c.MoveAssign(src.(scriptVector).Vector) }
func (c scriptVector) values() []int64                      { return c.Values() }

type scriptDeque struct{ *Deque[int64] }

func (c scriptDeque) push(xs ...int64) {
	for _, x := range xs {
		c.PushBack(x)
	}
}
func (c scriptDeque) pop() (int64, bool)                   { return c.PopFront() }
func (c scriptDeque) clear() bool                          { c.Clear(); return true }
func (c scriptDeque) clone(opts ...Option) scriptContainer { return scriptDeque{c.Clone(opts...)} }
func (c scriptDeque) move(opts ...Option) scriptContainer  { return scriptDeque{c.Move(opts...)} }
func (c scriptDeque) assign(src scriptContainer)           { c.Assign(src.(scriptDeque).Deque) }
func (c scriptDeque) moveAssign(src scriptContainer)       { c.MoveAssign(src.(scriptDeque).Deque) }
func (c scriptDeque) values() []int64                      { return c.Values() }

type scriptList struct{ *List[int64] }

func (c scriptList) push(xs ...int64) {
	for _, x := range xs {
		c.PushBack(x)
	}
}
func (c scriptList) pop() (int64, bool)                   { return c.PopFront() }
func (c scriptList) clear() bool                          { c.Clear(); return true }
func (c scriptList) clone(opts ...Option) scriptContainer { return scriptList{c.Clone(opts...)} }
func (c scriptList) move(opts ...Option) scriptContainer  { return scriptList{c.Move(opts...)} }
func (c scriptList) assign(src scriptContainer)           { c.Assign(src.(scriptList).List) }
func (c scriptList) moveAssign(src scriptContainer)       { c.MoveAssign(src.(scriptList).List) }
func (c scriptList) values() []int64                      { return c.Values() }

type scriptSet struct{ *Set[int64] }

func (c scriptSet) push(xs ...int64) {
	for _, x := range xs {
		c.Insert(x)
	}
}
func (c scriptSet) pop() (int64, bool) {
	x, ok := c.Min()
	if ok {
		c.Erase(x)
	}
	return x, ok
}
func (c scriptSet) clear() bool                          { c.Clear(); return true }
func (c scriptSet) clone(opts ...Option) scriptContainer { return scriptSet{c.Clone(opts...)} }
func (c scriptSet) move(opts ...Option) scriptContainer  { return scriptSet{c.Move(opts...)} }
func (c scriptSet) assign(src scriptContainer)           { c.Assign(src.(scriptSet).Set) }
func (c scriptSet) moveAssign(src scriptContainer)       { c.MoveAssign(src.(scriptSet).Set) }
func (c scriptSet) values() []int64                      { return c.Values() }

type scriptMap struct{ *Map[int64, int64] }

func (c scriptMap) push(xs ...int64) {
	for _, x := range xs {
		c.Insert(x, 10*x)
	}
}
func (c scriptMap) pop() (int64, bool) {
	keys := c.Keys()
	if len(keys) == 0 {
		return 0, false
	}
	c.Erase(keys[0])
	return keys[0], true
}
func (c scriptMap) clear() bool                          { c.Clear(); return true }
func (c scriptMap) clone(opts ...Option) scriptContainer { return scriptMap{c.Clone(opts...)} }
func (c scriptMap) move(opts ...Option) scriptContainer  { return scriptMap{c.Move(opts...)} }
func (c scriptMap) assign(src scriptContainer)           { c.Assign(src.(scriptMap).Map) }
func (c scriptMap) moveAssign(src scriptContainer)       { c.MoveAssign(src.(scriptMap).Map) }
func (c scriptMap) values() []int64                      { return c.Keys() }

type scriptStack struct{ *Stack[int64] }

func (c scriptStack) push(xs ...int64) {
	for _, x := range xs {
		c.Push(x)
	}
}
func (c scriptStack) pop() (int64, bool)                   { return c.Pop() }
func (c scriptStack) clear() bool                          { return false }
func (c scriptStack) clone(opts ...Option) scriptContainer { return scriptStack{c.Clone(opts...)} }
func (c scriptStack) move(opts ...Option) scriptContainer  { return scriptStack{c.Move(opts...)} }
func (c scriptStack) assign(src scriptContainer)           { c.Assign(src.(scriptStack).Stack) }
func (c scriptStack) moveAssign(src scriptContainer)       { c.MoveAssign(src.(scriptStack).Stack) }
func (c scriptStack) values() []int64                      { return c.elems }

type scriptQueue struct{ *Queue[int64] }

func (c scriptQueue) push(xs ...int64) {
	for _, x := range xs {
		c.Push(x)
	}
}
func (c scriptQueue) pop() (int64, bool)                   { return c.Pop() }
func (c scriptQueue) clear() bool                          { return false }
func (c scriptQueue) clone(opts ...Option) scriptContainer { return scriptQueue{c.Clone(opts...)} }
func (c scriptQueue) move(opts ...Option) scriptContainer  { return scriptQueue{c.Move(opts...)} }
func (c scriptQueue) assign(src scriptContainer)           { c.Assign(src.(scriptQueue).Queue) }
func (c scriptQueue) moveAssign(src scriptContainer)       { c.MoveAssign(src.(scriptQueue).Queue) }
func (c scriptQueue) values() []int64 {
	var out []int64
	for x := range c.q.All() {
		out = append(out, x)
	}
	return out
}

func newScriptContainer(shape string, opts ...Option) (scriptContainer, error) {
	switch shape {
	case "vector":
		return scriptVector{NewVector[int64](opts...)}, nil
	case "deque":
		return scriptDeque{NewDeque[int64](opts...)}, nil
	case "list":
		return scriptList{NewList[int64](opts...)}, nil
	case "set":
		return scriptSet{NewSet[int64](opts...)}, nil
	case "map":
		return scriptMap{NewMap[int64, int64](opts...)}, nil
	case "stack":
		return scriptStack{NewStack[int64](opts...)}, nil
	case "queue":
		return scriptQueue{NewQueue[int64](opts...)}, nil
	default:
		return nil, errors.Newf("unknown shape %q", shape)
	}
}

// TestDataDriven runs the scripts in testdata/. Commands:
//
//	new name=<n> shape=<shape> [vals=(...)]
//	clone name=<n> from=<src>
//	move name=<n> from=<src>
//	assign name=<n> from=<src> [move]
//	push name=<n> vals=(...)
//	pop name=<n> [count=<k>]
//	clear name=<n>
//	close name=<n>
//	print name=<n>
//
// Each constructed container gets the site "script:<k>: <cmd>", where k
// counts constructions in the file. The output of a command is the
// records it caused, one per line, followed by anything it printed.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var rec Recorder
		containers := map[string]scriptContainer{}
		constructed := 0
		nextSite := func(cmd string) Option {
			constructed++
			return WithSite(Site{File: "script", Line: constructed, Function: cmd})
		}

		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			rec.Reset()
			var name string
			d.ScanArgs(t, "name", &name)
			var ints []int
			if d.HasArg("vals") {
				d.ScanArgs(t, "vals", &ints)
			}
			vals := make([]int64, len(ints))
			for i, x := range ints {
				vals[i] = int64(x)
			}
			lookup := func(key string) scriptContainer {
				var n string
				d.ScanArgs(t, key, &n)
				c, ok := containers[n]
				if !ok {
					d.Fatalf(t, "unknown container %q", n)
				}
				return c
			}

			var out strings.Builder
			switch d.Cmd {
			case "new":
				var shape string
				d.ScanArgs(t, "shape", &shape)
				c, err := newScriptContainer(shape, nextSite(d.Cmd), WithReporter(&rec))
				if err != nil {
					return err.Error()
				}
				c.push(vals...)
				containers[name] = c

			case "clone":
				containers[name] = lookup("from").clone(nextSite(d.Cmd))

			case "move":
				containers[name] = lookup("from").move(nextSite(d.Cmd))

			case "assign":
				if d.HasArg("move") {
					lookup("name").moveAssign(lookup("from"))
				} else {
					lookup("name").assign(lookup("from"))
				}

			case "push":
				lookup("name").push(vals...)

			case "pop":
				count := 1
				if d.HasArg("count") {
					d.ScanArgs(t, "count", &count)
				}
				c := lookup("name")
				for i := 0; i < count; i++ {
					x, ok := c.pop()
					if !ok {
						fmt.Fprintln(&out, "empty")
						break
					}
					fmt.Fprintln(&out, x)
				}

			case "clear":
				if !lookup("name").clear() {
					fmt.Fprintln(&out, "no clear")
				}

			case "close":
				lookup("name").Close()

			case "print":
				c := lookup("name")
				fmt.Fprintf(&out, "len=%d %v\n", c.Len(), c.values())

			default:
				d.Fatalf(t, "unknown command %s", d.Cmd)
			}

			var buf strings.Builder
			for _, r := range rec.Records() {
				fmt.Fprintln(&buf, r.String())
			}
			buf.WriteString(out.String())
			return buf.String()
		})
	})
}
