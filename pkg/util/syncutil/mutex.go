// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package syncutil provides mutexes that can assert they are held.
package syncutil

import (
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	mu      sync.Mutex
	wLocked atomic.Bool
}

// Lock locks m.
func (m *Mutex) Lock() {
	m.mu.Lock()
	m.wLocked.Store(true)
}

// TryLock tries to lock m and reports whether it succeeded.
func (m *Mutex) TryLock() bool {
	if !m.mu.TryLock() {
		return false
	}
	m.wLocked.Store(true)
	return true
}

// Unlock unlocks m.
func (m *Mutex) Unlock() {
	m.wLocked.Store(false)
	m.mu.Unlock()
}

// AssertHeld panics if the mutex is not locked. Functions which require
// that their callers hold a particular lock may use this to enforce this
// requirement more directly than relying on the race detector.
//
// Note that we do not require the lock to be held by any particular
// goroutine, just that some goroutine holds the lock.
func (m *Mutex) AssertHeld() {
	if !m.wLocked.Load() {
		panic(errors.AssertionFailedf("mutex is not write locked"))
	}
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	mu      sync.RWMutex
	wLocked atomic.Bool
	readers atomic.Int32
}

// Lock locks rw for writing.
func (rw *RWMutex) Lock() {
	rw.mu.Lock()
	rw.wLocked.Store(true)
}

// Unlock unlocks rw for writing.
func (rw *RWMutex) Unlock() {
	rw.wLocked.Store(false)
	rw.mu.Unlock()
}

// RLock locks rw for reading.
func (rw *RWMutex) RLock() {
	rw.mu.RLock()
	rw.readers.Add(1)
}

// RUnlock undoes a single RLock call.
func (rw *RWMutex) RUnlock() {
	rw.readers.Add(-1)
	rw.mu.RUnlock()
}

// AssertHeld panics if rw is not locked for writing.
func (rw *RWMutex) AssertHeld() {
	if !rw.wLocked.Load() {
		panic(errors.AssertionFailedf("mutex is not write locked"))
	}
}

// AssertRHeld panics if rw is not locked for reading. If rw is locked for
// writing, it is also considered to be locked for reading.
func (rw *RWMutex) AssertRHeld() {
	if !rw.wLocked.Load() && rw.readers.Load() == 0 {
		panic(errors.AssertionFailedf("mutex is not read locked"))
	}
}
