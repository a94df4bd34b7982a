// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssertHeld(t *testing.T) {
	var m Mutex
	require.Panics(t, m.AssertHeld)
	m.Lock()
	require.NotPanics(t, m.AssertHeld)
	require.False(t, m.TryLock())
	m.Unlock()
	require.Panics(t, m.AssertHeld)
	require.True(t, m.TryLock())
	m.AssertHeld()
	m.Unlock()
}

func TestRWMutexAssertions(t *testing.T) {
	var rw RWMutex
	require.Panics(t, rw.AssertHeld)
	require.Panics(t, rw.AssertRHeld)

	rw.RLock()
	require.NotPanics(t, rw.AssertRHeld)
	require.Panics(t, rw.AssertHeld)
	rw.RUnlock()

	rw.Lock()
	require.NotPanics(t, rw.AssertHeld)
	require.NotPanics(t, rw.AssertRHeld)
	rw.Unlock()
	require.Panics(t, rw.AssertRHeld)
}

func TestMutexCounter(t *testing.T) {
	var m Mutex
	var wg sync.WaitGroup
	n := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Lock()
				m.AssertHeld()
				n++
				m.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 16000, n)
}
