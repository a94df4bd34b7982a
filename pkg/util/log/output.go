// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/cockroachdb/tracked/pkg/util/syncutil"
)

// OrigStderr points to the original stderr stream when the process
// started.
var OrigStderr = os.Stderr

// loggerT holds the process-wide logging state.
type loggerT struct {
	mu struct {
		syncutil.Mutex

		// out receives formatted entries.
		out io.Writer
		// redactable, when set, keeps redaction markers in the output.
		redactable bool
		// noColor disables severity coloring even on terminals.
		noColor bool

		exitOverride struct {
			f         func(int)
			hideStack bool
		}
	}
}

var logging = func() *loggerT {
	l := &loggerT{}
	l.mu.out = OrigStderr
	return l
}()

// SetOutput redirects log entries to w. The returned function restores
// the previous output.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.out
	logging.mu.out = w
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out = prev
	}
}

// SetRedactable configures whether redaction markers are kept in the
// output. The returned function restores the previous setting.
func SetRedactable(redactable bool) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.redactable
	logging.mu.redactable = redactable
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.redactable = prev
	}
}

// SetNoColor disables colored output, which is otherwise enabled when
// writing to a terminal. The returned function restores the previous
// setting.
func SetNoColor(noColor bool) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.noColor
	logging.mu.noColor = noColor
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.noColor = prev
	}
}

// outputLogEntry formats entry and writes it to the configured output.
// A fatal entry terminates the process afterwards.
func (l *loggerT) outputLogEntry(entry logEntry) {
	l.mu.Lock()
	buf := formatEntry(entry, l.mu.redactable, l.colorProfileLocked())
	if _, err := l.mu.out.Write(buf); err != nil {
		// There is nowhere else to report this; fall back to the original
		// stderr stream.
		fmt.Fprintf(OrigStderr, "log: unable to write entry: %v\n", err)
	}
	if entry.sev != SeverityFatal {
		l.mu.Unlock()
		return
	}
	f, hideStack := l.mu.exitOverride.f, l.mu.exitOverride.hideStack
	if !hideStack {
		_, _ = l.mu.out.Write(debug.Stack())
	}
	l.mu.Unlock()
	if f != nil {
		f(255)
		return
	}
	os.Exit(255)
}
