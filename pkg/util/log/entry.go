// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/tracked/pkg/util/caller"
	"github.com/petermattis/goid"
)

// logEntry is a single log event, prior to formatting.
type logEntry struct {
	sev       Severity
	time      time.Time
	goroutine int64
	file      string
	line      int
	tags      redact.RedactableString
	payload   redact.RedactableString
}

// timeNow is overridden in tests.
var timeNow = time.Now

// makeEntry creates a logEntry. depth is the number of frames between
// the caller of makeEntry and the logging call site.
func makeEntry(
	ctx context.Context, sev Severity, depth int, format string, args []interface{},
) logEntry {
	file, line, _ := caller.Lookup(depth + 1)
	return logEntry{
		sev:       sev,
		time:      timeNow().UTC(),
		goroutine: goid.Get(),
		file:      file,
		line:      line,
		tags:      formatTags(ctx),
		payload:   redact.Sprintf(format, args...),
	}
}

// formatTags renders the log tags attached to ctx as a comma-separated
// list. Tag keys are considered safe; tag values are not unless they
// implement redact.SafeValue.
func formatTags(ctx context.Context) redact.RedactableString {
	tags := logtags.FromContext(ctx)
	if tags == nil {
		return ""
	}
	var b redact.StringBuilder
	for i, t := range tags.Get() {
		if i > 0 {
			b.SafeRune(',')
		}
		b.SafeString(redact.SafeString(t.Key()))
		if v := t.Value(); v != nil {
			if len(t.Key()) > 1 {
				b.SafeRune('=')
			}
			b.Print(v)
		}
	}
	return b.RedactableString()
}
