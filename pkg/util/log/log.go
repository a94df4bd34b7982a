// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log implements leveled, context-aware logging.
//
// Every entry records its severity, timestamp, goroutine, the file and
// line of the logging call and the log tags attached to the context
// (see github.com/cockroachdb/logtags). Messages are redactable: values
// passed as arguments are enclosed in redaction markers unless they are
// known to be safe (see github.com/cockroachdb/redact). Markers are only
// kept in the output when SetRedactable(true) has been called.
//
// Entries are written in the crdb-v1 format:
//
//	I261018 10:11:12.123456 17 util/tracked/vector.go:55 ⋮ [demo=clear] message
package log

import (
	"context"
	"strings"

	"github.com/cockroachdb/redact"
)

// Severity identifies the sort of log: info, warning etc.
type Severity int32

const (
	// SeverityUnknown is the zero value and is never logged.
	SeverityUnknown Severity = iota
	// SeverityInfo is used for informational messages that do not require
	// action.
	SeverityInfo
	// SeverityWarning is used for situations which may require special
	// handling, while normal operation is expected to resume
	// automatically.
	SeverityWarning
	// SeverityError is used for situations that require special handling,
	// when normal operation could not proceed as expected.
	SeverityError
	// SeverityFatal is used for situations that require an immediate,
	// hard server shutdown.
	SeverityFatal
)

var severityNames = [...]string{
	SeverityUnknown: "UNKNOWN",
	SeverityInfo:    "INFO",
	SeverityWarning: "WARNING",
	SeverityError:   "ERROR",
	SeverityFatal:   "FATAL",
}

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return severityNames[SeverityUnknown]
	}
	return severityNames[s]
}

// SafeValue implements redact.SafeValue.
func (Severity) SafeValue() {}

// char returns the single-letter severity indicator of the crdb-v1 format.
func (s Severity) char() byte {
	return s.String()[0]
}

// Infof logs to the INFO log.
// It extracts log tags from the context and logs them along with the given
// message. Arguments are handled in the manner of fmt.Printf.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logfDepth(ctx, 1, SeverityInfo, format, args)
}

// Info logs to the INFO log. The message is considered safe for reporting
// as it is a constant string.
func Info(ctx context.Context, msg redact.SafeString) {
	logfDepth(ctx, 1, SeverityInfo, "%s", []interface{}{msg})
}

// InfofDepth logs to the INFO log, offsetting the caller's stack frame by
// 'depth'.
func InfofDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	logfDepth(ctx, depth+1, SeverityInfo, format, args)
}

// Warningf logs to the WARNING log.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logfDepth(ctx, 1, SeverityWarning, format, args)
}

// Errorf logs to the ERROR log.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logfDepth(ctx, 1, SeverityError, format, args)
}

// Fatalf logs to the FATAL log and then terminates the process (or calls
// the function installed with SetExitFunc).
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	logfDepth(ctx, 1, SeverityFatal, format, args)
}

// FormatWithContextTags formats the string and prepends the context
// tags.
//
// Redaction markers are *not* inserted. The resulting
// string is generally unsafe for reporting.
func FormatWithContextTags(ctx context.Context, format string, args ...interface{}) string {
	var buf strings.Builder
	if tags := formatTags(ctx); tags != "" {
		buf.WriteByte('[')
		buf.WriteString(tags.StripMarkers())
		buf.WriteString("] ")
	}
	buf.WriteString(redact.Sprintf(format, args...).StripMarkers())
	return buf.String()
}

func logfDepth(
	ctx context.Context, depth int, sev Severity, format string, args []interface{},
) {
	entry := makeEntry(ctx, sev, depth+1, format, args)
	logging.outputLogEntry(entry)
}
