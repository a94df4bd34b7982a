// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"bytes"
	"fmt"
)

// redactableIndicator follows the file:line of an entry whose tags and
// message carry redaction markers.
const redactableIndicator = "⋮"

// formatEntry renders an entry in the crdb-v1 format:
//
//	Lyymmdd hh:mm:ss.uuuuuu goid file:line [⋮] [tags] msg
//
// cp may be nil, in which case no colors are emitted.
func formatEntry(entry logEntry, redactable bool, cp *colorProfile) []byte {
	var buf bytes.Buffer

	sev := string(entry.sev.char())
	ts := entry.time.Format("060102 15:04:05.000000")
	if cp != nil {
		buf.WriteString(cp.forSeverity(entry.sev).Sprint(sev))
		buf.WriteString(cp.timePrefix.Sprint(ts))
	} else {
		buf.WriteString(sev)
		buf.WriteString(ts)
	}
	fmt.Fprintf(&buf, " %d %s:%d ", entry.goroutine, entry.file, entry.line)
	if redactable {
		buf.WriteString(redactableIndicator)
		buf.WriteByte(' ')
	}

	tags, payload := string(entry.tags), string(entry.payload)
	if !redactable {
		tags, payload = entry.tags.StripMarkers(), entry.payload.StripMarkers()
	}
	if tags != "" {
		buf.WriteByte('[')
		buf.WriteString(tags)
		buf.WriteString("] ")
	}
	buf.WriteString(payload)
	if n := buf.Len(); n == 0 || buf.Bytes()[n-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
