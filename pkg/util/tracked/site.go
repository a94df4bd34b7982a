// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/tracked/pkg/util/caller"
)

// Site is the source location at which a tracked container was
// constructed.
type Site struct {
	// File is the source file, trimmed by the caller package.
	File string
	// Line is the line within File.
	Line int
	// Function is the package-local name of the enclosing function.
	Function string
}

// CallerSite returns the Site of a caller on the current goroutine's
// stack. CallerSite(0) is the location of the call to CallerSite itself,
// CallerSite(1) the location the enclosing function was called from, and
// so on.
func CallerSite(depth int) Site {
	file, line, fun := caller.Lookup(depth + 1)
	return Site{File: file, Line: line, Function: fun}
}

// SafeFormat implements redact.SafeFormatter. Source locations are not
// sensitive.
func (s Site) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("%s:%d: %s",
		redact.SafeString(s.File), redact.SafeInt(s.Line), redact.SafeString(s.Function))
}

// String implements fmt.Stringer.
func (s Site) String() string {
	return redact.StringWithoutMarkers(s)
}
