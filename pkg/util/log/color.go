// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// colorProfile defines the colors used for the severity and timestamp
// prefix of an entry.
type colorProfile struct {
	infoPrefix  *color.Color
	warnPrefix  *color.Color
	errorPrefix *color.Color
	timePrefix  *color.Color
}

func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	// Whether to colorize is decided per output in colorProfileLocked,
	// not by the package-level detection of fatih/color.
	c.EnableColor()
	return c
}

var ttyColorProfile = &colorProfile{
	infoPrefix:  newColor(color.FgCyan),
	warnPrefix:  newColor(color.FgYellow),
	errorPrefix: newColor(color.FgRed),
	timePrefix:  newColor(color.Faint, color.FgWhite),
}

// forSeverity returns the color to use for the severity letter.
func (cp *colorProfile) forSeverity(sev Severity) *color.Color {
	switch sev {
	case SeverityInfo:
		return cp.infoPrefix
	case SeverityWarning:
		return cp.warnPrefix
	default:
		return cp.errorPrefix
	}
}

// colorProfileLocked returns the color profile to use for the current
// output, or nil if the output should not be colorized. Only terminals
// are colorized.
//
// l.mu is held.
func (l *loggerT) colorProfileLocked() *colorProfile {
	l.mu.AssertHeld()
	if l.mu.noColor {
		return nil
	}
	f, ok := l.mu.out.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return ttyColorProfile
	}
	return nil
}
