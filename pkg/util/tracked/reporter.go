// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/tracked/pkg/util/log"
	"github.com/cockroachdb/tracked/pkg/util/syncutil"
)

// Reporter receives the Records emitted by tracked containers.
//
// Report is called synchronously from Clear or Close, on the goroutine
// that owns the container. Implementations shared between containers
// owned by different goroutines must be safe for concurrent use.
type Reporter interface {
	Report(Record)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Record)

// Report implements Reporter.
func (f ReporterFunc) Report(r Record) { f(r) }

type writerReporter struct {
	mu syncutil.Mutex
	w  io.Writer
}

// WriterReporter returns a Reporter that writes each Record to w as a
// single line. Write errors are logged and otherwise ignored.
func WriterReporter(w io.Writer) Reporter {
	return &writerReporter{w: w}
}

func (wr *writerReporter) Report(r Record) {
	wr.mu.Lock()
	defer wr.mu.Unlock()
	if _, err := fmt.Fprintln(wr.w, r.String()); err != nil {
		log.Warningf(context.Background(), "unable to write %s report: %v", r.Shape, err)
	}
}

type logReporter struct {
	ctx context.Context
}

// LogReporter returns a Reporter that logs each Record at INFO severity,
// with the log tags carried by ctx.
func LogReporter(ctx context.Context) Reporter {
	return logReporter{ctx: ctx}
}

func (lr logReporter) Report(r Record) {
	log.Infof(lr.ctx, "%s", r)
}

type teeReporter []Reporter

// TeeReporter returns a Reporter that forwards each Record to every one
// of rs, in order.
func TeeReporter(rs ...Reporter) Reporter {
	return teeReporter(append([]Reporter(nil), rs...))
}

func (t teeReporter) Report(r Record) {
	for _, rep := range t {
		rep.Report(r)
	}
}

// Recorder is a Reporter that keeps every Record it receives. It is safe
// for concurrent use. The zero value is ready to use.
type Recorder struct {
	mu      syncutil.Mutex
	records []Record
}

var _ Reporter = (*Recorder)(nil)

// Report implements Reporter.
func (rec *Recorder) Report(r Record) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.records = append(rec.records, r)
}

// Records returns a copy of the Records received so far.
func (rec *Recorder) Records() []Record {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]Record(nil), rec.records...)
}

// Reset forgets all Records received so far.
func (rec *Recorder) Reset() {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.records = nil
}

var defaultReporter struct {
	mu syncutil.RWMutex
	r  Reporter
}

func init() {
	defaultReporter.r = WriterReporter(os.Stdout)
}

// DefaultReporter returns the Reporter used by containers constructed
// without WithReporter.
func DefaultReporter() Reporter {
	defaultReporter.mu.RLock()
	defer defaultReporter.mu.RUnlock()
	return defaultReporter.r
}

// SetDefaultReporter replaces the process-wide default Reporter. The
// returned function restores the previous one. Containers that were not
// given a Reporter explicitly pick up the new default on their next
// report.
func SetDefaultReporter(r Reporter) (restore func()) {
	defaultReporter.mu.Lock()
	defer defaultReporter.mu.Unlock()
	prev := defaultReporter.r
	defaultReporter.r = r
	return func() {
		defaultReporter.mu.Lock()
		defer defaultReporter.mu.Unlock()
		defaultReporter.r = prev
	}
}
