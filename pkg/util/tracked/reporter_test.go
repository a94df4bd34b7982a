// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package tracked

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/tracked/pkg/util/log"
	"github.com/stretchr/testify/require"
)

var testRecord = Record{
	TypeName: "*tracked.Set[int]",
	Shape:    ShapeSet,
	Event:    EventDeletion,
	Len:      2,
	ElemSize: 8,
	Site:     Site{File: "x/y.go", Line: 3, Function: "f"},
}

const testRecordLine = "'*tracked.Set[int]' set deletion with size 2, type size 8 bytes, " +
	"data size 16 bytes, created at x/y.go:3: f"

func TestWriterReporter(t *testing.T) {
	var buf bytes.Buffer
	r := WriterReporter(&buf)
	r.Report(testRecord)
	r.Report(testRecord)
	require.Equal(t, testRecordLine+"\n"+testRecordLine+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestWriterReporterError(t *testing.T) {
	var logBuf bytes.Buffer
	defer log.SetOutput(&logBuf)()

	WriterReporter(failingWriter{}).Report(testRecord)
	require.Contains(t, logBuf.String(), "unable to write set report: disk on fire")
	require.True(t, strings.HasPrefix(logBuf.String(), "W"))
}

func TestLogReporter(t *testing.T) {
	var logBuf bytes.Buffer
	defer log.SetOutput(&logBuf)()

	ctx := logtags.AddTag(context.Background(), "n", 1)
	LogReporter(ctx).Report(testRecord)
	out := logBuf.String()
	require.True(t, strings.HasPrefix(out, "I"))
	require.Contains(t, out, "[n1] "+testRecordLine)

	// Records carry no sensitive data, so no part of them is redacted.
	logBuf.Reset()
	defer log.SetRedactable(true)()
	LogReporter(ctx).Report(testRecord)
	require.Contains(t, logBuf.String(), "[n‹1›] "+testRecordLine)
}

func TestTeeReporter(t *testing.T) {
	var a, b Recorder
	var calls int
	tee := TeeReporter(&a, ReporterFunc(func(Record) { calls++ }), &b)
	tee.Report(testRecord)
	require.Equal(t, []Record{testRecord}, a.Records())
	require.Equal(t, []Record{testRecord}, b.Records())
	require.Equal(t, 1, calls)
}

func TestRecorderConcurrent(t *testing.T) {
	var rec Recorder
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec.Report(testRecord)
			}
		}()
	}
	wg.Wait()
	require.Len(t, rec.Records(), 800)
	rec.Reset()
	require.Empty(t, rec.Records())
}

func TestSetDefaultReporter(t *testing.T) {
	orig := DefaultReporter()
	var rec Recorder
	restore := SetDefaultReporter(&rec)
	require.Equal(t, Reporter(&rec), DefaultReporter())

	v := VectorOf("a")
	v.Close()
	require.Len(t, rec.Records(), 1)

	restore()
	require.Equal(t, orig, DefaultReporter())
}
