// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// tracked-demo exercises every tracked container shape through the clear
// and deletion paths and prints the resulting reports.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/tracked/pkg/util/log"
	"github.com/cockroachdb/tracked/pkg/util/tracked"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// reporterKind selects where reports go.
type reporterKind int

const (
	reporterStdout reporterKind = iota
	reporterLog
)

var _ pflag.Value = (*reporterKind)(nil)

var reporterKinds = map[string]reporterKind{
	"stdout": reporterStdout,
	"log":    reporterLog,
}

// String implements the pflag.Value interface.
func (k *reporterKind) String() string {
	for name, v := range reporterKinds {
		if v == *k {
			return name
		}
	}
	return "unknown"
}

// Type implements the pflag.Value interface.
func (k *reporterKind) Type() string { return "<stdout|log>" }

// Set implements the pflag.Value interface.
func (k *reporterKind) Set(v string) error {
	kind, ok := reporterKinds[v]
	if !ok {
		return errors.Newf("unknown reporter: %q", v)
	}
	*k = kind
	return nil
}

// demoCtx captures the command-line parameters of tracked-demo.
var demoCtx struct {
	reporter       reporterKind
	summary        bool
	noColor        bool
	redactableLogs bool
}

// setDemoContextDefaults sets the default values in demoCtx. It is called
// once at initialization and again by tests.
func setDemoContextDefaults() {
	demoCtx.reporter = reporterStdout
	demoCtx.summary = false
	demoCtx.noColor = false
	demoCtx.redactableLogs = false
}

var rootCmd = &cobra.Command{
	Use:   "tracked-demo",
	Short: "report tracked containers that lose their contents",
	Long: `
Constructs one container of each tracked shape, clears the clearable ones,
then lets a second set go out of scope while still holding elements. Every
loss of contents is reported.
`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runDemo,
}

func init() {
	setDemoContextDefaults()
	f := rootCmd.Flags()
	f.Var(&demoCtx.reporter, "reporter", "where to send reports: stdout or log")
	f.BoolVar(&demoCtx.summary, "summary", demoCtx.summary,
		"print a table of all reports once the demo completes")
	f.BoolVar(&demoCtx.noColor, "no-color", demoCtx.noColor,
		"disable colors in log output")
	f.BoolVar(&demoCtx.redactableLogs, "redactable-logs", demoCtx.redactableLogs,
		"mark sensitive log data with redaction markers")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, _ []string) error {
	defer log.SetNoColor(demoCtx.noColor)()
	defer log.SetRedactable(demoCtx.redactableLogs)()

	ctx := logtags.AddTag(context.Background(), "demo", nil)
	out := cmd.OutOrStdout()

	var rec tracked.Recorder
	var r tracked.Reporter
	switch demoCtx.reporter {
	case reporterLog:
		r = tracked.LogReporter(ctx)
	default:
		r = tracked.WriterReporter(out)
	}
	defer tracked.SetDefaultReporter(tracked.TeeReporter(r, &rec))()

	log.Info(ctx, "tracking containers on clear")
	trackOnClear()
	log.Info(ctx, "tracking containers on deletion")
	trackOnDeletion()
	log.Infof(ctx, "%d containers reported", len(rec.Records()))

	if demoCtx.summary {
		return printSummary(out, rec.Records())
	}
	return nil
}

// printSummary renders records as a table, followed by the total data
// size lost.
func printSummary(w io.Writer, records []tracked.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "no reports")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"type", "event", "size", "data size", "created at"})
	var total uint64
	for _, r := range records {
		total += uint64(r.DataSize())
		table.Append([]string{
			r.TypeName,
			r.Event.String(),
			fmt.Sprint(r.Len),
			humanize.IBytes(uint64(r.DataSize())),
			r.Site.String(),
		})
	}
	table.Render()
	_, err := fmt.Fprintf(w, "(%d reports, %s total)\n", len(records), humanize.IBytes(total))
	return err
}
