// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package ui renders operator-facing progress and summary output with
// github.com/fatih/color, replacing the original's raw ANSI escape
// constants (ANSI_RESET, ANSI_YELLOW, ...) with the same colored
// terminal feedback. Never imported by the core coordinate/search/PDB
// packages — spec.md §1 calls this purely an external collaborator.
package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/RuiminYan/solver-sub000/internal/stats"
)

var (
	label = color.New(color.FgCyan).SprintFunc()
	value = color.New(color.FgYellow, color.Bold).SprintFunc()
)

// ReportProgress renders one progress line: completed/total scrambles,
// nodes visited and nodes/sec since start.
func ReportProgress(start time.Time, s stats.Snapshot) {
	elapsed := time.Since(start).Seconds()
	nps := float64(0)
	if elapsed > 0 {
		nps = float64(s.Nodes) / elapsed
	}
	fmt.Fprintf(os.Stderr, "\r%s %s/%s  %s %s  %s %.0f/s   ",
		label("done"), value(s.Completed), value(s.Total),
		label("nodes"), value(s.Nodes),
		label("rate"), nps)
}

// Done prints the final summary line and a trailing newline so the
// next log line does not overwrite the last progress update.
func Done(s stats.Snapshot, elapsed time.Duration) {
	fmt.Fprintf(os.Stderr, "\n%s %s scrambles in %s\n",
		color.GreenString("finished"), value(s.Completed), elapsed.Round(time.Millisecond))
}

// Warn prints a one-line operator warning (e.g. dropped-token counts
// per spec.md §7), colored distinctly from ordinary log output.
func Warn(format string, args ...any) {
	fmt.Fprintln(os.Stderr, color.YellowString(format, args...))
}
