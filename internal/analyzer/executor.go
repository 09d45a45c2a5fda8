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

package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/RuiminYan/solver-sub000/internal/csvout"
	"github.com/RuiminYan/solver-sub000/internal/runner"
	"github.com/RuiminYan/solver-sub000/internal/scramble"
	"github.com/RuiminYan/solver-sub000/internal/stats"
	"github.com/RuiminYan/solver-sub000/internal/ui"
)

// RunFile is the Go shape of analyzer_executor.h's run_analyzer_app:
// parse one input file, fan its scrambles out across workers, and
// drain results back to a CSV file in original order.
func RunFile(v Variant, inputPath string, workers int, compress bool) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrapf(err, "analyzer: open %s", inputPath)
	}
	defer f.Close()

	parsed, err := scramble.Parse(f)
	if err != nil {
		return errors.Wrapf(err, "analyzer: parse %s", inputPath)
	}
	if parsed.DroppedTokens > 0 || parsed.DroppedLines > 0 {
		ui.Warn("dropped %d unrecognized tokens across %d lines", parsed.DroppedTokens, parsed.DroppedLines)
	}

	outPath := outputPath(inputPath, v.Name(), compress)
	out, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "analyzer: create %s", outPath)
	}
	w := csvout.New(out, compress)
	if err := w.WriteHeader(v.Header()); err != nil {
		return errors.Wrap(err, "analyzer: write header")
	}

	var counters stats.Counters
	counters.Reset(len(parsed.Entries))
	start := time.Now()
	go stats.Monitor(&counters, func(s stats.Snapshot) { ui.ReportProgress(start, s) })

	runner.Run(len(parsed.Entries), workers,
		func(i int) any {
			var nodes int64
			e := parsed.Entries[i]
			res := v.Solve(e.ID, e.Alg, &nodes)
			counters.AddNodes(nodes)
			counters.IncCompleted()
			return res
		},
		func(i int, result any) {
			r := result.(Result)
			if err := w.WriteRow(r.ID, r.Columns); err != nil {
				log.Printf("analyzer: write row %s: %v", r.ID, err)
			}
		},
	)
	counters.Stop()
	ui.Done(counters.Snapshot(), time.Since(start))

	return w.Close()
}

// outputPath derives "<input>_<suffix>.csv" or ".csv.snz" per
// spec.md §6 / §6.3.
func outputPath(input, suffix string, compress bool) string {
	base := strings.TrimSuffix(input, ".txt")
	base = strings.TrimSuffix(base, ".csv")
	ext := ".csv"
	if compress {
		ext = ".csv.snz"
	}
	return fmt.Sprintf("%s_%s%s", base, suffix, ext)
}

// PromptLoop is the interactive "Enter file (or exit)" fallback
// spec.md §6 describes, used when no positional input file is given.
func PromptLoop(v Variant, workers int, compress bool, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Enter file (or exit): ")
		line, err := r.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}
		if err := RunFile(v, line, workers, compress); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}
