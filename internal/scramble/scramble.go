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

// Package scramble parses the analyzer's input files: one
// "id,scramble" pair per line, per spec.md §6's input contract.
package scramble

import (
	"bufio"
	"io"
	"strings"

	"github.com/RuiminYan/solver-sub000/internal/cube"
)

// Entry is one parsed input line.
type Entry struct {
	ID   string
	Alg  []int
	Line int // 1-based source line, for diagnostics
}

// Result bundles the parsed entries with the unrecognized-token count
// spec.md §7 asks binaries to warn about without changing CSV output.
type Result struct {
	Entries      []Entry
	DroppedLines int
	DroppedTokens int
}

// Parse reads id,scramble lines from r. Blank lines are skipped
// silently. A line whose scramble tokenizes to zero recognized turns
// is dropped and counted; individual unrecognized tokens within an
// otherwise valid line are dropped and counted without dropping the
// line, per spec.md §7's "drop unknown tokens silently, but count
// them."
func Parse(r io.Reader) (Result, error) {
	var res Result
	scan := bufio.NewScanner(r)
	lineNo := 0
	for scan.Scan() {
		lineNo++
		line := strings.TrimRight(scan.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, scrambleText, ok := splitIDScramble(line)
		if !ok {
			res.DroppedLines++
			continue
		}
		alg, dropped := tokenize(scrambleText)
		res.DroppedTokens += dropped
		if len(alg) == 0 {
			res.DroppedLines++
			continue
		}
		res.Entries = append(res.Entries, Entry{ID: id, Alg: alg, Line: lineNo})
	}
	if err := scan.Err(); err != nil {
		return res, err
	}
	return res, nil
}

func splitIDScramble(line string) (id, scrambleText string, ok bool) {
	idx := strings.IndexByte(line, ',')
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

func tokenize(s string) (alg []int, dropped int) {
	for _, f := range strings.Fields(s) {
		t, ok := cube.ParseTurn(f)
		if !ok {
			dropped++
			continue
		}
		alg = append(alg, int(t))
	}
	return alg, dropped
}
