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

// Package analyzer wires the coordinate/PDB/search stack into the five
// depth-analyzer flavours spec.md's table names: cross, pair, eo,
// pseudo and pseudo-pair. Each is a small Variant value consumed by
// internal/runner and internal/csvout, the Go shape of the original's
// run_analyzer_app<SolverT> template.
package analyzer

import "github.com/RuiminYan/solver-sub000/internal/pdb"

// Result is one CSV row: the scramble's id plus the columns a Variant
// filled in, aligned 1:1 with that Variant's Header().
type Result struct {
	ID      string
	Columns []string
}

// Variant is the capability interface every analyzer binary wires into
// the shared runner/csvout executor (spec.md §4.I). Solve is given the
// already-tokenized scramble (spec.md §6's turn stream) and a node
// counter it increments for internal/stats to aggregate.
type Variant interface {
	// Name identifies the variant for logging and the output file
	// suffix (spec.md §6: "<input>_<suffix>.csv").
	Name() string
	// RequiredPDBs lists the pattern databases NewContext must load
	// before any Solve call.
	RequiredPDBs() []pdb.Name
	// Header returns the CSV column names, id column excluded.
	Header() []string
	// Solve computes one scramble's row. nodes is incremented once per
	// search-tree node visited, mirroring COUNT_NODE.
	Solve(id string, alg []int, nodes *int64) Result
}
