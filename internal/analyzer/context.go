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
	"github.com/pkg/errors"

	"github.com/RuiminYan/solver-sub000/internal/heuristic"
	"github.com/RuiminYan/solver-sub000/internal/pdb"
	"github.com/RuiminYan/solver-sub000/internal/transtable"
)

// Context bundles every transition table and pattern database a
// Variant's Solve method reads from, loaded once and shared (read-only
// after NewContext, per spec.md §5's "Shared state" policy) across
// every goroutine the runner spins up.
type Context struct {
	Tables heuristic.Tables
	Edges2 []int32    // backing table for Base's un-conjugated search
	Base   *pdb.Table // cross_base, the 4-edge cross table over two edges2 coordinates

	CrossC4      *pdb.Table
	PairC4E0     *pdb.Table
	XCrossC4E0   *pdb.Table
	HugeNeighbor *pdb.Table
	HugeDiagonal *pdb.Table
}

// NewContext loads exactly the tables and PDBs named, mirroring
// run_analyzer_app's startup sequence (load tables, then the PDBs that
// depend on them). Each table is resolved through its registry, which
// builds and saves any table not yet on disk, so a missing table is
// generated here rather than reported; a wrapped error is returned only
// when loading, building or saving a table fails.
func NewContext(tt *transtable.Registry, pp *pdb.Registry, pdbs []pdb.Name) (*Context, error) {
	c := &Context{}

	need := make(map[pdb.Name]bool, len(pdbs))
	for _, n := range pdbs {
		need[n] = true
	}

	var err error
	if c.Tables.Corner, err = tt.Get(transtable.Corner); err != nil {
		return nil, errors.Wrap(err, "analyzer: load corner table")
	}
	if c.Tables.Edge, err = tt.Get(transtable.Edge); err != nil {
		return nil, errors.Wrap(err, "analyzer: load edge table")
	}
	if c.Tables.Cross, err = tt.Get(transtable.Cross); err != nil {
		return nil, errors.Wrap(err, "analyzer: load cross table")
	}
	if need[pdb.HugeNeighbor] || need[pdb.HugeDiagonal] {
		if c.Tables.Edge6, err = tt.GetEdges6(); err != nil {
			return nil, errors.Wrap(err, "analyzer: load edges6 table")
		}
		if c.Tables.Corner2, err = tt.Get(transtable.Corners2); err != nil {
			return nil, errors.Wrap(err, "analyzer: load corners2 table")
		}
	}

	if need[pdb.CrossBase] {
		if c.Edges2, err = tt.Get(transtable.Edges2); err != nil {
			return nil, errors.Wrap(err, "analyzer: load edges2 table")
		}
	}

	for n := range need {
		t, err := pp.Get(n)
		if err != nil {
			return nil, errors.Wrapf(err, "analyzer: load pdb %s", n)
		}
		switch n {
		case pdb.CrossBase:
			c.Base = t
		case pdb.CrossC4:
			c.CrossC4 = t
		case pdb.PairC4E0:
			c.PairC4E0 = t
		case pdb.XCrossC4E0:
			c.XCrossC4E0 = t
		case pdb.HugeNeighbor:
			c.HugeNeighbor = t
		case pdb.HugeDiagonal:
			c.HugeDiagonal = t
		}
	}
	return c, nil
}

// States walks alg once per physical slot through heuristic.ConjugateAll.
func (c *Context) States(alg []int) [4]heuristic.SlotState {
	return heuristic.ConjugateAll(alg, c.Tables)
}
