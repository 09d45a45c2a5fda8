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

package pdb

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/RuiminYan/solver-sub000/internal/coord"
	"github.com/RuiminYan/solver-sub000/internal/cube"
	"github.com/RuiminYan/solver-sub000/internal/tableio"
	"github.com/RuiminYan/solver-sub000/internal/transtable"
)

// Name identifies one of the named pattern databases spec.md §4.F
// enumerates for the five analyzer variants.
type Name string

const (
	// CrossBase covers the four D-layer cross edges as a product of two
	// edges2 coordinates; it backs the "cross" columns and is not a
	// member of any composite table below.
	CrossBase Name = "cross_base"
	// CrossC4 pairs the 4-edge Cross coordinate with one corner.
	CrossC4 Name = "cross_c4"
	// PairC4E0 pairs one corner and one edge for the F2L pair search.
	PairC4E0 Name = "pair_c4_e0"
	// XCrossC4E0 extends CrossC4 with a second edge for xcross search.
	XCrossC4E0 Name = "xcross_c4_e0"
	// HugeNeighbor covers six edges and two adjacent-slot corners.
	HugeNeighbor Name = "huge_neighbor"
	// HugeDiagonal covers six edges and two diagonal-slot corners.
	HugeDiagonal Name = "huge_diagonal"
)

// idxC4 and idxE0 are the canonical slot-0 piece indices the base
// tables are seeded from: DBL corner (index 12 of the 0..23 corner
// coordinate range) and BL edge (index 0), per prune_tables.cpp.
const (
	idxC4 = 12
	idxE0 = 0
)

// setupAlgs are the four antisymmetric F2L setups used to seed the
// composite BFS floods before the main frontier expansion, transcribed
// from prune_tables.cpp's create_prune_table_cross_c4/pair_base.
var setupAlgStrings = []string{"L U L'", "L U' L'", "B' U B", "B' U' B"}

func mustParseAlg(s string) []int {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		t, ok := cube.ParseTurn(f)
		if !ok {
			panic(fmt.Sprintf("pdb: bad setup alg token %q", f))
		}
		out[i] = int(t)
	}
	return out
}

func setupAlgs() [][]int {
	out := make([][]int, len(setupAlgStrings))
	for i, s := range setupAlgStrings {
		out[i] = mustParseAlg(s)
	}
	return out
}

// Registry lazily loads-or-generates-then-persists named pattern
// databases, mirroring PruneTableManager's load/generate/save
// lifecycle. Composite tables pull their backing transition tables
// through a transtable.Registry.
type Registry struct {
	dir string
	tt  *transtable.Registry

	mu    sync.Mutex
	cache map[Name]*Table
}

// NewRegistry roots pattern database files under dir, using tt to
// resolve the transition tables each PDB is built from.
func NewRegistry(dir string, tt *transtable.Registry) *Registry {
	return &Registry{dir: dir, tt: tt, cache: make(map[Name]*Table)}
}

func (r *Registry) path(n Name) string {
	return filepath.Join(r.dir, fmt.Sprintf("prune_table_%s.bin", n))
}

// Get returns the named pattern database, loading it from disk or
// generating and persisting it if absent.
func (r *Registry) Get(n Name) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.cache[n]; ok {
		return t, nil
	}
	t, err := r.loadOrBuild(n)
	if err != nil {
		return nil, err
	}
	r.cache[n] = t
	return t, nil
}

func (r *Registry) loadOrBuild(n Name) (*Table, error) {
	size, err := r.size(n)
	if err != nil {
		return nil, err
	}
	path := r.path(n)
	raw, err := tableio.LoadBytes(path)
	if err == nil {
		return FromBytes(size, raw), nil
	}
	if !errors.Is(err, tableio.ErrTableMissing) {
		return nil, errors.Wrapf(err, "pdb: load %s", n)
	}

	t, err := r.build(n)
	if err != nil {
		return nil, errors.Wrapf(err, "pdb: build %s", n)
	}
	if err := tableio.SaveBytes(path, t.Bytes()); err != nil {
		return nil, errors.Wrapf(err, "pdb: save %s", n)
	}
	return t, nil
}

func (r *Registry) size(n Name) (int, error) {
	switch n {
	case CrossBase:
		sz := transtable.Params(transtable.Edges2).Size()
		return sz * sz, nil
	case CrossC4:
		return transtable.Params(transtable.Cross).Size() * transtable.Params(transtable.Corner).Size(), nil
	case PairC4E0:
		return transtable.Params(transtable.Edge).Size() * transtable.Params(transtable.Corner).Size(), nil
	case XCrossC4E0:
		return transtable.Params(transtable.Cross).Size() * transtable.Params(transtable.Corner).Size() * transtable.Params(transtable.Edge).Size(), nil
	case HugeNeighbor, HugeDiagonal:
		return transtable.Params(transtable.Edges6).Size() * transtable.Params(transtable.Corners2).Size(), nil
	default:
		return 0, errors.Errorf("pdb: unknown table %q", n)
	}
}

func (r *Registry) build(n Name) (*Table, error) {
	switch n {
	case CrossBase:
		edges2, err := r.tt.Get(transtable.Edges2)
		if err != nil {
			return nil, err
		}
		sz := transtable.Params(transtable.Edges2).Size()
		return generateCrossBase(sz, sz, edges2, edges2, solvedEdges2IndexA(), solvedEdges2IndexB(), 10, string(n)), nil

	case CrossC4:
		cross, err := r.tt.Get(transtable.Cross)
		if err != nil {
			return nil, err
		}
		corner, err := r.tt.Get(transtable.Corner)
		if err != nil {
			return nil, err
		}
		sz2 := transtable.Params(transtable.Corner).Size()
		return GenerateComposite(transtable.Params(transtable.Cross).Size(), sz2, cross, corner, solvedCrossIndex(), idxC4, setupAlgs(), 10, string(n)), nil

	case PairC4E0:
		edge, err := r.tt.Get(transtable.Edge)
		if err != nil {
			return nil, err
		}
		corner, err := r.tt.Get(transtable.Corner)
		if err != nil {
			return nil, err
		}
		sz1 := transtable.Params(transtable.Edge).Size()
		sz2 := transtable.Params(transtable.Corner).Size()
		return generatePairBase(sz1, sz2, edge, corner, idxE0, idxC4, 8, string(n)), nil

	case XCrossC4E0:
		cross, err := r.tt.Get(transtable.Cross)
		if err != nil {
			return nil, err
		}
		corner, err := r.tt.Get(transtable.Corner)
		if err != nil {
			return nil, err
		}
		edge, err := r.tt.Get(transtable.Edge)
		if err != nil {
			return nil, err
		}
		szCn := transtable.Params(transtable.Corner).Size()
		szEd := transtable.Params(transtable.Edge).Size()
		return generateXCrossFull(transtable.Params(transtable.Cross).Size(), szCn, szEd, cross, corner, edge, solvedCrossIndex(), idxC4, idxE0, 11, string(n)), nil

	case HugeNeighbor:
		return r.buildHuge([]int{0, 2, 16, 18, 20, 22}, []int{12, 15}, string(n))
	case HugeDiagonal:
		return r.buildHuge([]int{0, 4, 16, 18, 20, 22}, []int{12, 18}, string(n))

	default:
		return nil, errors.Errorf("pdb: no builder for %q", n)
	}
}

func (r *Registry) buildHuge(edgeIDs, cornerIDs []int, label string) (*Table, error) {
	e6, err := r.tt.GetEdges6()
	if err != nil {
		return nil, err
	}
	c2, err := r.tt.Get(transtable.Corners2)
	if err != nil {
		return nil, err
	}
	szE6 := transtable.Params(transtable.Edges6).Size()
	szC2 := transtable.Params(transtable.Corners2).Size()
	seedE6 := coord.Encode(edgeIDs, transtable.Params(transtable.Edges6))
	seedC2 := coord.Encode(cornerIDs, transtable.Params(transtable.Corners2))
	return GenerateHuge(szE6, szC2, e6, c2, seedE6, seedC2, 15, label), nil
}

// dLayerEdges is the raw (c*pos+ori) array of the four D-face edges —
// edge positions 8,9,10,11, per cube.Moves' D row touching only those
// EP slots — the piece set the GLOSSARY's "Cross" names. Split in half
// it also gives cross_base's two independent D-layer edge pairs.
var dLayerEdges = []int{16, 18, 20, 22}

// solvedCrossIndex returns the coordinate of the solved Cross (the
// four D-layer edges) — the BFS seed for cross_c4 and xcross_c4_e0.
func solvedCrossIndex() int {
	return coord.Encode(dLayerEdges, transtable.Params(transtable.Cross))
}

// solvedEdges2IndexA and solvedEdges2IndexB return the solved
// coordinate of cross_base's two independent D-layer edge pairs —
// {8,9} and {10,11} — the two BFS seeds create_prune_table_cross_base
// floods its product domain from.
func solvedEdges2IndexA() int {
	return coord.Encode(dLayerEdges[:2], transtable.Params(transtable.Edges2))
}

func solvedEdges2IndexB() int {
	return coord.Encode(dLayerEdges[2:], transtable.Params(transtable.Edges2))
}
