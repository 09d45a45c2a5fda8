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

// Package heuristic composes admissible lower bounds from one or more
// pattern databases, including the conjugated per-slot views spec.md
// §3.4/§4.D describes: walking a scramble once through all four F2L
// conjugations to produce the per-slot coordinates every analyzer
// variant probes its tables with (callers rotate the scramble first).
package heuristic

import (
	"github.com/RuiminYan/solver-sub000/internal/coord"
	"github.com/RuiminYan/solver-sub000/internal/pdb"
	"github.com/RuiminYan/solver-sub000/internal/search"
	"github.com/RuiminYan/solver-sub000/internal/symmetry"
	"github.com/RuiminYan/solver-sub000/internal/transtable"
)

// Max returns the largest of the given values, the standard way an
// admissible composite heuristic combines several single-PDB bounds
// (spec.md §3.4: "the composed heuristic ... is the maximum").
func Max(vals ...int) int {
	m := 0
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

// Piece ids from the original's comments: DBL corner = 12, BL edge =
// 0; the three other per-slot corners/edges are 90 degrees apart in
// the coordinate's own id space (+3 per corner slot, +2 per edge
// slot), and the huge tables' neighbor/diagonal seeds use the
// explicit id sets transcribed in pdb.Registry's buildHuge callers.
const (
	idC4 = 12
	idE0 = 0
)

// SlotState is one physical F2L slot's conjugated coordinate set,
// ported from get_conjugated_indices_all's per-k outputs.
type SlotState struct {
	Multi                search.View // cross (scale-24) coordinate
	Corner               search.View
	Edge0, Edge2, Edge4, Edge6 search.View
	Corn5, Corn6, Corn7  search.View
	Neighbor, Diagonal   search.CrossView
}

// Tables bundles the transition tables ConjugateAll needs; callers
// typically source these once per process from a transtable.Registry.
type Tables struct {
	Cross, Corner, Edge, Edge6, Corner2 []int32
}

// ConjugateAll walks alg once per physical slot (0..3), applying each
// move through that slot's conjugation, and returns the resulting
// SlotState for all four slots. Direct analogue of
// XCrossSolver::get_conjugated_indices_all, called once per slot in
// the original; batched into a single 4-slot pass here since all four
// conjugations are always needed together by every std/pseudo stage.
func ConjugateAll(alg []int, t Tables) [4]SlotState {
	// {16,18,20,22} are D-layer edge positions 8-11, the Cross itself.
	crossSeed := coord.Encode([]int{16, 18, 20, 22}, transtable.Params(transtable.Cross)) * 24
	edge6NbSeed := coord.Encode([]int{0, 2, 16, 18, 20, 22}, transtable.Params(transtable.Edges6))
	corn2NbSeed := coord.Encode([]int{12, 15}, transtable.Params(transtable.Corners2))
	edge6DgSeed := coord.Encode([]int{0, 4, 16, 18, 20, 22}, transtable.Params(transtable.Edges6))
	corn2DgSeed := coord.Encode([]int{12, 18}, transtable.Params(transtable.Corners2))

	var out [4]SlotState
	for k := 0; k < 4; k++ {
		multi := search.NewScaledView(t.Cross, crossSeed)
		corner := search.NewPlainView(t.Corner, idC4)
		e0 := search.NewPlainView(t.Edge, idE0)
		e2 := search.NewPlainView(t.Edge, idE0+2)
		e4 := search.NewPlainView(t.Edge, idE0+4)
		e6 := search.NewPlainView(t.Edge, idE0+6)
		c5 := search.NewPlainView(t.Corner, idC4+3)
		c6 := search.NewPlainView(t.Corner, idC4+6)
		c7 := search.NewPlainView(t.Corner, idC4+9)
		nbE := search.NewPlainView(t.Edge6, edge6NbSeed)
		nbC := search.NewPlainView(t.Corner2, corn2NbSeed)
		dgE := search.NewPlainView(t.Edge6, edge6DgSeed)
		dgC := search.NewPlainView(t.Corner2, corn2DgSeed)

		for _, m := range alg {
			mc := symmetry.Conj[m][k]
			multi, _ = multi.Step(mc)
			corner, _ = corner.Step(mc)
			e0, _ = e0.Step(mc)
			e2, _ = e2.Step(mc)
			e4, _ = e4.Step(mc)
			e6, _ = e6.Step(mc)
			c5, _ = c5.Step(mc)
			c6, _ = c6.Step(mc)
			c7, _ = c7.Step(mc)
			nbE, _ = nbE.Step(mc)
			nbC, _ = nbC.Step(mc)
			dgE, _ = dgE.Step(mc)
			dgC, _ = dgC.Step(mc)
		}

		out[k] = SlotState{
			Multi: multi, Corner: corner,
			Edge0: e0, Edge2: e2, Edge4: e4, Edge6: e6,
			Corn5: c5, Corn6: c6, Corn7: c7,
			Neighbor: search.CrossView{Edge6: nbE, Corn2: nbC},
			Diagonal: search.CrossView{Edge6: dgE, Corn2: dgC},
		}
	}
	return out
}

// BaseIndex returns the composite index a SlotState's own (multi,
// corner, edge0) coordinates form into the XCrossC4E0 table.
func (s SlotState) BaseIndex() int {
	return (s.Multi.Coord()*24+s.Corner.Coord())*24 + s.Edge0.Coord()
}

// PairHeuristic returns the best available lower bound for the pair
// of physical slots (a,b): the neighbor table if adjacent, else the
// diagonal table if opposite, else 0 (no applicable composite table).
func PairHeuristic(states [4]SlotState, neighbor, diagonal *pdb.Table, a, b int) (h int, view int, table *pdb.Table) {
	if v := search.NeighborView(a, b); v != -1 && neighbor != nil {
		cv := states[v].Neighbor
		return neighbor.Get(cv.Edge6.Coord()*504 + cv.Corn2.Coord()), v, neighbor
	}
	if v := search.DiagonalView(a, b); v != -1 && diagonal != nil {
		cv := states[v].Diagonal
		return diagonal.Get(cv.Edge6.Coord()*504 + cv.Corn2.Coord()), v, diagonal
	}
	return 0, -1, nil
}
