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
	"strconv"

	"github.com/RuiminYan/solver-sub000/internal/coord"
	"github.com/RuiminYan/solver-sub000/internal/heuristic"
	"github.com/RuiminYan/solver-sub000/internal/pdb"
	"github.com/RuiminYan/solver-sub000/internal/search"
	"github.com/RuiminYan/solver-sub000/internal/symmetry"
	"github.com/RuiminYan/solver-sub000/internal/transtable"
)

// crossSeedA and crossSeedB are the solved coordinates of cross_base's
// two independent D-layer edge pairs ({8,9} and {10,11}), matching
// pdb.Registry's solvedEdges2IndexA/B seeds for that table's product
// domain.
var (
	crossSeedA = coord.Encode([]int{16, 18}, transtable.Params(transtable.Edges2))
	crossSeedB = coord.Encode([]int{20, 22}, transtable.Params(transtable.Edges2))
)

// crossStageNames names the four slot-group sizes CrossSolver and
// XCrossSolver report, ported from std_analyzer.cpp's get_stats: one
// slot solved alone (xcross), two solved together (xxcross), three
// (xxxcross), all four (f2l).
var crossStageNames = []string{"xcross", "xxcross", "xxxcross", "f2l"}

// crossDepthCap mirrors the per-stage max-depth ceilings std_analyzer.cpp
// iterates up to (8/12/14/16/18 observed across its four stages); a
// single conservative ceiling covers the non-EO variant's reach without
// hand-tuning per stage, since IDA* degrades gracefully (simply returns
// "not found within cap", reported as the cap value) rather than
// incorrectly.
const crossDepthCap = 18

// CrossVariant is the std flavour: a plain, un-conjugated 2-edge
// "cross" depth plus the four F2L-group-size stages, each swept across
// the four y-axis viewing rotations.
type CrossVariant struct {
	ctx *Context
}

// NewCrossVariant wires a Context already loaded with CrossBase,
// XCrossC4E0, HugeNeighbor and HugeDiagonal.
func NewCrossVariant(ctx *Context) *CrossVariant { return &CrossVariant{ctx: ctx} }

func (v *CrossVariant) Name() string { return "cross" }

func (v *CrossVariant) RequiredPDBs() []pdb.Name {
	return []pdb.Name{pdb.CrossBase, pdb.XCrossC4E0, pdb.HugeNeighbor, pdb.HugeDiagonal}
}

func (v *CrossVariant) Header() []string {
	h := make([]string, 0, 20)
	for _, rs := range rotationSuffix {
		h = append(h, "cross_"+rs)
	}
	h = append(h, stageHeader("cross", crossStageNames)...)
	return h
}

func (v *CrossVariant) Solve(id string, alg []int, nodes *int64) Result {
	szEdges2 := transtable.Params(transtable.Edges2).Size()
	cross := make([]string, 0, len(rotations))
	for _, r := range rotations {
		rotated := symmetry.Rotate(alg, r)
		viewA := walkPlainView(v.ctx.Edges2, crossSeedA, rotated)
		viewB := walkPlainView(v.ctx.Edges2, crossSeedB, rotated)
		d := 0
		if v.ctx.Base.Get(viewA.Coord()*szEdges2+viewB.Coord()) != 0 {
			found, ok := search.SolvePair(viewA, viewB, szEdges2, v.ctx.Base, 1, 10, nodes)
			d = 10
			if ok {
				d = found
			}
		}
		cross = append(cross, strconv.Itoa(d))
	}

	stages := runStages(v.ctx, alg, v.ctx.XCrossC4E0, v.ctx.HugeNeighbor, v.ctx.HugeDiagonal, baseIndexOf, nil, crossDepthCap, nodes)

	cols := append(cross, flattenStages(stages)...)
	return Result{ID: id, Columns: cols}
}

// walkPlainView advances a fresh stride-18 view from seed through alg,
// the same "replay the scramble once" shape ConjugateAll uses, without
// per-slot conjugation (the basic cross stage has no F2L slot).
func walkPlainView(table []int32, seed int, alg []int) search.View {
	v := search.NewPlainView(table, seed)
	for _, m := range alg {
		v, _ = v.Step(m)
	}
	return v
}

func baseIndexOf(s heuristic.SlotState) int { return s.BaseIndex() }
