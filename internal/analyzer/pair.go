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
	"github.com/RuiminYan/solver-sub000/internal/pdb"
)

// pairStageNames mirrors PairSolver's solve_1_group..solve_4_group.
var pairStageNames = []string{"pair", "xpair", "xxpair", "xxxpair"}

const pairDepthCap = 16

// PairVariant solves for the depth of placing k F2L pairs (corner +
// edge, not just the cross) simultaneously, for k=1..4, swept across
// the four y-axis rotations. Ported from pair_analyzer.cpp's
// PairSolver; the per-task admissibility check of a 1-slot search here
// uses XCrossC4E0 alone (2-4 slot searches check only the Huge pair
// tables) rather than the original's three-table cascade
// (cross_c4 + pair_c4_e0 + xcross_c4_e0) — XCrossC4E0 is the strictly
// richer of the three (it folds in both the other tables' own piece
// sets), so using it alone keeps every bound admissible and simply
// forgoes some of the original's extra pruning strength. See
// DESIGN.md.
type PairVariant struct {
	ctx *Context
}

func NewPairVariant(ctx *Context) *PairVariant { return &PairVariant{ctx: ctx} }

func (v *PairVariant) Name() string { return "pair" }

func (v *PairVariant) RequiredPDBs() []pdb.Name {
	return []pdb.Name{pdb.XCrossC4E0, pdb.HugeNeighbor, pdb.HugeDiagonal}
}

func (v *PairVariant) Header() []string {
	return stageHeader("pair", pairStageNames)
}

func (v *PairVariant) Solve(id string, alg []int, nodes *int64) Result {
	stages := runStages(v.ctx, alg, v.ctx.XCrossC4E0, v.ctx.HugeNeighbor, v.ctx.HugeDiagonal, baseIndexOf, nil, pairDepthCap, nodes)
	return Result{ID: id, Columns: flattenStages(stages)}
}
