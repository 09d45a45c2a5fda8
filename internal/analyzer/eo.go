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
	"github.com/RuiminYan/solver-sub000/internal/heuristic"
	"github.com/RuiminYan/solver-sub000/internal/pdb"
)

var eoStageNames = []string{"eopair", "eoxpair", "eoxxpair", "eoxxxpair"}

const eoDepthCap = 16

// EOVariant composes two independently generated pattern databases per
// spec.md §9's Open Question, resolved in SPEC_FULL.md §4.I: the
// cross+corner table (s_p_prune, modeled here by CrossC4) and the
// cross+corner+edge table (s_p_prune_base, modeled by XCrossC4E0) never
// alias each other, and the heuristic composer takes the max of both
// plus the Huge cascade rather than assuming they agree. The per-move
// search prune reads XCrossC4E0 alone (the richer of the two) for
// 1-slot combos and only the Huge pair tables for 2-4 slot combos;
// CrossC4 only sharpens the lower bound bestOverCombos sorts and cuts
// on, which preserves admissibility without doubling the per-move
// table-read cost.
type EOVariant struct {
	ctx *Context
}

func NewEOVariant(ctx *Context) *EOVariant { return &EOVariant{ctx: ctx} }

func (v *EOVariant) Name() string { return "eo" }

func (v *EOVariant) RequiredPDBs() []pdb.Name {
	return []pdb.Name{pdb.CrossC4, pdb.XCrossC4E0, pdb.HugeNeighbor, pdb.HugeDiagonal}
}

func (v *EOVariant) Header() []string {
	return stageHeader("eo", eoStageNames)
}

func (v *EOVariant) Solve(id string, alg []int, nodes *int64) Result {
	extra := func(s heuristic.SlotState) int {
		return v.ctx.CrossC4.Get(s.Multi.Coord()*24 + s.Corner.Coord())
	}
	stages := runStages(v.ctx, alg, v.ctx.XCrossC4E0, v.ctx.HugeNeighbor, v.ctx.HugeDiagonal, baseIndexOf, extra, eoDepthCap, nodes)
	return Result{ID: id, Columns: flattenStages(stages)}
}
