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

import "github.com/RuiminYan/solver-sub000/internal/pdb"

var pseudoStageNames = []string{"pseudoxcross", "pseudoxxcross", "pseudoxxxcross", "pseudof2l"}

const pseudoDepthCap = 18

// PseudoVariant reports the same four F2L-group-size depths as
// CrossVariant, but under the pseudo-slot reading spec.md §3.4
// describes: rot_map's whole-cube reorientation (stageSlotStates'
// symmetry.Rotate prefix, applied before the per-slot conjugation
// every variant in this port already composes with it) is the
// mechanism that lets one set of pattern databases answer "what if
// this scramble were held a different way" without rebuilding any
// table per orientation. CrossVariant and PseudoVariant therefore
// share runStages outright; the two are kept as distinct Variant
// values because spec.md's output contract names them as separate
// CSV files; see DESIGN.md for why no orientation-specific table or
// search path exists independently of the cross/pair variants' own.
type PseudoVariant struct {
	ctx *Context
}

func NewPseudoVariant(ctx *Context) *PseudoVariant { return &PseudoVariant{ctx: ctx} }

func (v *PseudoVariant) Name() string { return "pseudo" }

func (v *PseudoVariant) RequiredPDBs() []pdb.Name {
	return []pdb.Name{pdb.XCrossC4E0, pdb.HugeNeighbor, pdb.HugeDiagonal}
}

func (v *PseudoVariant) Header() []string {
	return stageHeader("pseudo", pseudoStageNames)
}

func (v *PseudoVariant) Solve(id string, alg []int, nodes *int64) Result {
	stages := runStages(v.ctx, alg, v.ctx.XCrossC4E0, v.ctx.HugeNeighbor, v.ctx.HugeDiagonal, baseIndexOf, nil, pseudoDepthCap, nodes)
	return Result{ID: id, Columns: flattenStages(stages)}
}
