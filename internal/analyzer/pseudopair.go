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

var pseudoPairStageNames = []string{"pseudopair", "pseudoxpair", "pseudoxxpair", "pseudoxxxpair"}

// PseudoPairVariant is PairVariant's pseudo-slot counterpart, the
// shipping behavior pseudo_pair_analyzer.cpp converges to per spec.md
// §9 (the _no_conj experimental branch is read-only cross-check
// material, never ported — see SPEC_FULL.md §4.I).
type PseudoPairVariant struct {
	ctx *Context
}

func NewPseudoPairVariant(ctx *Context) *PseudoPairVariant { return &PseudoPairVariant{ctx: ctx} }

func (v *PseudoPairVariant) Name() string { return "pseudo_pair" }

func (v *PseudoPairVariant) RequiredPDBs() []pdb.Name {
	return []pdb.Name{pdb.XCrossC4E0, pdb.HugeNeighbor, pdb.HugeDiagonal}
}

func (v *PseudoPairVariant) Header() []string {
	return stageHeader("pseudo_pair", pseudoPairStageNames)
}

func (v *PseudoPairVariant) Solve(id string, alg []int, nodes *int64) Result {
	stages := runStages(v.ctx, alg, v.ctx.XCrossC4E0, v.ctx.HugeNeighbor, v.ctx.HugeDiagonal, baseIndexOf, nil, pairDepthCap, nodes)
	return Result{ID: id, Columns: flattenStages(stages)}
}
