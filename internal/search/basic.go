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

package search

import "github.com/RuiminYan/solver-sub000/internal/pdb"

// SolvePair runs the plain, unconjugated two-coordinate search the
// basic cross stage uses (CrossSolver::search in the original): both
// views share a single move stream with no per-slot conjugation, and
// the composite index is row*stride+col rather than the *24-combined
// form the F2L stages use.
func SolvePair(a, b View, stride int, prune *pdb.Table, dMin, dMax int, nodes Counter) (int, bool) {
	for d := dMin; d <= dMax; d++ {
		if dfsPair(a, b, stride, prune, d, Root, nodes) {
			return d, true
		}
	}
	return 0, false
}

// SolveSingle runs a plain one-coordinate search against a base table
// addressed directly by the view's own coordinate (CrossSolver::search
// with only the edges2 view active). No analyzer variant calls it; the
// "cross" columns of CrossVariant use SolvePair.
func SolveSingle(v View, prune *pdb.Table, dMin, dMax int, nodes Counter) (int, bool) {
	for d := dMin; d <= dMax; d++ {
		if dfsSingle(v, prune, d, Root, nodes) {
			return d, true
		}
	}
	return 0, false
}

func dfsSingle(v View, prune *pdb.Table, depth, prev int, nodes Counter) bool {
	moves := ValidMovesFor(prev)
	for _, m := range moves {
		*nodes++
		nv, r := v.Step(m)
		if prune.Get(r) >= depth {
			continue
		}
		if depth == 1 {
			return true
		}
		if dfsSingle(nv, prune, depth-1, m, nodes) {
			return true
		}
	}
	return false
}

func dfsPair(a, b View, stride int, prune *pdb.Table, depth, prev int, nodes Counter) bool {
	moves := ValidMovesFor(prev)
	for _, m := range moves {
		*nodes++
		na, ra := a.Step(m)
		nb, rb := b.Step(m)
		idx := ra*stride + rb
		if prune.Get(idx) >= depth {
			continue
		}
		if depth == 1 {
			return true
		}
		if dfsPair(na, nb, stride, prune, depth-1, m, nodes) {
			return true
		}
	}
	return false
}
