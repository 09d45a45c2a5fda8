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

import (
	"testing"

	"github.com/RuiminYan/solver-sub000/internal/pdb"
)

// toggleTable builds a synthetic 2-state, 18-move table where
// toggleMove flips the state and every other move is identity, the
// same shape used to validate the BFS flood in internal/pdb.
func toggleTable(toggleMove int) []int32 {
	mt := make([]int32, 2*18)
	for s := 0; s < 2; s++ {
		for m := 0; m < 18; m++ {
			v := s
			if m == toggleMove {
				v = 1 - s
			}
			mt[s*18+m] = int32(v)
		}
	}
	return mt
}

func TestSolveSingleFindsExactDepth(t *testing.T) {
	table := toggleTable(0)
	prune := pdb.NewTable(2)
	prune.Set(0, 0)
	prune.Set(1, 1)

	var nodes int64
	v := NewPlainView(table, 1) // one move (toggle) away from solved.
	d, ok := SolveSingle(v, prune, 1, 5, &nodes)
	if !ok || d != 1 {
		t.Fatalf("SolveSingle() = (%d, %v), want (1, true)", d, ok)
	}
}

func TestSolveSingleRespectsDepthCap(t *testing.T) {
	table := toggleTable(0)
	prune := pdb.NewTable(2) // every cell Unvisited: no distance is ever < depth.

	var nodes int64
	v := NewPlainView(table, 0)
	if _, ok := SolveSingle(v, prune, 1, 2, &nodes); ok {
		t.Fatalf("SolveSingle() found a solution against an all-unvisited prune table")
	}
}

func TestSolvePairFindsExactDepth(t *testing.T) {
	a := toggleTable(0)
	b := toggleTable(1)
	// Matches generateCrossBase's hand-traced distances for this exact
	// pair of tables: solved=(0,0), either single toggle=1, both=2.
	prune := pdb.NewTable(4)
	prune.Set(0, 0)
	prune.Set(1, 1)
	prune.Set(2, 1)
	prune.Set(3, 2)

	var nodes int64
	viewA := NewPlainView(a, 0)
	viewB := NewPlainView(b, 1)
	d, ok := SolvePair(viewA, viewB, 2, prune, 1, 5, &nodes)
	if !ok || d != 1 {
		t.Fatalf("SolvePair() = (%d, %v), want (1, true)", d, ok)
	}
}

func TestSolvePairNotFoundBelowActualDepth(t *testing.T) {
	a := toggleTable(0)
	b := toggleTable(1)
	prune := pdb.NewTable(4)
	prune.Set(0, 0)
	prune.Set(1, 1)
	prune.Set(2, 1)
	prune.Set(3, 2)

	var nodes int64
	viewA := NewPlainView(a, 1)
	viewB := NewPlainView(b, 1) // distance 2 from solved.
	if _, ok := SolvePair(viewA, viewB, 2, prune, 1, 1, &nodes); ok {
		t.Fatalf("SolvePair() reported a depth-1 solution for a distance-2 state")
	}
}
