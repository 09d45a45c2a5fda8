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
	"reflect"
	"sort"
	"testing"

	"github.com/RuiminYan/solver-sub000/internal/coord"
	"github.com/RuiminYan/solver-sub000/internal/cube"
	"github.com/RuiminYan/solver-sub000/internal/transtable"
)

// dLayerPositions returns the edge slot positions a D turn actually
// permutes, derived straight from cube.Moves rather than from
// dLayerEdges itself, so this test still fails if the seed ever drifts
// from the piece set D touches.
func dLayerPositions() []int {
	d := cube.Moves[3] // Turn 3 = 3*D+0, D's clockwise quarter.
	var out []int
	for pos, id := range d.EP {
		if id != pos {
			out = append(out, pos)
		}
	}
	sort.Ints(out)
	return out
}

func decodedPositions(index int, p coord.Params) []int {
	raw := coord.Decode(index, p)
	pos := make([]int, len(raw))
	for i, v := range raw {
		pos[i] = (v / 18) / p.C
	}
	sort.Ints(pos)
	return pos
}

func TestSolvedCrossIndexTargetsDLayerEdges(t *testing.T) {
	want := dLayerPositions()
	got := decodedPositions(solvedCrossIndex(), transtable.Params(transtable.Cross))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("solvedCrossIndex decodes to positions %v, want the D-layer edges %v", got, want)
	}
}

func TestSolvedEdges2SeedsAreDLayerHalves(t *testing.T) {
	dLayer := dLayerPositions()
	wantA, wantB := dLayer[:2], dLayer[2:]

	params := transtable.Params(transtable.Edges2)
	if got := decodedPositions(solvedEdges2IndexA(), params); !reflect.DeepEqual(got, wantA) {
		t.Fatalf("solvedEdges2IndexA decodes to %v, want %v", got, wantA)
	}
	if got := decodedPositions(solvedEdges2IndexB(), params); !reflect.DeepEqual(got, wantB) {
		t.Fatalf("solvedEdges2IndexB decodes to %v, want %v", got, wantB)
	}
}

func TestCrossBaseSizeIsProductDomain(t *testing.T) {
	r := &Registry{}
	sz, err := r.size(CrossBase)
	if err != nil {
		t.Fatal(err)
	}
	edges2Sz := transtable.Params(transtable.Edges2).Size()
	if want := edges2Sz * edges2Sz; sz != want {
		t.Fatalf("CrossBase size = %d, want %d (edges2 size %d squared)", sz, want, edges2Sz)
	}
}
