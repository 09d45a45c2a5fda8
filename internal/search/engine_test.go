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

import "testing"

func TestNeighborView(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 1, 0},
		{1, 0, 0},
		{1, 2, 1},
		{2, 3, 2},
		{3, 0, 3},
		{0, 2, -1},
		{1, 3, -1},
	}
	for _, c := range cases {
		if got := NeighborView(c.a, c.b); got != c.want {
			t.Errorf("NeighborView(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDiagonalView(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{0, 2, 0},
		{2, 0, 0},
		{1, 3, 1},
		{3, 1, 1},
		{0, 1, -1},
		{1, 2, -1},
	}
	for _, c := range cases {
		if got := DiagonalView(c.a, c.b); got != c.want {
			t.Errorf("DiagonalView(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestPairChecksForCombinesNeighborAndDiagonal(t *testing.T) {
	checks := PairChecksFor([]int{0, 1, 2}, nil, nil)
	var neighbors, diagonals int
	for _, c := range checks {
		if c.Kind == Neighbor {
			neighbors++
		} else {
			diagonals++
		}
	}
	// Combo {0,1,2} has adjacent pairs (0,1) and (1,2), plus one
	// diagonal pair (0,2).
	if neighbors != 2 {
		t.Errorf("neighbor checks = %d, want 2", neighbors)
	}
	if diagonals != 1 {
		t.Errorf("diagonal checks = %d, want 1", diagonals)
	}
}

func TestValidMovesForExcludesSameFace(t *testing.T) {
	moves := ValidMovesFor(0) // previous move was U.
	if len(moves) != 15 {
		t.Fatalf("ValidMovesFor(0) has %d moves, want 15", len(moves))
	}
	for _, m := range moves {
		if m/3 == 0 {
			t.Errorf("ValidMovesFor(0) should exclude U-face moves, got %d", m)
		}
	}
}

func TestValidMovesForExcludesOppositeFaceInCanonicalOrder(t *testing.T) {
	// After D, U is redundant (U and D commute; only one canonical
	// order is kept), so both faces drop out.
	moves := ValidMovesFor(3)
	if len(moves) != 12 {
		t.Fatalf("ValidMovesFor(3) has %d moves, want 12", len(moves))
	}
	for _, m := range moves {
		if m/3 == 0 || m/3 == 1 {
			t.Errorf("ValidMovesFor(3) should exclude U/D-face moves, got %d", m)
		}
	}
}

func TestValidMovesForRootAllowsEveryMove(t *testing.T) {
	if got := len(ValidMovesFor(Root)); got != 18 {
		t.Fatalf("ValidMovesFor(Root) has %d moves, want 18", got)
	}
}
