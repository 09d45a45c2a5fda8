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

import "testing"

// toggleTable builds a synthetic 2-state, 18-move transition table
// where toggleMove flips the state and every other move is identity.
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

// TestGenerateCrossBaseFloodsProductDomain exercises the BFS itself
// against two independent synthetic coordinates (t1 toggles on move 0,
// t2 toggles on move 1) rather than real cube data, so the expected
// distances can be traced by hand: the solved cell is 0, either single
// toggle is 1 move away, and both toggled together is 2.
func TestGenerateCrossBaseFloodsProductDomain(t *testing.T) {
	t1 := toggleTable(0)
	t2 := toggleTable(1)

	table := generateCrossBase(2, 2, t1, t2, 0, 0, 5, "test")

	want := []int{0, 1, 1, 2}
	for i, w := range want {
		if got := table.Get(i); got != w {
			t.Errorf("Get(%d) = %d, want %d", i, got, w)
		}
	}
}
