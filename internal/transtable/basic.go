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

// Package transtable builds and persists the move-transition tables of
// spec.md §3.3/§4.C: for a coordinate family and each of the 18 turns,
// the successor coordinate.
package transtable

import "github.com/RuiminYan/solver-sub000/internal/cube"

// inv[m] is the turn that undoes turn m.
var inv = [cube.NumTurns]int{2, 1, 0, 5, 4, 3, 8, 7, 6, 11, 10, 9, 14, 13, 12, 17, 16, 15}

// BuildEdgeTable produces the basic single-edge move table: 24 states
// (12 positions * 2 flips), 18 columns. Ported from
// create_edge_move_table, using cube.Apply once per state/turn to
// bootstrap the table the rest of the system never touches cube
// algebra again for.
func BuildEdgeTable() []int32 {
	mt := make([]int32, 24*18)
	for i := 0; i < 24; i++ {
		s := cube.Solved()
		pos, flip := i/2, i%2
		s.EP[pos] = pos
		s.EO[pos] = flip
		for j := 0; j < 18; j++ {
			ns := cube.Apply(s, cube.Turn(j))
			idx := indexOfEdge(ns.EP[:], pos)
			mt[18*i+j] = int32(2*idx + ns.EO[idx])
		}
	}
	return mt
}

// BuildCornerTable is BuildEdgeTable's corner analogue, ported from
// create_corner_move_table.
func BuildCornerTable() []int32 {
	mt := make([]int32, 24*18)
	for i := 0; i < 24; i++ {
		s := cube.Solved()
		pos, twist := i/3, i%3
		s.CP[pos] = pos
		s.CO[pos] = twist
		for j := 0; j < 18; j++ {
			ns := cube.Apply(s, cube.Turn(j))
			idx := indexOfCorner(ns.CP[:], pos)
			mt[18*i+j] = int32(3*idx + ns.CO[idx])
		}
	}
	return mt
}

func indexOfEdge(arr []int, v int) int {
	for i, x := range arr {
		if x == v {
			return i
		}
	}
	return -1
}

func indexOfCorner(arr []int, v int) int { return indexOfEdge(arr, v) }
