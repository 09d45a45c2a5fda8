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

// Package pdb implements pattern databases: 4-bit packed distance
// arrays built by a parallel BFS flood from one or more solved
// indices, per spec.md §3.5/§4.E/§4.F. Two adjacent table entries
// share a byte, matching the original's set_prune/get_prune bit
// packing so the on-disk format stays byte-compatible across a
// regenerate.
package pdb


// Unvisited marks a cell that has not yet been reached by the flood.
// 4 bits can represent 0..15; any true god's-number-scale search never
// needs a 15-move single-coordinate distance, so 0xF doubles as both
// "unvisited" and a safe sentinel depth cap.
const Unvisited = 0xF

// Table is a packed 4-bit distance array over a coordinate domain of
// the given size, addressed 0..size-1.
type Table struct {
	size int
	data []byte
}

// NewTable allocates a table of size cells, all unvisited.
func NewTable(size int) *Table {
	t := &Table{size: size, data: make([]byte, (size+1)/2)}
	for i := range t.data {
		t.data[i] = 0xFF
	}
	return t
}

// Size returns the number of addressable cells.
func (t *Table) Size() int { return t.size }

// Bytes exposes the packed backing array, for persistence.
func (t *Table) Bytes() []byte { return t.data }

// FromBytes wraps an already-packed array loaded from disk.
func FromBytes(size int, data []byte) *Table { return &Table{size: size, data: data} }

// Get returns the distance stored at index.
func (t *Table) Get(index int) int {
	b := t.data[index>>1]
	return int(b>>((index&1)<<2)) & 0xF
}

// Set stores a 0..15 distance at index. Not goroutine-safe against
// concurrent Set on the same byte pair; the BFS flood below only ever
// writes a cell once (from Unvisited), and concurrent writers always
// agree on the value for a given index at a given depth, so the race
// is benign exactly as in the C++ OpenMP original.
func (t *Table) Set(index int, value int) {
	shift := uint((index & 1) << 2)
	t.data[index>>1] &^= 0xF << shift
	t.data[index>>1] |= byte(value&0xF) << shift
}

// trySetUnvisited claims index for depth nd if it is still Unvisited.
// Every concurrent writer at BFS depth d proposes the same nd for a
// given successor (frontier-consistent per spec.md §4.F), so a plain
// read-check-write race is benign: the worst case is two goroutines
// both seeing Unvisited and both writing the same value.
func (t *Table) trySetUnvisited(index, nd int) bool {
	shift := uint((index & 1) << 2)
	addr := &t.data[index>>1]
	if (*addr>>shift)&0xF != Unvisited {
		return false
	}
	*addr &^= 0xF << shift
	*addr |= byte(nd&0xF) << shift
	return true
}
