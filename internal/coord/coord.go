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

// Package coord implements the piece-coordinate codec from spec.md §3.2:
// a bijection between ordered, oriented k-subsets of a piece set and a
// dense integer range, used to index every move-transition table and
// pattern database in the system.
package coord

import "sort"

// Params fixes one coordinate family: n pieces tracked, c orientations
// per piece, pn total pieces of that kind on the cube (8 for corners,
// 12 for edges).
type Params struct {
	N, C, Pn int
}

// Size is the domain size P(pn,n)*c^n for these params.
func (p Params) Size() int {
	return fallingFactorial(p.Pn, p.N) * cPow(p.C, p.N)
}

func cPow(c, n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= c
	}
	return v
}

// fallingFactorial returns pn*(pn-1)*...*(pn-k+1), the count of ordered
// k-tuples drawn from pn distinct items (k=0 gives 1). It is the direct
// analogue of the reference implementation's base_array entries.
func fallingFactorial(pn, k int) int {
	v := 1
	for i := 0; i < k; i++ {
		v *= pn - i
	}
	return v
}

// Encode maps an array of n raw (position, orientation) pairs — packed
// as a[i] = c*pos + ori, one entry per tracked piece in slot order — to
// its coordinate index. Direct analogue of array_to_index in the
// reference implementation. Note a[i] here is the *raw* c*pos+ori
// value, not the *18 row-offset form Decode produces; Encode does not
// undo that scaling, so callers pass raw values (as read back from the
// basic per-piece tables).
func Encode(a []int, p Params) int {
	n, c := p.N, p.C
	idxO := 0
	for i := 0; i < n; i++ {
		idxO += (a[i] % c) * cPow(c, n-i-1)
	}
	pos := make([]int, n)
	for i := 0; i < n; i++ {
		pos[i] = a[i] / c
	}
	idxP := 0
	for i := 0; i < n; i++ {
		lower := 0
		for j := 0; j < i; j++ {
			if pos[j] < pos[i] {
				lower++
			}
		}
		idxP += (pos[i] - lower) * fallingFactorial(p.Pn, i)
	}
	return idxP*cPow(c, n) + idxO
}

// Decode is Encode's inverse. Each output element is 18*(c*pos+ori) so
// it is directly usable as a row offset into an 18-wide transition
// table, matching index_to_array's convention in the reference
// implementation.
func Decode(index int, p Params) []int {
	n, c, pn := p.N, p.C, p.Pn
	cn := cPow(c, n)
	pIdx := index / cn
	oIdx := index % cn

	pos := make([]int, n)
	seen := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v := pIdx % (pn - i)
		pIdx /= pn - i

		sort.Ints(seen)
		for _, s := range seen {
			if s <= v {
				v++
			}
		}
		pos[i] = v
		seen = append(seen, v)
	}

	out := make([]int, n)
	copy(out, pos)
	for i := n - 1; i >= 0; i-- {
		out[i] = 18 * (c*out[i] + oIdx%c)
		oIdx /= c
	}
	return out
}
