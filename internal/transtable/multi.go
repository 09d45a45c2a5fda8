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

package transtable

import "github.com/RuiminYan/solver-sub000/internal/coord"

// Build constructs a size*18 transition table for the (n,c,pn) family
// by decoding every index, replacing each tracked piece's row offset
// through the basic table, and re-encoding. It fills both T[s*18+m]
// and T[s'*18+inv[m]] per step, per the halving trick in spec.md §4.C.
// Direct analogue of create_multi_move_table.
func Build(params coord.Params, size int, basic []int32) []int32 {
	mt := make([]int32, size*18)
	for i := range mt {
		mt[i] = -1
	}
	n := params.N
	b := make([]int, n)
	for i := 0; i < size; i++ {
		a := coord.Decode(i, params)
		base := i * 18
		for j := 0; j < 18; j++ {
			if mt[base+j] != -1 {
				continue
			}
			for k := 0; k < n; k++ {
				b[k] = int(basic[a[k]+j])
			}
			s2 := coord.Encode(b, params)
			mt[base+j] = int32(s2)
			mt[s2*18+inv[j]] = int32(i)
		}
	}
	return mt
}

// BuildScaled24 is Build's "scale-24" variant (spec.md §3.3): output
// values are pre-multiplied by 24 so that cross*24+corner forms a
// combined row key into a composite PDB without a multiply on the hot
// path. Direct analogue of create_multi_move_table2, used for the
// 4-edge Cross table.
func BuildScaled24(params coord.Params, size int, basic []int32) []int32 {
	mt := make([]int32, size*24)
	for i := range mt {
		mt[i] = -1
	}
	n := params.N
	b := make([]int, n)
	for i := 0; i < size; i++ {
		a := coord.Decode(i, params)
		base := i * 24
		for j := 0; j < 18; j++ {
			if mt[base+j] != -1 {
				continue
			}
			for k := 0; k < n; k++ {
				b[k] = int(basic[a[k]+j])
			}
			s2 := 24 * coord.Encode(b, params)
			mt[base+j] = int32(s2)
			mt[s2+inv[j]] = int32(base)
		}
	}
	return mt
}
