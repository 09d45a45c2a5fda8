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
	"log"
	"runtime"
	"sync"
)

// workers bounds the flood's goroutine fan-out, mirroring the
// original's "#pragma omp parallel for" over the frontier scan.
func workers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// parallelRange splits [0,n) across workers() goroutines and calls fn
// on each shard's [lo,hi) range, the same shard-per-worker shape the
// BFS frontier scans below all share.
func parallelRange(n int, fn func(lo, hi int)) {
	w := workers()
	if w > n {
		w = n
	}
	if w <= 1 {
		fn(0, n)
		return
	}
	chunk := (n + w - 1) / w
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// generateCrossBase floods the product domain of two independent
// 2-edge coordinates, one per D-layer edge pair, seeding each half
// directly at its own solved index with no setup-algorithm
// pre-expansion: unlike the F2L composites below, the two D-layer edge
// pairs have no antisymmetric aliasing for a forward BFS to miss.
// Ported from create_prune_table_cross_base.
func generateCrossBase(sz1, sz2 int, t1, t2 []int32, seed1, seed2 int, maxDepth int, label string) *Table {
	total := sz1 * sz2
	t := NewTable(total)
	t.Set(seed1*sz2+seed2, 0)

	for d := 0; d < maxDepth; d++ {
		nd := d + 1
		var cnt int64
		var mu sync.Mutex
		parallelRange(total, func(lo, hi int) {
			var local int64
			for i := lo; i < hi; i++ {
				if t.Get(i) != d {
					continue
				}
				local++
				i1 := (i / sz2) * 18
				i2 := (i % sz2) * 18
				for j := 0; j < 18; j++ {
					ni := int(t1[i1+j])*sz2 + int(t2[i2+j])
					t.trySetUnvisited(ni, nd)
				}
			}
			mu.Lock()
			cnt += local
			mu.Unlock()
		})
		log.Printf("[pdb] %s depth %d: %d states", label, d, cnt)
		if cnt == 0 {
			break
		}
	}
	return t
}

// GenerateComposite floods a two-coordinate product domain (sz1*sz2
// cells), where coordinate 1 uses a scale-24 transition table (row
// stride 24, see transtable.BuildScaled24) and coordinate 2 uses a
// plain 18-wide table. Ported from create_prune_table_cross_c4: the
// seed index1*sz2+index2 is pre-expanded through the four named
// antisymmetric setup algorithms and their rotational images before
// the flood starts, since those configurations are solved by a single
// non-canonical pair of moves that the forward BFS alone would reach
// only much later.
func GenerateComposite(sz1, sz2 int, t1 []int32, t2 []int32, seed1, seed2 int, setupAlgs [][]int, maxDepth int, label string) *Table {
	total := sz1 * sz2
	t := NewTable(total)
	t.Set(seed1*sz2+seed2, 0)

	for _, alg := range setupAlgs {
		i1, i2 := seed1*24, seed2
		for _, m := range alg {
			i1 = int(t1[i1+m])
			i2 = int(t2[i2*18+m])
		}
		t.Set(i1/24*sz2+i2, 0)
		base1, base2 := i1, i2*18
		for k := 0; k < 3; k++ {
			t.Set(int(t1[base1+k])+int(t2[base2+k]), 0)
		}
	}

	for d := 0; d < maxDepth; d++ {
		nd := d + 1
		var cnt int64
		var mu sync.Mutex
		parallelRange(total, func(lo, hi int) {
			var local int64
			for i := lo; i < hi; i++ {
				if t.Get(i) != d {
					continue
				}
				local++
				i1 := (i / sz2) * 24
				i2 := (i % sz2) * 18
				for j := 0; j < 18; j++ {
					ni := int(t1[i1+j]) + int(t2[i2+j])
					t.trySetUnvisited(ni, nd)
				}
			}
			mu.Lock()
			cnt += local
			mu.Unlock()
		})
		log.Printf("[pdb] %s depth %d: %d states", label, d, cnt)
		if cnt == 0 {
			break
		}
	}
	return t
}

// generatePairBase floods the edge x corner product domain used by the
// pair (F2L) search, seeding the same four antisymmetric setups as
// GenerateComposite but over two plain 18-wide tables instead of one
// scale-24 table. Ported from create_prune_table_pair_base.
func generatePairBase(szE, szC int, tEdge, tCorn []int32, seedE, seedC int, maxDepth int, label string) *Table {
	total := szE * szC
	t := NewTable(total)
	t.Set(seedE*szC+seedC, 0)

	for _, alg := range setupAlgs() {
		c1, c2 := seedE, seedC
		for _, m := range alg {
			c1 = int(tEdge[c1*18+m])
			c2 = int(tCorn[c2*18+m])
		}
		t.Set(c1*szC+c2, 0)
		for k := 0; k < 3; k++ {
			n1 := int(tEdge[c1*18+k])
			n2 := int(tCorn[c2*18+k])
			t.Set(n1*szC+n2, 0)
		}
	}

	for d := 0; d < maxDepth; d++ {
		nd := d + 1
		var cnt int64
		var mu sync.Mutex
		parallelRange(total, func(lo, hi int) {
			var local int64
			for i := lo; i < hi; i++ {
				if t.Get(i) != d {
					continue
				}
				local++
				i1 := (i / szC) * 18
				i2 := (i % szC) * 18
				for j := 0; j < 18; j++ {
					ni := int(tEdge[i1+j])*szC + int(tCorn[i2+j])
					t.trySetUnvisited(ni, nd)
				}
			}
			mu.Lock()
			cnt += local
			mu.Unlock()
		})
		log.Printf("[pdb] %s depth %d: %d states", label, d, cnt)
		if cnt == 0 {
			break
		}
	}
	return t
}

// generateXCrossFull floods the three-coordinate cross(scale-24) x
// corner x edge product domain used by the xcross search. Ported from
// create_prune_table_xcross_full.
func generateXCrossFull(szCr, szCn, szEd int, tCr, tCn, tEd []int32, seedCr, seedCn, seedEd int, maxDepth int, label string) *Table {
	total := szCr * szCn * szEd
	t := NewTable(total)
	start := (seedCr*24+seedCn)*24 + seedEd
	t.Set(start, 0)

	for d := 0; d < maxDepth; d++ {
		nd := d + 1
		var cnt int64
		var mu sync.Mutex
		parallelRange(total, func(lo, hi int) {
			var local int64
			for i := lo; i < hi; i++ {
				if t.Get(i) != d {
					continue
				}
				local++
				comb := i / szEd
				curEd := i % szEd
				curCr := (comb / szCn) * 24
				curCn := (comb % szCn) * 18
				idx3Base := curEd * 18
				for j := 0; j < 18; j++ {
					nCr := int(tCr[curCr+j])
					nCn := int(tCn[curCn+j])
					ni := (nCr+nCn)*24 + int(tEd[idx3Base+j])
					t.trySetUnvisited(ni, nd)
				}
			}
			mu.Lock()
			cnt += local
			mu.Unlock()
		})
		log.Printf("[pdb] %s depth %d: %d states", label, d, cnt)
		if cnt == 0 {
			break
		}
	}
	return t
}

// GenerateHuge floods the edges6 x corners2 product domain. Both
// coordinates use plain 18-wide tables; total size is typically in
// the tens of billions of cells and the caller is expected to bound
// maxDepth well below the domain's true diameter (spec.md §4.F notes
// this table only needs to discriminate "near home" states). Direct
// analogue of create_prune_table_huge.
func GenerateHuge(szE6, szC2 int, mtE6, mtC2 []int32, seedE6, seedC2 int, maxDepth int, label string) *Table {
	total := szE6 * szC2
	t := NewTable(total)
	t.Set(seedE6*szC2+seedC2, 0)

	for d := 0; d < maxDepth; d++ {
		nd := d + 1
		var cnt int64
		var mu sync.Mutex
		parallelRange(total, func(lo, hi int) {
			var local int64
			for i := lo; i < hi; i++ {
				if t.Get(i) != d {
					continue
				}
				local++
				baseE6 := (i / szC2) * 18
				baseC2 := (i % szC2) * 18
				for j := 0; j < 18; j++ {
					nE6 := int(mtE6[baseE6+j])
					nC2 := int(mtC2[baseC2+j])
					t.trySetUnvisited(nE6*szC2+nC2, nd)
				}
			}
			mu.Lock()
			cnt += local
			mu.Unlock()
		})
		log.Printf("[pdb] %s depth %d: %d states", label, d, cnt)
		if cnt == 0 {
			break
		}
	}
	return t
}
