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

import "sort"

// slotCombos returns every size-k subset of the four physical F2L
// slots {0,1,2,3}, the task groups solve_1_group..solve_4_group
// iterate over in the original (one task per C(4,k) combination).
func slotCombos(k int) [][]int {
	var out [][]int
	var pick func(start int, cur []int)
	pick = func(start int, cur []int) {
		if len(cur) == k {
			combo := make([]int, k)
			copy(combo, cur)
			out = append(out, combo)
			return
		}
		for i := start; i < 4; i++ {
			pick(i+1, append(cur, i))
		}
	}
	pick(0, nil)
	return out
}

// scoredCombo pairs a slot combination with its heuristic lower bound.
type scoredCombo struct {
	combo []int
	h     int
}

// bestOverCombos finds the minimum actual search depth across every
// slot combination, using each combination's heuristic lower bound to
// both order the work (cheapest-looking first) and cut it short: once
// a combo's own lower bound is no better than the best depth already
// found, no later (equal-or-worse-bound) combo can improve on it.
// Ported from get_stats/solve_k_group's sorted task list with the
// "if t.h >= current_best break" early exit.
func bestOverCombos(combos [][]int, lowerBound func(combo []int) int, solve func(combo []int, dMin, dMax int) (int, bool), cap int) int {
	scored := make([]scoredCombo, len(combos))
	for i, c := range combos {
		scored[i] = scoredCombo{combo: c, h: lowerBound(c)}
	}
	sort.Slice(scored, func(i, j int) bool { return scored[i].h < scored[j].h })

	best := cap
	for _, sc := range scored {
		if sc.h >= best {
			break
		}
		if sc.h == 0 {
			return 0
		}
		d, ok := solve(sc.combo, sc.h, best-1)
		if ok && d < best {
			best = d
		}
	}
	return best
}
