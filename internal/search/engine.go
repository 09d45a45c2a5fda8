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

import (
	"github.com/RuiminYan/solver-sub000/internal/pdb"
	"github.com/RuiminYan/solver-sub000/internal/symmetry"
)

// Root is the sentinel "previous move" value meaning no move has been
// made yet, matching the original's prev=18 (one past the last turn).
const Root = 18

// corners2Size is the corners2 coordinate domain size (2 corners, 3
// orientations each, 8 positions: falling-factorial(8,2)*3^2 = 504),
// the row stride every huge composite index below is built against.
const corners2Size = 504

// Task bundles one physical F2L slot's search state: the coordinate
// set (cross/multi, one corner, one edge) that advances while solving,
// conjugated into position via ID (0..3), and the two huge-table views
// used to probe this slot's pairwise adjacency with its neighbors —
// one seeded for the adjacent-pair (Neighbor) probe, one for the
// opposite-pair (Diagonal) probe, since a 3- or 4-slot combination
// needs both simultaneously out of the same anchor slot (the original's
// search_3_optimized/search_4_optimized track exactly this pair of
// views per anchor rather than one).
type Task struct {
	ID       int
	Multi    View // cross coordinate (scaled view), -1 Table if unused
	Corner   View
	Edge     View
	Neighbor CrossView
	Diagonal CrossView
}

// CrossView is the edges6/corners2 pair a huge pattern database
// addresses, tracked per physical slot so any pair of active slots can
// be probed without recomputing from scratch each move.
type CrossView struct {
	Edge6 View
	Corn2 View
}

// PairCheck names a single cross-slot admissibility probe: step slot
// View's huge-table coordinates by the move (conjugated into View's
// own slot identity) and reject the move if Table says the remaining
// distance is already >= the search's current depth bound. Kind
// selects which of the anchor task's two CrossViews (Neighbor or
// Diagonal) this check reads.
type PairCheck struct {
	View  int // slot ID (0..3) whose CrossView to probe
	Kind  PairKind
	Table *pdb.Table
}

// PairKind distinguishes an adjacent-pair probe from an opposite-pair
// probe, both of which may anchor on the same physical slot.
type PairKind int

const (
	Neighbor PairKind = iota
	Diagonal
)

// Counter accumulates visited-node counts the way stats.Counters does;
// passing *int64 directly (rather than a full stats dependency) keeps
// this package free of the ambient logging/metrics stack.
type Counter = *int64

// SolveSlot runs the 1-slot search (search_1 in the original): a
// single task's composite (multi,corner,edge) coordinate is checked
// against base directly every move, no pairwise tables involved.
func SolveSlot(task Task, base *pdb.Table, dMin, dMax int, nodes Counter) (int, bool) {
	for d := dMin; d <= dMax; d++ {
		if dfsSlot(task, base, d, Root, nodes) {
			return d, true
		}
	}
	return 0, false
}

func dfsSlot(task Task, base *pdb.Table, depth, prev int, nodes Counter) bool {
	moves := symmetry.ValidMoves[prev]
	count := symmetry.ValidCount[prev]
	for k := 0; k < count; k++ {
		m := moves[k]
		*nodes++
		mt := symmetry.Conj[m][task.ID]
		nMulti, rMulti := task.Multi.Step(mt)
		nCorner, rCorner := task.Corner.Step(mt)
		nEdge, rEdge := task.Edge.Step(mt)
		idx := (rMulti+rCorner)*24 + rEdge
		if base.Get(idx) >= depth {
			continue
		}
		if depth == 1 {
			return true
		}
		next := Task{ID: task.ID, Multi: nMulti, Corner: nCorner, Edge: nEdge}
		if dfsSlot(next, base, depth-1, m, nodes) {
			return true
		}
	}
	return false
}

// SolveMulti runs the 2..4-slot search (search_2/3/4_optimized
// generalized): every active task's own coordinates advance every
// move with no per-task base-table filter, and every PairCheck is
// evaluated each move as the sole source of admissible pruning.
func SolveMulti(tasks []Task, pairs []PairCheck, dMin, dMax int, nodes Counter) (int, bool) {
	for d := dMin; d <= dMax; d++ {
		if dfsMulti(tasks, pairs, d, Root, nodes) {
			return d, true
		}
	}
	return 0, false
}

func dfsMulti(tasks []Task, pairs []PairCheck, depth, prev int, nodes Counter) bool {
	moves := symmetry.ValidMoves[prev]
	count := symmetry.ValidCount[prev]
	nbByID := make(map[int]CrossView, len(tasks))
	dgByID := make(map[int]CrossView, len(tasks))
	for _, t := range tasks {
		nbByID[t.ID] = t.Neighbor
		dgByID[t.ID] = t.Diagonal
	}

nextMove:
	for k := 0; k < count; k++ {
		m := moves[k]
		*nodes++

		newNb := make(map[int]CrossView, len(nbByID))
		newDg := make(map[int]CrossView, len(dgByID))
		for id := range nbByID {
			mv := symmetry.Conj[m][id]
			cv := nbByID[id]
			ne, _ := cv.Edge6.Step(mv)
			nc, _ := cv.Corn2.Step(mv)
			newNb[id] = CrossView{Edge6: ne, Corn2: nc}

			cv = dgByID[id]
			ne, _ = cv.Edge6.Step(mv)
			nc, _ = cv.Corn2.Step(mv)
			newDg[id] = CrossView{Edge6: ne, Corn2: nc}
		}
		for _, pc := range pairs {
			if pc.Table == nil {
				continue
			}
			var cv CrossView
			if pc.Kind == Neighbor {
				cv = newNb[pc.View]
			} else {
				cv = newDg[pc.View]
			}
			if pc.Table.Get(cv.Edge6.Coord()*corners2Size+cv.Corn2.Coord()) >= depth {
				continue nextMove
			}
		}

		newTasks := make([]Task, len(tasks))
		for i, t := range tasks {
			mt := symmetry.Conj[m][t.ID]
			nMulti, _ := t.Multi.Step(mt)
			nCorner, _ := t.Corner.Step(mt)
			nEdge, _ := t.Edge.Step(mt)
			newTasks[i] = Task{ID: t.ID, Multi: nMulti, Corner: nCorner, Edge: nEdge, Neighbor: newNb[t.ID], Diagonal: newDg[t.ID]}
		}

		if depth == 1 {
			return true
		}
		if dfsMulti(newTasks, pairs, depth-1, m, nodes) {
			return true
		}
	}
	return false
}

// ValidMovesFor returns the non-redundant successor moves after prev,
// per symmetry.ValidMoves/ValidCount.
func ValidMovesFor(prev int) []int {
	return symmetry.ValidMoves[prev][:symmetry.ValidCount[prev]]
}

// NeighborView returns the slot whose own CrossView addresses the
// adjacent pair (a,b), or -1 if a and b are not adjacent (diagonal or
// identical). Ported from XCrossSolver::get_neighbor_view.
func NeighborView(a, b int) int {
	if (b-a+4)%4 == 1 {
		return a
	}
	if (a-b+4)%4 == 1 {
		return b
	}
	return -1
}

// PairChecksFor builds the full set of pairwise admissibility probes
// for a combination of active slots: every adjacent pair within combo
// probes neighborTable, every opposite pair probes diagonalTable.
func PairChecksFor(combo []int, neighborTable, diagonalTable *pdb.Table) []PairCheck {
	var out []PairCheck
	for i := 0; i < len(combo); i++ {
		for j := i + 1; j < len(combo); j++ {
			a, b := combo[i], combo[j]
			if v := NeighborView(a, b); v != -1 {
				out = append(out, PairCheck{View: v, Kind: Neighbor, Table: neighborTable})
			}
			if v := DiagonalView(a, b); v != -1 {
				out = append(out, PairCheck{View: v, Kind: Diagonal, Table: diagonalTable})
			}
		}
	}
	return out
}

// DiagonalView returns the slot whose own CrossView addresses the
// diagonal pair (a,b), or -1 if a and b are not diagonal. Ported from
// XCrossSolver::get_diagonal_view.
func DiagonalView(a, b int) int {
	mn, mx := a, b
	if mn > mx {
		mn, mx = mx, mn
	}
	if mn == 0 && mx == 2 {
		return 0
	}
	if mn == 1 && mx == 3 {
		return 1
	}
	return -1
}
