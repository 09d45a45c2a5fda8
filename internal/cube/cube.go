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

// Package cube implements composition of 3x3x3 cube states under the 18
// quarter/half face turns. It exists only to bootstrap the basic
// per-piece move tables in internal/transtable; nothing on the search
// hot path touches this package.
package cube

// Turn indexes one of the 18 generators. turn = 3*face + power, power
// 0 = clockwise quarter, 1 = half, 2 = counter-clockwise quarter.
type Turn int

// Face identifies one of the six faces in U,D,L,R,F,B order.
type Face int

const (
	U Face = iota
	D
	L
	R
	F
	B
)

// NumTurns is the size of the generator set.
const NumTurns = 18

// Names lists the 18 turns in canonical order, index == Turn value.
var Names = [NumTurns]string{
	"U", "U2", "U'",
	"D", "D2", "D'",
	"L", "L2", "L'",
	"R", "R2", "R'",
	"F", "F2", "F'",
	"B", "B2", "B'",
}

// FaceOf returns the face a turn acts on.
func FaceOf(t Turn) Face { return Face(int(t) / 3) }

// PowerOf returns 0 (cw), 1 (half) or 2 (ccw) for a turn.
func PowerOf(t Turn) int { return int(t) % 3 }

// Inverse returns the turn that undoes t: a cw quarter inverts to a ccw
// quarter of the same face, a half turn inverts to itself.
func Inverse(t Turn) Turn {
	return Turn(3*int(FaceOf(t)) + (2 - PowerOf(t)))
}

// ParseTurn looks up a turn by its canonical name ("U", "U2", "U'", ...).
// The second return is false for any token that is not one of the 18
// generators (including whole-cube rotations like "x"/"y"/"z") — per
// spec.md §7 unknown tokens are dropped by the caller, not rejected here.
func ParseTurn(name string) (Turn, bool) {
	for i, n := range Names {
		if n == name {
			return Turn(i), true
		}
	}
	return 0, false
}

// State is the full piece-level cube state: corner permutation cp and
// twist co (mod 3), edge permutation ep and flip eo (mod 2). Identifiers
// are positions 0..7 for corners, 0..11 for edges; cp[i]/ep[i] is the
// identifier of the piece currently sitting in slot i.
type State struct {
	CP [8]int
	CO [8]int
	EP [12]int
	EO [12]int
}

// Solved returns the identity state.
func Solved() State {
	var s State
	for i := range s.CP {
		s.CP[i] = i
	}
	for i := range s.EP {
		s.EP[i] = i
	}
	return s
}

// ApplyCorner composes the corner sitting in piece-slot position for
// identifier c through move m, returning c's new slot and new twist.
// This mirrors State::apply_move_corner from the reference implementation,
// specialized to a single tracked piece since that is all the basic
// move-table builder needs.
func (s State) ApplyCorner(m State, c int) (slot, twist int) {
	idx := indexOf(s.CP[:], c)
	slot = indexOf(m.CP[:], idx)
	twist = (s.CO[idx] + m.CO[slot]) % 3
	return slot, twist
}

// ApplyEdge is ApplyCorner's edge analogue.
func (s State) ApplyEdge(m State, e int) (slot, flip int) {
	idx := indexOf(s.EP[:], e)
	slot = indexOf(m.EP[:], idx)
	flip = (s.EO[idx] + m.EO[slot]) % 2
	return slot, flip
}

func indexOf(arr []int, v int) int {
	for i, x := range arr {
		if x == v {
			return i
		}
	}
	return -1
}

// Moves is the literal per-turn corner/edge permutation and twist/flip
// tables, transcribed from the reference cube_common.cpp move definitions.
var Moves = [NumTurns]State{
	0: {CP: [8]int{3, 0, 1, 2, 4, 5, 6, 7}, CO: [8]int{}, EP: [12]int{0, 1, 2, 3, 7, 4, 5, 6, 8, 9, 10, 11}, EO: [12]int{}},
	1: {CP: [8]int{2, 3, 0, 1, 4, 5, 6, 7}, CO: [8]int{}, EP: [12]int{0, 1, 2, 3, 6, 7, 4, 5, 8, 9, 10, 11}, EO: [12]int{}},
	2: {CP: [8]int{1, 2, 3, 0, 4, 5, 6, 7}, CO: [8]int{}, EP: [12]int{0, 1, 2, 3, 5, 6, 7, 4, 8, 9, 10, 11}, EO: [12]int{}},
	3: {CP: [8]int{0, 1, 2, 3, 5, 6, 7, 4}, CO: [8]int{}, EP: [12]int{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 8}, EO: [12]int{}},
	4: {CP: [8]int{0, 1, 2, 3, 6, 7, 4, 5}, CO: [8]int{}, EP: [12]int{0, 1, 2, 3, 4, 5, 6, 7, 10, 11, 8, 9}, EO: [12]int{}},
	5: {CP: [8]int{0, 1, 2, 3, 7, 4, 5, 6}, CO: [8]int{}, EP: [12]int{0, 1, 2, 3, 4, 5, 6, 7, 11, 8, 9, 10}, EO: [12]int{}},
	6: {CP: [8]int{4, 1, 2, 0, 7, 5, 6, 3}, CO: [8]int{2, 0, 0, 1, 1, 0, 0, 2}, EP: [12]int{11, 1, 2, 7, 4, 5, 6, 0, 8, 9, 10, 3}, EO: [12]int{}},
	7: {CP: [8]int{7, 1, 2, 4, 3, 5, 6, 0}, CO: [8]int{}, EP: [12]int{3, 1, 2, 0, 4, 5, 6, 11, 8, 9, 10, 7}, EO: [12]int{}},
	8: {CP: [8]int{3, 1, 2, 7, 0, 5, 6, 4}, CO: [8]int{2, 0, 0, 1, 1, 0, 0, 2}, EP: [12]int{7, 1, 2, 11, 4, 5, 6, 3, 8, 9, 10, 0}, EO: [12]int{}},
	9:  {CP: [8]int{0, 2, 6, 3, 4, 1, 5, 7}, CO: [8]int{0, 1, 2, 0, 0, 2, 1, 0}, EP: [12]int{0, 5, 9, 3, 4, 2, 6, 7, 8, 1, 10, 11}, EO: [12]int{}},
	10: {CP: [8]int{0, 6, 5, 3, 4, 2, 1, 7}, CO: [8]int{}, EP: [12]int{0, 2, 1, 3, 4, 9, 6, 7, 8, 5, 10, 11}, EO: [12]int{}},
	11: {CP: [8]int{0, 5, 1, 3, 4, 6, 2, 7}, CO: [8]int{0, 1, 2, 0, 0, 2, 1, 0}, EP: [12]int{0, 9, 5, 3, 4, 1, 6, 7, 8, 2, 10, 11}, EO: [12]int{}},
	12: {CP: [8]int{0, 1, 3, 7, 4, 5, 2, 6}, CO: [8]int{0, 0, 1, 2, 0, 0, 2, 1}, EP: [12]int{0, 1, 6, 10, 4, 5, 3, 7, 8, 9, 2, 11}, EO: [12]int{0, 0, 1, 1, 0, 0, 1, 0, 0, 0, 1, 0}},
	13: {CP: [8]int{0, 1, 7, 6, 4, 5, 3, 2}, CO: [8]int{}, EP: [12]int{0, 1, 3, 2, 4, 5, 10, 7, 8, 9, 6, 11}, EO: [12]int{}},
	14: {CP: [8]int{0, 1, 6, 2, 4, 5, 7, 3}, CO: [8]int{0, 0, 1, 2, 0, 0, 2, 1}, EP: [12]int{0, 1, 10, 6, 4, 5, 2, 7, 8, 9, 3, 11}, EO: [12]int{0, 0, 1, 1, 0, 0, 1, 0, 0, 0, 1, 0}},
	15: {CP: [8]int{1, 5, 2, 3, 0, 4, 6, 7}, CO: [8]int{1, 2, 0, 0, 2, 1, 0, 0}, EP: [12]int{4, 8, 2, 3, 1, 5, 6, 7, 0, 9, 10, 11}, EO: [12]int{1, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}},
	16: {CP: [8]int{5, 4, 2, 3, 1, 0, 6, 7}, CO: [8]int{}, EP: [12]int{1, 0, 2, 3, 8, 5, 6, 7, 4, 9, 10, 11}, EO: [12]int{}},
	17: {CP: [8]int{4, 0, 2, 3, 5, 1, 6, 7}, CO: [8]int{1, 2, 0, 0, 2, 1, 0, 0}, EP: [12]int{8, 4, 2, 3, 0, 5, 6, 7, 1, 9, 10, 11}, EO: [12]int{1, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0}},
}

// Apply composes s with the named turn's move, returning the resulting
// full cube state. Used only to derive the basic per-piece tables in
// internal/transtable; the search hot path never calls it.
func Apply(s State, t Turn) State {
	m := Moves[t]
	var out State
	for c := 0; c < 8; c++ {
		slot, twist := s.ApplyCorner(m, c)
		out.CP[slot] = c
		out.CO[slot] = twist
	}
	for e := 0; e < 12; e++ {
		slot, flip := s.ApplyEdge(m, e)
		out.EP[slot] = e
		out.EO[slot] = flip
	}
	return out
}
