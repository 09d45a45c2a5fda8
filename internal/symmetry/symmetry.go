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

// Package symmetry implements the conjugation and whole-cube-rotation
// tables of spec.md §3.4/§4.D: static remappings of the 18 turns that
// let a single pattern database built for "slot 0" serve all four F2L
// slots (conjugation), and a single PDB built for one canonical piece
// set serve the four y-axis viewing rotations (rot_map); x- and z-axis
// reorientations are not covered.
package symmetry

import "github.com/RuiminYan/solver-sub000/internal/cube"

// Conj[m][k] is the turn that plays the role of m when the pattern
// normally anchored at slot 0 is instead anchored at slot k (k=0..3).
// Derived as init_matrix's conj_moves_flat: per move-type class (U/D
// fixed; L, R, F and B rotate cyclically through the horizontal
// slots), filled in once at package init by initConj.
var Conj [cube.NumTurns][4]int

// ValidMoves[prev] lists the turns that are not redundant immediately
// after turn prev (prev==18 means "no previous move", i.e. the root).
// ValidCount[prev] is len(ValidMoves[prev]).
var ValidMoves [19][18]int
var ValidCount [19]int

func init() {
	initValidMoves()
	initConj()
}

// initValidMoves ports init_matrix's redundancy filter: forbid
// repeating the same face, and forbid the lower-indexed face of an
// opposite pair immediately after the higher-indexed one.
func initValidMoves() {
	for prev := 0; prev <= 18; prev++ {
		cnt := 0
		for i := 0; i < 18; i++ {
			bad := prev < 18 && (i/3 == prev/3 || ((i/3)/2 == (prev/3)/2 && (prev/3)%2 > (i/3)%2))
			if !bad {
				ValidMoves[prev][cnt] = i
				cnt++
			}
		}
		ValidCount[prev] = cnt
	}
}

// initConj ports init_matrix's conj_moves_flat derivation. mType =
// i/3 in {0:U,1:D,2:L,3:R,4:F,5:B}; U/D turns are unaffected by
// re-anchoring the F2L slot, the other four faces cycle through the
// four horizontal orientations.
func initConj() {
	for i := 0; i < 18; i++ {
		mType, mPow := i/3, i%3
		Conj[i][0] = i
		Conj[i][1] = conjStep(mType, mPow, 1)
		Conj[i][2] = conjStep(mType, mPow, 2)
		Conj[i][3] = conjStep(mType, mPow, 3)
	}
}

func conjStep(mType, mPow, k int) int {
	switch k {
	case 1:
		switch mType {
		case 2:
			return 12 + mPow
		case 3:
			return 15 + mPow
		case 4:
			return 9 + mPow
		case 5:
			return 6 + mPow
		}
	case 2:
		switch mType {
		case 2:
			return 9 + mPow
		case 3:
			return 6 + mPow
		case 4:
			return 15 + mPow
		case 5:
			return 12 + mPow
		}
	case 3:
		switch mType {
		case 2:
			return 15 + mPow
		case 3:
			return 12 + mPow
		case 4:
			return 6 + mPow
		case 5:
			return 9 + mPow
		}
	}
	return 3*mType + mPow
}

// Rotation names one of the four whole-cube y-axis rotations (identity,
// y2, y', y) swept as viewing angles; no x- or z-axis rotation exists.
type Rotation int

const (
	RotID Rotation = iota
	RotY2
	RotYPrime
	RotY
)

// faceMap[r] permutes face classes (U,D,L,R,F,B order) under rotation r.
var faceMap = map[Rotation][6]int{
	RotID:     {0, 1, 2, 3, 4, 5},
	RotY2:     {0, 1, 3, 2, 5, 4},
	RotYPrime: {0, 1, 4, 5, 3, 2},
	RotY:      {0, 1, 5, 4, 2, 3},
}

// RotMap[r][m] is the image of turn m under whole-cube rotation r,
// the rot_map[4][18] table spec.md §3.4 describes for the pseudo
// analyzers. Built from faceMap rather than transcribed literally,
// since whole-cube rotation is exactly "apply the same power to the
// rotated face."
var RotMap [4][18]int

func init() {
	for _, r := range []Rotation{RotID, RotY2, RotYPrime, RotY} {
		fm := faceMap[r]
		for m := 0; m < 18; m++ {
			face, pow := m/3, m%3
			RotMap[r][m] = 3*fm[face] + pow
		}
	}
}

// Rotate maps a turn sequence through rotation r.
func Rotate(alg []int, r Rotation) []int {
	out := make([]int, len(alg))
	for i, m := range alg {
		out[i] = RotMap[r][m]
	}
	return out
}

// Conjugate maps a turn sequence through conjugation slot k.
func Conjugate(alg []int, k int) []int {
	out := make([]int, len(alg))
	for i, m := range alg {
		out[i] = Conj[m][k]
	}
	return out
}
