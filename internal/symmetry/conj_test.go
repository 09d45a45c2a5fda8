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

package symmetry

import "testing"

func TestConjIdentityAtSlotZero(t *testing.T) {
	for m := 0; m < 18; m++ {
		if Conj[m][0] != m {
			t.Errorf("Conj[%d][0] = %d, want %d (slot 0 is the unconjugated identity)", m, Conj[m][0], m)
		}
	}
}

func TestConjFixesUAndD(t *testing.T) {
	for m := 0; m < 6; m++ { // turn classes 0 (U) and 1 (D)
		for k := 0; k < 4; k++ {
			if Conj[m][k] != m {
				t.Errorf("Conj[%d][%d] = %d, want %d (U/D moves don't change under slot re-anchoring)", m, k, Conj[m][k], m)
			}
		}
	}
}

// TestConjCyclesSideFacesByPower checks the property the re-anchoring
// relies on: for a fixed turn power, conjugating an L turn through all
// four slots visits exactly one turn from each of L/R/F/B (turn
// classes 2-5) and never changes the turn's power.
func TestConjCyclesSideFacesByPower(t *testing.T) {
	for pow := 0; pow < 3; pow++ {
		m := 6 + pow // an L turn of this power
		seenClasses := make(map[int]bool)
		for k := 0; k < 4; k++ {
			img := Conj[m][k]
			if img%3 != pow {
				t.Errorf("Conj[%d][%d] = %d changed power to %d, want %d", m, k, img, img%3, pow)
			}
			seenClasses[img/3] = true
		}
		for class := 2; class <= 5; class++ {
			if !seenClasses[class] {
				t.Errorf("Conj[%d][*] never reaches turn class %d (L=2,R=3,F=4,B=5)", m, class)
			}
		}
	}
}

func TestRotIDIsIdentity(t *testing.T) {
	for m := 0; m < 18; m++ {
		if RotMap[RotID][m] != m {
			t.Errorf("RotMap[RotID][%d] = %d, want %d", m, RotMap[RotID][m], m)
		}
	}
}

func TestRotMapIsPermutation(t *testing.T) {
	for _, r := range []Rotation{RotID, RotY2, RotYPrime, RotY} {
		seen := make(map[int]bool)
		for m := 0; m < 18; m++ {
			img := RotMap[r][m]
			if img < 0 || img >= 18 {
				t.Fatalf("RotMap[%d][%d] = %d out of range", r, m, img)
			}
			seen[img] = true
		}
		if len(seen) != 18 {
			t.Errorf("RotMap[%d] is not a bijection on the 18 turns (%d distinct images)", r, len(seen))
		}
	}
}

func TestRotateAndConjugatePreserveLength(t *testing.T) {
	alg := []int{0, 5, 9, 13, 17}
	if got := Rotate(alg, RotY2); len(got) != len(alg) {
		t.Fatalf("Rotate changed length: got %d, want %d", len(got), len(alg))
	}
	if got := Conjugate(alg, 2); len(got) != len(alg) {
		t.Fatalf("Conjugate changed length: got %d, want %d", len(got), len(alg))
	}
}
