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

import "testing"

// checkRoundTrip asserts that for every state and every move, applying
// the move and then its inverse returns to the original state — the
// basic group-action property any transition table must satisfy.
func checkRoundTrip(t *testing.T, name string, mt []int32, states int) {
	t.Helper()
	for i := 0; i < states; i++ {
		for m := 0; m < 18; m++ {
			next := int(mt[18*i+m])
			back := int(mt[18*next+inv[m]])
			if back != i {
				t.Fatalf("%s: state %d move %d then inverse %d landed on %d, want %d", name, i, m, inv[m], back, i)
			}
		}
	}
}

func TestBasicTablesMoveThenInverseIsIdentity(t *testing.T) {
	checkRoundTrip(t, "edge", BuildEdgeTable(), 24)
	checkRoundTrip(t, "corner", BuildCornerTable(), 24)
}

func TestBuildEdges2TableRoundTripsThroughInverse(t *testing.T) {
	edge := BuildEdgeTable()
	params := Params(Edges2)
	mt := Build(params, params.Size(), edge)
	checkRoundTrip(t, "edges2", mt, params.Size())
}

func TestBuildScaled24CrossTableRoundTripsThroughInverse(t *testing.T) {
	edge := BuildEdgeTable()
	params := Params(Cross)
	mt := BuildScaled24(params, params.Size(), edge)
	for i := 0; i < params.Size(); i++ {
		base := i * 24
		for m := 0; m < 18; m++ {
			next := int(mt[base+m])
			back := int(mt[next+inv[m]])
			if back != base {
				t.Fatalf("cross: state %d move %d then inverse %d landed on offset %d, want %d", i, m, inv[m], back, base)
			}
		}
	}
}
