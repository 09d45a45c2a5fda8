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

// Package search implements the IDA* engine of spec.md §3.6/§4.G/§4.H
// over tracked coordinate "views". SolveSlot covers a 1-slot task and
// SolveMulti any 2-4 slot task list, replacing the hand-specialized
// one-function-per-slot-count shape the original analyzer used for the
// F2L stages; SolvePair and SolveSingle are separate un-conjugated
// searches over two and one plain views.
package search

// View tracks one coordinate's current row offset through a
// transition table as moves are applied. Scaled views (stride 24, see
// transtable.BuildScaled24) store the next coordinate pre-multiplied
// by the row stride so no multiply is needed to keep chaining; plain
// views (stride 18) read a bare coordinate from their table, and Step
// multiplies it by 18 itself before storing it.
type View struct {
	Table  []int32
	Scaled bool
	Value  int
}

// NewPlainView seeds a stride-18 view at coordinate value c.
func NewPlainView(table []int32, c int) View {
	return View{Table: table, Scaled: false, Value: c * 18}
}

// NewScaledView seeds a stride-24 view already in offset form (the
// caller is expected to have computed c*24 once, matching how the
// original seeds cur_mul = solved_coord * 24).
func NewScaledView(table []int32, offset int) View {
	return View{Table: table, Scaled: true, Value: offset}
}

// Step applies move m and returns the advanced view along with the raw
// successor value read from the table — for a scaled view this is
// already offset*24-form and is also what composite prune indices are
// built from directly; for a plain view it is the bare coordinate.
func (v View) Step(m int) (View, int) {
	raw := int(v.Table[v.Value+m])
	if v.Scaled {
		return View{Table: v.Table, Scaled: true, Value: raw}, raw
	}
	return View{Table: v.Table, Scaled: false, Value: raw * 18}, raw
}

// Coord returns the current coordinate value (undoing the row-stride
// scaling used internally for chaining).
func (v View) Coord() int {
	if v.Scaled {
		return v.Value / 24
	}
	return v.Value / 18
}
