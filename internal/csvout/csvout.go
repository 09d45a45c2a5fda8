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

// Package csvout emits analyzer results as CSV, preserving input order
// per spec.md §6's output contract even though internal/runner
// completes work out of order.
package csvout

import (
	"encoding/csv"
	"io"

	"github.com/RuiminYan/solver-sub000/internal/tableio"
)

// Writer wraps encoding/csv with the output naming and optional
// snappy compression spec.md §6.3 describes.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
}

// New wraps out (already opened at "<input>_<suffix>.csv" or
// "<input>_<suffix>.csv.snz") as a CSV writer, compressing through
// tableio.SnappyWriteCloser when compress is true.
func New(out io.WriteCloser, compress bool) *Writer {
	if compress {
		sw := tableio.NewSnappyWriteCloser(out)
		return &Writer{csv: csv.NewWriter(sw), closer: sw}
	}
	return &Writer{csv: csv.NewWriter(out), closer: out}
}

// WriteHeader writes the id column followed by cols.
func (w *Writer) WriteHeader(cols []string) error {
	return w.csv.Write(append([]string{"id"}, cols...))
}

// WriteRow writes one id-prefixed row.
func (w *Writer) WriteRow(id string, cols []string) error {
	return w.csv.Write(append([]string{id}, cols...))
}

// Close flushes the CSV encoder and closes the underlying writer.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	return w.closer.Close()
}
