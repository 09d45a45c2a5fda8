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

package tableio

import (
	"io"

	"github.com/golang/snappy"
)

// SnappyWriteCloser wraps an underlying file in a buffered snappy
// writer, the same wrapping xtaci-kcptun/std/comp.go applies to
// net.Conn, applied here to the `--compress-output` CSV path instead
// of a network stream.
type SnappyWriteCloser struct {
	w   *snappy.Writer
	out io.Closer
}

// NewSnappyWriteCloser wraps out so every Write is snappy-framed.
func NewSnappyWriteCloser(out io.WriteCloser) *SnappyWriteCloser {
	return &SnappyWriteCloser{w: snappy.NewBufferedWriter(out), out: out}
}

func (s *SnappyWriteCloser) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Close flushes the snappy frame buffer, then closes the underlying file.
func (s *SnappyWriteCloser) Close() error {
	if err := s.w.Close(); err != nil {
		s.out.Close()
		return err
	}
	return s.out.Close()
}
