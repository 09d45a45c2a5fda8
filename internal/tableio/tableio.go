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

// Package tableio implements the persistent table layout from spec.md
// §6: a little-endian size_t count followed by raw elements, read and
// written in 64MB chunks so a single huge table never needs one giant
// read/write syscall. Used for both int32 transition tables and the
// packed-byte pattern databases.
package tableio

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ChunkSize is the I/O granularity from spec.md §5's resource policy.
const ChunkSize = 64 * 1024 * 1024

// ErrTableMissing is returned when the backing file does not exist.
var ErrTableMissing = errors.New("tableio: table file missing")

// ErrSizeMismatch is returned when the on-disk size does not match
// size*elemSize+8, per spec.md §6's reader contract.
var ErrSizeMismatch = errors.New("tableio: file size does not match header count")

// LoadInt32 loads a []int32 table, verifying the header count against
// the file size (elemSize=4). Returns ErrTableMissing if the file does
// not exist, ErrSizeMismatch if the sizes disagree.
func LoadInt32(path string) ([]int32, error) {
	raw, err := loadRaw(path, 4)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(raw)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out, nil
}

// SaveInt32 writes a []int32 table in chunks of ChunkSize bytes.
func SaveInt32(path string, data []int32) error {
	raw := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[i*4:], uint32(v))
	}
	return saveRaw(path, raw)
}

// LoadBytes loads a packed-byte table (a PDB), elemSize=1.
func LoadBytes(path string) ([]byte, error) {
	return loadRaw(path, 1)
}

// SaveBytes writes a packed-byte table in ChunkSize chunks.
func SaveBytes(path string, data []byte) error {
	return saveRaw(path, data)
}

func loadRaw(path string, elemSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTableMissing
		}
		return nil, errors.Wrap(err, "tableio: open")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "tableio: stat")
	}

	var count uint64
	if err := binary.Read(f, binary.LittleEndian, &count); err != nil {
		return nil, errors.Wrap(err, "tableio: read header")
	}

	expected := int64(count)*elemSize + 8
	if info.Size() != expected {
		return nil, errors.Wrapf(ErrSizeMismatch, "%s: have %d want %d", path, info.Size(), expected)
	}

	buf := make([]byte, int64(count)*elemSize)
	if err := readChunked(f, buf); err != nil {
		return nil, errors.Wrap(err, "tableio: chunked read")
	}
	return buf, nil
}

func saveRaw(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "tableio: create")
	}
	defer f.Close()

	if err := binary.Write(f, binary.LittleEndian, uint64(len(data))); err != nil {
		return errors.Wrap(err, "tableio: write header")
	}
	if err := writeChunked(f, data); err != nil {
		return errors.Wrap(err, "tableio: chunked write")
	}
	return nil
}

func readChunked(r io.Reader, buf []byte) error {
	for len(buf) > 0 {
		n := len(buf)
		if n > ChunkSize {
			n = ChunkSize
		}
		if _, err := io.ReadFull(r, buf[:n]); err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

func writeChunked(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n := len(buf)
		if n > ChunkSize {
			n = ChunkSize
		}
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
