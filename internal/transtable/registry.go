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

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/RuiminYan/solver-sub000/internal/coord"
	"github.com/RuiminYan/solver-sub000/internal/tableio"
)

// Name identifies one of the coordinate families spec.md §3.3 tabulates.
type Name string

const (
	Edge     Name = "edge"
	Corner   Name = "corner"
	Cross    Name = "cross"    // scale-24, 4 edges
	Edges2   Name = "edges2"
	Edges3   Name = "edges3"
	Edges6   Name = "edges6"   // load-on-demand, ~3GB resident
	Corners2 Name = "corners2"
	Corners3 Name = "corners3"
)

var families = map[Name]coord.Params{
	Edge:     {N: 1, C: 2, Pn: 12},
	Corner:   {N: 1, C: 3, Pn: 8},
	Cross:    {N: 4, C: 2, Pn: 12},
	Edges2:   {N: 2, C: 2, Pn: 12},
	Edges3:   {N: 3, C: 2, Pn: 12},
	Edges6:   {N: 6, C: 2, Pn: 12},
	Corners2: {N: 2, C: 3, Pn: 8},
	Corners3: {N: 3, C: 3, Pn: 8},
}

// Registry lazily loads-or-generates-then-persists named transition
// tables, mirroring MoveTableManager's load/generate/release lifecycle
// including Edges6's "load on demand, release after use" policy from
// spec.md §5 (it is excluded from the small-table cache below).
type Registry struct {
	dir string

	mu     sync.Mutex
	small  map[Name][]int32
}

// NewRegistry roots all table files under dir.
func NewRegistry(dir string) *Registry {
	return &Registry{dir: dir, small: make(map[Name][]int32)}
}

func (r *Registry) path(n Name) string {
	return filepath.Join(r.dir, fmt.Sprintf("move_table_%s.bin", n))
}

// Get returns the named table, loading it from disk or generating and
// persisting it if absent. Edges6 is never cached in-process: every
// GetEdges6 call loads (or builds) a fresh copy, which is freed once its
// caller drops it (spec.md §5's "largest... table is loaded only when needed
// and released when the analyzer can proceed without it").
func (r *Registry) Get(n Name) ([]int32, error) {
	if n == Edges6 {
		return r.GetEdges6()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.small[n]; ok {
		return t, nil
	}
	t, err := r.loadOrBuild(n)
	if err != nil {
		return nil, err
	}
	r.small[n] = t
	return t, nil
}

// GetEdges6 loads (or builds) the Edges6 table without caching it.
func (r *Registry) GetEdges6() ([]int32, error) {
	return r.loadOrBuild(Edges6)
}

func (r *Registry) loadOrBuild(n Name) ([]int32, error) {
	path := r.path(n)
	t, err := tableio.LoadInt32(path)
	if err == nil {
		log.Printf("[transtable] loaded %s (%d entries) from %s", n, len(t), path)
		return t, nil
	}
	if !errors.Is(err, tableio.ErrTableMissing) {
		return nil, errors.Wrapf(err, "transtable: load %s", n)
	}

	log.Printf("[transtable] generating %s...", n)
	t, err = r.build(n)
	if err != nil {
		return nil, errors.Wrapf(err, "transtable: build %s", n)
	}
	if err := tableio.SaveInt32(path, t); err != nil {
		return nil, errors.Wrapf(err, "transtable: save %s", n)
	}
	return t, nil
}

func (r *Registry) build(n Name) ([]int32, error) {
	params, ok := families[n]
	if !ok {
		return nil, errors.Errorf("transtable: unknown family %q", n)
	}

	switch n {
	case Edge:
		return BuildEdgeTable(), nil
	case Corner:
		return BuildCornerTable(), nil
	case Cross:
		edge, err := r.Get(Edge)
		if err != nil {
			return nil, err
		}
		return BuildScaled24(params, params.Size(), edge), nil
	case Edges2, Edges3, Edges6:
		edge, err := r.Get(Edge)
		if err != nil {
			return nil, err
		}
		return Build(params, params.Size(), edge), nil
	case Corners2, Corners3:
		corner, err := r.Get(Corner)
		if err != nil {
			return nil, err
		}
		return Build(params, params.Size(), corner), nil
	default:
		return nil, errors.Errorf("transtable: no builder for %q", n)
	}
}

// Params exposes the coordinate params backing a named family, for
// callers that need domain sizes without materializing the table.
func Params(n Name) coord.Params { return families[n] }
