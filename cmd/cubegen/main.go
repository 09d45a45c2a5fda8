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

// cubegen is the analogue of original_source/table_generator.cpp: it
// walks the full dependency chain (basic move tables, composite move
// tables, then every named pattern database) once and persists each
// through internal/tableio, then exits. The analyzer binaries resolve
// their tables through the same registries, so they also build and
// persist any table that is not yet on disk when they start.
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/RuiminYan/solver-sub000/internal/pdb"
	"github.com/RuiminYan/solver-sub000/internal/transtable"
)

var VERSION = "SELFBUILD"

var allPDBs = []pdb.Name{
	pdb.CrossBase,
	pdb.CrossC4,
	pdb.PairC4E0,
	pdb.XCrossC4E0,
	pdb.HugeNeighbor,
	pdb.HugeDiagonal,
}

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	app := cli.NewApp()
	app.Name = "cubegen"
	app.Usage = "generate and persist every move table and pattern database the analyzers need"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "tables", Value: "tables", Usage: "output directory for generated tables and pattern databases"},
	}
	app.Action = func(c *cli.Context) error {
		dir := c.String("tables")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "cubegen: create %s", dir)
		}

		tt := transtable.NewRegistry(dir)
		for _, n := range []transtable.Name{transtable.Edge, transtable.Corner, transtable.Cross, transtable.Edges2, transtable.Corners2} {
			if _, err := tt.Get(n); err != nil {
				return errors.Wrapf(err, "cubegen: build table %s", n)
			}
		}

		pp := pdb.NewRegistry(dir, tt)
		for _, n := range allPDBs {
			log.Printf("[cubegen] building %s", n)
			if _, err := pp.Get(n); err != nil {
				return errors.Wrapf(err, "cubegen: build pdb %s", n)
			}
		}
		log.Printf("[cubegen] done, tables written to %s", dir)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
