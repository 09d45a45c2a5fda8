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

package main

import (
	"log"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/RuiminYan/solver-sub000/internal/analyzer"
	"github.com/RuiminYan/solver-sub000/internal/pdb"
	"github.com/RuiminYan/solver-sub000/internal/transtable"
)

var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	app := cli.NewApp()
	app.Name = "eo-analyzer"
	app.Usage = "report edge-orientation-aware F2L depths for a scramble list"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "tables", Value: "tables", Usage: "directory holding generated move tables and pattern databases"},
		cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "number of concurrent solver workers"},
		cli.BoolFlag{Name: "compress-output", Usage: "write a snappy-framed .csv.snz instead of plain CSV"},
	}
	app.ArgsUsage = "[input-file]"
	app.Action = func(c *cli.Context) error {
		tt := transtable.NewRegistry(c.String("tables"))
		pp := pdb.NewRegistry(c.String("tables"), tt)

		v := analyzer.NewEOVariant(nil)
		ctx, err := analyzer.NewContext(tt, pp, v.RequiredPDBs())
		if err != nil {
			return errors.Wrap(err, "eo-analyzer: load tables")
		}
		v = analyzer.NewEOVariant(ctx)

		workers := c.Int("workers")
		compress := c.Bool("compress-output")

		if c.NArg() > 0 {
			return analyzer.RunFile(v, c.Args().First(), workers, compress)
		}
		return analyzer.PromptLoop(v, workers, compress, os.Stdin, os.Stdout)
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
