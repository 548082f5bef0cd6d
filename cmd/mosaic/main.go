// Copyright (C) 2023 The mosaic authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pbnjay/memory"

	ml "github.com/spectralcam/mosaic/internal"
	"github.com/spectralcam/mosaic/internal/cfa"
	"github.com/spectralcam/mosaic/internal/pattern"
	"github.com/spectralcam/mosaic/internal/render"
	"github.com/spectralcam/mosaic/internal/rest"
	"github.com/spectralcam/mosaic/internal/spectral"
)

const version = "0.1.0"

var totalMiBs=memory.TotalMemory()/1024/1024

var pat     = flag.String("pattern", "", "CFA `pattern` name from the catalog, blank for all (see list command)")
var height  = flag.Int64("height", 16, "grid height in pixels")
var width   = flag.Int64("width", 16, "grid width in pixels")
var stencil = flag.String("stencil", "450,550,650", "comma-separated wavelengths in nm sampling the spectral axis")
var source  = flag.String("source", "dirac", "response source, dirac or WV34bands")
var out     = flag.String("out", "%s.png", "save pattern previews to `file`, %s is replaced by the pattern name")
var scale   = flag.Int64("scale", 16, "integer upscaling factor for previews")
var logF    = flag.String("log", "", "also save log output to `file`")

func main() {
	flag.Usage=func(){
		fmt.Printf(`Mosaic models color filter arrays as linear operators.
This program comes with ABSOLUTELY NO WARRANTY.
This is free software, and you are welcome to redistribute it under certain conditions.
Refer to https://www.gnu.org/licenses/gpl-3.0.en.html for details.

Usage: %s [-flag value] (list|show|matrix|serve|version)

Commands:
  list    List the catalog of known CFA patterns
  show    Render pattern masks to PNG previews
  matrix  Print the sparse matrix shape and fill statistics for a pattern
  serve   Start the REST API server
  version Show version information

Flags:
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *logF!="" {
		if err:=ml.LogAlsoToFile(*logF); err!=nil {
			ml.LogFatalf("Unable to open logfile '%s'\n", *logF)
		}
	}
	defer ml.LogSync()

	args:=flag.Args()
	if len(args)<1 {
		flag.Usage()
		return
	}

	switch args[0] {
	case "list":
		for _,name:=range pattern.Names() {
			spec,_:=pattern.Lookup(name)
			ml.LogPrintf("%-12s default %-5s %2d assignments\n", name, spec.Default, len(spec.Assignments))
		}

	case "show":
		st:=parseStencil(*stencil)
		for _,name:=range selectedPatterns() {
			op:=mustOperator(name, st)
			fileName:=*out
			if strings.Contains(fileName, "%s") { fileName=fmt.Sprintf(*out, name) }
			f, err:=os.Create(fileName)
			if err!=nil { ml.LogFatalf("Error creating %s: %s\n", fileName, err.Error()) }
			if err:=render.WritePNG(f, render.Pattern(op.Mask(), int(*scale))); err!=nil {
				ml.LogFatalf("Error writing %s: %s\n", fileName, err.Error())
			}
			f.Close()
			h, w:=op.OutputShape()
			ml.LogPrintf("%-12s (%d,%d) written to %s\n", name, h, w, fileName)
		}

	case "matrix":
		st:=parseStencil(*stencil)
		for _,name:=range selectedPatterns() {
			op:=mustOperator(name, st)
			m:=op.Matrix()
			rows, cols:=m.Dims()
			ml.LogPrintf("%-12s matrix %d x %d, %d nonzeros (%.2f%% fill)\n",
				name, rows, cols, m.NNZ(), 100*float64(m.NNZ())/float64(rows)/float64(cols))
		}

	case "serve":
		rest.Serve()

	case "version":
		ml.LogPrintf("Version %s\n", version)

	case "help", "?":
		flag.Usage()

	default:
		ml.LogPrintf("Unknown command '%s'\n\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
}

func selectedPatterns() []string {
	if *pat!="" { return []string{*pat} }
	return pattern.Names()
}

func parseStencil(s string) spectral.Stencil {
	parts:=strings.Split(s, ",")
	st:=make(spectral.Stencil, len(parts))
	for i,part:=range parts {
		v, err:=strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err!=nil { ml.LogFatalf("Invalid stencil wavelength '%s'\n", part) }
		st[i]=v
	}
	return st
}

func mustOperator(name string, st spectral.Stencil) *cfa.Operator {
	// a (H,W,C) float64 mask plus its sparse form roughly doubles the footprint
	maskMiBs:=uint64(*height)*uint64(*width)*uint64(len(st))*8*2/1024/1024
	if maskMiBs>totalMiBs*7/10 {
		ml.LogFatalf("Mask of %d MiB exceeds 70%% of the %d MiB physical memory\n", maskMiBs, totalMiBs)
	}
	op, err:=cfa.New(name, int32(*height), int32(*width), int32(len(st)), st, *source, "")
	if err!=nil { ml.LogFatalf("Error building operator: %s\n", err.Error()) }
	return op
}
