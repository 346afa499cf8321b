// Command magicgen searches magic multipliers for the slider tables and
// writes them as a Go source file, or verifies the embedded ones.
//
//	magicgen -verify
//	magicgen -seed 7 -o magics.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/0x5844/slider"
	"github.com/0x5844/slider/internal/magicgen"
)

func main() {
	var (
		seed    = flag.Uint64("seed", 1, "random seed for the search")
		piece   = flag.String("piece", "all", "bishop, rook or all")
		verify  = flag.Bool("verify", false, "verify the embedded magics and exit")
		out     = flag.String("o", "", "output file (default stdout)")
		pkg     = flag.String("pkg", "slider", "package name of the generated file")
		tries   = flag.Int("tries", magicgen.DefaultTries, "candidates per square")
		verbose = flag.Bool("v", false, "trace progress")
	)
	flag.Parse()

	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if *verbose {
		tracing.Select("magicgen").SetTraceLevel(tracing.LevelDebug)
	} else {
		tracing.Select("magicgen").SetTraceLevel(tracing.LevelInfo)
	}

	if err := run(*piece, *seed, *tries, *verify, *out, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "magicgen: %v\n", err)
		os.Exit(1)
	}
}

func run(piece string, seed uint64, tries int, verify bool, out, pkg string) error {
	pieces, err := selectPieces(piece)
	if err != nil {
		return err
	}
	if verify {
		for _, pt := range pieces {
			if err := magicgen.Verify(pt, slider.EmbeddedMagics(pt)); err != nil {
				return err
			}
			fmt.Printf("%s magics ok\n", pt)
		}
		return nil
	}

	// a piece that is not searched keeps its embedded table
	bishops := slider.EmbeddedMagics(slider.Bishop)
	rooks := slider.EmbeddedMagics(slider.Rook)
	for _, pt := range pieces {
		magics, err := magicgen.Generate(pt, seed, tries)
		if err != nil {
			return err
		}
		if err := magicgen.Verify(pt, magics); err != nil {
			return err
		}
		if pt == slider.Bishop {
			bishops = magics
		} else {
			rooks = magics
		}
	}

	if out != "" {
		return magicgen.WriteFile(out, pkg, bishops, rooks)
	}
	return magicgen.WriteGo(os.Stdout, pkg, bishops, rooks)
}

func selectPieces(s string) ([]slider.PieceType, error) {
	switch s {
	case "bishop":
		return []slider.PieceType{slider.Bishop}, nil
	case "rook":
		return []slider.PieceType{slider.Rook}, nil
	case "all", "":
		return []slider.PieceType{slider.Bishop, slider.Rook}, nil
	}
	return nil, fmt.Errorf("unknown piece %q", s)
}
