// Command sliderview explores slider attacks in the terminal, or renders
// a single attack set as an SVG board.
//
//	sliderview
//	sliderview -svg rook.svg -piece rook -square a1 -occ a4,c1
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/0x5844/slider"
	"github.com/0x5844/slider/image"
	"github.com/0x5844/slider/internal/tui"
)

func main() {
	var (
		strategy = flag.String("strategy", "", "magic, extract or rays (default: build tag)")
		verify   = flag.Bool("verify", false, "verify the tables after building them")
		svgOut   = flag.String("svg", "", "render to this SVG file instead of starting the explorer")
		export   = flag.String("export", "slider.svg", "file the explorer exports to")
		piece    = flag.String("piece", "queen", "bishop, rook or queen (with -svg)")
		square   = flag.String("square", "d4", "origin square (with -svg)")
		occ      = flag.String("occ", "", "comma-separated blocker squares (with -svg)")
		verbose  = flag.Bool("v", false, "trace table construction to stderr")
	)
	flag.Parse()

	if *verbose {
		tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
		tracing.Select("slider").SetTraceLevel(tracing.LevelDebug)
	}

	if err := setup(*strategy, *verify); err != nil {
		fail(err)
	}
	if *svgOut == "" {
		if err := tui.Start(*export); err != nil {
			fail(err)
		}
		return
	}
	if err := render(*svgOut, *piece, *square, *occ); err != nil {
		fail(err)
	}
}

func setup(strategy string, verify bool) error {
	s, err := slider.ParseStrategy(strategy)
	if err != nil {
		return err
	}
	cfg := slider.DefaultConfig()
	cfg.Strategy = s
	cfg.Verify = verify
	if cfg == slider.DefaultConfig() {
		return nil
	}
	return slider.Setup(cfg)
}

func render(path, piece, square, occList string) error {
	origin, err := slider.ParseSquare(square)
	if err != nil {
		return err
	}
	var occ slider.Bitboard
	for _, s := range strings.Split(occList, ",") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		sq, err := slider.ParseSquare(s)
		if err != nil {
			return err
		}
		occ = occ.Set(sq)
	}

	var attacks slider.Bitboard
	label := "Q"
	switch piece {
	case "bishop":
		attacks, label = slider.BishopAttacks(origin, occ), "B"
	case "rook":
		attacks, label = slider.RookAttacks(origin, occ), "R"
	case "queen":
		attacks = slider.QueenAttacks(origin, occ)
	default:
		return fmt.Errorf("unknown piece %q", piece)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = image.SVG(f, attacks, image.OriginLabel(origin, label), image.Blockers(occ))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "sliderview: %v\n", err)
	os.Exit(1)
}
