package image_test

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/0x5844/slider"
	"github.com/0x5844/slider/image"
)

func TestSVG(t *testing.T) {
	occ := slider.SquareBB(slider.F6)
	attacks := slider.BishopAttacks(slider.D4, occ)
	buf := bytes.NewBuffer([]byte{})
	err := image.SVG(buf, attacks,
		image.Origin(slider.D4, slider.Bishop),
		image.Blockers(occ),
		image.AttackColor(color.RGBA{0, 0, 255, 255}),
	)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// one base rect per square plus one tint per attacked square
	if got, want := strings.Count(out, "<rect"), 64+attacks.PopCount(); got != want {
		t.Fatalf("expected %d rects, got %d", want, got)
	}
	if got := strings.Count(out, "#0000ff"); got != attacks.PopCount() {
		t.Fatalf("expected %d attack tints, got %d", attacks.PopCount(), got)
	}
	if strings.Count(out, "<circle") != 1 {
		t.Fatalf("expected one blocker marker")
	}
	if !strings.Contains(out, ">B</text>") {
		t.Fatalf("origin not labelled with the piece")
	}
}

func TestSVGSquareColors(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	light := color.RGBA{255, 255, 255, 255}
	dark := color.RGBA{0, 0, 0, 255}
	if err := image.SVG(buf, slider.EmptyBB, image.SquareColors(light, dark)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "#ffffff") != 32 || strings.Count(out, "#000000") != 32 {
		t.Fatalf("expected 32 light and 32 dark squares")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVGWriteError(t *testing.T) {
	if err := image.SVG(failingWriter{}, slider.FullBB); err == nil {
		t.Fatalf("expected the write error to be reported")
	}
}

func TestSVGOriginLabel(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	attacks := slider.QueenAttacks(slider.E4, slider.EmptyBB)
	if err := image.SVG(buf, attacks, image.OriginLabel(slider.E4, "Q")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), ">Q</text>") {
		t.Fatalf("origin not labelled with Q")
	}
}
