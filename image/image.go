// Package image renders attack sets as SVG boards.
package image

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/0x5844/slider"
)

const (
	sqWidth  = 45
	sqHeight = 45
	margin   = 20
)

var (
	defaultLight  = color.RGBA{235, 209, 166, 255}
	defaultDark   = color.RGBA{165, 117, 81, 255}
	defaultAttack = color.RGBA{220, 60, 40, 255}
)

// SVG writes an 8x8 board to w with the squares of attacks highlighted.
// Options mark the origin square and the blockers.
func SVG(w io.Writer, attacks slider.Bitboard, options ...func(*encoder)) error {
	e := new(w, options)
	return e.encode(attacks)
}

// SquareColors sets the light and dark square colors.
func SquareColors(light, dark color.Color) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// AttackColor sets the color attacked squares are tinted with.
func AttackColor(c color.Color) func(*encoder) {
	return func(e *encoder) {
		e.attack = c
	}
}

// Origin marks sq as the square the slider stands on, labelled with pt.
func Origin(sq slider.Square, pt slider.PieceType) func(*encoder) {
	return OriginLabel(sq, pieceLetter(pt))
}

// OriginLabel marks sq as the origin square with a free-form label, e.g.
// "Q" for the union of both sliders.
func OriginLabel(sq slider.Square, label string) func(*encoder) {
	return func(e *encoder) {
		e.origin = sq
		e.label = label
	}
}

// Blockers marks the occupied squares.
func Blockers(occ slider.Bitboard) func(*encoder) {
	return func(e *encoder) {
		e.blockers = occ
	}
}

type encoder struct {
	w        *errWriter
	light    color.Color
	dark     color.Color
	attack   color.Color
	origin   slider.Square
	label    string
	blockers slider.Bitboard
}

func new(w io.Writer, options []func(*encoder)) *encoder {
	e := &encoder{
		w:      &errWriter{w: w},
		light:  defaultLight,
		dark:   defaultDark,
		attack: defaultAttack,
		origin: slider.NoSquare,
	}
	for _, op := range options {
		op(e)
	}
	return e
}

func (e *encoder) encode(attacks slider.Bitboard) error {
	boardSize := 8 * sqWidth
	canvas := svg.New(e.w)
	canvas.Start(boardSize+2*margin, boardSize+2*margin)
	for r := slider.Rank8; r >= slider.Rank1; r-- {
		for f := slider.FileA; f <= slider.FileH; f++ {
			sq := slider.NewSquare(f, r)
			x, y := e.xy(sq)
			canvas.Rect(x, y, sqWidth, sqHeight, "fill: "+colorToHex(e.squareColor(sq)))
			if attacks.Occupied(sq) {
				canvas.Rect(x, y, sqWidth, sqHeight, "fill: "+colorToHex(e.attack)+"; fill-opacity: 0.45")
			}
			if e.blockers.Occupied(sq) && sq != e.origin {
				canvas.Circle(x+sqWidth/2, y+sqHeight/2, sqWidth/4, "fill: #222222")
			}
			if sq == e.origin {
				canvas.Text(x+sqWidth/2, y+sqHeight*2/3, e.label,
					"text-anchor: middle; font-size: 26px; font-weight: bold; fill: #111111")
			}
		}
	}
	for i := 0; i < 8; i++ {
		f := slider.File(i)
		r := slider.Rank(i)
		canvas.Text(margin+i*sqWidth+sqWidth/2, boardSize+margin+15, f.String(),
			"text-anchor: middle; font-size: 12px; fill: #555555")
		canvas.Text(margin/2, margin+(7-i)*sqHeight+sqHeight/2+4, r.String(),
			"text-anchor: middle; font-size: 12px; fill: #555555")
	}
	canvas.End()
	return e.w.err
}

func (e *encoder) xy(sq slider.Square) (int, int) {
	x := margin + int(sq.File())*sqWidth
	y := margin + (7-int(sq.Rank()))*sqHeight
	return x, y
}

func (e *encoder) squareColor(sq slider.Square) color.Color {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return e.dark
	}
	return e.light
}

func pieceLetter(pt slider.PieceType) string {
	return strings.ToUpper(pt.String()[:1])
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
