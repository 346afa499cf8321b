package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/0x5844/slider"
	"github.com/0x5844/slider/image"
)

// slider kinds the explorer cycles through
type piece int

const (
	bishop piece = iota
	rook
	queen
	numPieces
)

func (p piece) String() string {
	return [...]string{"bishop", "rook", "queen"}[p]
}

func (p piece) letter() string {
	return [...]string{"B", "R", "Q"}[p]
}

// position is the state shared by all screens: a slider on origin, the
// blockers and the cursor.
type position struct {
	cursor slider.Square
	origin slider.Square
	occ    slider.Bitboard
	piece  piece
	status string
}

func newPosition() *position {
	return &position{cursor: slider.D4, origin: slider.D4, piece: queen}
}

func (p *position) attacks() slider.Bitboard {
	switch p.piece {
	case bishop:
		return slider.BishopAttacks(p.origin, p.occ)
	case rook:
		return slider.RookAttacks(p.origin, p.occ)
	}
	return slider.QueenAttacks(p.origin, p.occ)
}

// move shifts the cursor by df files and dr ranks, stopping at the edge.
func (p *position) move(df, dr int) {
	f := int(p.cursor.File()) + df
	r := int(p.cursor.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return
	}
	p.cursor = slider.NewSquare(slider.File(f), slider.Rank(r))
}

// place moves the slider to the cursor. A blocker there is removed.
func (p *position) place() {
	p.origin = p.cursor
	p.occ = p.occ.Clear(p.cursor)
}

func (p *position) toggle() {
	if p.cursor == p.origin {
		return
	}
	p.occ = p.occ.Toggle(p.cursor)
}

func (p *position) cycle() {
	p.piece = (p.piece + 1) % numPieces
}

type exportedMsg struct {
	path string
	err  error
}

// export writes the current attack set as an SVG board.
func (p *position) export(path string) tea.Cmd {
	attacks, origin, occ, label := p.attacks(), p.origin, p.occ, p.piece.letter()
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return exportedMsg{path: path, err: err}
		}
		err = image.SVG(f, attacks, image.OriginLabel(origin, label), image.Blockers(occ))
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return exportedMsg{path: path, err: err}
	}
}
