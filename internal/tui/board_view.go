package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/0x5844/slider"
)

type boardView struct {
	pos           *position
	keys          keyMap
	theme         theme
	width, height int
}

func newBoardView(pos *position, keys keyMap, theme theme) screen {
	return &boardView{pos: pos, keys: keys, theme: theme}
}

func (v *boardView) SetSize(width, height int) {
	v.width, v.height = width, height
}

func (v *boardView) Update(msg tea.Msg) (screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	if moveCursor(v.pos, v.keys, km) {
		return v, nil
	}
	switch {
	case key.Matches(km, v.keys.Origin):
		v.pos.place()
	case key.Matches(km, v.keys.Blocker):
		v.pos.toggle()
	case key.Matches(km, v.keys.Clear):
		v.pos.occ = slider.EmptyBB
	case key.Matches(km, v.keys.Piece):
		v.pos.cycle()
	}
	return v, nil
}

// moveCursor handles the arrow keys for every screen.
func moveCursor(pos *position, keys keyMap, msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.Up):
		pos.move(0, 1)
	case key.Matches(msg, keys.Down):
		pos.move(0, -1)
	case key.Matches(msg, keys.Left):
		pos.move(-1, 0)
	case key.Matches(msg, keys.Right):
		pos.move(1, 0)
	default:
		return false
	}
	return true
}

func (v *boardView) View() string {
	if v.width == 0 {
		return ""
	}

	attackStyle := lipgloss.NewStyle().Foreground(v.theme.Red)
	originStyle := lipgloss.NewStyle().Foreground(v.theme.Yellow).Bold(true)
	blockerStyle := lipgloss.NewStyle().Foreground(v.theme.Aqua)
	emptyStyle := lipgloss.NewStyle().Foreground(v.theme.Gray)
	titleStyle := lipgloss.NewStyle().Foreground(v.theme.Blue).Bold(true)

	attacks := v.pos.attacks()
	var b strings.Builder
	for r := slider.Rank8; r >= slider.Rank1; r-- {
		b.WriteString(emptyStyle.Render(r.String()) + " ")
		for f := slider.FileA; f <= slider.FileH; f++ {
			sq := slider.NewSquare(f, r)
			var cell string
			switch {
			case sq == v.pos.origin:
				cell = originStyle.Render(v.pos.piece.letter())
			case v.pos.occ.Occupied(sq) && attacks.Occupied(sq):
				cell = attackStyle.Render("x")
			case v.pos.occ.Occupied(sq):
				cell = blockerStyle.Render("o")
			case attacks.Occupied(sq):
				cell = attackStyle.Render("*")
			default:
				cell = emptyStyle.Render(".")
			}
			if sq == v.pos.cursor {
				b.WriteString("[" + cell + "]")
			} else {
				b.WriteString(" " + cell + " ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("  ")
	for f := slider.FileA; f <= slider.FileH; f++ {
		b.WriteString(emptyStyle.Render(" " + f.String() + " "))
	}

	title := titleStyle.Render(fmt.Sprintf("%s on %s", v.pos.piece, v.pos.origin))
	summary := emptyStyle.Render(fmt.Sprintf("%d squares attacked, %d blockers, cursor %s",
		attacks.PopCount(), v.pos.occ.PopCount(), v.pos.cursor))
	return lipgloss.JoinVertical(lipgloss.Left, title, "", b.String(), "", summary)
}
