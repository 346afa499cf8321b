package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/0x5844/slider"
)

// entryView shows the indexing parameters of the process-wide tables for
// the square under the cursor.
type entryView struct {
	pos           *position
	keys          keyMap
	theme         theme
	width, height int
}

func newEntryView(pos *position, keys keyMap, theme theme) screen {
	return &entryView{pos: pos, keys: keys, theme: theme}
}

func (v *entryView) SetSize(width, height int) {
	v.width, v.height = width, height
}

func (v *entryView) Update(msg tea.Msg) (screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if !moveCursor(v.pos, v.keys, km) && key.Matches(km, v.keys.Piece) {
			v.pos.cycle()
		}
	}
	return v, nil
}

func (v *entryView) View() string {
	if v.width == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(v.theme.Blue).Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(v.theme.Gray).
		Padding(0, 1)

	bishops, rooks := slider.Tables()
	var boxes []string
	switch v.pos.piece {
	case bishop:
		boxes = append(boxes, v.table(bishops))
	case rook:
		boxes = append(boxes, v.table(rooks))
	default:
		boxes = append(boxes, v.table(bishops), v.table(rooks))
	}
	for i := range boxes {
		boxes[i] = boxStyle.Render(boxes[i])
	}

	title := titleStyle.Render(fmt.Sprintf("%s tables at %s", v.pos.piece, v.pos.cursor))
	return lipgloss.JoinVertical(lipgloss.Left, title, "",
		lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
}

func (v *entryView) table(t *slider.Table) string {
	labelStyle := lipgloss.NewStyle().Foreground(v.theme.Gray).Width(10)
	valueStyle := lipgloss.NewStyle().Foreground(v.theme.Fg)
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	sq := v.pos.cursor
	e := t.Entry(sq)
	rows := []string{
		row("piece", t.Piece().String()),
		row("strategy", t.Strategy().String()),
		row("slots", fmt.Sprintf("%d", t.Len())),
		row("mask", fmt.Sprintf("0x%016x (%d bits)", uint64(e.Mask), e.Mask.PopCount())),
	}
	switch t.Strategy() {
	case slider.Magic:
		rows = append(rows,
			row("magic", fmt.Sprintf("0x%016x", e.Magic)),
			row("shift", fmt.Sprintf("%d", e.Shift)))
	case slider.Extract:
		rows = append(rows, row("postmask", fmt.Sprintf("0x%016x", uint64(e.PostMask))))
	}
	if e.Size > 0 {
		rows = append(rows, row("region", fmt.Sprintf("[%d, %d)", e.Offset, e.Offset+e.Size)))
	}
	rows = append(rows, row("attacks", fmt.Sprintf("%d squares", t.Attacks(sq, v.pos.occ).PopCount())))
	return strings.Join(rows, "\n")
}
