// Package tui is an interactive attack explorer for the slider tables.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Start runs the explorer until the user quits. Exports are written to
// svgPath.
func Start(svgPath string) error {
	p := tea.NewProgram(newModel(svgPath), tea.WithAltScreen())
	_, err := p.Run()

	return err
}

/////////////// Private ///////////////

type model struct {
	pos           *position
	svgPath       string
	keys          keyMap
	help          help.Model
	screens       map[viewState]screen
	activeState   viewState
	theme         theme
	width, height int
}

func newModel(svgPath string) model {
	theme := newTheme()
	keys := newKeyMap()
	pos := newPosition()

	screens := map[viewState]screen{
		boardState: newBoardView(pos, keys, theme),
		entryState: newEntryView(pos, keys, theme),
	}

	return model{
		pos:         pos,
		svgPath:     svgPath,
		keys:        keys,
		help:        help.New(),
		theme:       theme,
		screens:     screens,
		activeState: boardState,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var currScreen screen

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		for i := range m.screens {
			m.screens[i].SetSize(m.width, m.height)
		}
	case exportedMsg:
		if msg.err != nil {
			m.pos.status = fmt.Sprintf("export failed: %v", msg.err)
		} else {
			m.pos.status = "wrote " + msg.path
		}
		return m, nil
	case tea.KeyMsg:
		m.pos.status = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			m.activeState = (m.activeState + 1) % numStates
			return m, nil
		case key.Matches(msg, m.keys.Export):
			return m, m.pos.export(m.svgPath)
		}
	}

	currScreen, cmd = m.screens[m.activeState].Update(msg)
	m.screens[m.activeState] = currScreen

	return m, cmd
}

func (m model) View() string {
	statusStyle := lipgloss.NewStyle().Foreground(m.theme.Orange)

	screenContent := lipgloss.JoinVertical(lipgloss.Left,
		m.screens[m.activeState].View(),
		"",
		statusStyle.Render(m.pos.status),
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screenContent)
}
