// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/transferlist/ui/tui/models/components/keyhelp"
	"github.com/toeirei/transferlist/ui/tui/models/helpers/status"
	"github.com/toeirei/transferlist/ui/tui/util"
)

var (
	statusStyle      = lipgloss.NewStyle().Faint(true)
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0454C"))
)

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     status.Msg
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// append the global bindings to whatever the focused view announced
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case status.Msg:
		m.status = msg
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

// Status returns the text currently shown in the status line.
func (m Model) Status() string {
	return m.status.Text
}

func (m Model) view() string {
	helpView := m.help.View()
	if m.status.Text == "" {
		return helpView
	}
	style := statusStyle
	if m.status.Level == status.Error {
		style = statusErrorStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status.Text), helpView)
}

func (m Model) View() string {
	hPos := lipgloss.Left
	if m.help.Expanded {
		hPos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			hPos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
