// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package transfer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/internal/i18n"
	"github.com/toeirei/transferlist/ui/tui/util"
)

const actionsWidth = 12

var (
	buttonStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8655B1"))
	buttonDisabledStyle = lipgloss.NewStyle().Faint(true)
)

// actions is the column between the panes holding the two transfer
// buttons. A button is dimmed while its source side has no selection.
type actions struct {
	state selectionReader
	size  util.Size
}

type selectionReader interface {
	Selected(p model.Pane) []int
}

func (a actions) button(label string, from model.Pane) string {
	label = "[ " + label + " ]"
	if len(a.state.Selected(from)) == 0 {
		return buttonDisabledStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func (a actions) Init() tea.Cmd { return nil }

func (a *actions) Update(msg tea.Msg) tea.Cmd {
	a.size.Update(msg)
	return nil
}

func (a actions) View() string {
	buttons := lipgloss.JoinVertical(lipgloss.Center,
		a.button(i18n.T("action.to_target"), model.Source),
		"",
		a.button(i18n.T("action.to_source"), model.Target),
	)
	return lipgloss.Place(a.size.Width, a.size.Height, lipgloss.Center, lipgloss.Center, buttons)
}

func (a *actions) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (a *actions) Blur()                         {}

var _ util.Model = (*actions)(nil)
