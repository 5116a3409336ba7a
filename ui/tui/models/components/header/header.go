// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package header renders the title bar with the per-pane item counts.
package header

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/internal/i18n"
	"github.com/toeirei/transferlist/ui/tui/util"
)

// Counter is the part of the transfer state the header reads.
type Counter interface {
	Items(p model.Pane) []model.Item
	Selected(p model.Pane) []int
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8655B1"))
	countStyle = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	title string
	state Counter
	size  util.Size
}

func New(title string, state Counter) *Model {
	return &Model{title: title, state: state}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) counts() string {
	if m.state == nil {
		return ""
	}
	return fmt.Sprintf("%s %d · %s %d",
		i18n.T("pane.source"), len(m.state.Items(model.Source)),
		i18n.T("pane.target"), len(m.state.Items(model.Target)),
	)
}

func (m Model) View() string {
	line := titleStyle.Render(m.title)
	if counts := m.counts(); counts != "" {
		line = lipgloss.JoinHorizontal(lipgloss.Top, line, "  ", countStyle.Render(counts))
	}
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, line))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
