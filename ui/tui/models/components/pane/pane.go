// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package pane renders one side of the transfer list: a titled, scrollable
// column of checkbox rows with a cursor.
package pane

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/internal/i18n"
	"github.com/toeirei/transferlist/ui/tui/util"
	"github.com/toeirei/transferlist/util/slicest"
)

// Lister is the read side of the transfer state a pane renders from.
type Lister interface {
	Items(p model.Pane) []model.Item
	IsSelected(p model.Pane, id int) bool
	Selected(p model.Pane) []int
}

const accent = lipgloss.Color("#8655B1")

var (
	borderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#555555"))
	focusStyle   = borderStyle.BorderForeground(accent)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(accent)
	checkedStyle = lipgloss.NewStyle().Foreground(accent)
	emptyStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
)

type Model struct {
	pane    model.Pane
	state   Lister
	cursor  int
	offset  int
	focused bool
	size    util.Size
}

func New(p model.Pane, state Lister) *Model {
	return &Model{pane: p, state: state}
}

func (m Model) Pane() model.Pane { return m.pane }
func (m Model) Cursor() int      { return m.cursor }
func (m Model) Focused() bool    { return m.focused }

// Current returns the item under the cursor.
func (m Model) Current() (model.Item, bool) {
	items := m.state.Items(m.pane)
	if m.cursor < 0 || m.cursor >= len(items) {
		return model.Item{}, false
	}
	return items[m.cursor], true
}

func (m *Model) Up() {
	m.cursor--
	m.Sync()
}

func (m *Model) Down() {
	m.cursor++
	m.Sync()
}

// Sync clamps the cursor to the current item count and scrolls it into view.
// Call it after anything changed the pane's contents.
func (m *Model) Sync() {
	n := len(m.state.Items(m.pane))
	m.cursor = max(util.Clamp(0, m.cursor, n-1), 0)

	h := m.bodyHeight()
	if h <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	m.offset = util.Clamp(0, m.offset, max(n-h, 0))
}

// bodyHeight is the number of item rows left after border and title.
func (m Model) bodyHeight() int {
	return max(m.size.Height-3, 0)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.Sync()
	}
	return nil
}

func (m Model) title() string {
	items := m.state.Items(m.pane)
	name := i18n.T("pane." + m.pane.String())
	count := i18n.T("pane.selected_count", len(m.state.Selected(m.pane)), len(items))
	return titleStyle.Render(name) + " " + emptyStyle.UnsetItalic().Render(count)
}

func (m Model) row(i int, item model.Item) string {
	box := i18n.T("checkbox.unchecked")
	if m.state.IsSelected(m.pane, item.ID) {
		box = checkedStyle.Render(i18n.T("checkbox.checked"))
	}
	line := box + " " + item.Text
	if m.focused && i == m.cursor {
		return cursorStyle.Render("›") + " " + line
	}
	return "  " + line
}

func (m Model) body(width int) string {
	items := m.state.Items(m.pane)
	if len(items) == 0 {
		return emptyStyle.Render(i18n.T("pane.empty"))
	}
	vp := viewport.New(width, m.bodyHeight())
	vp.SetContent(strings.Join(slicest.MapI(items, m.row), "\n"))
	vp.SetYOffset(m.offset)
	return vp.View()
}

func (m Model) View() string {
	style := borderStyle
	if m.focused {
		style = focusStyle
	}
	// inner width without the border columns
	width := max(m.size.Width-style.GetHorizontalFrameSize(), 0)
	height := max(m.size.Height-style.GetVerticalFrameSize(), 0)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().MaxWidth(width).Render(m.title()),
		m.body(width),
	)
	return style.
		Width(width).
		Height(height).
		MaxHeight(m.size.Height).
		Render(content)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, nil
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
