// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/transferlist/ui/tui/util"
	"github.com/toeirei/transferlist/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

// Model lays out its items along one axis and forwards every message to all
// of them. Window size messages are translated into per-item sizes.
type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int

	items        []Item
	size         util.Size
	focusedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	if s.size.Update(msg) {
		s.calculateItemSizes()
		return tea.Batch(s.updateResizedItems(true)...)
	}

	cmds := slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Update(msg)
	})

	// content may have changed the needed size of dynamic items
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	var join func(pos lipgloss.Position, strs ...string) string
	var style func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		join = lipgloss.JoinVertical
		style = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		join = lipgloss.JoinHorizontal
		style = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	return join(
		s.Align,
		slicest.MapI(s.items, func(i int, item Item) string {
			if item.size == 0 {
				return ""
			}
			// no gap before the first item
			margin := s.Gap * min(i, 1)
			return style(item.size, margin).Render((*item.Model).View())
		})...,
	)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focusedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))
		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}
		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focusedIndex].Model).Focus()
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focusedIndex == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
		return
	}
	(*s.items[s.focusedIndex].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

// SetFocus blurs the current item(s) and focuses the requested one.
func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focusedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}

// Relayout recalculates item sizes after an item changed its needed size
// outside of Update.
func (s *Model) Relayout() tea.Cmd {
	s.calculateItemSizes()
	return tea.Batch(s.updateResizedItems(false)...)
}

// Sizes returns the main-axis size of every item in declaration order.
func (s *Model) Sizes() []int {
	return slicest.Map(s.items, func(item Item) int { return item.size })
}
