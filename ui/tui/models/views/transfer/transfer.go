// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package transfer is the main view: the source pane, the transfer buttons
// and the target pane side by side. Every key press runs at most one core
// command and the panes re-read the state afterwards.
package transfer

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/transferlist/core/model"
	core "github.com/toeirei/transferlist/core/transfer"
	"github.com/toeirei/transferlist/internal/i18n"
	"github.com/toeirei/transferlist/internal/logging"
	"github.com/toeirei/transferlist/ui/tui/models/components/pane"
	"github.com/toeirei/transferlist/ui/tui/models/components/stack"
	"github.com/toeirei/transferlist/ui/tui/models/helpers/status"
	windowtitle "github.com/toeirei/transferlist/ui/tui/models/helpers/title"
	"github.com/toeirei/transferlist/ui/tui/util"
	"github.com/toeirei/transferlist/util/slicest"
)

type Model struct {
	state     *core.State
	panes     [2]*pane.Model
	layout    *stack.Model
	active    model.Pane
	keys      KeyMap
	focused   bool
	clipboard func(string) error
}

type NewOpt = func(m *Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) NewOpt {
	return func(m *Model) {
		m.clipboard = write
	}
}

func New(state *core.State, opts ...NewOpt) *Model {
	m := &Model{
		state:     state,
		keys:      NewKeyMap(),
		clipboard: clipboard.WriteAll,
	}
	for _, p := range model.Panes {
		m.panes[p] = pane.New(p, state)
	}
	m.layout = stack.New(
		stack.WithOrientation(stack.Horizontal),
		stack.WithItem(util.ModelPointer(m.panes[model.Source]), stack.VariableSize(1)),
		stack.WithItem(util.ModelPointer(&actions{state: state}), stack.StaticSize(actionsWidth)),
		stack.WithItem(util.ModelPointer(m.panes[model.Target]), stack.VariableSize(1)),
	)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Active returns the pane that currently receives cursor and toggle input.
func (m Model) Active() model.Pane { return m.active }

func (m Model) Init() tea.Cmd {
	return m.layout.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if !m.focused {
			return nil
		}
		return m.handleKey(msg)
	}
	return m.layout.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	active := m.panes[m.active]

	switch {
	case key.Matches(msg, m.keys.Up):
		active.Up()
		return nil
	case key.Matches(msg, m.keys.Down):
		active.Down()
		return nil
	case key.Matches(msg, m.keys.Switch):
		next := m.active.Other()
		switch msg.String() {
		case "left", "h":
			next = model.Source
		case "right", "l":
			next = model.Target
		}
		return m.setActive(next)
	case key.Matches(msg, m.keys.Toggle):
		item, ok := active.Current()
		if !ok {
			return nil
		}
		m.state.ToggleItem(m.active, item.ID)
		return nil
	case key.Matches(msg, m.keys.ToTarget):
		return m.transfer(model.Source)
	case key.Matches(msg, m.keys.ToSource):
		return m.transfer(model.Target)
	case key.Matches(msg, m.keys.Copy):
		return m.copyTarget()
	}
	return nil
}

func (m *Model) transfer(from model.Pane) tea.Cmd {
	moved := m.state.Transfer(from)
	if moved == 0 {
		return status.Set(i18n.T("status.nothing_selected", i18n.T("pane."+from.String())))
	}
	msgID := "status.moved_to_target"
	if from == model.Target {
		msgID = "status.moved_to_source"
	}
	m.sync()
	return status.Set(i18n.T(msgID, moved))
}

func (m *Model) copyTarget() tea.Cmd {
	items := m.state.Target()
	text := strings.Join(slicest.Map(items, model.Item.String), "\n")
	if err := m.clipboard(text); err != nil {
		logging.Warnf("clipboard write failed: %v", err)
		return status.SetError(i18n.T("status.copy_failed", err))
	}
	return status.Set(i18n.T("status.copied", len(items)))
}

// sync clamps both cursors after the pane contents changed.
func (m *Model) sync() {
	for _, p := range m.panes {
		p.Sync()
	}
}

func (m *Model) setActive(p model.Pane) tea.Cmd {
	if p == m.active {
		return nil
	}
	m.panes[m.active].Blur()
	m.active = p
	m.panes[m.active].Focus()
	return windowtitle.Set(i18n.T("pane." + p.String()))
}

func (m Model) View() string {
	return m.layout.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	m.panes[m.active].Focus()
	return windowtitle.Set(i18n.T("pane." + m.active.String())), m.keys
}

func (m *Model) Blur() {
	m.focused = false
	m.panes[m.active].Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
