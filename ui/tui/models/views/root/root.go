// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/transferlist/buildvars"
	core "github.com/toeirei/transferlist/core/transfer"
	"github.com/toeirei/transferlist/internal/i18n"
	"github.com/toeirei/transferlist/ui/tui/models/components/header"
	"github.com/toeirei/transferlist/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/transferlist/ui/tui/models/helpers/title"
	"github.com/toeirei/transferlist/ui/tui/models/views/footer"
	"github.com/toeirei/transferlist/ui/tui/models/views/transfer"
	"github.com/toeirei/transferlist/ui/tui/util"
)

type Model struct {
	stack        *stack.Model
	footer       *util.Model
	transfer     *transfer.Model
	keys         KeyMap
	titleHandler *windowtitle.TitleHandler
}

func New(state *core.State, opts ...transfer.NewOpt) *Model {
	keys := NewKeyMap()
	title := i18n.T("app.title")

	_transfer := transfer.New(state, opts...)
	_footer_ptr := util.ModelPointer(footer.New(keys))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(header.New(title, state)), header.SizeConfig),
			stack.WithItem(util.ModelPointer(_transfer), stack.VariableSize(1)),
			stack.WithItem(_footer_ptr, footer.SizeConfig),
		),
		footer:       _footer_ptr,
		transfer:     _transfer,
		keys:         keys,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | "),
	}
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			return m, m.stack.Relayout()
		}
		return m, m.stack.Update(msg)
	}
	if cmd, handled := m.titleHandler.Handle(msg); handled {
		return m, cmd
	}
	return m, m.stack.Update(msg)
}

func (m *Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
