// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package transfer

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/transferlist/internal/i18n"
)

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Switch   key.Binding
	Toggle   key.Binding
	ToTarget key.Binding
	ToSource key.Binding
	Copy     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Toggle, km.ToTarget, km.ToSource, km.Switch, km.Copy}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Switch},
		{km.Toggle, km.ToTarget, km.ToSource},
		{km.Copy},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap builds the bindings with help texts in the active language.
func NewKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("help.up")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("help.down")),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab/←/→", i18n.T("help.switch")),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space", "x"),
			key.WithHelp("space", i18n.T("help.toggle")),
		),
		ToTarget: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", i18n.T("help.to_target")),
		),
		ToSource: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", i18n.T("help.to_source")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("help.copy")),
		),
	}
}
