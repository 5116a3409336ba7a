// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.

// Package status carries one-line feedback from views to the footer.
package status

import tea "github.com/charmbracelet/bubbletea"

type Level int

const (
	Info Level = iota
	Error
)

// Msg replaces the footer's status line.
type Msg struct {
	Text  string
	Level Level
}

func Set(text string) tea.Cmd {
	return func() tea.Msg { return Msg{Text: text, Level: Info} }
}

func SetError(text string) tea.Cmd {
	return func() tea.Msg { return Msg{Text: text, Level: Error} }
}
