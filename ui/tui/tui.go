// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/transferlist/core/transfer"
	"github.com/toeirei/transferlist/ui/tui/models/views/root"
)

// Run blocks until the user quits. state is mutated in place, so the caller
// can inspect the final lists afterwards.
func Run(state *transfer.State) error {
	_, err := tea.NewProgram(
		root.New(state),
		tea.WithAltScreen(),
	).Run()
	return err
}
