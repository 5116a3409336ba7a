// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/transferlist/ui/tui/models/helpers/status"
	"github.com/toeirei/transferlist/ui/tui/util"
)

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding   { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestFooterMergesBaseKeyMap(t *testing.T) {
	base := testKeyMap{key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))}
	view := testKeyMap{key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))}

	m := New(base)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: view})

	out := m.View()
	if !strings.Contains(out, "toggle") || !strings.Contains(out, "quit") {
		t.Fatalf("expected view and base bindings, got %q", out)
	}
	if strings.Index(out, "toggle") > strings.Index(out, "quit") {
		t.Fatalf("base bindings should come last: %q", out)
	}
}

func TestFooterStatusLine(t *testing.T) {
	m := New(nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	if got := SizeConfig.Calculate(m, 10, 10); got != 2 {
		t.Fatalf("empty footer should take 2 rows, got %d", got)
	}

	m.Update(status.Set("Moved 2 item(s)")())
	if m.Status() != "Moved 2 item(s)" {
		t.Fatalf("unexpected status %q", m.Status())
	}
	if !strings.Contains(m.View(), "Moved 2 item(s)") {
		t.Fatalf("status not rendered: %q", m.View())
	}
	if got := SizeConfig.Calculate(m, 10, 10); got != 3 {
		t.Fatalf("footer with status should take 3 rows, got %d", got)
	}
}
