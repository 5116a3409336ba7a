// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package transfer

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/transferlist/core/catalog"
	"github.com/toeirei/transferlist/core/model"
	core "github.com/toeirei/transferlist/core/transfer"
	"github.com/toeirei/transferlist/internal/i18n"
	"github.com/toeirei/transferlist/ui/tui/models/helpers/status"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func newView(t *testing.T, n int, opts ...NewOpt) (*Model, *core.State) {
	t.Helper()
	i18n.Init("en")
	st, err := core.New(catalog.MockItems(n))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m := New(st, opts...)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m.Focus()
	return m, st
}

func statusOf(t *testing.T, cmd tea.Cmd) status.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	msg, ok := cmd().(status.Msg)
	if !ok {
		t.Fatalf("expected status.Msg, got %T", cmd())
	}
	return msg
}

func TestToggleAndTransferToTarget(t *testing.T) {
	m, st := newView(t, 5)

	m.Update(down)
	m.Update(space) // id 1
	m.Update(down)
	m.Update(space) // id 2

	if got := st.Selected(model.Source); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("unexpected source selection %v", got)
	}

	msg := statusOf(t, m.Update(runes(">")))
	if msg.Text != "Moved 2 item(s) to the target list" {
		t.Fatalf("unexpected status %q", msg.Text)
	}
	if len(st.Source()) != 3 || len(st.Target()) != 2 {
		t.Fatalf("unexpected panes source=%v target=%v", st.Source(), st.Target())
	}
	// cursor stays on the third row, which now holds id 4
	if it, ok := m.panes[model.Source].Current(); !ok || it.ID != 4 {
		t.Fatalf("unexpected cursor item %+v", it)
	}
}

func TestTransferBackFromTarget(t *testing.T) {
	m, st := newView(t, 4)
	st.SelectItem(model.Source, 0)
	st.SelectItem(model.Source, 3)
	m.Update(runes(">"))

	m.Update(tab)
	if m.Active() != model.Target {
		t.Fatalf("expected target pane focused")
	}
	m.Update(down)
	m.Update(space) // id 3

	msg := statusOf(t, m.Update(runes("<")))
	if msg.Text != "Moved 1 item(s) to the source list" {
		t.Fatalf("unexpected status %q", msg.Text)
	}
	want := []int{1, 2, 3}
	for i, it := range st.Source() {
		if it.ID != want[i] {
			t.Fatalf("source not sorted: %v", st.Source())
		}
	}
	// the cursor row vanished and is clamped onto id 0
	if it, ok := m.panes[model.Target].Current(); !ok || it.ID != 0 {
		t.Fatalf("unexpected target cursor item %+v ok=%v", it, ok)
	}
}

func TestTransferWithoutSelectionIsNoop(t *testing.T) {
	m, st := newView(t, 3)
	msg := statusOf(t, m.Update(runes(">")))
	if !strings.Contains(msg.Text, "Nothing selected") {
		t.Fatalf("unexpected status %q", msg.Text)
	}
	if len(st.Source()) != 3 || len(st.Target()) != 0 {
		t.Fatalf("state changed by empty transfer")
	}
}

func TestSwitchKeys(t *testing.T) {
	m, _ := newView(t, 3)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Active() != model.Target {
		t.Fatalf("right should focus target")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.Active() != model.Target {
		t.Fatalf("right should keep target focused")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Active() != model.Source {
		t.Fatalf("left should focus source")
	}
	if !m.panes[model.Source].Focused() || m.panes[model.Target].Focused() {
		t.Fatalf("pane focus out of sync")
	}
}

func TestToggleOnEmptyPaneDoesNothing(t *testing.T) {
	m, st := newView(t, 2)
	m.Update(tab)
	if cmd := m.Update(space); cmd != nil {
		t.Fatalf("expected no command")
	}
	if len(st.Selected(model.Target)) != 0 {
		t.Fatalf("nothing to select in an empty pane")
	}
}

func TestBlurredViewIgnoresKeys(t *testing.T) {
	m, st := newView(t, 2)
	m.Blur()
	m.Update(space)
	if len(st.Selected(model.Source)) != 0 {
		t.Fatalf("blurred view must not handle keys")
	}
}

func TestCopyTarget(t *testing.T) {
	var copied string
	m, st := newView(t, 3, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	st.SelectItem(model.Source, 0)
	st.SelectItem(model.Source, 2)
	st.TransferToTarget()

	msg := statusOf(t, m.Update(runes("y")))
	if copied != "content1\ncontent3" {
		t.Fatalf("unexpected clipboard contents %q", copied)
	}
	if msg.Level != status.Info || msg.Text != "Copied 2 item(s) to the clipboard" {
		t.Fatalf("unexpected status %+v", msg)
	}
}

func TestCopyFailureIsReported(t *testing.T) {
	m, _ := newView(t, 1, WithClipboard(func(string) error {
		return errors.New("no display")
	}))
	msg := statusOf(t, m.Update(runes("y")))
	if msg.Level != status.Error || !strings.Contains(msg.Text, "no display") {
		t.Fatalf("unexpected status %+v", msg)
	}
}

func TestViewRendersBothPanes(t *testing.T) {
	m, st := newView(t, 3)
	st.SelectItem(model.Source, 1)
	view := m.View()
	for _, want := range []string{"Source List", "Target List", "[ > Target ]", "[ < Source ]", "[x] content2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}
