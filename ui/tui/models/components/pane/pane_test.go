// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package pane

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/transferlist/core/catalog"
	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/core/transfer"
	"github.com/toeirei/transferlist/internal/i18n"
)

func newState(t *testing.T, n int) *transfer.State {
	t.Helper()
	st, err := transfer.New(catalog.MockItems(n))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return st
}

func TestCursorClampsToItems(t *testing.T) {
	st := newState(t, 3)
	m := New(model.Source, st)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	m.Up()
	if m.Cursor() != 0 {
		t.Fatalf("cursor moved above first item: %d", m.Cursor())
	}
	for range 5 {
		m.Down()
	}
	if m.Cursor() != 2 {
		t.Fatalf("cursor moved past last item: %d", m.Cursor())
	}
	if it, ok := m.Current(); !ok || it.ID != 2 {
		t.Fatalf("unexpected current item %+v ok=%v", it, ok)
	}

	// moving the last two items away leaves only id 0
	st.SelectItem(model.Source, 1)
	st.SelectItem(model.Source, 2)
	st.TransferToTarget()
	m.Sync()
	if m.Cursor() != 0 {
		t.Fatalf("cursor not clamped after transfer: %d", m.Cursor())
	}
}

func TestEmptyPane(t *testing.T) {
	i18n.Init("en")
	st := newState(t, 2)
	m := New(model.Target, st)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 6})

	if _, ok := m.Current(); ok {
		t.Fatalf("empty pane has no current item")
	}
	if !strings.Contains(m.View(), "(empty)") {
		t.Fatalf("expected empty placeholder, got %q", m.View())
	}
}

func TestViewShowsCheckboxesAndTitle(t *testing.T) {
	i18n.Init("en")
	st := newState(t, 3)
	st.SelectItem(model.Source, 1)

	m := New(model.Source, st)
	m.Focus()
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 8})
	view := m.View()

	for _, want := range []string{"Source List", "1 of 3 selected", "[ ] content1", "[x] content2", "[ ] content3", "›"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}

	m.Blur()
	if strings.Contains(m.View(), "›") {
		t.Fatalf("blurred pane must not show the cursor")
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	i18n.Init("en")
	st := newState(t, 20)
	m := New(model.Source, st)
	m.Focus()
	// 2 border rows + title leave 4 item rows
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 7})

	for range 10 {
		m.Down()
	}
	view := m.View()
	if !strings.Contains(view, "content11") {
		t.Fatalf("cursor row not visible:\n%s", view)
	}
	if m.offset != 7 {
		t.Fatalf("expected rows 7..10 in the window, offset is %d", m.offset)
	}

	for range 10 {
		m.Up()
	}
	if m.offset != 0 || m.Cursor() != 0 {
		t.Fatalf("expected window back at top, offset=%d cursor=%d", m.offset, m.Cursor())
	}
}
