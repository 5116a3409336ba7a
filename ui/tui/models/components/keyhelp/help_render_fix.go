// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/transferlist/util/slicest"
)

// fit keeps as many leading parts as fit into width. When a part is dropped
// the ellipsis tail is appended instead, provided the tail itself fits.
func fit(parts []string, width int, tail string) []string {
	var out []string
	used := 0
	tailLen := lipgloss.Width(tail)

	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		// non-last parts must leave room for the tail
		need := partLen
		if !last {
			need += tailLen
		}
		if used+need <= width {
			used += partLen
			out = append(out, part)
			continue
		}
		if used+tailLen <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}

func enabled(b key.Binding) bool { return b.Enabled() }

// ShortHelpView renders bindings on one line, truncated to m.Width. It
// replaces help.Model.ShortHelpView, which overruns the width when the
// separator is wider than one cell.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	bindings = slicest.Filter(bindings, enabled)
	if len(bindings) == 0 {
		return ""
	}

	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	items := make([]string, len(bindings))
	for i, kb := range bindings {
		var sep string
		if i > 0 {
			sep = separator
		}
		items[i] = sep +
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)
	}

	return strings.Join(fit(items, m.Width, tail), "")
}

// FullHelpView renders one column per group, skipping groups without any
// enabled binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	var cols []string
	for _, group := range groups {
		group = slicest.Filter(group, enabled)
		if len(group) == 0 {
			continue
		}

		keys := make([]string, len(group))
		descriptions := make([]string, len(group))
		for i, binding := range group {
			keys[i] = binding.Help().Key
			descriptions[i] = binding.Help().Desc
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	if len(cols) == 0 {
		return ""
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, tail)...)
}
