// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"fmt"
	"strings"
)

// Item is a single entry of the item universe. Items are immutable once
// loaded; a transfer moves them between panes but never changes them.
type Item struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	// Description travels with the item but is not read by any logic.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// String returns the display label of the item.
func (i Item) String() string {
	return i.Text
}

// Pane identifies one of the two item collections.
type Pane int

const (
	Source Pane = iota
	Target
)

// Panes lists both panes in display order.
var Panes = [...]Pane{Source, Target}

func (p Pane) String() string {
	switch p {
	case Source:
		return "source"
	case Target:
		return "target"
	default:
		return fmt.Sprintf("pane(%d)", int(p))
	}
}

// Other returns the opposite pane.
func (p Pane) Other() Pane {
	if p == Source {
		return Target
	}
	return Source
}

// Valid reports whether p is Source or Target.
func (p Pane) Valid() bool {
	return p == Source || p == Target
}

// ParsePane accepts "source"/"target" (any case) and the short forms "s"/"t".
func ParsePane(s string) (Pane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source", "s":
		return Source, nil
	case "target", "t":
		return Target, nil
	}
	return 0, fmt.Errorf("unknown pane %q", s)
}
