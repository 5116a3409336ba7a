// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package transfer

import "github.com/toeirei/transferlist/util/mapst"

// selection is the set of item IDs marked for transfer within one pane.
type selection map[int]struct{}

func (s selection) add(id int)    { s[id] = struct{}{} }
func (s selection) remove(id int) { delete(s, id) }

func (s selection) has(id int) bool {
	_, ok := s[id]
	return ok
}

// ids returns the members in ascending order.
func (s selection) ids() []int {
	return mapst.SortedKeys(s)
}
