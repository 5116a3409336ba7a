// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package transfer

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/toeirei/transferlist/core/model"
	"github.com/toeirei/transferlist/internal/logging"
	"github.com/toeirei/transferlist/util/slicest"
)

// ErrDuplicateID is returned by New when two seed items share an ID.
var ErrDuplicateID = errors.New("duplicate item id")

// State holds both panes and their selection sets.
//
// Invariants kept by every method:
//   - the panes are disjoint and together hold the whole seed universe
//   - each selection only contains IDs present in its own pane
//   - both panes are sorted ascending by ID
type State struct {
	panes    [2][]model.Item
	selected [2]selection
	// location maps every item ID to the pane currently holding it.
	location map[int]model.Pane
}

// New seeds a State with all items in the source pane, an empty target pane
// and empty selections. The seed is sorted by ID.
func New(items []model.Item) (*State, error) {
	location := make(map[int]model.Pane, len(items))
	for _, it := range items {
		if _, dup := location[it.ID]; dup {
			return nil, fmt.Errorf("seed item %d: %w", it.ID, ErrDuplicateID)
		}
		location[it.ID] = model.Source
	}

	source := append(make([]model.Item, 0, len(items)), items...)
	slices.SortFunc(source, byID)

	s := &State{
		panes:    [2][]model.Item{source, {}},
		selected: [2]selection{{}, {}},
		location: location,
	}
	logging.Debugf("transfer: seeded %d items", len(source))
	return s, nil
}

func byID(a, b model.Item) int {
	return cmp.Compare(a.ID, b.ID)
}

// contains reports whether the item with the given ID currently lives in p.
func (s *State) contains(p model.Pane, id int) bool {
	where, ok := s.location[id]
	return ok && where == p
}

// SelectItem marks id for transfer in pane p. IDs not present in p are
// ignored so that a stale UI event cannot corrupt the state.
func (s *State) SelectItem(p model.Pane, id int) {
	if !p.Valid() || !s.contains(p, id) {
		logging.Debugf("transfer: ignoring select of %d in %s", id, p)
		return
	}
	s.selected[p].add(id)
}

// DeselectItem removes id from the selection of pane p. Removing a
// non-member is a no-op.
func (s *State) DeselectItem(p model.Pane, id int) {
	if !p.Valid() {
		return
	}
	s.selected[p].remove(id)
}

// ToggleItem flips the selection of id in pane p and reports whether it is
// selected afterwards. IDs not present in p are ignored and report false.
func (s *State) ToggleItem(p model.Pane, id int) bool {
	if !p.Valid() || !s.contains(p, id) {
		return false
	}
	if s.selected[p].has(id) {
		s.selected[p].remove(id)
		return false
	}
	s.selected[p].add(id)
	return true
}

// TransferToTarget moves every selected source item into the target pane and
// clears the source selection. The target selection is left untouched.
func (s *State) TransferToTarget() int {
	return s.Transfer(model.Source)
}

// TransferToSource moves every selected target item into the source pane and
// clears the target selection. The source selection is left untouched.
func (s *State) TransferToSource() int {
	return s.Transfer(model.Target)
}

// Transfer moves the selection of pane from into the other pane and returns
// the number of items moved.
//
// The receiving pane is re-sorted because arriving items may interleave
// anywhere by ID. The losing pane keeps its order: filtering a sorted
// sequence leaves it sorted.
func (s *State) Transfer(from model.Pane) int {
	if !from.Valid() {
		return 0
	}
	to := from.Other()
	sel := s.selected[from]

	moving, staying := slicest.Partition(s.panes[from], func(it model.Item) bool {
		return sel.has(it.ID)
	})

	if len(moving) > 0 {
		merged := make([]model.Item, 0, len(s.panes[to])+len(moving))
		merged = append(merged, s.panes[to]...)
		merged = append(merged, moving...)
		slices.SortFunc(merged, byID)

		s.panes[to] = merged
		s.panes[from] = staying
		for _, it := range moving {
			s.location[it.ID] = to
		}
	}
	s.selected[from] = selection{}

	logging.Debugf("transfer: moved %d items %s -> %s", len(moving), from, to)
	return len(moving)
}

// Source returns a copy of the source pane.
func (s *State) Source() []model.Item { return s.Items(model.Source) }

// Target returns a copy of the target pane.
func (s *State) Target() []model.Item { return s.Items(model.Target) }

// Items returns a copy of pane p.
func (s *State) Items(p model.Pane) []model.Item {
	if !p.Valid() {
		return nil
	}
	return slices.Clone(s.panes[p])
}

// Selected returns the selected IDs of pane p in ascending order.
func (s *State) Selected(p model.Pane) []int {
	if !p.Valid() {
		return nil
	}
	return s.selected[p].ids()
}

// IsSelected reports whether id is selected in pane p.
func (s *State) IsSelected(p model.Pane, id int) bool {
	return p.Valid() && s.selected[p].has(id)
}

// Len returns the size of the item universe.
func (s *State) Len() int {
	return len(s.location)
}

// Snapshot is a point-in-time copy of all four collections.
type Snapshot struct {
	Source         []model.Item `json:"source" yaml:"source"`
	Target         []model.Item `json:"target" yaml:"target"`
	SourceSelected []int        `json:"source_selected" yaml:"source_selected"`
	TargetSelected []int        `json:"target_selected" yaml:"target_selected"`
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Source:         s.Source(),
		Target:         s.Target(),
		SourceSelected: s.Selected(model.Source),
		TargetSelected: s.Selected(model.Target),
	}
}
