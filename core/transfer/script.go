// Copyright (c) 2026 Transferlist Team
// Transferlist - two-pane item transfer list
// This source code is licensed under the MIT license found in the LICENSE file.
package transfer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/toeirei/transferlist/core/model"
)

// ErrInvalidOp is returned when an operation string cannot be parsed.
var ErrInvalidOp = errors.New("invalid operation")

// OpKind enumerates the commands a State accepts.
type OpKind int

const (
	OpSelect OpKind = iota
	OpDeselect
	OpToggle
	OpToTarget
	OpToSource
)

var opNames = map[OpKind]string{
	OpSelect:   "select",
	OpDeselect: "deselect",
	OpToggle:   "toggle",
	OpToTarget: "to-target",
	OpToSource: "to-source",
}

func (k OpKind) String() string {
	if n, ok := opNames[k]; ok {
		return n
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// Op is a single command. Pane and ID are only meaningful for the
// selection kinds.
type Op struct {
	Kind OpKind
	Pane model.Pane
	ID   int
}

// String renders op in the form accepted by ParseOp.
func (op Op) String() string {
	switch op.Kind {
	case OpSelect, OpDeselect, OpToggle:
		return fmt.Sprintf("%s:%s:%d", op.Kind, op.Pane, op.ID)
	default:
		return op.Kind.String()
	}
}

// ParseOp parses one of
//
//	select:<pane>:<id>
//	deselect:<pane>:<id>
//	toggle:<pane>:<id>
//	to-target
//	to-source
func ParseOp(s string) (Op, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	switch strings.ToLower(parts[0]) {
	case "to-target":
		if len(parts) != 1 {
			return Op{}, fmt.Errorf("%q takes no arguments: %w", s, ErrInvalidOp)
		}
		return Op{Kind: OpToTarget}, nil
	case "to-source":
		if len(parts) != 1 {
			return Op{}, fmt.Errorf("%q takes no arguments: %w", s, ErrInvalidOp)
		}
		return Op{Kind: OpToSource}, nil
	case "select", "deselect", "toggle":
	default:
		return Op{}, fmt.Errorf("unknown command %q: %w", parts[0], ErrInvalidOp)
	}

	if len(parts) != 3 {
		return Op{}, fmt.Errorf("%q: expected <cmd>:<pane>:<id>: %w", s, ErrInvalidOp)
	}
	pane, err := model.ParsePane(parts[1])
	if err != nil {
		return Op{}, fmt.Errorf("%q: %v: %w", s, err, ErrInvalidOp)
	}
	id, err := strconv.Atoi(parts[2])
	if err != nil {
		return Op{}, fmt.Errorf("%q: bad id: %w", s, ErrInvalidOp)
	}

	op := Op{Pane: pane, ID: id}
	switch strings.ToLower(parts[0]) {
	case "select":
		op.Kind = OpSelect
	case "deselect":
		op.Kind = OpDeselect
	default:
		op.Kind = OpToggle
	}
	return op, nil
}

// ParseOps parses a whole script, stopping at the first malformed entry.
func ParseOps(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for i, a := range args {
		op, err := ParseOp(a)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// Apply runs ops against s in order.
func Apply(s *State, ops ...Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpSelect:
			s.SelectItem(op.Pane, op.ID)
		case OpDeselect:
			s.DeselectItem(op.Pane, op.ID)
		case OpToggle:
			s.ToggleItem(op.Pane, op.ID)
		case OpToTarget:
			s.TransferToTarget()
		case OpToSource:
			s.TransferToSource()
		}
	}
}
