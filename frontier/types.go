// Package frontier defines search-tree nodes, the node arena, exploration
// disciplines and their sentinel errors.
package frontier

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for frontier operations.
var (
	// ErrEmptyFrontier is returned by Remove when no nodes remain.
	// A search loop that checks Empty first never observes it.
	ErrEmptyFrontier = errors.New("frontier: empty frontier")

	// ErrUnknownDiscipline is returned by ParseDiscipline for unrecognised names.
	ErrUnknownDiscipline = errors.New("frontier: unknown discipline")
)

// NoParent is the Parent index carried by a root Node.
const NoParent = -1

// Discipline selects which node Remove returns.
type Discipline int

const (
	// FIFO removes the oldest node (queue, breadth-first).
	FIFO Discipline = iota
	// LIFO removes the newest node (stack, depth-first).
	LIFO
)

// String returns "fifo" or "lifo".
func (d Discipline) String() string {
	switch d {
	case FIFO:
		return "fifo"
	case LIFO:
		return "lifo"
	default:
		return fmt.Sprintf("discipline(%d)", int(d))
	}
}

// Valid reports whether d is one of the declared disciplines.
func (d Discipline) Valid() bool {
	return d == FIFO || d == LIFO
}

// ParseDiscipline maps a case-insensitive name onto a Discipline.
// Accepted: "fifo", "queue", "bfs" and "lifo", "stack", "dfs".
func ParseDiscipline(s string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fifo", "queue", "bfs":
		return FIFO, nil
	case "lifo", "stack", "dfs":
		return LIFO, nil
	default:
		return FIFO, fmt.Errorf("%w: %q", ErrUnknownDiscipline, s)
	}
}

// Node is one state of the search tree together with the action that
// produced it and the arena index of its parent.
//
// Invariant: a root has Action == "" and Parent == NoParent; every other
// node has both set.
type Node struct {
	// ID is the node's index in its Tree.
	ID int

	// State is the identifier of the explored vertex (a person ID).
	State string

	// Action labels the edge from the parent's state to State (a movie ID).
	Action string

	// Parent is the arena index of the parent node, or NoParent.
	Parent int

	// Depth is the number of actions between the root and this node.
	Depth int
}

// IsRoot reports whether n has no parent.
func (n Node) IsRoot() bool {
	return n.Parent == NoParent
}

// Step is one (action, state) pair of a reconstructed path.
type Step struct {
	Action string
	State  string
}
