package frontier

// Tree is an append-only arena of Nodes belonging to one search.
// Nodes refer to their parents by index, so the whole tree is released
// together once the search returns.
type Tree struct {
	nodes []Node
}

// NewTree returns an empty arena with room for capHint nodes.
func NewTree(capHint int) *Tree {
	if capHint < 0 {
		capHint = 0
	}

	return &Tree{nodes: make([]Node, 0, capHint)}
}

// Root appends a parentless node for state and returns it.
func (t *Tree) Root(state string) Node {
	n := Node{ID: len(t.nodes), State: state, Parent: NoParent}
	t.nodes = append(t.nodes, n)

	return n
}

// Child appends a node reached from parent via action and returns it.
func (t *Tree) Child(parent Node, state, action string) Node {
	n := Node{
		ID:     len(t.nodes),
		State:  state,
		Action: action,
		Parent: parent.ID,
		Depth:  parent.Depth + 1,
	}
	t.nodes = append(t.nodes, n)

	return n
}

// Node returns the node stored at id.
func (t *Tree) Node(id int) (Node, bool) {
	if id < 0 || id >= len(t.nodes) {
		return Node{}, false
	}

	return t.nodes[id], true
}

// Len returns the number of nodes allocated so far.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Path walks n's parent chain back to the root and returns the
// (action, state) steps in root-to-n order. The root itself contributes
// no step, so Path of a root is empty.
func (t *Tree) Path(n Node) []Step {
	steps := make([]Step, 0, n.Depth)
	for cur := n; !cur.IsRoot(); cur = t.nodes[cur.Parent] {
		steps = append(steps, Step{Action: cur.Action, State: cur.State})
	}
	// reverse to get root → n
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}
