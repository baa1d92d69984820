// Package frontier provides the bookkeeping primitives of an uninformed
// graph search: search-tree nodes stored in an arena, and a Frontier of
// not-yet-expanded nodes whose removal order is chosen by a Discipline.
//
// What
//
//   - Node: one (state, action, parent) triple of the search tree.
//     Parents are referenced by arena index, never by pointer.
//   - Tree: append-only arena that owns every Node of one search and
//     reconstructs the (action, state) path from the root to any node.
//   - Frontier: FIFO (queue) or LIFO (stack) container of Nodes with an
//     O(1) ContainsState membership query.
//
// Disciplines
//
//	FIFO removes the node that has waited longest and yields breadth-first
//	search; on unweighted graphs the first time a state is discovered it is
//	discovered at its minimal depth. LIFO removes the newest node and yields
//	depth-first exploration with no shortest-path guarantee.
//
// Duplicates
//
//	The Frontier never deduplicates. Callers that must keep states unique
//	consult ContainsState before Add.
//
// Complexity
//
//   - Add, Remove, Empty, Len, ContainsState: O(1) amortised.
//   - Tree.Path: O(depth of the node).
//
// Errors
//
//   - ErrEmptyFrontier if Remove is called on an empty Frontier.
//   - ErrUnknownDiscipline if ParseDiscipline does not recognise its input.
//
// Usage
//
//	tree := frontier.NewTree(0)
//	f := frontier.New(frontier.FIFO)
//	f.Add(tree.Root("alice"))
//	for !f.Empty() {
//	    n, _ := f.Remove()
//	    // expand n.State, then f.Add(tree.Child(n, next, via)) ...
//	}
package frontier
