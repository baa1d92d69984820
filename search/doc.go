// Package search provides frontier-based uninformed search over an implicit
// graph, returning the first (action, state) path from a source to a target.
//
// What
//
//   - The graph is never materialised: an Expander lists the edges leaving a
//     state on demand.
//   - Each search owns a frontier.Tree of nodes, a frontier.Frontier and a
//     visited set; nothing is shared between calls.
//   - A state is enqueued at most once: neighbours that are already visited
//     or already in the frontier are skipped.
//   - The target is tested when it is generated, not when it is expanded,
//     so the search returns as soon as the target is first discovered.
//
// Why FIFO finds shortest paths
//
//	Under FIFO every node at depth d is enqueued before any node at depth
//	d+1 is removed. The first time the target is generated it is therefore
//	generated from a node at minimal depth, and the path is minimal.
//	LIFO keeps the same bookkeeping but gives no length guarantee.
//
// Same source and target
//
//	Search(x, s, s) returns Found with an empty path (zero steps).
//
// Complexity (V = reachable states, E = edges among them)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the node arena, frontier and visited set
//
// Usage
//
//	res, err := search.Search(store, "102", "129",
//	    search.WithDiscipline(frontier.FIFO),
//	    search.WithMaxExpansions(100000),
//	)
//	if err != nil {
//	    // ErrExpanderNil, ErrEmptyState, ErrOptionViolation, ErrExpand,
//	    // ErrExpansionLimit, context errors or OnExpand errors
//	}
//	if !res.Found {
//	    // not connected
//	}
//
// Options
//
//   - WithContext(ctx):         cancellation, checked once per expansion.
//   - WithDiscipline(d):        frontier.FIFO (default) or frontier.LIFO.
//   - WithMaxExpansions(n):     cap on expanded states (0 = unlimited).
//   - WithOnEnqueue(fn):        hook when a state enters the frontier.
//   - WithOnExpand(fn):         hook before a state is expanded; error aborts.
//   - WithFilterEdge(fn):       drop edges for which fn returns false.
package search
