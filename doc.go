// Package degrees finds how closely two people are connected through the
// movies they starred in: Kevin Bacon and Tom Cruise share "A Few Good Men",
// so they are one degree apart.
//
// 🚀 What is in the box?
//
//	A small, thread-safe toolkit plus a CLI:
//		• frontier: FIFO/LIFO frontier and the parent-linked node tree
//		• search:   generic frontier search with early goal test, hooks and limits
//		• cast:     people, movies and the co-star graph, an Expander for search
//		• dataset:  CSV directory and SQLite loaders
//		• lookup:   name to ID resolution with interactive disambiguation
//		• metrics:  Prometheus collectors for searches
//		• config:   defaults, YAML and DEGREES_* environment overrides
//
// ✨ Guarantees
//
//   - Breadth-first (FIFO) search returns a path with the fewest movies.
//   - No person is expanded twice and none is queued twice.
//   - Neighbor order is sorted, so results are deterministic.
//
// Usage:
//
//	store, err := dataset.LoadDir(ctx, "large")
//	if err != nil { ... }
//	res, err := store.Search("102", "129")
//	// res.Degrees() == 1, res.Path[0] == {Action: "104257", State: "129"}
//
// The cmd/degrees command wraps all of the above:
//
//	degrees large
//	degrees path "Kevin Bacon" "Tom Cruise" small -q
package degrees
