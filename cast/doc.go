// Package cast holds the people/movies relation that the degrees search
// walks: who exists, which movies exist, and who starred in what.
//
// The relation is bipartite (people ↔ movies) but is consumed as an
// implicit people-only graph: two people are adjacent when they share a
// movie, and the shared movie labels the edge. Neighbors and Expand expose
// that view; *Store satisfies search.Expander directly.
//
// Lifecycle
//
//	NewStore → AddPerson / AddMovie → Link → Freeze → concurrent reads.
//
// A Store is guarded by a sync.RWMutex, so readers may run while another
// goroutine is still building, but loaders are expected to Freeze before
// handing the Store to searches.
//
// Names
//
//	Display names are not unique. PeopleByName returns every matching ID
//	(case-insensitive); choosing among them is up to the caller.
//
// Dangling links
//
//	Cast rows that reference unknown people or movies are skipped and
//	counted by default. WithStrictLinks turns them into errors.
package cast
