package cast

import (
	"fmt"

	"github.com/katalvlaran/degrees/search"
)

// Expand lists the co-star edges of a person so that *Store satisfies
// search.Expander: each edge's Action is a movie ID and its State a
// person ID.
func (s *Store) Expand(personID string) ([]search.Edge, error) {
	nbs, err := s.Neighbors(personID)
	if err != nil {
		return nil, err
	}
	edges := make([]search.Edge, len(nbs))
	for i, nb := range nbs {
		edges[i] = search.Edge{Action: nb.MovieID, State: nb.PersonID}
	}

	return edges, nil
}

var _ search.Expander = (*Store)(nil)

// Search runs search.Search between two known people; breadth-first unless
// opts select another discipline. Unknown endpoints are reported as
// ErrPersonNotFound before any expansion.
func (s *Store) Search(source, target string, opts ...search.Option) (*search.Result, error) {
	for _, id := range []string{source, target} {
		if !s.HasPerson(id) {
			return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, id)
		}
	}

	return search.Search(s, source, target, opts...)
}
