// File: methods.go
// Role: builders (AddPerson, AddMovie, Link, Freeze) and queries
// (Person, Movie, PeopleByName, Neighbors, Stats).
// Determinism:
//   - PeopleByName returns IDs sorted lex asc.
//   - Neighbors returns pairs sorted by MovieID, then PersonID.

package cast

import (
	"fmt"
	"sort"
	"strings"
)

// AddPerson registers p. Returns ErrEmptyID, ErrDuplicateID or ErrFrozen.
func (s *Store) AddPerson(p Person) error {
	if p.ID == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrFrozen
	}
	if _, ok := s.people[p.ID]; ok {
		return fmt.Errorf("%w: person %q", ErrDuplicateID, p.ID)
	}
	cp := p
	s.people[p.ID] = &cp
	s.personMovies[p.ID] = make(map[string]struct{})

	key := nameKey(p.Name)
	if s.byName[key] == nil {
		s.byName[key] = make(map[string]struct{})
	}
	s.byName[key][p.ID] = struct{}{}

	return nil
}

// AddMovie registers m. Returns ErrEmptyID, ErrDuplicateID or ErrFrozen.
func (s *Store) AddMovie(m Movie) error {
	if m.ID == "" {
		return ErrEmptyID
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrFrozen
	}
	if _, ok := s.movies[m.ID]; ok {
		return fmt.Errorf("%w: movie %q", ErrDuplicateID, m.ID)
	}
	cp := m
	s.movies[m.ID] = &cp
	s.movieStars[m.ID] = make(map[string]struct{})

	return nil
}

// Link records that personID starred in movieID.
//
// A link naming an unknown person or movie is skipped and counted in
// Stats().SkippedLinks, unless the store was built WithStrictLinks, in
// which case ErrPersonNotFound or ErrMovieNotFound is returned.
// Linking the same pair twice is a no-op.
func (s *Store) Link(personID, movieID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frozen {
		return ErrFrozen
	}
	movies, okP := s.personMovies[personID]
	stars, okM := s.movieStars[movieID]
	switch {
	case !okP && s.strict:
		return fmt.Errorf("%w: %q (movie %q)", ErrPersonNotFound, personID, movieID)
	case !okM && s.strict:
		return fmt.Errorf("%w: %q (person %q)", ErrMovieNotFound, movieID, personID)
	case !okP || !okM:
		s.skipped++
		return nil
	}
	if _, dup := movies[movieID]; dup {
		return nil
	}
	movies[movieID] = struct{}{}
	stars[personID] = struct{}{}
	s.links++

	return nil
}

// Freeze ends the build phase; later builder calls return ErrFrozen.
func (s *Store) Freeze() {
	s.mu.Lock()
	s.frozen = true
	s.mu.Unlock()
}

// Frozen reports whether Freeze was called.
func (s *Store) Frozen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.frozen
}

// HasPerson reports whether id is a known person.
func (s *Store) HasPerson(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.people[id]

	return ok
}

// Person returns a copy of the person stored under id.
func (s *Store) Person(id string) (Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.people[id]
	if !ok {
		return Person{}, fmt.Errorf("%w: %q", ErrPersonNotFound, id)
	}

	return *p, nil
}

// Movie returns a copy of the movie stored under id.
func (s *Store) Movie(id string) (Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	if !ok {
		return Movie{}, fmt.Errorf("%w: %q", ErrMovieNotFound, id)
	}

	return *m, nil
}

// PeopleByName returns the IDs of everyone called name, compared
// case-insensitively, sorted ascending. Unknown names yield an empty slice.
func (s *Store) PeopleByName(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.byName[nameKey(name)]
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// MoviesOf returns the sorted IDs of the movies personID starred in.
func (s *Store) MoviesOf(personID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.personMovies[personID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, personID)
	}

	return sortedKeys(set), nil
}

// StarsOf returns the sorted IDs of the people who starred in movieID.
func (s *Store) StarsOf(movieID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.movieStars[movieID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMovieNotFound, movieID)
	}

	return sortedKeys(set), nil
}

// Neighbors returns every (movie, person) pair such that person co-starred
// with personID in movie. personID itself is excluded; a co-star appears
// once per shared movie.
//
// Returns ErrPersonNotFound for unknown IDs rather than an empty list.
func (s *Store) Neighbors(personID string) ([]Neighbor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movies, ok := s.personMovies[personID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPersonNotFound, personID)
	}

	out := make([]Neighbor, 0, len(movies))
	for _, mid := range sortedKeys(movies) {
		for _, pid := range sortedKeys(s.movieStars[mid]) {
			if pid == personID {
				continue
			}
			out = append(out, Neighbor{MovieID: mid, PersonID: pid})
		}
	}

	return out, nil
}

// Stats returns a snapshot of record counts.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Stats{
		People:       len(s.people),
		Movies:       len(s.movies),
		Links:        s.links,
		SkippedLinks: s.skipped,
	}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
