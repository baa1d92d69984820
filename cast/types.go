// Package cast defines the in-memory people/movies relation and the
// sentinel errors reported by its builders and queries.
//
// Errors:
//
//	ErrEmptyID         - person or movie ID is the empty string.
//	ErrDuplicateID     - a person or movie with that ID already exists.
//	ErrPersonNotFound  - requested person does not exist.
//	ErrMovieNotFound   - requested movie does not exist.
//	ErrFrozen          - mutation attempted after Freeze.
package cast

import (
	"errors"
	"sync"
)

// Sentinel errors for store operations.
var (
	// ErrEmptyID indicates that a record carries an empty identifier.
	ErrEmptyID = errors.New("cast: empty id")

	// ErrDuplicateID indicates a second record with an existing identifier.
	ErrDuplicateID = errors.New("cast: duplicate id")

	// ErrPersonNotFound indicates an operation referenced an unknown person.
	ErrPersonNotFound = errors.New("cast: person not found")

	// ErrMovieNotFound indicates an operation referenced an unknown movie.
	ErrMovieNotFound = errors.New("cast: movie not found")

	// ErrFrozen indicates a mutation after the store was frozen.
	ErrFrozen = errors.New("cast: store is frozen")
)

// Person is one credited person. Name is not unique.
type Person struct {
	ID    string
	Name  string
	Birth string
}

// Movie is one title.
type Movie struct {
	ID    string
	Title string
	Year  string
}

// Neighbor is a person who co-starred with the queried person in Movie.
type Neighbor struct {
	MovieID  string
	PersonID string
}

// Stats is a snapshot of store sizes.
type Stats struct {
	People       int
	Movies       int
	Links        int
	SkippedLinks int
}

// StoreOption configures a Store before use.
type StoreOption func(*Store)

// WithStrictLinks makes Link fail on unknown people or movies instead of
// skipping the row.
func WithStrictLinks() StoreOption {
	return func(s *Store) { s.strict = true }
}

// Store is the people/movies relation. It is built once, frozen, and then
// shared read-only; the RWMutex makes concurrent readers safe at any time.
type Store struct {
	mu sync.RWMutex

	strict bool
	frozen bool

	people map[string]*Person
	movies map[string]*Movie

	// personMovies[personID] and movieStars[movieID] hold the link sets.
	personMovies map[string]map[string]struct{}
	movieStars   map[string]map[string]struct{}

	// byName maps lowercased names to person IDs.
	byName map[string]map[string]struct{}

	links   int
	skipped int
}

// NewStore returns an empty, mutable Store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		people:       make(map[string]*Person),
		movies:       make(map[string]*Movie),
		personMovies: make(map[string]map[string]struct{}),
		movieStars:   make(map[string]map[string]struct{}),
		byName:       make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}
