// Package dataset provides options and error definitions for loading a
// people/movies/stars dataset into a cast.Store.
package dataset

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/cast"
)

// File names expected inside a dataset directory.
const (
	PeopleFile = "people.csv"
	MoviesFile = "movies.csv"
	StarsFile  = "stars.csv"
)

// Sentinel errors for dataset loading.
var (
	// ErrMissingFile is returned when one of the three CSV files is absent.
	ErrMissingFile = errors.New("dataset: missing file")

	// ErrMissingColumn is returned when a required header column is absent.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrMalformed wraps CSV syntax errors and unreadable rows.
	ErrMalformed = errors.New("dataset: malformed input")
)

// Option configures a load.
type Option func(*Options)

// Options holds loader settings.
type Options struct {
	// Strict rejects cast rows that reference unknown people or movies.
	Strict bool

	// Logger receives progress and skipped-row reports.
	Logger *zap.Logger
}

// DefaultOptions returns lenient loading with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithStrictLinks makes dangling cast rows fail the load.
func WithStrictLinks(strict bool) Option {
	return func(o *Options) { o.Strict = strict }
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) newStore() *cast.Store {
	if o.Strict {
		return cast.NewStore(cast.WithStrictLinks())
	}

	return cast.NewStore()
}

// logStats reports the final sizes of a loaded store.
func (o Options) logStats(source string, s *cast.Store) {
	st := s.Stats()
	o.Logger.Info("dataset loaded",
		zap.String("source", source),
		zap.Int("people", st.People),
		zap.Int("movies", st.Movies),
		zap.Int("links", st.Links),
	)
	if st.SkippedLinks > 0 {
		o.Logger.Warn("skipped cast rows referencing unknown records",
			zap.String("source", source),
			zap.Int("skipped", st.SkippedLinks),
		)
	}
}
