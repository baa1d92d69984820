package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/degrees/cast"
)

// Queries for the SQLite layout. The tables mirror the CSV files:
//
//	people(id, name, birth)
//	movies(id, title, year)
//	stars(person_id, movie_id)
const (
	queryPeople = `SELECT CAST(id AS TEXT), COALESCE(name, ''), COALESCE(CAST(birth AS TEXT), '') FROM people`
	queryMovies = `SELECT CAST(id AS TEXT), COALESCE(title, ''), COALESCE(CAST(year AS TEXT), '') FROM movies`
	queryStars  = `SELECT CAST(person_id AS TEXT), CAST(movie_id AS TEXT) FROM stars`
)

// LoadSQLite reads the people, movies and stars tables from the SQLite
// database at path and returns a frozen store. The database is opened
// read-only.
func LoadSQLite(ctx context.Context, path string, opts ...Option) (*cast.Store, error) {
	o := buildOptions(opts)
	o.Logger.Info("loading dataset", zap.String("sqlite", path))

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}

	s := o.newStore()
	if err := scanRows(ctx, db, queryPeople, 3, func(v []string) error {
		return s.AddPerson(cast.Person{ID: v[0], Name: v[1], Birth: v[2]})
	}); err != nil {
		return nil, fmt.Errorf("dataset: people: %w", err)
	}
	if err := scanRows(ctx, db, queryMovies, 3, func(v []string) error {
		return s.AddMovie(cast.Movie{ID: v[0], Title: v[1], Year: v[2]})
	}); err != nil {
		return nil, fmt.Errorf("dataset: movies: %w", err)
	}
	if err := scanRows(ctx, db, queryStars, 2, func(v []string) error {
		return s.Link(v[0], v[1])
	}); err != nil {
		return nil, fmt.Errorf("dataset: stars: %w", err)
	}
	s.Freeze()
	o.logStats(path, s)

	return s, nil
}

// scanRows runs query and passes each row, as n strings, to fn.
func scanRows(ctx context.Context, db *sql.DB, query string, n int, fn func([]string) error) error {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	vals := make([]sql.NullString, n)
	ptrs := make([]any, n)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	out := make([]string, n)
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		for i, v := range vals {
			out[i] = v.String
		}
		if err := fn(out); err != nil {
			return err
		}
	}

	return rows.Err()
}
