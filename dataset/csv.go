package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/degrees/cast"
)

// LoadDir reads people.csv, movies.csv and stars.csv from dir and returns
// a frozen store. Columns are located by header name, so extra columns and
// any column order are accepted:
//
//	people.csv: id, name, birth
//	movies.csv: id, title, year
//	stars.csv:  person_id, movie_id
//
// The people and movies files are parsed concurrently; stars are linked
// once both are in the store.
func LoadDir(ctx context.Context, dir string, opts ...Option) (*cast.Store, error) {
	o := buildOptions(opts)
	o.Logger.Info("loading dataset", zap.String("dir", dir))

	var (
		people []cast.Person
		movies []cast.Movie
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		people, err = readPeople(gctx, filepath.Join(dir, PeopleFile))
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = readMovies(gctx, filepath.Join(dir, MoviesFile))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := o.newStore()
	for _, p := range people {
		if err := s.AddPerson(p); err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", PeopleFile, err)
		}
	}
	for _, m := range movies {
		if err := s.AddMovie(m); err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", MoviesFile, err)
		}
	}

	err := eachRecord(ctx, filepath.Join(dir, StarsFile), []string{"person_id", "movie_id"},
		func(f []string) error { return s.Link(f[0], f[1]) })
	if err != nil {
		return nil, err
	}
	s.Freeze()
	o.logStats(dir, s)

	return s, nil
}

func readPeople(ctx context.Context, path string) ([]cast.Person, error) {
	var out []cast.Person
	err := eachRecord(ctx, path, []string{"id", "name", "birth"}, func(f []string) error {
		out = append(out, cast.Person{ID: f[0], Name: f[1], Birth: f[2]})
		return nil
	})

	return out, err
}

func readMovies(ctx context.Context, path string) ([]cast.Movie, error) {
	var out []cast.Movie
	err := eachRecord(ctx, path, []string{"id", "title", "year"}, func(f []string) error {
		out = append(out, cast.Movie{ID: f[0], Title: f[1], Year: f[2]})
		return nil
	})

	return out, err
}

// eachRecord opens path, maps the requested columns from the header row,
// and calls fn with the values of those columns for every data row.
// Rows shorter than the header yield empty strings for missing cells.
func eachRecord(ctx context.Context, path string, columns []string, fn func([]string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s: empty file", ErrMalformed, path)
		}
		return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	idx, err := columnIndex(header, columns)
	if err != nil {
		return fmt.Errorf("%w (%s)", err, path)
	}

	vals := make([]string, len(columns))
	for line := 2; ; line++ {
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
		}
		for i, j := range idx {
			vals[i] = ""
			if j < len(rec) {
				vals[i] = rec[j]
			}
		}
		if err := fn(vals); err != nil {
			return fmt.Errorf("dataset: %s line %d: %w", filepath.Base(path), line, err)
		}
	}
}

// columnIndex returns the header positions of columns.
func columnIndex(header, columns []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		pos[strings.ToLower(h)] = i
	}
	idx := make([]int, len(columns))
	for i, c := range columns {
		j, ok := pos[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
		idx[i] = j
	}

	return idx, nil
}
