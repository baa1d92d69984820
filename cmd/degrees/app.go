package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/degrees/cast"
	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/dataset"
	"github.com/katalvlaran/degrees/lookup"
	"github.com/katalvlaran/degrees/metrics"
	"github.com/katalvlaran/degrees/search"
)

// app is one CLI session: a loaded store plus the terminal it talks to.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	out     io.Writer
	verbose bool

	store    *cast.Store
	resolver *lookup.Resolver
	reg      *prometheus.Registry
	metrics  *metrics.Collector
}

func newApp(cfg *config.Config, log *zap.Logger, in io.Reader, out io.Writer, verbose bool) *app {
	a := &app{cfg: cfg, log: log, out: out, verbose: verbose}
	if cfg.Metrics.Enabled {
		a.reg = prometheus.NewRegistry()
		a.metrics = metrics.New(a.reg)
	}
	a.resolver = lookup.NewResolver(storeDirectory{a}, in, out, verbose)

	return a
}

// storeDirectory defers to the app's store, which is loaded after the
// resolver is built.
type storeDirectory struct{ a *app }

func (d storeDirectory) PeopleByName(name string) []string { return d.a.store.PeopleByName(name) }
func (d storeDirectory) Person(id string) (cast.Person, error) { return d.a.store.Person(id) }

// load reads the configured dataset into the store.
func (a *app) load(ctx context.Context) error {
	opts := []dataset.Option{
		dataset.WithLogger(a.log),
		dataset.WithStrictLinks(a.cfg.Data.StrictLinks),
	}
	if a.verbose {
		fmt.Fprintf(a.out, "Loading data from '%s' ...\n", a.cfg.Data.Path)
	}

	var err error
	switch a.cfg.Data.Source {
	case config.SourceSQLite:
		a.store, err = dataset.LoadSQLite(ctx, a.cfg.Data.Path, opts...)
	default:
		a.store, err = dataset.LoadDir(ctx, a.cfg.Data.Path, opts...)
	}
	if err != nil {
		return err
	}
	if a.verbose {
		fmt.Fprintln(a.out, "Data loaded.")
	}

	return nil
}

// resolve maps name to a person ID; which is 1 or 2 for error messages.
func (a *app) resolve(name string, which int) (string, error) {
	id, err := a.resolver.Resolve(name)
	if err != nil {
		a.log.Debug("name resolution failed", zap.String("name", name), zap.Error(err))
		return "", fmt.Errorf("Person %d not found.", which)
	}

	return id, nil
}

// connect resolves both names, searches, and prints the result.
func (a *app) connect(ctx context.Context, name1, name2 string) error {
	source, err := a.resolve(name1, 1)
	if err != nil {
		return err
	}
	target, err := a.resolve(name2, 2)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := a.log.With(zap.String("run_id", runID))
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithDiscipline(a.cfg.Discipline()),
		search.WithMaxExpansions(a.cfg.Search.MaxExpansions),
		search.WithOnExpand(func(state string, depth int) error {
			if ce := log.Check(zap.DebugLevel, "expand"); ce != nil {
				ce.Write(zap.String("person", state), zap.Int("depth", depth))
			}
			return nil
		}),
	}

	start := time.Now()
	res, err := a.store.Search(source, target, opts...)
	elapsed := time.Since(start)
	a.metrics.Observe(a.cfg.Discipline().String(), res, err, elapsed)
	if err != nil {
		log.Error("search failed", zap.String("source", source), zap.String("target", target), zap.Error(err))
		return err
	}
	log.Info("search finished",
		zap.String("source", source),
		zap.String("target", target),
		zap.Bool("found", res.Found),
		zap.Int("degrees", res.Degrees()),
		zap.Int("expanded", res.Expanded),
		zap.Duration("elapsed", elapsed),
	)

	if !a.verbose {
		fmt.Fprintf(a.out, "%s (ID: %s) - %s (ID: %s)\n", name1, source, name2, target)
	}

	return a.printResult(source, res)
}

// printResult writes the degree count and, in verbose mode, one line per
// co-star step.
func (a *app) printResult(source string, res *search.Result) error {
	if !res.Found {
		fmt.Fprintln(a.out, "Not connected.")
		return nil
	}
	fmt.Fprintf(a.out, "%d degrees of separation.\n", res.Degrees())
	if !a.verbose {
		return nil
	}

	prev := source
	for i, step := range res.Path {
		p1, err := a.store.Person(prev)
		if err != nil {
			return err
		}
		p2, err := a.store.Person(step.State)
		if err != nil {
			return err
		}
		m, err := a.store.Movie(step.Action)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%d: %s and %s starred in %s\n", i+1, p1.Name, p2.Name, m.Title)
		prev = step.State
	}

	return nil
}

// interactive runs the prompt loop until the user declines another pair
// or input ends.
func (a *app) interactive(ctx context.Context) error {
	for {
		name1, err := a.resolver.ReadLine("Name: ")
		if err != nil {
			return endOfInput(err)
		}
		name2, err := a.resolver.ReadLine("Name: ")
		if err != nil {
			return endOfInput(err)
		}
		if err := a.connect(ctx, name1, name2); err != nil {
			return err
		}
		if !a.verbose {
			fmt.Fprintln(a.out)
		}

		again, err := a.resolver.ReadLine("Try again (Y/N)? ")
		if err != nil || !strings.EqualFold(strings.TrimSpace(again), "y") {
			return endOfInput(err)
		}
	}
}

// writeMetrics dumps collected metrics to w when collection is enabled.
func (a *app) writeMetrics(w io.Writer) error {
	if a.reg == nil {
		return nil
	}

	return metrics.WriteText(w, a.reg)
}

func endOfInput(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
