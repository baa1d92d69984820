// Package search provides tunable options, result types and error
// definitions for frontier-based search.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/degrees/frontier"
)

// Sentinel errors for search execution.
var (
	// ErrExpanderNil is returned if a nil Expander is passed.
	ErrExpanderNil = errors.New("search: expander is nil")

	// ErrEmptyState is returned when source or target is the empty string.
	ErrEmptyState = errors.New("search: empty state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops a search
	// before it could decide whether a path exists.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrExpand wraps failures reported by the Expander.
	ErrExpand = errors.New("search: expand error")
)

// Edge is one outgoing transition: taking Action from the current state
// leads to State.
type Edge struct {
	Action string
	State  string
}

// Expander enumerates the edges leaving a state. Implementations must be
// safe to call repeatedly with the same state and should report unknown
// states as errors rather than as an empty edge list.
type Expander interface {
	Expand(state string) ([]Edge, error)
}

// ExpanderFunc adapts an ordinary function to the Expander interface.
type ExpanderFunc func(state string) ([]Edge, error)

// Expand calls fn(state).
func (fn ExpanderFunc) Expand(state string) ([]Edge, error) {
	return fn(state)
}

// Option configures Search behavior via functional arguments.
// Invalid Options are recorded and surfaced as ErrOptionViolation when
// Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customise a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per expansion.
	Ctx context.Context

	// Discipline selects the frontier removal order. FIFO (the default)
	// guarantees minimal-length paths.
	Discipline frontier.Discipline

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many states were expanded. 0 means no limit.
	MaxExpansions int

	// OnEnqueue is called when a state is added to the frontier.
	OnEnqueue func(state string, depth int)

	// OnExpand is called right before a state's edges are enumerated.
	// A non-nil error aborts the search.
	OnExpand func(state string, depth int) error

	// FilterEdge skips edges for which it returns false.
	FilterEdge func(from string, e Edge) bool

	err error
}

// DefaultOptions returns Options with background context, FIFO discipline,
// no expansion limit, no-op hooks and no edge filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Discipline: frontier.FIFO,
		OnEnqueue:  func(string, int) {},
		OnExpand:   func(string, int) error { return nil },
		FilterEdge: func(string, Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDiscipline selects FIFO (breadth-first) or LIFO (depth-first) order.
func WithDiscipline(d frontier.Discipline) Option {
	return func(o *Options) {
		if !d.Valid() {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, d)
			return
		}
		o.Discipline = d
	}
}

// WithMaxExpansions caps the number of expanded states.
//
//	n > 0:  stop with ErrExpansionLimit after n expansions
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(state string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			prev := o.OnEnqueue
			o.OnEnqueue = func(s string, d int) { prev(s, d); fn(s, d) }
		}
	}
}

// WithOnExpand registers a callback to run before expansion; returning an
// error from it stops the search.
func WithOnExpand(fn func(state string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			prev := o.OnExpand
			o.OnExpand = func(s string, d int) error {
				if err := prev(s, d); err != nil {
					return err
				}
				return fn(s, d)
			}
		}
	}
}

// WithFilterEdge skips edges when fn returns false.
func WithFilterEdge(fn func(from string, e Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// Result is the outcome of one search.
//   - Found reports whether target was reached.
//   - Path lists (action, state) steps from source to target; empty when
//     source == target or when nothing was found.
//   - Expanded and Enqueued count frontier removals and insertions.
type Result struct {
	Found    bool
	Path     []frontier.Step
	Expanded int
	Enqueued int
}

// Degrees returns the number of steps of the found path, or -1 if no path
// was found.
func (r *Result) Degrees() int {
	if r == nil || !r.Found {
		return -1
	}

	return len(r.Path)
}
