// Package search runs uninformed frontier search over an implicit graph
// described by an Expander, returning the first path found to a target.
//
// With the default FIFO discipline the search is breadth-first and the
// returned path has minimal length; LIFO gives depth-first exploration.
package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/degrees/frontier"
)

// walker encapsulates the mutable state of one search.
type walker struct {
	exp      Expander
	opts     Options
	ctx      context.Context
	target   string
	tree     *frontier.Tree
	frontier *frontier.Frontier
	visited  map[string]struct{}
	res      *Result
}

// Search looks for a path from source to target over x.
//
// A missing path is not an error: Result.Found is false and err is nil.
// Returns ErrExpanderNil, ErrEmptyState or ErrOptionViolation for invalid
// input, ErrExpand when x fails, ErrExpansionLimit when the configured cap
// is hit, the context error on cancellation, or a wrapped OnExpand error.
//
// When source == target the search short-circuits to Found with an empty
// path without consulting x.
func Search(x Expander, source, target string, opts ...Option) (*Result, error) {
	if x == nil {
		return nil, ErrExpanderNil
	}
	if source == "" || target == "" {
		return nil, ErrEmptyState
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if source == target {
		return &Result{Found: true, Path: []frontier.Step{}}, nil
	}

	w := &walker{
		exp:      x,
		opts:     o,
		ctx:      o.Ctx,
		target:   target,
		tree:     frontier.NewTree(64),
		frontier: frontier.New(o.Discipline),
		visited:  make(map[string]struct{}),
		res:      &Result{},
	}
	w.add(w.tree.Root(source))

	return w.res, w.loop()
}

// ShortestPath is breadth-first Search returning only the path.
// found is false when source and target are not connected.
func ShortestPath(x Expander, source, target string, opts ...Option) ([]frontier.Step, bool, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithDiscipline(frontier.FIFO))
	res, err := Search(x, source, target, all...)
	if err != nil {
		return nil, false, err
	}

	return res.Path, res.Found, nil
}

// add enqueues n and fires OnEnqueue.
func (w *walker) add(n frontier.Node) {
	w.frontier.Add(n)
	w.res.Enqueued++
	w.opts.OnEnqueue(n.State, n.Depth)
}

// loop expands nodes until the target is found, the frontier is
// exhausted, or an error stops the search.
func (w *walker) loop() error {
	for !w.frontier.Empty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return fmt.Errorf("%w: %d states expanded", ErrExpansionLimit, w.res.Expanded)
		}

		n, err := w.frontier.Remove()
		if err != nil {
			return err
		}
		w.visited[n.State] = struct{}{}
		w.res.Expanded++

		done, err := w.expand(n)
		if err != nil || done {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen neighbour of n. It reports done=true as
// soon as a neighbour equals the target, after recording the path.
func (w *walker) expand(n frontier.Node) (bool, error) {
	if err := w.opts.OnExpand(n.State, n.Depth); err != nil {
		return false, fmt.Errorf("search: OnExpand error at %q: %w", n.State, err)
	}
	edges, err := w.exp.Expand(n.State)
	if err != nil {
		return false, fmt.Errorf("%w: state %q: %w", ErrExpand, n.State, err)
	}

	for _, e := range edges {
		if !w.opts.FilterEdge(n.State, e) {
			continue
		}
		if _, seen := w.visited[e.State]; seen || w.frontier.ContainsState(e.State) {
			continue
		}

		child := w.tree.Child(n, e.State, e.Action)
		if child.State == w.target {
			w.res.Found = true
			w.res.Path = w.tree.Path(child)

			return true, nil
		}
		w.add(child)
	}

	return false, nil
}
