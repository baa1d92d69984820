package search_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degrees/frontier"
	"github.com/katalvlaran/degrees/search"
)

var errUnknown = errors.New("unknown state")

// castGraph is a tiny bipartite people/movies relation used as Expander.
type castGraph struct {
	people map[string][]string // person → movies
	movies map[string][]string // movie → people
}

func newCastGraph(movies map[string][]string, people ...string) *castGraph {
	g := &castGraph{people: map[string][]string{}, movies: movies}
	for _, p := range people {
		g.people[p] = nil
	}
	for m, stars := range movies {
		for _, p := range stars {
			g.people[p] = append(g.people[p], m)
		}
	}
	for p := range g.people {
		sort.Strings(g.people[p])
	}

	return g
}

func (g *castGraph) Expand(state string) ([]search.Edge, error) {
	ms, ok := g.people[state]
	if !ok {
		return nil, errUnknown
	}
	var out []search.Edge
	for _, m := range ms {
		stars := append([]string(nil), g.movies[m]...)
		sort.Strings(stars)
		for _, p := range stars {
			if p != state {
				out = append(out, search.Edge{Action: m, State: p})
			}
		}
	}

	return out, nil
}

// costarred reports whether a and b both appear in movie m.
func (g *castGraph) costarred(a, b, m string) bool {
	var hasA, hasB bool
	for _, p := range g.movies[m] {
		hasA = hasA || p == a
		hasB = hasB || p == b
	}

	return hasA && hasB
}

// distances computes exact hop distances from src by exhaustive BFS.
func (g *castGraph) distances(src string) map[string]int {
	dist := map[string]int{src: 0}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		edges, _ := g.Expand(cur)
		for _, e := range edges {
			if _, ok := dist[e.State]; !ok {
				dist[e.State] = dist[cur] + 1
				queue = append(queue, e.State)
			}
		}
	}

	return dist
}

func scenario() *castGraph {
	return newCastGraph(map[string][]string{
		"M1": {"A", "B"},
		"M2": {"B", "C"},
	}, "D")
}

func randomGraph(r *rand.Rand, people, movies, maxCast int) *castGraph {
	ids := make([]string, people)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i)
	}
	ms := make(map[string][]string, movies)
	for i := 0; i < movies; i++ {
		n := 1 + r.Intn(maxCast)
		seen := map[string]bool{}
		for j := 0; j < n; j++ {
			p := ids[r.Intn(people)]
			if !seen[p] {
				seen[p] = true
				ms[fmt.Sprintf("m%d", i)] = append(ms[fmt.Sprintf("m%d", i)], p)
			}
		}
	}

	return newCastGraph(ms, ids...)
}

func TestSearch_Scenario(t *testing.T) {
	g := scenario()

	res, err := search.Search(g, "A", "C")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []frontier.Step{{Action: "M1", State: "B"}, {Action: "M2", State: "C"}}, res.Path)
	assert.Equal(t, 2, res.Degrees())

	res, err = search.Search(g, "A", "D")
	require.NoError(t, err, "disconnected is not an error")
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Equal(t, -1, res.Degrees())
}

func TestShortestPath_Scenario(t *testing.T) {
	path, found, err := search.ShortestPath(scenario(), "C", "A")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []frontier.Step{{Action: "M2", State: "B"}, {Action: "M1", State: "A"}}, path)
}

func TestSearch_SameSourceAndTarget(t *testing.T) {
	calls := 0
	x := search.ExpanderFunc(func(string) ([]search.Edge, error) {
		calls++
		return nil, nil
	})
	res, err := search.Search(x, "A", "A")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.NotNil(t, res.Path)
	assert.Empty(t, res.Path)
	assert.Equal(t, 0, res.Degrees())
	assert.Zero(t, calls, "expander must not be consulted")
}

func TestSearch_Errors(t *testing.T) {
	g := scenario()

	_, err := search.Search(nil, "A", "B")
	assert.ErrorIs(t, err, search.ErrExpanderNil)

	_, err = search.Search(g, "", "B")
	assert.ErrorIs(t, err, search.ErrEmptyState)

	_, err = search.Search(g, "A", "B", search.WithMaxExpansions(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Search(g, "A", "B", search.WithDiscipline(frontier.Discipline(7)))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	_, err = search.Search(g, "nobody", "B")
	assert.ErrorIs(t, err, search.ErrExpand)
	assert.ErrorIs(t, err, errUnknown)
}

func TestSearch_ShortestOnRandomGraphs(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		g := randomGraph(r, 30, 25, 4)
		src := fmt.Sprintf("p%d", r.Intn(30))
		dist := g.distances(src)
		for i := 0; i < 30; i++ {
			dst := fmt.Sprintf("p%d", i)
			res, err := search.Search(g, src, dst)
			require.NoError(t, err)

			want, reachable := dist[dst]
			require.Equal(t, reachable, res.Found, "trial %d %s→%s", trial, src, dst)
			if !reachable {
				continue
			}
			assert.Len(t, res.Path, want, "trial %d %s→%s", trial, src, dst)
			if want == 0 {
				continue
			}
			assertValidPath(t, g, src, dst, res.Path)
		}
	}
}

func TestSearch_LIFOFindsValidPath(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 20; trial++ {
		g := randomGraph(r, 25, 20, 4)
		src, dst := "p0", fmt.Sprintf("p%d", 1+r.Intn(24))
		_, reachable := g.distances(src)[dst]

		res, err := search.Search(g, src, dst, search.WithDiscipline(frontier.LIFO))
		require.NoError(t, err)
		require.Equal(t, reachable, res.Found)
		if reachable {
			assertValidPath(t, g, src, dst, res.Path)
		}
	}
}

func TestSearch_NoRevisitsAndTermination(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := randomGraph(r, 60, 50, 5)
	for _, d := range []frontier.Discipline{frontier.FIFO, frontier.LIFO} {
		enqueued := map[string]int{}
		expanded := map[string]int{}
		res, err := search.Search(g, "p0", "missing-target",
			search.WithDiscipline(d),
			search.WithOnEnqueue(func(s string, _ int) { enqueued[s]++ }),
			search.WithOnExpand(func(s string, _ int) error { expanded[s]++; return nil }),
		)
		require.NoError(t, err)
		assert.False(t, res.Found)

		for s, c := range enqueued {
			assert.Equal(t, 1, c, "%s enqueued twice under %s", s, d)
		}
		for s, c := range expanded {
			assert.Equal(t, 1, c, "%s expanded twice under %s", s, d)
		}
		reachable := len(g.distances("p0"))
		assert.Equal(t, reachable, res.Expanded, d.String())
		assert.Equal(t, reachable, res.Enqueued, d.String())
	}
}

func TestSearch_EarlyExitOnDiscovery(t *testing.T) {
	// star: A co-stars with B..F in one movie; target B is discovered
	// while expanding A, so only A is expanded.
	g := newCastGraph(map[string][]string{"M": {"A", "B", "C", "D", "E", "F"}})
	res, err := search.Search(g, "A", "B")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 1, res.Expanded)
	assert.Equal(t, []frontier.Step{{Action: "M", State: "B"}}, res.Path)
}

func TestSearch_SelfEdgesIgnored(t *testing.T) {
	x := search.ExpanderFunc(func(s string) ([]search.Edge, error) {
		switch s {
		case "A":
			return []search.Edge{{Action: "loop", State: "A"}, {Action: "m", State: "B"}}, nil
		case "B":
			return []search.Edge{{Action: "loop", State: "B"}, {Action: "m", State: "A"}}, nil
		}
		return nil, errUnknown
	})
	res, err := search.Search(x, "A", "Z")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Expanded)
}

func TestSearch_MaxExpansions(t *testing.T) {
	// chain p0-p1-...-p9 linked by one movie per hop
	ms := map[string][]string{}
	for i := 0; i < 9; i++ {
		ms[fmt.Sprintf("m%d", i)] = []string{fmt.Sprintf("p%d", i), fmt.Sprintf("p%d", i+1)}
	}
	g := newCastGraph(ms)

	_, err := search.Search(g, "p0", "p9", search.WithMaxExpansions(3))
	assert.ErrorIs(t, err, search.ErrExpansionLimit)

	res, err := search.Search(g, "p0", "p9", search.WithMaxExpansions(9))
	require.NoError(t, err)
	assert.Len(t, res.Path, 9)
}

func TestSearch_FilterEdge(t *testing.T) {
	g := newCastGraph(map[string][]string{
		"M1": {"A", "B"},
		"M2": {"B", "C"},
		"M3": {"A", "X"},
		"M4": {"X", "Y"},
		"M5": {"Y", "C"},
	})
	res, err := search.Search(g, "A", "C",
		search.WithFilterEdge(func(_ string, e search.Edge) bool { return e.Action != "M2" }))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Degrees())
	assert.Equal(t, "M5", res.Path[2].Action)
}

func TestSearch_OnExpandAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := search.Search(scenario(), "A", "C",
		search.WithOnExpand(func(string, int) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.Search(scenario(), "A", "C", search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_ConcurrentReaders(t *testing.T) {
	g := scenario()
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			res, err := search.Search(g, "A", "C")
			if err == nil && !res.Found {
				err = errors.New("path not found")
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-errs)
	}
}

func assertValidPath(t *testing.T, g *castGraph, src, dst string, path []frontier.Step) {
	t.Helper()
	require.NotEmpty(t, path)
	prev := src
	for i, st := range path {
		assert.True(t, g.costarred(prev, st.State, st.Action),
			"step %d: %s and %s not in %s", i, prev, st.State, st.Action)
		prev = st.State
	}
	assert.Equal(t, dst, prev)
}
