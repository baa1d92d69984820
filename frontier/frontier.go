package frontier

// Frontier holds discovered-but-unexpanded nodes. Removal order is fixed
// at construction by its Discipline. It is not safe for concurrent use;
// each search owns its own Frontier.
type Frontier struct {
	discipline Discipline
	items      []Node
	head       int            // first live item for FIFO
	states     map[string]int // state → number of live items carrying it
}

// New returns an empty Frontier using discipline d. Unknown disciplines
// fall back to FIFO.
func New(d Discipline) *Frontier {
	if !d.Valid() {
		d = FIFO
	}

	return &Frontier{
		discipline: d,
		states:     make(map[string]int),
	}
}

// Discipline reports the removal order of f.
func (f *Frontier) Discipline() Discipline {
	return f.discipline
}

// Add inserts n. Duplicate states are accepted.
func (f *Frontier) Add(n Node) {
	f.items = append(f.items, n)
	f.states[n.State]++
}

// Remove takes one node out of f: the oldest for FIFO, the newest for LIFO.
// Returns ErrEmptyFrontier if f is empty.
func (f *Frontier) Remove() (Node, error) {
	if f.Empty() {
		return Node{}, ErrEmptyFrontier
	}

	var n Node
	if f.discipline == LIFO {
		last := len(f.items) - 1
		n = f.items[last]
		f.items = f.items[:last]
	} else {
		n = f.items[f.head]
		f.items[f.head] = Node{}
		f.head++
		f.compact()
	}

	if f.states[n.State]--; f.states[n.State] <= 0 {
		delete(f.states, n.State)
	}

	return n, nil
}

// Empty reports whether no nodes remain.
func (f *Frontier) Empty() bool {
	return f.Len() == 0
}

// Len returns the number of nodes currently held.
func (f *Frontier) Len() int {
	return len(f.items) - f.head
}

// ContainsState reports whether some node currently in f has state.
func (f *Frontier) ContainsState(state string) bool {
	return f.states[state] > 0
}

// compact drops the consumed prefix of a FIFO queue once it dominates
// the backing slice, keeping Add/Remove amortised O(1).
func (f *Frontier) compact() {
	if f.head == len(f.items) {
		f.items = f.items[:0]
		f.head = 0

		return
	}
	if f.head > 32 && f.head*2 >= len(f.items) {
		n := copy(f.items, f.items[f.head:])
		f.items = f.items[:n]
		f.head = 0
	}
}
