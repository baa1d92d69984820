// Package lookup turns free-text names into person IDs, asking the user
// to choose when several people share a name.
package lookup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/degrees/cast"
)

var (
	// ErrNameNotFound is returned when no person carries the given name.
	ErrNameNotFound = errors.New("lookup: name not found")

	// ErrAmbiguous is returned when several people share a name and the
	// answer did not pick one of them.
	ErrAmbiguous = errors.New("lookup: ambiguous name")
)

// Directory is the part of cast.Store a Resolver needs.
type Directory interface {
	PeopleByName(name string) []string
	Person(id string) (cast.Person, error)
}

// Resolver resolves names against a Directory. Prompts and candidate
// listings go to Out only when Verbose is set; answers are read from In.
type Resolver struct {
	dir     Directory
	in      *bufio.Reader
	out     io.Writer
	verbose bool
}

// NewResolver returns a Resolver reading answers from in and writing
// prompts to out.
func NewResolver(dir Directory, in io.Reader, out io.Writer, verbose bool) *Resolver {
	return &Resolver{dir: dir, in: bufio.NewReader(in), out: out, verbose: verbose}
}

// Candidates returns every person ID carrying name.
func (r *Resolver) Candidates(name string) []string {
	return r.dir.PeopleByName(name)
}

// Resolve returns the single person ID meant by name. When several
// candidates exist the user is asked for an ID; any answer that is not
// one of the candidates yields ErrAmbiguous.
func (r *Resolver) Resolve(name string) (string, error) {
	ids := r.dir.PeopleByName(name)
	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNameNotFound, name)
	case 1:
		return ids[0], nil
	}

	if r.verbose {
		fmt.Fprintf(r.out, "Which '%s'?\n", name)
		for _, id := range ids {
			p, err := r.dir.Person(id)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(r.out, "ID: %s, Name: %s, Birth: %s\n", p.ID, p.Name, p.Birth)
		}
	}
	answer, err := r.ReadLine("Intended Person ID: ")
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrAmbiguous, name, err)
	}
	for _, id := range ids {
		if id == answer {
			return id, nil
		}
	}

	return "", fmt.Errorf("%w: %q: %q is not one of %v", ErrAmbiguous, name, answer, ids)
}

// ReadLine prints prompt (verbose only) and returns the next input line
// without its line terminator. A final unterminated line is returned with
// a nil error; io.EOF is reported only once input is exhausted.
func (r *Resolver) ReadLine(prompt string) (string, error) {
	if r.verbose && prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	line, err := r.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line != "" && errors.Is(err, io.EOF) {
		return line, nil
	}

	return line, err
}
