// Package loader builds a host.State from a DIMACS CNF file by wrapping the
// target in a dimacs.Builder and handing it to dimacs.ReadBuilder.
package loader

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/rhartert/dimacs"

	"github.com/aodinaev/cryptominisat/host"
	"github.com/aodinaev/cryptominisat/literal"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// FromDIMACS builds a fresh host.State from the CNF file at filename,
// seeded deterministically for rand.
func FromDIMACS(filename string, gzipped bool, seed int64) (*host.State, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("loader: opening %q: %s", filename, err)
	}
	defer r.Close()
	return FromReader(r, seed)
}

// FromReader builds a fresh host.State from an already-open DIMACS CNF
// stream, e.g. one the caller obtained by some other means than a plain
// file path (an embedded instance, a network stream already decompressed).
func FromReader(r io.Reader, seed int64) (*host.State, error) {
	st := host.New(seed)
	b := &builder{st: st}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("loader: parsing instance: %s", err)
	}
	return st, nil
}

// builder adapts host.State to dimacs.Builder.
type builder struct {
	st *host.State
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("loader: not a CNF problem: %q", problem)
	}
	for i := 0; i < nVars; i++ {
		b.st.AddVariable()
	}
	return nil
}

// Clause converts a DIMACS clause (1-based, negative for negation) into the
// engine's sorted, deduplicated, tautology-free literal sequence and adds it
// as an irredundant clause. Units and tautologies are dropped silently: this
// loader only feeds the subsumption engine, which never reasons about unit
// propagation.
func (b *builder) Clause(tmpClause []int) error {
	lits := make([]literal.Literal, 0, len(tmpClause))
	for _, l := range tmpClause {
		if l < 0 {
			lits = append(lits, literal.Neg(-l-1))
		} else {
			lits = append(lits, literal.Pos(l-1))
		}
	}
	sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
	lits = dedupAndCheckTautology(lits)
	if len(lits) < 2 {
		return nil
	}
	b.st.AddClause(lits, false)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil
}

// dedupAndCheckTautology removes duplicate literals from a sorted sequence
// and returns nil if it is a tautology (contains both l and its negation).
// Deduplication runs first so that a repeated literal (e.g. "1 1 -1") can't
// hide the adjacent complementary pair the tautology check relies on.
func dedupAndCheckTautology(sorted []literal.Literal) []literal.Literal {
	out := sorted[:0]
	for _, l := range sorted {
		if n := len(out); n > 0 && out[n-1] == l {
			continue
		}
		out = append(out, l)
	}
	for i := 1; i < len(out); i++ {
		if out[i] == out[i-1].Opposite() {
			return nil
		}
	}
	return out
}
