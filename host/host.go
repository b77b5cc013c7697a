// Package host provides the minimal "Solver state" / "Simplifier" glue the
// subsumption engine consumes as external collaborators: a solver-owned
// RNG, the ok flag, the clause arena and occurrence store, the shared
// binTri counters, and an optional proof sink. It deliberately does not
// implement unit propagation, conflict analysis, or restarts: those belong
// to the out-of-scope CDCL search engine.
package host

import (
	"math/rand"

	"github.com/aodinaev/cryptominisat/clause"
	"github.com/aodinaev/cryptominisat/literal"
	"github.com/aodinaev/cryptominisat/occur"
	"github.com/aodinaev/cryptominisat/proof"
	"github.com/aodinaev/cryptominisat/stats"
)

// State bundles everything the engine needs from its environment. It is
// built once per problem instance and mutated in place by the engine.
type State struct {
	Arena    *clause.Arena
	Occur    *occur.Store
	Counters *stats.BinTri
	Proof    *proof.Sink

	// RNG is the solver-owned random source used for candidate sampling,
	// not a process global, so runs stay reproducible and independent.
	RNG *rand.Rand

	// Ok is false once the formula has been proven unsatisfiable (e.g. a
	// strengthen step produced the empty clause). Once false it stays
	// false: there is no partial rollback.
	Ok bool
}

// New returns a State seeded deterministically, so runs are reproducible.
func New(seed int64) *State {
	return &State{
		Arena:    clause.NewArena(),
		Occur:    occur.NewStore(),
		Counters: &stats.BinTri{},
		RNG:      rand.New(rand.NewSource(seed)),
		Ok:       true,
	}
}

// AddVariable grows the occurrence store to accommodate a new variable.
func (s *State) AddVariable() {
	s.Occur.AddVariable()
}

// AddClause allocates a new irredundant or redundant long clause, links it
// into the occurrence store, and accounts its literals in Counters. It
// assumes lits is already sorted and free of duplicates/tautologies: this
// minimal host does not perform the unit propagation or root-level
// simplification a full solver's Clause constructor would (see DESIGN.md).
func (s *State) AddClause(lits []literal.Literal, redundant bool) clause.Ref {
	c := clause.New(lits, redundant)
	ref := s.Arena.Alloc(c)
	s.Occur.Relink(ref, c)
	s.Counters.AddLits(c.Len(), redundant)
	return ref
}

// UnlinkClause removes c from every occurrence list, marks it freed, and
// removes its literals from Counters.
func (s *State) UnlinkClause(ref clause.Ref) {
	c := s.Arena.Get(ref)
	s.Counters.RemoveLits(c.Len(), c.Redundant)
	s.Occur.Unlink(ref, c)
}

// LinkInClause re-links a clause that was promoted from redundant to
// irredundant without ever being unlinked.
func (s *State) LinkInClause(ref clause.Ref) {
	c := s.Arena.Get(ref)
	if !c.OccurLinked {
		s.Occur.Relink(ref, c)
	}
}

// CleanClause re-normalizes a clause after it has been shortened by one
// literal. A clause that became empty is a contradiction: Ok flips false
// and the caller must return eagerly. This minimal host has
// no unit-propagation loop of its own, so a clause that became a unit is
// left as-is for the enclosing (out-of-scope) CDCL engine to propagate on
// its next run.
func (s *State) CleanClause(ref clause.Ref) bool {
	c := s.Arena.Get(ref)
	if c.Len() == 0 {
		s.Ok = false
		return false
	}
	return true
}

// RandIndex returns a uniformly random index in [0, n).
func (s *State) RandIndex(n int) int {
	return s.RNG.Intn(n)
}
