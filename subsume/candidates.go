package subsume

import (
	"github.com/aodinaev/cryptominisat/budget"
	"github.com/aodinaev/cryptominisat/clause"
	"github.com/aodinaev/cryptominisat/host"
	"github.com/aodinaev/cryptominisat/literal"
	"github.com/aodinaev/cryptominisat/occur"
)

// Candidate is one clause C may act on: either subsume it outright (Lit ==
// literal.Undef) or strengthen it by removing Lit.
type Candidate struct {
	Ref clause.Ref
	Lit literal.Literal
}

// shortestLiteral returns the literal of c whose occurrence list is
// shortest: every clause C subsumes must contain it, so its occurrence list
// is a superset of subsumption candidates.
func shortestLiteral(st *host.State, c *clause.Clause) literal.Literal {
	best := c.Literals[0]
	for _, l := range c.Literals[1:] {
		if len(st.Occur.Entries(l)) < len(st.Occur.Entries(best)) {
			best = l
		}
	}
	return best
}

// minOccurVariable returns the variable of c minimizing the combined length
// of its positive and negative occurrence lists, since self-subsuming
// resolution needs a literal of C to appear with either sign in the partner
// clause.
func minOccurVariable(st *host.State, c *clause.Clause) int {
	bestVar := c.Literals[0].VarID()
	bestSize := -1
	for _, l := range c.Literals {
		v := l.VarID()
		size := len(st.Occur.Entries(literal.Pos(v))) + len(st.Occur.Entries(literal.Neg(v)))
		if bestSize == -1 || size < bestSize {
			bestSize = size
			bestVar = v
		}
	}
	return bestVar
}

// FindSubsumed scans the occurrence list of c's shortest literal for other
// long clauses subsumed by c. When removeImplicit is true and c has exactly
// two literals, it additionally collapses binary and ternary occurrences
// that c subsumes directly in the occurrence lists, compacting the scanned
// list in place with a two-cursor sweep.
func FindSubsumed(st *host.State, credit *budget.Credit, self clause.Ref, c *clause.Clause, removeImplicit bool) []clause.Ref {
	lStar := shortestLiteral(st, c)
	credit.Spend(int64(c.Len()))

	var other literal.Literal
	implicit := removeImplicit && c.Len() == 2
	if implicit {
		if c.Literals[0] == lStar {
			other = c.Literals[1]
		} else {
			other = c.Literals[0]
		}
	}

	entries := st.Occur.Entries(lStar)
	credit.Spend(int64(len(entries)*8 + 40))

	var subsumed []clause.Ref
	numBinFound := 0
	write := 0
	for read := 0; read < len(entries); read++ {
		e := entries[read]

		if implicit {
			if e.Kind == occur.KindBinary && e.Other == other && !e.Redundant {
				numBinFound++
				if numBinFound > 1 {
					st.Occur.RemoveBinary(other, lStar, false)
					st.Counters.RemoveBin(false)
					continue // dropped from l*'s own list too
				}
				// First occurrence: this is C's own binary form (or the
				// representative kept alive); never remove a clause out
				// from under itself.
			}

			if e.Kind == occur.KindTernary && (e.Lit2 == other || e.Lit3 == other) {
				triple := sortedTriple(lStar, e.Lit2, e.Lit3)
				st.Occur.RemoveTernaryExcept(lStar, triple, e.Redundant)
				st.Counters.RemoveTri(e.Redundant)
				continue // dropped from l*'s own list too
			}
		}

		entries[write] = e
		write++

		if e.Kind != occur.KindLong {
			continue
		}

		credit.Spend(15)

		if e.Ref == self || !MightSubset(c.Signature, e.Signature) {
			continue
		}

		candidate := st.Arena.Get(e.Ref)
		if c.Len() > candidate.Len() {
			continue
		}

		credit.Spend(50)
		if Subset(credit, c, candidate) {
			subsumed = append(subsumed, e.Ref)
		}
	}
	st.Occur.SetEntries(lStar, entries[:write])

	return subsumed
}

// FindStrengthened scans the occurrence lists of c's minimizing variable
// (both polarities) for clauses c subsumes or can strengthen via
// self-subsuming resolution. Unlike FindSubsumed, it never touches implicit
// binary/ternary occurrences: that collapsing is specific to the
// subsumption path.
func FindStrengthened(st *host.State, credit *budget.Credit, self clause.Ref, c *clause.Clause) []Candidate {
	v := minOccurVariable(st, c)
	credit.Spend(int64(c.Len()))

	var out []Candidate
	out = fillCandidates(st, credit, self, c, literal.Pos(v), out)
	out = fillCandidates(st, credit, self, c, literal.Neg(v), out)
	return out
}

// fillCandidates scans occurrences[lit] appending every long clause c
// subsumes or can strengthen. Grounded on subsumestrengthen.cpp's fillSubs.
func fillCandidates(st *host.State, credit *budget.Credit, self clause.Ref, c *clause.Clause, lit literal.Literal, out []Candidate) []Candidate {
	entries := st.Occur.Entries(lit)
	credit.Spend(int64(len(entries)*15 + 40))

	for _, e := range entries {
		if e.Kind != occur.KindLong {
			continue
		}
		if e.Ref == self || !MightSubset(c.Signature, e.Signature) {
			continue
		}

		candidate := st.Arena.Get(e.Ref)
		if c.Len() > candidate.Len() {
			continue
		}

		credit.Spend(int64(c.Len() + candidate.Len()))
		switch result := Subset1(credit, c, candidate); result {
		case errLit:
			// neither subsumes nor strengthens
		default:
			out = append(out, Candidate{Ref: e.Ref, Lit: result})
		}
	}
	return out
}
