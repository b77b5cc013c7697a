// Package clause defines the clause representation and arena consumed by
// the subsumption/strengthening engine: a slab-style allocator that hands
// out opaque, stable offsets (Ref) and never compacts while the engine runs.
package clause

import (
	"sort"
	"strings"

	"github.com/aodinaev/cryptominisat/literal"
)

// Stats carries provenance metadata for a clause: activity (search-time
// bumping), glue (literal block distance at creation), the epoch the clause
// was created in, and a usage counter. Combining two Stats is commutative
// and associative and preserves the maxima of monotone fields (Glue, Uses
// are kept at their max; Activity is summed; Birth is kept at the earlier
// of the two, i.e. the min). BirthSet distinguishes "born at epoch 0" from
// "no birth recorded" so combining never mistakes one for the other.
type Stats struct {
	Activity float64
	Glue     uint32
	Birth    int64
	BirthSet bool
	Uses     uint32
}

// CombineStats merges b into a and returns the result. The combination is
// commutative and associative.
func CombineStats(a, b Stats) Stats {
	out := Stats{
		Activity: a.Activity + b.Activity,
		Glue:     max32(a.Glue, b.Glue),
		Uses:     max32(a.Uses, b.Uses),
	}
	switch {
	case !a.BirthSet:
		out.Birth, out.BirthSet = b.Birth, b.BirthSet
	case !b.BirthSet:
		out.Birth, out.BirthSet = a.Birth, a.BirthSet
	case a.Birth < b.Birth:
		out.Birth, out.BirthSet = a.Birth, true
	default:
		out.Birth, out.BirthSet = b.Birth, true
	}
	return out
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// Clause is a disjunction of literals together with the bookkeeping the
// engine needs to reason about it.
//
// Invariants:
//   - len(Literals) >= 2 and Literals is sorted in ascending order.
//   - Signature == OR over l in Literals of (1 << l.AbstractionBit()).
//   - Freed is true iff the clause has been unlinked from every occurrence
//     list; such clauses must not be dereferenced again.
//   - OccurLinked is true iff the clause currently appears in the
//     occurrence lists of every one of its literals.
type Clause struct {
	Literals    []literal.Literal
	Redundant   bool
	Signature   uint64
	Stats       Stats
	Freed       bool
	OccurLinked bool
}

// New builds a clause from already-sorted, duplicate-free literals and
// computes its signature. Callers (host.AddClause, and through it the
// loader) are responsible for sorting and deduplicating literals before
// calling New.
func New(lits []literal.Literal, redundant bool) *Clause {
	c := &Clause{
		Literals:    lits,
		Redundant:   redundant,
		OccurLinked: true,
	}
	c.RecomputeSignature()
	return c
}

// RecomputeSignature rebuilds the clause's 64-bit signature from its current
// literals. Must be called after any change to Literals.
func (c *Clause) RecomputeSignature() {
	var sig uint64
	for _, l := range c.Literals {
		sig |= uint64(1) << l.AbstractionBit()
	}
	c.Signature = sig
}

// Len returns the number of literals in the clause.
func (c *Clause) Len() int {
	return len(c.Literals)
}

// At returns the i-th literal. At and Len let Clause satisfy the indexable
// capability the subset tests are written against (see subsume.Indexable).
func (c *Clause) At(i int) literal.Literal {
	return c.Literals[i]
}

// IsSorted reports whether Literals is in non-descending order; equal
// neighbours are accepted. The exact subset test does not call it: it runs
// its own strict check (subsume.assertSorted).
func (c *Clause) IsSorted() bool {
	return sort.SliceIsSorted(c.Literals, func(i, j int) bool {
		return c.Literals[i] < c.Literals[j]
	})
}

// RemoveAt removes the literal at index i, preserving sort order, and
// recomputes the signature. Used by the strengthen step.
func (c *Clause) RemoveAt(i int) {
	c.Literals = append(c.Literals[:i], c.Literals[i+1:]...)
	c.RecomputeSignature()
}

func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.Literals[0].String())
	for _, l := range c.Literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
