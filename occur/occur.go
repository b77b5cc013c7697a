// Package occur implements the per-literal occurrence lists consumed by the
// subsumption engine: for each literal, a sequence of tagged watch entries
// pointing at binary, ternary, or long clauses that contain it.
package occur

import (
	"github.com/aodinaev/cryptominisat/clause"
	"github.com/aodinaev/cryptominisat/literal"
)

// Kind tags an Entry with the shape of clause it refers to.
type Kind uint8

const (
	// KindBinary is an implicit 2-literal clause stored directly in the
	// watch lists (not in the arena).
	KindBinary Kind = iota
	// KindTernary is an implicit 3-literal clause stored directly in the
	// watch lists (not in the arena).
	KindTernary
	// KindLong refers to a clause held in the clause.Arena.
	KindLong
)

// Entry is one element of a literal's occurrence list.
type Entry struct {
	Kind Kind

	// Valid when Kind == KindBinary: the clause is {owner, Other}.
	Other literal.Literal

	// Valid when Kind == KindTernary: the clause is {owner, Lit2, Lit3}.
	Lit2, Lit3 literal.Literal

	// Valid when Kind in {KindBinary, KindTernary}.
	Redundant bool

	// Valid when Kind == KindLong.
	Ref       clause.Ref
	Signature uint64
}

// Store holds the occurrence lists for every literal. Lists are indexed
// directly by literal.Literal, mirroring a solver's watchers [][]watcher
// field.
type Store struct {
	lists [][]Entry
}

// NewStore returns an empty occurrence store.
func NewStore() *Store {
	return &Store{}
}

// AddVariable grows the store to accommodate one more variable (i.e. two
// more literals).
func (s *Store) AddVariable() {
	s.lists = append(s.lists, nil, nil)
}

// NumLiterals returns the number of literal slots currently allocated.
func (s *Store) NumLiterals() int {
	return len(s.lists)
}

// Entries returns the occurrence list of l. The returned slice aliases the
// store's internal state: callers performing in-place compaction should
// write through index assignment and finish with SetEntries to truncate.
func (s *Store) Entries(l literal.Literal) []Entry {
	return s.lists[l]
}

// SetEntries replaces the occurrence list of l, e.g. after in-place
// compaction.
func (s *Store) SetEntries(l literal.Literal, entries []Entry) {
	s.lists[l] = entries
}

// AddLong appends a KindLong entry for ref to l's occurrence list.
func (s *Store) AddLong(l literal.Literal, ref clause.Ref, signature uint64) {
	s.lists[l] = append(s.lists[l], Entry{Kind: KindLong, Ref: ref, Signature: signature})
}

// RemoveLong removes the (unique) KindLong entry pointing at ref from l's
// occurrence list.
func (s *Store) RemoveLong(l literal.Literal, ref clause.Ref) {
	entries := s.lists[l]
	for i, e := range entries {
		if e.Kind == KindLong && e.Ref == ref {
			s.lists[l] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// AddBinary adds watch entries for the 2-literal implicit clause {a, b} to
// both a's and b's occurrence lists.
func (s *Store) AddBinary(a, b literal.Literal, redundant bool) {
	s.lists[a] = append(s.lists[a], Entry{Kind: KindBinary, Other: b, Redundant: redundant})
	s.lists[b] = append(s.lists[b], Entry{Kind: KindBinary, Other: a, Redundant: redundant})
}

// RemoveBinary removes one KindBinary entry for {owner, other} from owner's
// occurrence list.
func (s *Store) RemoveBinary(owner, other literal.Literal, redundant bool) {
	entries := s.lists[owner]
	for i, e := range entries {
		if e.Kind == KindBinary && e.Other == other && e.Redundant == redundant {
			s.lists[owner] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// AddTernary adds watch entries for the 3-literal implicit clause {a, b, c}
// to all three occurrence lists.
func (s *Store) AddTernary(a, b, c literal.Literal, redundant bool) {
	s.lists[a] = append(s.lists[a], Entry{Kind: KindTernary, Lit2: b, Lit3: c, Redundant: redundant})
	s.lists[b] = append(s.lists[b], Entry{Kind: KindTernary, Lit2: a, Lit3: c, Redundant: redundant})
	s.lists[c] = append(s.lists[c], Entry{Kind: KindTernary, Lit2: a, Lit3: b, Redundant: redundant})
}

// RemoveTernaryExcept removes the KindTernary entry for the sorted literal
// triple from owner's occurrence list, skipping owner == except: the caller
// is iterating except's own occurrence list and must not mutate it out from
// under itself.
func (s *Store) RemoveTernaryExcept(except literal.Literal, triple [3]literal.Literal, redundant bool) {
	for _, owner := range triple {
		if owner == except {
			continue
		}
		var others [2]literal.Literal
		k := 0
		for _, l := range triple {
			if l != owner {
				others[k] = l
				k++
			}
		}
		s.removeTernaryEntry(owner, others[0], others[1], redundant)
	}
}

func (s *Store) removeTernaryEntry(owner, b, c literal.Literal, redundant bool) {
	entries := s.lists[owner]
	for i, e := range entries {
		if e.Kind != KindTernary || e.Redundant != redundant {
			continue
		}
		if (e.Lit2 == b && e.Lit3 == c) || (e.Lit2 == c && e.Lit3 == b) {
			s.lists[owner] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Relink re-adds KindLong entries for every literal of c at the given ref,
// used to re-establish occurrence-list membership after a clause is
// promoted from redundant to irredundant without ever having been unlinked.
func (s *Store) Relink(ref clause.Ref, c *clause.Clause) {
	for _, l := range c.Literals {
		s.AddLong(l, ref, c.Signature)
	}
	c.OccurLinked = true
}

// Unlink removes the KindLong entries for every literal of c at ref and
// marks c freed.
func (s *Store) Unlink(ref clause.Ref, c *clause.Clause) {
	for _, l := range c.Literals {
		s.RemoveLong(l, ref)
	}
	c.Freed = true
	c.OccurLinked = false
}
