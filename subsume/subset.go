package subsume

import (
	"sort"

	"github.com/aodinaev/cryptominisat/budget"
	"github.com/aodinaev/cryptominisat/literal"
)

// Indexable is the capability set the subset tests need: indexed access and
// a size. Both clause.Clause and the fixed-size Triple satisfy it, so the
// subset tests accept stored clauses and ad-hoc literal arrays alike; calls
// go through the interface.
type Indexable interface {
	Len() int
	At(i int) literal.Literal
}

// Triple is a fixed 3-literal Indexable, used by implicit-clause absorption
// to hold the sorted {l*, a, b} ternary it removes without allocating a
// slice.
type Triple [3]literal.Literal

func (t Triple) Len() int                 { return 3 }
func (t Triple) At(i int) literal.Literal { return t[i] }

// assertSorted panics if vs is not strictly ascending. Left in (not behind a
// build tag) because it is O(n) and this is not the innermost loop — the
// two-pointer scans it guards are.
func assertSorted(vs Indexable) {
	for i := 1; i < vs.Len(); i++ {
		if vs.At(i-1) >= vs.At(i) {
			panic("subsume: clause literals not strictly ascending")
		}
	}
}

// Subset decides whether A ⊆ B, where both are sorted literal sequences. It
// advances through B; whenever B[j] == A[i] it advances i;
// if A[i] < B[j] it fails (A contains a literal smaller than any literal
// remaining in B); if i reaches len(A), it succeeds.
func Subset(credit *budget.Credit, a, b Indexable) bool {
	assertSorted(b)

	i, j := 0, 0
	ok := false
	for ; j != b.Len(); j++ {
		if a.At(i) < b.At(j) {
			ok = false
			break
		}
		if a.At(i) == b.At(j) {
			i++
			if i == a.Len() {
				ok = true
				break
			}
		}
	}

	credit.Spend(int64(4 * (i + j)))
	return ok
}

// subsetSentinel values returned by Subset1 in place of an actual literal.
const (
	// undef means A is a pure subset of B: no complement was used.
	undef = literal.Undef
	// errLit means A is neither a subset of B nor a self-subsuming
	// resolvent of B.
	errLit = literal.Error
)

// Subset1 decides whether A ⊆ B modulo at most one complemented literal
// (self-subsuming resolution). It runs the same two-pointer scan as Subset,
// except that the first time A[i] == ~B[j] it records B[j] as the
// removable literal and continues.
//
// Returns:
//   - literal.Undef if A is a pure subset of B (no complement used).
//   - the removable literal if A ⊆ B holds modulo one complemented literal.
//   - literal.Error otherwise.
func Subset1(credit *budget.Credit, a, b Indexable) literal.Literal {
	removable := undef

	i, j := 0, 0
	ret := errLit
	for ; j != b.Len(); j++ {
		if a.At(i) == b.At(j).Opposite() && removable == undef {
			removable = b.At(j)
			i++
			if i == a.Len() {
				ret = removable
				break
			}
			continue
		}

		if a.At(i) < b.At(j) {
			ret = errLit
			break
		}

		if a.At(i) == b.At(j) {
			i++
			if i == a.Len() {
				ret = removable
				break
			}
		}
	}

	credit.Spend(int64(4 * (i + j)))
	return ret
}

// sortedTriple is a small helper used by implicit-clause absorption to
// build a sorted Triple from three arbitrary literals.
func sortedTriple(a, b, c literal.Literal) Triple {
	t := Triple{a, b, c}
	sort.Slice(t[:], func(i, j int) bool { return t[i] < t[j] })
	return t
}
