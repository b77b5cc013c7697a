package clause

import (
	"testing"

	"github.com/aodinaev/cryptominisat/literal"
)

func lits(vs ...int) []literal.Literal {
	out := make([]literal.Literal, len(vs))
	for i, v := range vs {
		if v < 0 {
			out[i] = literal.Neg(-v)
		} else {
			out[i] = literal.Pos(v)
		}
	}
	return out
}

func TestNew_SignatureMatchesLiterals(t *testing.T) {
	c := New(lits(1, 2, 3), false)

	var want uint64
	for _, l := range c.Literals {
		want |= uint64(1) << l.AbstractionBit()
	}
	if c.Signature != want {
		t.Errorf("Signature = %b, want %b", c.Signature, want)
	}
}

func TestRemoveAt_RecomputesSignatureAndPreservesOrder(t *testing.T) {
	c := New(lits(1, 2, 3), false)

	c.RemoveAt(1) // remove literal for var 2

	if got, want := c.Literals, lits(1, 3); !equalLits(got, want) {
		t.Errorf("Literals after RemoveAt = %v, want %v", got, want)
	}
	if !c.IsSorted() {
		t.Errorf("clause not sorted after RemoveAt")
	}

	var want uint64
	for _, l := range c.Literals {
		want |= uint64(1) << l.AbstractionBit()
	}
	if c.Signature != want {
		t.Errorf("Signature after RemoveAt = %b, want %b", c.Signature, want)
	}
}

func TestCombineStats_CommutativeAndMonotone(t *testing.T) {
	a := Stats{Activity: 1, Glue: 3, Birth: 5, BirthSet: true, Uses: 1}
	b := Stats{Activity: 2, Glue: 7, Birth: 2, BirthSet: true, Uses: 4}

	ab := CombineStats(a, b)
	ba := CombineStats(b, a)

	if ab != ba {
		t.Errorf("CombineStats not commutative: a,b=%+v b,a=%+v", ab, ba)
	}
	if ab.Glue != 7 {
		t.Errorf("CombineStats.Glue = %d, want max 7", ab.Glue)
	}
	if ab.Uses != 4 {
		t.Errorf("CombineStats.Uses = %d, want max 4", ab.Uses)
	}
	if ab.Birth != 2 {
		t.Errorf("CombineStats.Birth = %d, want min 2", ab.Birth)
	}
	if ab.Activity != 3 {
		t.Errorf("CombineStats.Activity = %v, want sum 3", ab.Activity)
	}
}

func equalLits(a, b []literal.Literal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
