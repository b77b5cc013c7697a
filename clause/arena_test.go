package clause

import "testing"

func TestArena_AllocGet(t *testing.T) {
	a := NewArena()

	r1 := a.Alloc(New(lits(1, 2), false))
	r2 := a.Alloc(New(lits(3, 4), true))

	if r1 == r2 {
		t.Fatalf("expected distinct refs, got %v and %v", r1, r2)
	}
	if got := a.Get(r1); !equalLits(got.Literals, lits(1, 2)) {
		t.Errorf("Get(r1).Literals = %v, want %v", got.Literals, lits(1, 2))
	}
	if got := a.Get(r2); !got.Redundant {
		t.Errorf("Get(r2).Redundant = false, want true")
	}
}

func TestArena_RefsSkipsNothingByItself(t *testing.T) {
	a := NewArena()
	r1 := a.Alloc(New(lits(1, 2), false))
	r2 := a.Alloc(New(lits(3, 4), false))

	a.Get(r1).Freed = true

	refs := a.Refs()
	if len(refs) != 2 {
		t.Fatalf("Refs() len = %d, want 2", len(refs))
	}

	live := 0
	for _, r := range refs {
		if !a.Get(r).Freed {
			live++
		}
	}
	if live != 1 {
		t.Errorf("live clauses = %d, want 1", live)
	}
	_ = r2
}

func TestArena_StableRefsAcrossAllocs(t *testing.T) {
	a := NewArena()
	r1 := a.Alloc(New(lits(1, 2), false))
	for i := 0; i < 100; i++ {
		a.Alloc(New(lits(5, 6), false))
	}
	if a.Get(r1) == nil || !equalLits(a.Get(r1).Literals, lits(1, 2)) {
		t.Errorf("ref r1 no longer stable after further allocations")
	}
}
