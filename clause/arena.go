package clause

// Ref is an opaque offset into an Arena. Refs are stable for the lifetime of
// the arena: the engine never compacts or reallocates while it runs, so a
// Ref taken before a run remains valid (possibly pointing at a freed clause)
// for the whole run.
type Ref uint32

// noRef is never a valid Ref (slot 0 is reserved so the zero value of Ref
// reads as "no clause").
const noRef Ref = 0

// Arena is a slab allocator for clauses: it hands out Refs and never moves
// or reclaims a slot while the engine is running (removal only flips
// Clause.Freed). Garbage collection of freed slots is the job of the
// enclosing simplifier, not this package.
type Arena struct {
	slots []*Clause // slots[0] is unused so the zero Ref is never valid
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{slots: make([]*Clause, 1, 64)}
}

// Alloc stores c in the arena and returns its stable Ref.
func (a *Arena) Alloc(c *Clause) Ref {
	a.slots = append(a.slots, c)
	return Ref(len(a.slots) - 1)
}

// Get returns the clause at ref. The returned pointer is stable for the
// lifetime of the arena even if the clause has since been freed.
func (a *Arena) Get(ref Ref) *Clause {
	return a.slots[ref]
}

// Len returns the number of clauses ever allocated, including freed ones.
func (a *Arena) Len() int {
	return len(a.slots) - 1
}

// Refs returns the Refs of every clause ever allocated, in allocation order,
// including freed ones. Used by drivers that sample uniformly over the
// clause set: the caller is expected to skip entries whose Clause.Freed is
// true.
func (a *Arena) Refs() []Ref {
	refs := make([]Ref, 0, len(a.slots)-1)
	for i := 1; i < len(a.slots); i++ {
		refs = append(refs, Ref(i))
	}
	return refs
}
