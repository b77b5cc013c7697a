package subsume

import (
	"github.com/aodinaev/cryptominisat/budget"
	"github.com/aodinaev/cryptominisat/clause"
	"github.com/aodinaev/cryptominisat/host"
	"github.com/aodinaev/cryptominisat/literal"
	"github.com/aodinaev/cryptominisat/stats"
)

// promote flips a clause from redundant to irredundant, moving its literals
// into the irredundant counter bucket and relinking it if it was never
// unlinked.
func promote(st *host.State, ref clause.Ref, c *clause.Clause) {
	c.Redundant = false
	st.Counters.MoveLits(c.Len())
	st.LinkInClause(ref)
}

// subsume0AndUnlink unlinks the clauses in victims, merging their stats
// into c and unlinking each from the arena/occurrence store; it stops after
// the victim at which credit falls below the hard floor. It reports
// whether any absorbed victim was irredundant, so the caller can decide
// whether to promote c: promotion is deferred to the end of the whole
// candidate loop here, mirroring CryptoMiniSat's subsume0AndUnlink, which
// only sets a flag and lets its caller (subsume0) promote afterwards.
func subsume0AndUnlink(st *host.State, credit *budget.Credit, c *clause.Clause, victims []clause.Ref, run *stats.RunStats, top *stats.TopClauses) (count int, absorbedIrred bool) {
	for _, vref := range victims {
		v := st.Arena.Get(vref)
		if !v.Redundant {
			absorbedIrred = true
		}
		c.Stats = clause.CombineStats(c.Stats, v.Stats)
		if top != nil {
			top.Observe(v.Len())
		}
		st.UnlinkClause(vref)
		count++
		run.SubsumedBySub++
		if credit.BelowHardFloor() {
			break
		}
	}
	return count, absorbedIrred
}

// strengthen removes toRemove from the clause at ref, emits the proof pair,
// updates counters and occurrence lists, and re-normalizes the clause (spec
// §4.6). If the clause becomes empty, st.Ok flips false and the caller must
// stop the enclosing candidate loop.
func strengthen(st *host.State, ref clause.Ref, toRemove literal.Literal, run *stats.RunStats) {
	c := st.Arena.Get(ref)

	var original []literal.Literal
	if st.Proof != nil {
		original = append([]literal.Literal(nil), c.Literals...)
	}

	idx := -1
	for i, l := range c.Literals {
		if l == toRemove {
			idx = i
			break
		}
	}
	c.RemoveAt(idx)

	st.Proof.Strengthen(c.Literals, original)
	st.Occur.RemoveLong(toRemove, ref)
	st.Counters.RemoveLits(1, c.Redundant)
	run.LitsRemStrengthen++

	st.CleanClause(ref)
}
