package subsume

import "github.com/aodinaev/cryptominisat/budget"

// PerformSubsumption samples clauses uniformly at random and subsumes with
// each until creditBudget is exhausted or the step limit (1.5x the clause
// count) is reached. Freed clauses are skipped without counting against the
// step limit.
func (e *Engine) PerformSubsumption(creditBudget int64) {
	e.credit = budget.New(creditBudget)
	refs := e.Host.Arena.Refs()
	n := len(refs)
	if n == 0 {
		return
	}
	limit := int64(1.5 * float64(n))

	var wenThrough int64
	for e.credit.Positive() && wenThrough < limit {
		e.credit.Spend(2)

		ref := refs[e.Host.RandIndex(n)]
		c := e.Host.Arena.Get(ref)
		if c.Freed {
			continue
		}

		wenThrough++
		e.credit.Spend(20)
		e.runStats.Tried++
		e.Subsume0(ref)
	}
}

// PerformStrengthening samples clauses uniformly at random and strengthens
// against each until creditBudget is exhausted, the step limit (3x the
// clause count) is reached, or the formula is found unsatisfiable. Unlike
// PerformSubsumption, every sample counts against the step limit whether or
// not it turns out to be freed. Returns the solver's ok flag, so a caller
// can stop the enclosing simplification round.
func (e *Engine) PerformStrengthening(creditBudget int64) bool {
	e.credit = budget.New(creditBudget)
	refs := e.Host.Arena.Refs()
	n := len(refs)
	if n == 0 {
		return e.Host.Ok
	}
	limit := int64(1.5 * 2 * float64(n))

	var wenThrough int64
	for e.credit.Positive() && wenThrough < limit && e.Host.Ok {
		e.credit.Spend(20)
		wenThrough++

		ref := refs[e.Host.RandIndex(n)]
		c := e.Host.Arena.Get(ref)
		if c.Freed {
			continue
		}

		e.runStats.Tried++
		e.Subsume1(ref)
	}
	return e.Host.Ok
}
