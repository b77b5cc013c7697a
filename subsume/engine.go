package subsume

import (
	"github.com/aodinaev/cryptominisat/budget"
	"github.com/aodinaev/cryptominisat/clause"
	"github.com/aodinaev/cryptominisat/host"
	"github.com/aodinaev/cryptominisat/literal"
	"github.com/aodinaev/cryptominisat/stats"
)

// Options configures an Engine, via the Options/DefaultOptions constructor
// pattern used throughout this codebase.
type Options struct {
	// RemoveImplicit enables the implicit binary/ternary absorption pass
	// during subsumption.
	RemoveImplicit bool

	// TopClausesLimit bounds how many of the largest removed clause sizes
	// Engine.Top reports.
	TopClausesLimit int
}

// DefaultOptions returns the engine's default configuration.
func DefaultOptions() Options {
	return Options{
		RemoveImplicit:  true,
		TopClausesLimit: 10,
	}
}

// Engine is the subsumption and self-subsuming resolution engine. It
// operates on a host.State it does not own the lifetime of, and exposes
// both driver-level and single-clause-level operations.
type Engine struct {
	Host    *host.State
	Options Options

	// Global accumulates stats across every run finished with FinishedRun.
	Global stats.RunStats
	// Top ranks the sizes of the largest clauses removed by subsumption, in
	// either driver; clauses that are only strengthened are not recorded.
	Top *stats.TopClauses

	runStats stats.RunStats
	credit   *budget.Credit
}

// New returns an Engine over st.
func New(st *host.State, opts Options) *Engine {
	return &Engine{
		Host:    st,
		Options: opts,
		Top:     stats.NewTopClauses(opts.TopClausesLimit),
	}
}

// Subsume0 subsumes and unlinks every clause the clause at ref subsumes,
// returning how many were removed.
func (e *Engine) Subsume0(ref clause.Ref) int {
	c := e.Host.Arena.Get(ref)
	victims := FindSubsumed(e.Host, e.credit, ref, c, e.Options.RemoveImplicit)
	count, absorbedIrred := subsume0AndUnlink(e.Host, e.credit, c, victims, &e.runStats, e.Top)
	if c.Redundant && absorbedIrred {
		promote(e.Host, ref, c)
	}
	return count
}

// Subsume1 both subsumes and strengthens against the clause at ref,
// returning the counts of each. Unlike Subsume0, promotion happens inline
// per candidate, mirroring CryptoMiniSat's subsume1.
func (e *Engine) Subsume1(ref clause.Ref) (subCount, strCount int) {
	c := e.Host.Arena.Get(ref)
	candidates := FindStrengthened(e.Host, e.credit, ref, c)

	for _, cand := range candidates {
		if !e.Host.Ok {
			break
		}

		if cand.Lit == literal.Undef {
			v := e.Host.Arena.Get(cand.Ref)
			if c.Redundant && !v.Redundant {
				promote(e.Host, ref, c)
			}
			c.Stats = clause.CombineStats(c.Stats, v.Stats)
			if e.Top != nil {
				e.Top.Observe(v.Len())
			}
			e.Host.UnlinkClause(cand.Ref)
			subCount++
			e.runStats.SubsumedByStr++
		} else {
			strengthen(e.Host, cand.Ref, cand.Lit, &e.runStats)
			strCount++
		}

		if e.credit.BelowHardFloor() {
			break
		}
	}
	return subCount, strCount
}

// MemUsed estimates the bytes the engine's own bookkeeping (as opposed to
// the arena/occurrence store it operates on) holds: 16 bytes per entry of
// the Top tracker's TopClausesLimit. The scratch candidate lists a run
// allocates per clause are not counted.
func (e *Engine) MemUsed() uint64 {
	return uint64(e.Options.TopClausesLimit) * 16
}

// FinishedRun folds the current run's stats into Global and resets the
// per-run counters.
func (e *Engine) FinishedRun() {
	e.Global.Add(e.runStats)
	e.runStats = stats.RunStats{}
}
