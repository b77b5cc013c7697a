package subsume

import (
	"bytes"
	"testing"

	"github.com/aodinaev/cryptominisat/budget"
	"github.com/aodinaev/cryptominisat/clause"
	"github.com/aodinaev/cryptominisat/literal"
	"github.com/aodinaev/cryptominisat/proof"
	"github.com/aodinaev/cryptominisat/stats"
)

func TestSubsume0AndUnlink_MergesStatsAndReportsIrred(t *testing.T) {
	s := newHost(4)
	victim := s.AddClause(lits(0, 1, 2), false)
	self := s.AddClause(lits(0, 1), true)
	c := s.Arena.Get(self)
	s.Arena.Get(victim).Stats.Glue = 7

	credit := budget.New(1_000_000)
	run := &stats.RunStats{}
	count, absorbedIrred := subsume0AndUnlink(s, credit, c, []clause.Ref{victim}, run, nil)

	if count != 1 || !absorbedIrred {
		t.Fatalf("subsume0AndUnlink = (%d, %v), want (1, true)", count, absorbedIrred)
	}
	if c.Stats.Glue != 7 {
		t.Errorf("self Stats.Glue = %d after merge, want 7", c.Stats.Glue)
	}
	if !s.Arena.Get(victim).Freed {
		t.Errorf("victim not freed")
	}
	if run.SubsumedBySub != 1 {
		t.Errorf("SubsumedBySub = %d, want 1", run.SubsumedBySub)
	}
}

func TestStrengthen_RemovesLiteralAndEmitsProof(t *testing.T) {
	var buf bytes.Buffer
	s := newHost(4)
	s.Proof = proof.NewSink(&buf)
	ref := s.AddClause(lits(0, 1, 2), false)

	run := &stats.RunStats{}
	strengthen(s, ref, literal.Pos(1), run)

	c := s.Arena.Get(ref)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	for _, l := range c.Literals {
		if l == literal.Pos(1) {
			t.Fatalf("literal 1 still present after strengthen: %v", c.Literals)
		}
	}
	if buf.Len() == 0 {
		t.Errorf("expected proof output, got none")
	}
	if run.LitsRemStrengthen != 1 {
		t.Errorf("LitsRemStrengthen = %d, want 1", run.LitsRemStrengthen)
	}
}

func TestStrengthen_EmptyingClauseFlipsOk(t *testing.T) {
	s := newHost(2)
	ref := s.AddClause(lits(0, 1), false)

	run := &stats.RunStats{}
	strengthen(s, ref, literal.Pos(0), run)
	strengthen(s, ref, literal.Pos(1), run)

	if s.Ok {
		t.Errorf("Ok = true after strengthening a clause to empty, want false")
	}
}
