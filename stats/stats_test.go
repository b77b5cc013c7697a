package stats

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBinTri_MoveLits(t *testing.T) {
	b := &BinTri{IrredLits: 10, RedLits: 5}
	b.MoveLits(3)

	if b.IrredLits != 13 || b.RedLits != 2 {
		t.Errorf("after MoveLits(3): %+v, want Irred=13 Red=2", b)
	}
}

func TestBinTri_AddRemoveLits(t *testing.T) {
	b := &BinTri{}
	b.AddLits(4, false)
	b.AddLits(2, true)

	if b.IrredLits != 4 || b.RedLits != 2 {
		t.Fatalf("after AddLits: %+v", b)
	}

	b.RemoveLits(4, false)
	b.RemoveLits(2, true)

	if b.IrredLits != 0 || b.RedLits != 0 {
		t.Errorf("after RemoveLits: %+v, want all zero", b)
	}
}

func TestRunStats_Add(t *testing.T) {
	total := RunStats{}
	total.Add(RunStats{SubsumedBySub: 2, Tried: 10})
	total.Add(RunStats{SubsumedBySub: 3, SubsumedByStr: 1, Tried: 5})

	want := RunStats{SubsumedBySub: 5, SubsumedByStr: 1, Tried: 15}
	if diff := cmp.Diff(want, total); diff != "" {
		t.Errorf("Add(): mismatch (-want +got):\n%s", diff)
	}
}

func TestTopClauses_LargestFirst(t *testing.T) {
	top := NewTopClauses(2)
	for _, size := range []int{3, 9, 5, 1, 7} {
		top.Observe(size)
	}

	got := top.Top()
	want := []int{9, 7}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Top(): mismatch (-want +got):\n%s", diff)
	}
}

func TestTopClauses_FewerObservationsThanLimit(t *testing.T) {
	top := NewTopClauses(5)
	top.Observe(4)

	got := top.Top()
	if len(got) != 1 || got[0] != 4 {
		t.Errorf("Top() = %v, want [4]", got)
	}
}
