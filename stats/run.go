package stats

import "github.com/rhartert/yagh"

// RunStats accumulates the counters for a single call to
// Engine.PerformSubsumption/PerformStrengthening, mirroring
// CryptoMiniSat's SubsumeStrengthen::Stats/runStats.
type RunStats struct {
	SubsumedBySub     int64
	SubsumedByStr     int64
	LitsRemStrengthen int64
	Tried             int64
}

// Add merges delta into s, used when finishing a run to fold RunStats into
// a running Global total.
func (s *RunStats) Add(delta RunStats) {
	s.SubsumedBySub += delta.SubsumedBySub
	s.SubsumedByStr += delta.SubsumedByStr
	s.LitsRemStrengthen += delta.LitsRemStrengthen
	s.Tried += delta.Tried
}

// TopClauses is a bounded top-K tracker of the largest clause sizes seen
// during a run (e.g. the largest clauses removed by subsumption), used to
// enrich the run summary. It reuses the same generic indexed-heap type the
// teacher uses for variable-activity ordering (internal/sat/ordering.go),
// repurposed here to rank clause sizes instead of variable activities.
type TopClauses struct {
	limit int
	sizes []int // sizes[key] is the clause size currently kept under heap key key
	heap  *yagh.IntMap[int]
}

// NewTopClauses returns a tracker that reports at most limit entries.
func NewTopClauses(limit int) *TopClauses {
	return &TopClauses{
		limit: limit,
		heap:  yagh.New[int](limit),
	}
}

// Observe records a clause of the given size. At most limit sizes are kept
// (heap keys 0..limit-1): once full, the smallest kept size is replaced if
// the new one is larger.
func (t *TopClauses) Observe(size int) {
	if len(t.sizes) < t.limit {
		key := len(t.sizes)
		t.sizes = append(t.sizes, size)
		t.heap.Put(key, size)
		return
	}
	// The heap is a min-heap on size, so Pop yields the smallest kept size.
	item, ok := t.heap.Pop()
	if !ok {
		return // limit == 0
	}
	if size > t.sizes[item.Elem] {
		t.sizes[item.Elem] = size
	}
	t.heap.Put(item.Elem, t.sizes[item.Elem])
}

// Top drains and returns up to limit clause sizes, largest first. Draining
// the underlying heap is intentional: this tracker is meant to be read once,
// at the end of a run, when producing a summary.
func (t *TopClauses) Top() []int {
	out := make([]int, 0, t.limit)
	for {
		item, ok := t.heap.Pop()
		if !ok {
			break
		}
		out = append(out, t.sizes[item.Elem])
	}
	// Pop yields the smallest first; reverse for largest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
