// Package proof implements the optional proof sink the strengthen step
// writes to: a text stream where every strengthen emits the new clause as
// an addition followed by the original clause as a deletion. Subsumption
// itself emits only deletions, and those are the responsibility of the
// enclosing simplifier (out of scope here), not this package.
package proof

import (
	"fmt"
	"io"
	"strings"

	"github.com/aodinaev/cryptominisat/literal"
)

// Sink writes DRAT-style addition/deletion lines. A nil *Sink is valid and
// discards all writes, so proof output is optional.
type Sink struct {
	w io.Writer
}

// NewSink returns a Sink that writes proof lines to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Strengthen emits the proof pair for a strengthen step: the shortened
// clause as an addition, then the original clause as a deletion.
func (s *Sink) Strengthen(shortened, original []literal.Literal) {
	if s == nil || s.w == nil {
		return
	}
	fmt.Fprintf(s.w, "%s 0\n", joinLits(shortened))
	fmt.Fprintf(s.w, "d %s 0\n", joinLits(original))
}

func joinLits(lits []literal.Literal) string {
	parts := make([]string, len(lits))
	for i, l := range lits {
		parts[i] = dimacsLit(l)
	}
	return strings.Join(parts, " ")
}

// dimacsLit renders a literal using 1-based DIMACS convention (variable 0,
// positive -> "1", negative -> "-1") to match the external proof format.
func dimacsLit(l literal.Literal) string {
	v := l.VarID() + 1
	if l.IsPositive() {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("-%d", v)
}
