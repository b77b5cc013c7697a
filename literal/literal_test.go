package literal

import (
	"fmt"
	"testing"
)

func TestPosNeg(t *testing.T) {
	p := Pos(3)
	n := Neg(3)

	if got := p.VarID(); got != 3 {
		t.Errorf("Pos(3).VarID() = %d, want 3", got)
	}
	if !p.IsPositive() {
		t.Errorf("Pos(3).IsPositive() = false, want true")
	}
	if n.IsPositive() {
		t.Errorf("Neg(3).IsPositive() = true, want false")
	}
	if p.Opposite() != n {
		t.Errorf("Pos(3).Opposite() = %v, want %v", p.Opposite(), n)
	}
	if n.Opposite() != p {
		t.Errorf("Neg(3).Opposite() = %v, want %v", n.Opposite(), p)
	}
}

func TestLiteral_Opposite_Involution(t *testing.T) {
	for v := 0; v < 10; v++ {
		l := Pos(v)
		if got := l.Opposite().Opposite(); got != l {
			t.Errorf("double Opposite() of %v = %v, want %v", l, got, l)
		}
	}
}

func TestAbstractionBit_SameForBothSigns(t *testing.T) {
	if Pos(5).AbstractionBit() != Neg(5).AbstractionBit() {
		t.Errorf("AbstractionBit differs between signs of the same variable")
	}
}

func ExampleLiteral_String() {
	fmt.Println(Pos(2))
	fmt.Println(Neg(2))
	fmt.Println(Undef)
	fmt.Println(Error)

	// Output:
	// 2
	// !2
	// lit_Undef
	// lit_Error
}
