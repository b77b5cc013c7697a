// Package budget implements the shared work-credit counter the subsumption
// engine borrows from its enclosing simplifier, used as a control-flow
// channel in place of a timer thread or signal.
package budget

// HardFloor is the point past which a run aborts outright even if its
// nominal budget would allow more steps, guarding against pathological
// inputs.
const HardFloor int64 = -2e7

// Credit is a signed work-credit counter. It is always held by an explicit
// mutable borrow (a *Credit), never a package-level global, so that
// multiple independent runs (e.g. in tests) never share state.
type Credit struct {
	value int64
}

// New returns a Credit initialized to the given budget.
func New(initial int64) *Credit {
	return &Credit{value: initial}
}

// Value returns the current credit.
func (c *Credit) Value() int64 {
	return c.value
}

// Spend decrements the credit by amount (amount is normally positive; the
// counter is allowed to go negative).
func (c *Credit) Spend(amount int64) {
	c.value -= amount
}

// Positive reports whether the credit still allows new work to be taken.
// Drivers stop taking new work once credit <= 0.
func (c *Credit) Positive() bool {
	return c.value > 0
}

// BelowHardFloor reports whether the credit has fallen past the hard-negative
// floor, at which point a candidate-application loop must abort itself (not
// the whole engine run).
func (c *Credit) BelowHardFloor() bool {
	return c.value < HardFloor
}
