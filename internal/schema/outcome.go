package schema

import "fmt"

// State is the three-way verdict of a validation pass.
type State int

const (
	// StateNeutral marks blank input: nothing to evaluate yet. Neutral is
	// not an error and must never surface a diagnostic.
	StateNeutral State = iota
	// StateValid marks input that satisfies every rule.
	StateValid
	// StateInvalid marks input that violates a rule; Reason carries the
	// user-facing diagnostic.
	StateInvalid
)

// Outcome is the result of one validation pass. Outcomes are produced
// fresh on every call and never persisted.
type Outcome struct {
	State  State
	Reason string
}

// Neutral returns the outcome for blank, not-yet-evaluated input.
func Neutral() Outcome {
	return Outcome{State: StateNeutral}
}

// Valid returns a passing outcome.
func Valid() Outcome {
	return Outcome{State: StateValid}
}

// Invalid returns a failing outcome carrying the given diagnostic.
func Invalid(reason string) Outcome {
	return Outcome{State: StateInvalid, Reason: reason}
}

// Invalidf returns a failing outcome with a formatted diagnostic.
func Invalidf(format string, args ...any) Outcome {
	return Invalid(fmt.Sprintf(format, args...))
}

// Passed reports whether the outcome permits proceeding. The neutral
// state passes: empty input is distinct from invalid input.
func (o Outcome) Passed() bool {
	return o.State != StateInvalid
}

// Failed reports whether the outcome carries a diagnostic.
func (o Outcome) Failed() bool {
	return o.State == StateInvalid
}
