package domain

// Outcome is the classified result of a single test case.
// The zero value is deliberately not one of the four outcomes: it marks a
// case whose result markers could not be classified.
type Outcome int

const (
	// Success means the case carried no result marker
	Success Outcome = iota + 1
	// Skipped means the case was explicitly skipped
	Skipped
	// Failure means an assertion failed
	Failure
	// Error means the case hit an unexpected error
	Error
)

// Outcomes lists every valid outcome in display order
var Outcomes = []Outcome{Success, Skipped, Failure, Error}

// Valid reports whether o is one of the four known outcomes
func (o Outcome) Valid() bool {
	return o >= Success && o <= Error
}

// String returns the display label of the outcome, "???" for anything unknown
func (o Outcome) String() string {
	switch o {
	case Success:
		return "Success"
	case Skipped:
		return "Skipped"
	case Failure:
		return "Failure"
	case Error:
		return "Error"
	default:
		return "???"
	}
}
