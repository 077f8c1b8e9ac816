package runner

// Runner states, in the order a run moves through them.
const (
	Initializing State = iota
	Parsing
	Validating
	Executing
	Terminated
)

// State is the phase a Runner is in.
type State int

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Parsing:
		return "parsing"
	case Validating:
		return "validating"
	case Executing:
		return "executing"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
