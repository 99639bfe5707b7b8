package recipe

// State is the page's position in the submit flow.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateDone
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StateDone:
		return "Done"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}
