package seat

type State string

const (
	StateAvailable State = "available"
	StateHeld      State = "held"
	StateConfirmed State = "confirmed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateAvailable, StateHeld, StateConfirmed:
		return true
	default:
		return false
	}
}

func NewState(s string) (State, error) {
	state := State(s)
	if !state.IsValid() {
		return "", ErrInvalidState
	}
	return state, nil
}
