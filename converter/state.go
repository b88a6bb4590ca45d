package converter

import "errors"

// ErrBusy is returned when a conversion is requested while another one is in flight.
var ErrBusy = errors.New("conversion already in progress")

// State guards against starting a conversion while one is running.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Begin moves an idle state to running.
func Begin(s State) (State, error) {
	if s == Running {
		return s, ErrBusy
	}
	return Running, nil
}

// Done releases the guard.
func Done(State) State {
	return Idle
}
