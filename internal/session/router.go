package session

// State is the router's position in its two-state machine.
type State uint8

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	if s == Terminating {
		return "Terminating"
	}
	return "Running"
}

// Trans is the signal returned to the host loop after each event.
type Trans uint8

const (
	Continue Trans = iota
	Quit
)

func (t Trans) String() string {
	if t == Quit {
		return "Quit"
	}
	return "Continue"
}

// Router ends the session on a single press of the exit key. Releases,
// other keys and non-keyboard events are inert; modifier and repeat flags
// are ignored. Once Terminating it stays there and ignores all input.
type Router struct {
	ExitKey Key
	state   State
}

func NewRouter(exit Key) *Router {
	return &Router{ExitKey: exit, state: Running}
}

func (r *Router) State() State {
	return r.state
}

// Done reports whether the router has reached Terminating.
func (r *Router) Done() bool {
	return r.state == Terminating
}

// Handle consumes one event. Only the transition into Terminating returns
// Quit; later events return Continue and leave the state alone.
func (r *Router) Handle(ev Event) Trans {
	if r.state == Terminating {
		return Continue
	}
	if r.isExit(ev) {
		r.state = Terminating
		return Quit
	}
	return Continue
}

func (r *Router) isExit(ev Event) bool {
	we, ok := ev.(WindowEvent)
	if !ok || we.Kind != WindowKeyboardInput {
		return false
	}
	in := we.Input
	return in.State == Pressed && in.Key == r.ExitKey && r.ExitKey != KeyNull
}
