package server

// State is the lifecycle state of an [HTTPServer].
type State int

const (
	// StateStarting is the state before the socket is bound.
	StateStarting State = iota
	// StateListening is entered once the socket is bound.
	StateListening
	// StateStopped is entered after Shutdown.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateListening:
		return "listening"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
