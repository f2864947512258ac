package resource

// GameState is the coarse phase of the surrounding game shell.
type GameState int

const (
	StateTitle GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateClear
)

func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateClear:
		return "Clear"
	}
	return "Unknown"
}

// NetworkState is a placeholder resource. Multiplayer synchronization
// is out of scope; the shell may still surface connection status.
type NetworkState struct {
	Connected   bool
	PlayerID    string
	Peers       []string
	LastError   string
	LastMessage float64
}
