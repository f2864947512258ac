package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // pointer/keyboard handling
	PhasePreUpdate               // state derived from fresh input
	PhaseUpdate                  // game logic
	PhasePostUpdate              // bookkeeping after logic
	PhaseRender                  // read-only painting
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "Input"
	case PhasePreUpdate:
		return "PreUpdate"
	case PhaseUpdate:
		return "Update"
	case PhasePostUpdate:
		return "PostUpdate"
	case PhaseRender:
		return "Render"
	}
	return "Unknown"
}

// System is the interface every update routine implements. Within a
// phase, lower Priority runs first. A returned error aborts the
// remainder of the current tick.
type System interface {
	Phase() Phase
	Priority() int
	Update(dt time.Duration) error
}
