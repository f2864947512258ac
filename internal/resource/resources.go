package resource

// Resources is the fixed set of cross-cutting singletons shared by the
// systems. The set is known ahead of time, so it is an explicit struct
// rather than a type-keyed registry; each system receives a pointer at
// construction.
type Resources struct {
	Input   InputState
	Time    TimeInfo
	Game    GameState
	Network NetworkState
}

func New(targetFPS int) *Resources {
	return &Resources{
		Input: InputState{
			Keys: make(map[string]bool),
		},
		Time: TimeInfo{
			TargetFPS: targetFPS,
		},
		Game: StateTitle,
	}
}
