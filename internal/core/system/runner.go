package system

import (
	"fmt"
	"sort"
	"time"
)

// Runner executes systems in (Phase, Priority) order each tick.
type Runner struct {
	systems []System
	sorted  bool
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// Tick runs every system once. The first error aborts the remainder of
// the tick and is returned to the caller, which is expected to log it
// and skip the frame.
func (r *Runner) Tick(dt time.Duration) error {
	r.ensureSorted()
	for _, s := range r.systems {
		if err := s.Update(dt); err != nil {
			return fmt.Errorf("%s system %T: %w", s.Phase(), s, err)
		}
	}
	return nil
}

// TickPhase runs only the systems of one phase. Used by external
// drivers that need a phase in isolation.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) error {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() != phase {
			continue
		}
		if err := s.Update(dt); err != nil {
			return fmt.Errorf("%s system %T: %w", phase, s, err)
		}
	}
	return nil
}

// Len returns the number of registered systems.
func (r *Runner) Len() int {
	return len(r.systems)
}

func (r *Runner) ensureSorted() {
	if r.sorted {
		return
	}
	// Stable: systems with equal phase and priority keep registration order.
	sort.SliceStable(r.systems, func(i, j int) bool {
		if r.systems[i].Phase() != r.systems[j].Phase() {
			return r.systems[i].Phase() < r.systems[j].Phase()
		}
		return r.systems[i].Priority() < r.systems[j].Priority()
	})
	r.sorted = true
}
