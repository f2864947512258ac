package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/feltengine/klondike/internal/core/event"
	coresys "github.com/feltengine/klondike/internal/core/system"
	"github.com/feltengine/klondike/internal/game"
	"github.com/feltengine/klondike/internal/resource"
)

// WinSystem watches the foundations and flips the game state to Clear
// once all four are complete. Fires the GameWon event exactly once.
type WinSystem struct {
	res *resource.Resources
	eng *game.Engine
	bus *event.Bus
	log *zap.Logger
}

func NewWinSystem(res *resource.Resources, eng *game.Engine, bus *event.Bus, log *zap.Logger) *WinSystem {
	return &WinSystem{res: res, eng: eng, bus: bus, log: log.Named("win")}
}

func (s *WinSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }
func (s *WinSystem) Priority() int        { return 100 }

func (s *WinSystem) Update(time.Duration) error {
	if s.res.Game != resource.StatePlaying {
		return nil
	}
	if !s.eng.CheckWin() {
		return nil
	}
	s.res.Game = resource.StateClear
	event.Emit(s.bus, event.GameWon{Frames: s.res.Time.Frames})
	s.log.Info("game won", zap.Uint64("frames", s.res.Time.Frames))
	return nil
}
