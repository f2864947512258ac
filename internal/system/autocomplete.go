package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/feltengine/klondike/internal/config"
	coresys "github.com/feltengine/klondike/internal/core/system"
	"github.com/feltengine/klondike/internal/game"
	"github.com/feltengine/klondike/internal/resource"
)

// AutoCompleteSystem services the auto-complete key: it drives the
// engine's greedy pass to a fixed point, sending every immediately
// playable card to its foundation.
type AutoCompleteSystem struct {
	res *resource.Resources
	eng *game.Engine
	cfg *config.Config
	log *zap.Logger
}

func NewAutoCompleteSystem(res *resource.Resources, eng *game.Engine, cfg *config.Config, log *zap.Logger) *AutoCompleteSystem {
	return &AutoCompleteSystem{res: res, eng: eng, cfg: cfg, log: log.Named("autocomplete")}
}

func (s *AutoCompleteSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }
func (s *AutoCompleteSystem) Priority() int        { return 0 }

func (s *AutoCompleteSystem) Update(time.Duration) error {
	in := &s.res.Input
	if !in.KeyPressed(s.cfg.Game.AutoCompleteKey) {
		return nil
	}
	in.SetKey(s.cfg.Game.AutoCompleteKey, false)

	total := 0
	for {
		moved, err := s.eng.AutoComplete()
		if err != nil {
			return err
		}
		if moved == 0 {
			break
		}
		total += moved
	}
	if total > 0 {
		s.log.Info("auto-complete", zap.Int("moved", total))
	}
	return nil
}
