package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/config"
	"github.com/feltengine/klondike/internal/core/ecs"
	coresys "github.com/feltengine/klondike/internal/core/system"
	"github.com/feltengine/klondike/internal/game"
	"github.com/feltengine/klondike/internal/resource"
	"github.com/feltengine/klondike/internal/world"
)

// ClickSystem resolves the one-frame click pulse against the board,
// routed by the hit entity's Clickable action: cards flip (or draw,
// when they cover the stock), empty draw slots deal, and empty tableau
// or foundation slots take the waste top when legal. It also services
// the keyboard draw shortcut and keeps hover flags fresh.
type ClickSystem struct {
	w   *world.World
	res *resource.Resources
	eng *game.Engine
	cfg *config.Config
	log *zap.Logger
}

func NewClickSystem(w *world.World, res *resource.Resources, eng *game.Engine, cfg *config.Config, log *zap.Logger) *ClickSystem {
	return &ClickSystem{w: w, res: res, eng: eng, cfg: cfg, log: log.Named("click")}
}

func (s *ClickSystem) Phase() coresys.Phase { return coresys.PhaseInput }
func (s *ClickSystem) Priority() int        { return 0 }

func (s *ClickSystem) Update(time.Duration) error {
	in := &s.res.Input

	s.w.Components.Clickables.Each(func(id ecs.EntityID, c *component.Clickable) {
		c.Clicked = false
		tr, trOK := s.w.Transform(id)
		r, rOK := s.w.Renderable(id)
		c.Hover = trOK && rOK && r.Visible &&
			in.PointerInRect(tr.Position.X, tr.Position.Y, r.Width, r.Height)
	})

	if in.KeyPressed(s.cfg.Game.DrawKey) {
		in.SetKey(s.cfg.Game.DrawKey, false)
		if _, err := s.eng.DrawFromStock(); err != nil {
			return err
		}
	}

	if !in.Clicked {
		return nil
	}

	id, ok := s.w.EntityAt(in.Pointer.X, in.Pointer.Y)
	if !ok {
		return nil
	}
	if c, ok := s.w.Clickable(id); ok {
		c.Clicked = true
	}
	return s.dispatch(id)
}

func (s *ClickSystem) dispatch(id ecs.EntityID) error {
	c, ok := s.w.Clickable(id)
	if !ok {
		return nil
	}
	switch c.Action.Kind {
	case component.ClickFlipCard:
		return s.cardClick(id)
	case component.ClickDrawStock, component.ClickDrawWaste:
		// Both empty slots of the draw cycle deal the next card.
		_, err := s.eng.DrawFromStock()
		return err
	case component.ClickDrawTableau:
		return s.playWaste(c.Action.Index, false)
	case component.ClickDrawFoundation:
		return s.playWaste(c.Action.Index, true)
	default:
		s.log.Debug("unhandled click", zap.Uint64("entity", uint64(id)),
			zap.Int("kind", int(c.Action.Kind)))
	}
	return nil
}

// cardClick services a card's flip action. A card sitting on the stock
// covers it and stands in for it, so the click draws; a face-down
// tableau top turns over.
func (s *ClickSystem) cardClick(id ecs.EntityID) error {
	_, st, ok := s.w.StackOf(id)
	if !ok {
		return nil
	}
	switch st.Kind {
	case component.StackStock:
		_, err := s.eng.DrawFromStock()
		return err
	case component.StackTableau:
		return s.flipTableauTop(id, st)
	}
	return nil
}

// playWaste offers the waste top to the clicked empty pile slot.
func (s *ClickSystem) playWaste(index int, foundation bool) error {
	b := s.eng.Board()
	if b == nil {
		return nil
	}
	var dest ecs.EntityID
	if foundation {
		if index < 0 || index >= len(b.Foundations) {
			return nil
		}
		dest = b.Foundations[index]
	} else {
		if index < 0 || index >= len(b.Tableaus) {
			return nil
		}
		dest = b.Tableaus[index]
	}
	_, err := s.eng.PlayWasteTo(dest)
	return err
}

// flipTableauTop turns a clicked face-down card over, but only the
// exposed top of its column. Buried cards stay hidden.
func (s *ClickSystem) flipTableauTop(card ecs.EntityID, st *component.StackContainer) error {
	top, ok := st.Top()
	if !ok || top != card {
		return nil
	}
	c, ok := s.w.Card(card)
	if !ok || c.FaceUp {
		return nil
	}
	return s.eng.FlipCard(card, true)
}
