package game

import (
	"go.uber.org/zap"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/config"
	"github.com/feltengine/klondike/internal/core/ecs"
	"github.com/feltengine/klondike/internal/core/event"
	"github.com/feltengine/klondike/internal/data"
	"github.com/feltengine/klondike/internal/world"
)

// Engine owns the Klondike rules: move legality, the stock/waste cycle,
// win detection and the auto-complete pass. It mutates the world only
// through the stack containers and the typed component accessors, so
// every board change stays consistent with exclusive stack membership.
type Engine struct {
	w      *world.World
	cfg    *config.Config
	layout *data.Layout
	bus    *event.Bus
	log    *zap.Logger

	board *Board
}

func NewEngine(w *world.World, cfg *config.Config, layout *data.Layout, bus *event.Bus, log *zap.Logger) *Engine {
	return &Engine{
		w:      w,
		cfg:    cfg,
		layout: layout,
		bus:    bus,
		log:    log.Named("rules"),
	}
}

// Board returns the pile handles of the current deal, nil before Setup.
func (e *Engine) Board() *Board {
	return e.board
}

// CanStackOnTableau reports whether the card may land on the tableau
// pile. An empty column takes only a king; otherwise colors must
// alternate and the rank descend by exactly one. Face-down cards are
// never legal to move.
func (e *Engine) CanStackOnTableau(card ecs.EntityID, dest *component.StackContainer) bool {
	moving, ok := e.w.Card(card)
	if !ok || !moving.FaceUp {
		return false
	}
	topID, ok := dest.Top()
	if !ok {
		return moving.Rank == component.RankKing
	}
	top, ok := e.w.Card(topID)
	if !ok || !top.FaceUp {
		return false
	}
	return moving.IsRed() != top.IsRed() && top.Rank == moving.Rank+1
}

// CanStackOnFoundation reports whether the card may land on the
// foundation pile. An empty foundation takes the ace of its suit;
// afterwards the suit must match and the rank ascend by exactly one.
func (e *Engine) CanStackOnFoundation(card ecs.EntityID, dest *component.StackContainer) bool {
	moving, ok := e.w.Card(card)
	if !ok || !moving.FaceUp {
		return false
	}
	topID, ok := dest.Top()
	if !ok {
		return moving.Rank == component.RankAce && int(moving.Suit) == dest.Slot
	}
	top, ok := e.w.Card(topID)
	if !ok {
		return false
	}
	return moving.Suit == top.Suit && moving.Rank == top.Rank+1
}

// CanDrop reports whether the card may land on the destination stack,
// dispatching on the pile's role. Stock and waste never accept drops.
func (e *Engine) CanDrop(card ecs.EntityID, dest *component.StackContainer) bool {
	switch dest.Kind {
	case component.StackTableau:
		return e.CanStackOnTableau(card, dest)
	case component.StackFoundation:
		return e.CanStackOnFoundation(card, dest)
	}
	return false
}

// Winnable reports whether the game is trivially completable: every
// card is face-up, so repeated auto-complete passes can always finish.
func (e *Engine) Winnable() bool {
	winnable := true
	e.w.Components.Cards.Each(func(_ ecs.EntityID, c *component.CardIdentity) {
		if !c.FaceUp {
			winnable = false
		}
	})
	return winnable
}

// CheckWin reports whether all four foundations are complete, king on
// top. Counting alone is not trusted; the top rank is verified too.
func (e *Engine) CheckWin() bool {
	if e.board == nil {
		return false
	}
	for _, fid := range e.board.Foundations {
		st, ok := e.w.Stack(fid)
		if !ok || st.Len() != component.FoundationCap {
			return false
		}
		topID, _ := st.Top()
		top, ok := e.w.Card(topID)
		if !ok || top.Rank != component.RankKing {
			return false
		}
	}
	return true
}
