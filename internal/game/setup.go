package game

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/core/ecs"
	"github.com/feltengine/klondike/internal/world"
)

// Board holds the pile entities of one deal.
type Board struct {
	Stock       ecs.EntityID
	Waste       ecs.EntityID
	Foundations [4]ecs.EntityID
	Tableaus    [7]ecs.EntityID
}

func (e *Engine) createStack(kind component.StackKind, slot int) (ecs.EntityID, error) {
	id, err := e.w.CreateEntity()
	if err != nil {
		return 0, err
	}
	st := component.NewStack(kind, slot)
	b := e.cfg.Board
	a := e.anchorFor(st)

	tr := component.NewTransform(a.X, a.Y).WithZ(-1)
	if err := world.AddComponent(e.w, e.w.Components.Transforms, id, tr); err != nil {
		return 0, err
	}
	if err := world.AddComponent(e.w, e.w.Components.Stacks, id, st); err != nil {
		return 0, err
	}

	// Tableau drop zones extend downwards so a fanned-out pile is still
	// targetable past its anchor.
	w, h := b.CardWidth, b.CardHeight
	if kind == component.StackTableau {
		h += 12 * b.StackOffsetY
	}
	if err := world.AddComponent(e.w, e.w.Components.Renderables, id,
		component.NewRectRenderable(b.CardWidth, b.CardHeight, "", "outline")); err != nil {
		return 0, err
	}
	if kind == component.StackTableau || kind == component.StackFoundation {
		if err := world.AddComponent(e.w, e.w.Components.Droppables, id,
			component.NewDroppable(w, h)); err != nil {
			return 0, err
		}
	}
	if err := world.AddComponent(e.w, e.w.Components.Clickables, id,
		component.NewClickable(pileAction(kind, slot))); err != nil {
		return 0, err
	}
	return id, nil
}

// pileAction is the click handler of a pile's base entity, reachable
// when no card covers it.
func pileAction(kind component.StackKind, slot int) component.ClickAction {
	switch kind {
	case component.StackWaste:
		return component.ClickAction{Kind: component.ClickDrawWaste}
	case component.StackTableau:
		return component.ClickAction{Kind: component.ClickDrawTableau, Index: slot}
	case component.StackFoundation:
		return component.ClickAction{Kind: component.ClickDrawFoundation, Index: slot}
	}
	return component.ClickAction{Kind: component.ClickDrawStock}
}

// SetupBoard deals a fresh game: pile entities first, then 52 shuffled
// cards laid out as 1..7 per tableau column with the top card face-up
// and the remaining 24 face-down on the stock.
func (e *Engine) SetupBoard(rng *rand.Rand) (*Board, error) {
	board := &Board{}
	var err error

	if board.Stock, err = e.createStack(component.StackStock, 0); err != nil {
		return nil, err
	}
	if board.Waste, err = e.createStack(component.StackWaste, 0); err != nil {
		return nil, err
	}
	for i := range board.Foundations {
		if board.Foundations[i], err = e.createStack(component.StackFoundation, i); err != nil {
			return nil, err
		}
	}
	for i := range board.Tableaus {
		if board.Tableaus[i], err = e.createStack(component.StackTableau, i); err != nil {
			return nil, err
		}
	}

	deck, err := e.CreateDeck()
	if err != nil {
		return nil, err
	}
	Shuffle(deck, rng)

	next := 0
	for col := 0; col < 7; col++ {
		st, _ := e.w.Stack(board.Tableaus[col])
		for row := 0; row <= col; row++ {
			card := deck[next]
			next++
			st.Push(card)
			e.placeCard(card, st, st.Len()-1)
		}
		top, _ := st.Top()
		if err := e.FlipCard(top, true); err != nil {
			return nil, err
		}
	}

	stock, _ := e.w.Stack(board.Stock)
	for ; next < len(deck); next++ {
		stock.Push(deck[next])
		e.placeCard(deck[next], stock, stock.Len()-1)
	}

	e.board = board
	e.log.Info("board dealt",
		zap.Int("stock", stock.Len()),
		zap.Int("entities", e.w.EntityCount()))
	return board, nil
}
