package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/config"
	"github.com/feltengine/klondike/internal/core/ecs"
	"github.com/feltengine/klondike/internal/core/event"
	"github.com/feltengine/klondike/internal/data"
	"github.com/feltengine/klondike/internal/world"
)

func (e *Engine) anchorFor(st *component.StackContainer) data.Anchor {
	switch st.Kind {
	case component.StackStock:
		return e.layout.Stock
	case component.StackWaste:
		return e.layout.Waste
	case component.StackTableau:
		return e.layout.TableauAnchor(st.Slot)
	case component.StackFoundation:
		return e.layout.FoundationAnchor(st.Slot)
	}
	return data.Anchor{}
}

// placeCard pins the card's transform to its slot in the stack. Tableau
// piles fan downwards; every other pile keeps its cards flush. Z equals
// the stack index so later cards draw on top and win hit tests.
func (e *Engine) placeCard(card ecs.EntityID, st *component.StackContainer, idx int) {
	tr, ok := e.w.Transform(card)
	if !ok {
		return
	}
	a := e.anchorFor(st)
	y := a.Y
	if st.Kind == component.StackTableau {
		y += float64(idx) * e.cfg.Board.StackOffsetY
	}
	tr.Position = component.Vec2{X: a.X, Y: y}
	tr.Z = idx
}

// restack repositions every card in the pile. Used after bulk changes
// like a recycle.
func (e *Engine) restack(st *component.StackContainer) {
	for i, c := range st.Cards {
		e.placeCard(c, st, i)
	}
}

// FlipCard turns a card over. Face-up cards are draggable, face-down
// cards are not; the component follows the flip.
func (e *Engine) FlipCard(card ecs.EntityID, faceUp bool) error {
	c, ok := e.w.Card(card)
	if !ok {
		return fmt.Errorf("flip: %w: %d", ecs.ErrNoSuchEntity, card)
	}
	if c.FaceUp == faceUp {
		return nil
	}
	c.FaceUp = faceUp
	if faceUp {
		if !e.w.Components.Draggables.Has(card) {
			if err := world.AddComponent(e.w, e.w.Components.Draggables, card, component.NewDraggable()); err != nil {
				return err
			}
		}
	} else {
		e.w.Components.Draggables.Remove(card)
	}
	event.Emit(e.bus, event.CardFlipped{Card: card, FaceUp: faceUp})
	return nil
}

// revealTop flips the exposed top of a tableau pile face-up, when the
// auto-reveal rule is on.
func (e *Engine) revealTop(st *component.StackContainer) error {
	if st.Kind != component.StackTableau || !e.cfg.Rules.AutoReveal {
		return nil
	}
	topID, ok := st.Top()
	if !ok {
		return nil
	}
	top, ok := e.w.Card(topID)
	if !ok || top.FaceUp {
		return nil
	}
	return e.FlipCard(topID, true)
}

// MoveSingle transfers one card between piles. Legality is the caller's
// concern; the engine only keeps membership exclusive. Returns false
// when the card is not in the source pile.
func (e *Engine) MoveSingle(card, fromID, toID ecs.EntityID) (bool, error) {
	from, ok := e.w.Stack(fromID)
	if !ok {
		return false, fmt.Errorf("move: source %w: %d", ecs.ErrNoSuchEntity, fromID)
	}
	to, ok := e.w.Stack(toID)
	if !ok {
		return false, fmt.Errorf("move: destination %w: %d", ecs.ErrNoSuchEntity, toID)
	}
	if !from.RemoveCard(card) {
		return false, nil
	}
	to.Push(card)
	e.placeCard(card, to, to.Len()-1)
	e.restack(from)
	if err := e.revealTop(from); err != nil {
		return false, err
	}
	event.Emit(e.bus, event.CardMoved{Card: card, From: fromID, To: toID, Count: 1})
	return true, nil
}

// MoveRun transfers the contiguous run from lead to the top of its pile
// onto the destination. The lead card is checked against the target
// rules; the run itself is trusted to be well-formed, which holds for
// any run picked off a legal board. Foundations take single cards only.
func (e *Engine) MoveRun(lead, fromID, toID ecs.EntityID) (bool, error) {
	from, ok := e.w.Stack(fromID)
	if !ok {
		return false, fmt.Errorf("move run: source %w: %d", ecs.ErrNoSuchEntity, fromID)
	}
	to, ok := e.w.Stack(toID)
	if !ok {
		return false, fmt.Errorf("move run: destination %w: %d", ecs.ErrNoSuchEntity, toID)
	}
	i := from.IndexOf(lead)
	if i < 0 {
		return false, nil
	}
	runLen := from.Len() - i
	if to.Kind == component.StackFoundation && runLen > 1 {
		return false, nil
	}
	if !e.CanDrop(lead, to) {
		return false, nil
	}
	run := from.RemoveFrom(i)
	for _, c := range run {
		to.Push(c)
		e.placeCard(c, to, to.Len()-1)
	}
	e.restack(from)
	if err := e.revealTop(from); err != nil {
		return false, err
	}
	event.Emit(e.bus, event.CardMoved{Card: lead, From: fromID, To: toID, Count: runLen})
	return true, nil
}

// DrawFromStock moves the top stock card face-up onto the waste. An
// empty stock recycles the waste instead; the next click draws again.
func (e *Engine) DrawFromStock() (bool, error) {
	if e.board == nil {
		return false, nil
	}
	stock, ok := e.w.Stack(e.board.Stock)
	if !ok {
		return false, fmt.Errorf("draw: stock %w: %d", ecs.ErrNoSuchEntity, e.board.Stock)
	}
	if stock.Empty() {
		return e.RecycleWasteIntoStock()
	}
	waste, ok := e.w.Stack(e.board.Waste)
	if !ok {
		return false, fmt.Errorf("draw: waste %w: %d", ecs.ErrNoSuchEntity, e.board.Waste)
	}
	card, _ := stock.PopTop()
	waste.Push(card)
	if err := e.FlipCard(card, true); err != nil {
		return false, err
	}
	e.placeCard(card, waste, waste.Len()-1)
	event.Emit(e.bus, event.StockDrawn{Card: card})
	return true, nil
}

// RecycleWasteIntoStock refills an exhausted stock from the waste, all
// cards face-down. The order policy is configured: "preserve" keeps the
// waste sequence, "reverse" flips it so a second pass deals the cards
// in their first-pass order.
func (e *Engine) RecycleWasteIntoStock() (bool, error) {
	if e.board == nil {
		return false, nil
	}
	stock, _ := e.w.Stack(e.board.Stock)
	waste, _ := e.w.Stack(e.board.Waste)
	if stock == nil || waste == nil || !stock.Empty() || waste.Empty() {
		return false, nil
	}
	cards := waste.RemoveFrom(0)
	if e.cfg.Rules.RecycleOrder == config.RecycleReverse {
		for l, r := 0, len(cards)-1; l < r; l, r = l+1, r-1 {
			cards[l], cards[r] = cards[r], cards[l]
		}
	}
	for _, c := range cards {
		if err := e.FlipCard(c, false); err != nil {
			return false, err
		}
		stock.Push(c)
	}
	e.restack(stock)
	e.log.Debug("waste recycled", zap.Int("cards", len(cards)),
		zap.String("order", e.cfg.Rules.RecycleOrder))
	event.Emit(e.bus, event.WasteRecycled{Cards: len(cards)})
	return true, nil
}

// PlayWasteTo offers the waste top to the destination pile, moving it
// when the target rules allow. Serves the click path on empty pile
// slots.
func (e *Engine) PlayWasteTo(dest ecs.EntityID) (bool, error) {
	if e.board == nil {
		return false, nil
	}
	waste, ok := e.w.Stack(e.board.Waste)
	if !ok {
		return false, fmt.Errorf("play: waste %w: %d", ecs.ErrNoSuchEntity, e.board.Waste)
	}
	top, ok := waste.Top()
	if !ok {
		return false, nil
	}
	to, ok := e.w.Stack(dest)
	if !ok {
		return false, fmt.Errorf("play: destination %w: %d", ecs.ErrNoSuchEntity, dest)
	}
	if !e.CanDrop(top, to) {
		return false, nil
	}
	return e.MoveSingle(top, e.board.Waste, dest)
}

// AutoComplete runs one greedy pass: every tableau top and the waste
// top are offered to the foundations. Returns the number of cards
// moved; callers loop until it reports zero.
func (e *Engine) AutoComplete() (int, error) {
	if e.board == nil {
		return 0, nil
	}
	moved := 0
	sources := make([]ecs.EntityID, 0, 8)
	sources = append(sources, e.board.Tableaus[:]...)
	sources = append(sources, e.board.Waste)
	for _, srcID := range sources {
		src, ok := e.w.Stack(srcID)
		if !ok {
			continue
		}
		topID, ok := src.Top()
		if !ok {
			continue
		}
		for _, fid := range e.board.Foundations {
			f, ok := e.w.Stack(fid)
			if !ok || !e.CanStackOnFoundation(topID, f) {
				continue
			}
			did, err := e.MoveSingle(topID, srcID, fid)
			if err != nil {
				return moved, err
			}
			if did {
				moved++
			}
			break
		}
	}
	return moved, nil
}
