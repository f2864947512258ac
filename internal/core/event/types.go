package event

import "github.com/feltengine/klondike/internal/core/ecs"

// CardMoved fires after a card (or the lead card of a run) lands in a
// new stack.
type CardMoved struct {
	Card  ecs.EntityID
	From  ecs.EntityID
	To    ecs.EntityID
	Count int // run length, 1 for single moves
}

// CardFlipped fires when a card turns face-up or face-down.
type CardFlipped struct {
	Card   ecs.EntityID
	FaceUp bool
}

// StockDrawn fires when a card moves from stock to waste.
type StockDrawn struct {
	Card ecs.EntityID
}

// WasteRecycled fires when the waste pile refills the stock.
type WasteRecycled struct {
	Cards int
}

// GameWon fires once when all four foundations are complete.
type GameWon struct {
	Frames uint64
}
