package game

import (
	"math/rand"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/core/ecs"
	"github.com/feltengine/klondike/internal/world"
)

// CreateCard spawns a single card entity with its full component set.
// Face-down cards carry no Draggable; FlipCard attaches one when the
// card turns over.
func (e *Engine) CreateCard(suit, rank uint8, faceUp bool) (ecs.EntityID, error) {
	id, err := e.w.CreateEntity()
	if err != nil {
		return 0, err
	}
	card := component.NewCard(suit, rank)
	card.FaceUp = faceUp

	b := e.cfg.Board
	if err := world.AddComponent(e.w, e.w.Components.Transforms, id, component.NewTransform(0, 0)); err != nil {
		return 0, err
	}
	if err := world.AddComponent(e.w, e.w.Components.Cards, id, card); err != nil {
		return 0, err
	}
	if err := world.AddComponent(e.w, e.w.Components.Renderables, id, component.NewCardRenderable(b.CardWidth, b.CardHeight)); err != nil {
		return 0, err
	}
	if err := world.AddComponent(e.w, e.w.Components.Clickables, id, component.NewClickable(component.ClickAction{Kind: component.ClickFlipCard})); err != nil {
		return 0, err
	}
	if faceUp {
		if err := world.AddComponent(e.w, e.w.Components.Draggables, id, component.NewDraggable()); err != nil {
			return 0, err
		}
	}
	return id, nil
}

// CreateDeck spawns all 52 cards face-down, in suit-major order.
func (e *Engine) CreateDeck() ([]ecs.EntityID, error) {
	deck := make([]ecs.EntityID, 0, 52)
	for suit := uint8(0); suit < 4; suit++ {
		for rank := component.RankAce; rank <= component.RankKing; rank++ {
			id, err := e.CreateCard(suit, rank, false)
			if err != nil {
				return nil, err
			}
			deck = append(deck, id)
		}
	}
	return deck, nil
}

// Shuffle permutes the deck in place with the given source, which the
// caller seeds. Tests pass a fixed seed for reproducible deals.
func Shuffle(deck []ecs.EntityID, rng *rand.Rand) {
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
