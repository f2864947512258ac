package component

import "github.com/feltengine/klondike/internal/core/ecs"

// StackKind is the role a card pile plays on the board.
type StackKind uint8

const (
	StackStock StackKind = iota
	StackWaste
	StackTableau
	StackFoundation
	StackHand // transient, cards mid-gesture
)

func (k StackKind) String() string {
	switch k {
	case StackStock:
		return "Stock"
	case StackWaste:
		return "Waste"
	case StackTableau:
		return "Tableau"
	case StackFoundation:
		return "Foundation"
	case StackHand:
		return "Hand"
	}
	return "Unknown"
}

// FoundationCap is the card count of a finished foundation (ace..king).
const FoundationCap = 13

// StackContainer is an ordered pile of card entities. Index 0 is the
// bottom, the last element the top. A card belongs to at most one stack
// at any time.
type StackContainer struct {
	Kind     StackKind
	Slot     int // tableau column or foundation suit, unused otherwise
	Cards    []ecs.EntityID
	MaxCards int // 0 = unlimited
}

func NewStack(kind StackKind, slot int) *StackContainer {
	s := &StackContainer{Kind: kind, Slot: slot}
	if kind == StackFoundation {
		s.MaxCards = FoundationCap
	}
	return s
}

func (s *StackContainer) Push(id ecs.EntityID) {
	s.Cards = append(s.Cards, id)
}

// PopTop removes and returns the top card.
func (s *StackContainer) PopTop() (ecs.EntityID, bool) {
	if len(s.Cards) == 0 {
		return 0, false
	}
	top := s.Cards[len(s.Cards)-1]
	s.Cards = s.Cards[:len(s.Cards)-1]
	return top, true
}

func (s *StackContainer) Top() (ecs.EntityID, bool) {
	if len(s.Cards) == 0 {
		return 0, false
	}
	return s.Cards[len(s.Cards)-1], true
}

// IndexOf returns the card's position in the stack, or -1.
func (s *StackContainer) IndexOf(id ecs.EntityID) int {
	for i, c := range s.Cards {
		if c == id {
			return i
		}
	}
	return -1
}

func (s *StackContainer) Contains(id ecs.EntityID) bool {
	return s.IndexOf(id) >= 0
}

// RemoveCard deletes the card from the sequence, preserving order.
// Returns false if the card is not present.
func (s *StackContainer) RemoveCard(id ecs.EntityID) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.Cards = append(s.Cards[:i], s.Cards[i+1:]...)
	return true
}

// CardsFrom returns a copy of the sequence from index i to the top.
func (s *StackContainer) CardsFrom(i int) []ecs.EntityID {
	if i < 0 || i >= len(s.Cards) {
		return nil
	}
	out := make([]ecs.EntityID, len(s.Cards)-i)
	copy(out, s.Cards[i:])
	return out
}

// RemoveFrom truncates the stack at index i and returns the removed
// slice, bottom to top.
func (s *StackContainer) RemoveFrom(i int) []ecs.EntityID {
	removed := s.CardsFrom(i)
	if removed != nil {
		s.Cards = s.Cards[:i]
	}
	return removed
}

func (s *StackContainer) Len() int {
	return len(s.Cards)
}

func (s *StackContainer) Empty() bool {
	return len(s.Cards) == 0
}

func (s *StackContainer) ClearCards() {
	s.Cards = s.Cards[:0]
}
