package component

// Suits, 0..3. Hearts and diamonds are red, clubs and spades black.
const (
	SuitHeart uint8 = iota
	SuitDiamond
	SuitClub
	SuitSpade
)

// Ranks run 0..12: ace through king.
const (
	RankAce  uint8 = 0
	RankKing uint8 = 12
)

var suitSymbols = [4]string{"♥", "♦", "♣", "♠"}

var rankSymbols = [13]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// CardIdentity identifies one playing card. Color is derived from the
// suit at construction and never changes afterwards, regardless of
// face-up flips.
type CardIdentity struct {
	Suit   uint8
	Rank   uint8
	FaceUp bool
	red    bool
}

func NewCard(suit, rank uint8) *CardIdentity {
	return &CardIdentity{
		Suit: suit,
		Rank: rank,
		red:  suit < 2,
	}
}

func (c *CardIdentity) IsRed() bool {
	return c.red
}

func (c *CardIdentity) IsBlack() bool {
	return !c.red
}

// RankSymbol returns the display glyph for the rank (A, 2..10, J, Q, K).
func (c *CardIdentity) RankSymbol() string {
	return rankSymbols[c.Rank]
}

// SuitSymbol returns the display glyph for the suit.
func (c *CardIdentity) SuitSymbol() string {
	return suitSymbols[c.Suit]
}
