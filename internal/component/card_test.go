package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardColorDerivedFromSuit(t *testing.T) {
	for suit := uint8(0); suit < 4; suit++ {
		for rank := RankAce; rank <= RankKing; rank++ {
			c := NewCard(suit, rank)
			wantRed := suit == SuitHeart || suit == SuitDiamond
			assert.Equal(t, wantRed, c.IsRed(), "suit %d rank %d", suit, rank)
			assert.Equal(t, !wantRed, c.IsBlack())
		}
	}
}

func TestCardColorSurvivesFlips(t *testing.T) {
	c := NewCard(SuitSpade, RankKing)
	assert.True(t, c.IsBlack())

	c.FaceUp = true
	assert.True(t, c.IsBlack())
	c.FaceUp = false
	assert.True(t, c.IsBlack())
}

func TestCardSymbols(t *testing.T) {
	assert.Equal(t, "A", NewCard(SuitHeart, RankAce).RankSymbol())
	assert.Equal(t, "10", NewCard(SuitHeart, 9).RankSymbol())
	assert.Equal(t, "K", NewCard(SuitHeart, RankKing).RankSymbol())
	assert.Equal(t, "♥", NewCard(SuitHeart, RankAce).SuitSymbol())
	assert.Equal(t, "♠", NewCard(SuitSpade, RankAce).SuitSymbol())
}
