package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/feltengine/klondike/internal/component"
	"github.com/feltengine/klondike/internal/config"
	"github.com/feltengine/klondike/internal/core/ecs"
	"github.com/feltengine/klondike/internal/core/event"
	"github.com/feltengine/klondike/internal/data"
	"github.com/feltengine/klondike/internal/world"
)

func newTestEngine(t *testing.T) (*world.World, *Engine) {
	t.Helper()
	cfg := config.Default()
	w := world.New(cfg.Game.MaxEntities)
	eng := NewEngine(w, cfg, data.DefaultLayout(), event.NewBus(), zap.NewNop())
	return w, eng
}

func mustCard(t *testing.T, e *Engine, suit, rank uint8, faceUp bool) ecs.EntityID {
	t.Helper()
	id, err := e.CreateCard(suit, rank, faceUp)
	require.NoError(t, err)
	return id
}

func TestTableauAcceptanceOnBlackFive(t *testing.T) {
	_, e := newTestEngine(t)

	dest := component.NewStack(component.StackTableau, 0)
	dest.Push(mustCard(t, e, component.SuitSpade, 4, true)) // 5♠

	tests := []struct {
		name string
		suit uint8
		rank uint8
		want bool
	}{
		{"red four of hearts", component.SuitHeart, 3, true},
		{"red four of diamonds", component.SuitDiamond, 3, true},
		{"black four", component.SuitClub, 3, false},
		{"red three", component.SuitHeart, 2, false},
		{"red five", component.SuitHeart, 4, false},
		{"red six", component.SuitDiamond, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := mustCard(t, e, tt.suit, tt.rank, true)
			require.Equal(t, tt.want, e.CanStackOnTableau(card, dest))
		})
	}
}

func TestEmptyTableauTakesOnlyKings(t *testing.T) {
	_, e := newTestEngine(t)
	dest := component.NewStack(component.StackTableau, 3)

	king := mustCard(t, e, component.SuitHeart, component.RankKing, true)
	queen := mustCard(t, e, component.SuitHeart, 11, true)
	require.True(t, e.CanStackOnTableau(king, dest))
	require.False(t, e.CanStackOnTableau(queen, dest))
}

func TestFaceDownCardsNeverStack(t *testing.T) {
	_, e := newTestEngine(t)

	dest := component.NewStack(component.StackTableau, 0)
	faceDownKing := mustCard(t, e, component.SuitSpade, component.RankKing, false)
	require.False(t, e.CanStackOnTableau(faceDownKing, dest))

	// A face-down destination top blocks stacking too.
	dest.Push(mustCard(t, e, component.SuitSpade, 4, false))
	redFour := mustCard(t, e, component.SuitHeart, 3, true)
	require.False(t, e.CanStackOnTableau(redFour, dest))
}

func TestFoundationAcceptance(t *testing.T) {
	_, e := newTestEngine(t)

	empty := component.NewStack(component.StackFoundation, int(component.SuitClub))
	clubAce := mustCard(t, e, component.SuitClub, component.RankAce, true)
	heartAce := mustCard(t, e, component.SuitHeart, component.RankAce, true)
	clubTwo := mustCard(t, e, component.SuitClub, 1, true)

	require.True(t, e.CanStackOnFoundation(clubAce, empty))
	require.False(t, e.CanStackOnFoundation(heartAce, empty), "suit must match the slot")
	require.False(t, e.CanStackOnFoundation(clubTwo, empty), "only aces start a foundation")

	started := component.NewStack(component.StackFoundation, int(component.SuitClub))
	started.Push(clubAce)
	require.True(t, e.CanStackOnFoundation(clubTwo, started))
	require.False(t, e.CanStackOnFoundation(mustCard(t, e, component.SuitClub, 2, true), started))
	require.False(t, e.CanStackOnFoundation(mustCard(t, e, component.SuitHeart, 1, true), started))
}

func TestWinnable(t *testing.T) {
	_, e := newTestEngine(t)
	assert := func(want bool) {
		t.Helper()
		require.Equal(t, want, e.Winnable())
	}

	mustCard(t, e, component.SuitHeart, 3, true)
	assert(true)

	down := mustCard(t, e, component.SuitSpade, 7, false)
	assert(false)

	require.NoError(t, e.FlipCard(down, true))
	assert(true)
}

func TestCanDropRejectsStockAndWaste(t *testing.T) {
	_, e := newTestEngine(t)
	card := mustCard(t, e, component.SuitSpade, component.RankKing, true)

	require.False(t, e.CanDrop(card, component.NewStack(component.StackStock, 0)))
	require.False(t, e.CanDrop(card, component.NewStack(component.StackWaste, 0)))
}
