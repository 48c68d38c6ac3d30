package app

import (
	"context"
	"testing"

	"bftcg/internal/catalog"
	"bftcg/internal/domain"
	"bftcg/internal/ports"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEconomy records wallet updates for assertions.
type fakeEconomy struct {
	updates []ports.WalletUpdate
}

func (f *fakeEconomy) UpdateBalances(ctx context.Context, updates []ports.WalletUpdate) error {
	f.updates = append(f.updates, updates...)
	return nil
}

func testProvider() *catalog.MemoryProvider {
	vehicles := []domain.VehicleCard{
		{
			Code: "pump", Name: "Pumper", CostEnergy: 2, CostCrew: 1,
			Stats: domain.StatVector{domain.AxisFire: 3}, Theme: domain.ThemeFire,
			Rarity: domain.RarityCommon, Weight: 10,
		},
	}
	incidents := []domain.IncidentCard{
		{
			Code: "blaze", Name: "Apartment Fire", Reward: 3, TimeLeft: 2,
			Requirements: domain.StatVector{domain.AxisFire: 3}, Tags: []string{"fire"},
		},
	}
	return catalog.NewMemoryProvider(nil, vehicles, incidents)
}

func deckOf(code string, n int) []string {
	deck := make([]string, n)
	for i := range deck {
		deck[i] = code
	}
	return deck
}

func newTestService(economy ports.EconomyPort) *Service {
	return NewService(NewMemoryStore(), testProvider(), economy, domain.DefaultRules(), zerolog.Nop())
}

func createTestMatch(t *testing.T, svc *Service) string {
	t.Helper()
	id, events, err := svc.CreateMatch("p1", "p2", deckOf("pump", 40), deckOf("pump", 40))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventMatchCreated, events[0].Kind)
	return id
}

func TestCreateMatchRejectsShortDeck(t *testing.T) {
	svc := newTestService(nil)
	_, _, err := svc.CreateMatch("p1", "p2", deckOf("pump", 5), deckOf("pump", 40))
	assert.ErrorIs(t, err, domain.ErrDeckTooSmall)
}

func TestUnknownMatchID(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	_, err := svc.Assign(ctx, "missing", "p1", 0, "pump")
	assert.ErrorIs(t, err, ErrMatchNotFound)
	_, err = svc.Advance(ctx, "missing", "p1")
	assert.ErrorIs(t, err, ErrMatchNotFound)
	_, err = svc.Snapshot("missing", "p1")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestAssignAndAdvanceFlow(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()
	id := createTestMatch(t, svc)

	events, err := svc.Assign(ctx, id, "p1", 0, "pump")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventVehicleAssigned, events[0].Kind)

	// Engine errors surface unchanged through the service.
	_, err = svc.Assign(ctx, id, "p1", 0, "pump")
	assert.ErrorIs(t, err, domain.ErrAlreadyAssigned)

	// planning -> resolution -> escalation -> p2 planning
	for i := 0; i < 3; i++ {
		_, err = svc.Advance(ctx, id, "p1")
		require.NoError(t, err)
	}

	view, err := svc.Snapshot(id, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, view.You.Victory, "p1 resolved the fire for 3 EW")
	assert.Equal(t, "p2", view.ActivePlayer)
	assert.Equal(t, domain.PhasePlanning, view.Phase)
}

func TestSnapshotRedactsOpponent(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()
	id := createTestMatch(t, svc)

	_, err := svc.Assign(ctx, id, "p1", 0, "pump")
	require.NoError(t, err)

	p1View, err := svc.Snapshot(id, "p1")
	require.NoError(t, err)
	assert.Len(t, p1View.You.Hand, 9)
	assert.Equal(t, 10, p1View.Opponent.HandSize)
	assert.Equal(t, 30, p1View.Opponent.DrawPileSize)

	p2View, err := svc.Snapshot(id, "p2")
	require.NoError(t, err)
	assert.Len(t, p2View.You.Hand, 10)
	assert.Equal(t, 9, p2View.Opponent.HandSize, "p2 sees only the count of p1's hand")
	assert.Equal(t, domain.StatVector{domain.AxisFire: 3}, p2View.Slots[0].PendingTotals,
		"pending totals are public information")

	_, err = svc.Snapshot(id, "stranger")
	assert.ErrorIs(t, err, domain.ErrUnknownPlayer)
}

func TestRoundRewardPaysCoins(t *testing.T) {
	economy := &fakeEconomy{}
	svc := newTestService(economy)
	ctx := context.Background()
	id := createTestMatch(t, svc)

	_, err := svc.Assign(ctx, id, "p1", 0, "pump")
	require.NoError(t, err)

	// p1's full turn, then p2's full turn to close the round.
	for i := 0; i < 3; i++ {
		_, err = svc.Advance(ctx, id, "p1")
		require.NoError(t, err)
	}
	var events []Event
	for i := 0; i < 3; i++ {
		events, err = svc.Advance(ctx, id, "p2")
		require.NoError(t, err)
	}

	var roundEnded *RoundEndedPayload
	for _, ev := range events {
		if ev.Kind == EventRoundEnded {
			payload := ev.Payload.(RoundEndedPayload)
			roundEnded = &payload
		}
	}
	require.NotNil(t, roundEnded, "final advance must emit a round end")
	assert.Equal(t, "p1", roundEnded.Result.WinnerID)
	assert.Equal(t, 5, roundEnded.Result.CardsDrawn)

	require.Len(t, economy.updates, 1)
	assert.Equal(t, "p1", economy.updates[0].UserID)
	assert.Equal(t, int64(5), economy.updates[0].Coins)
}

func TestCloseRemovesMatch(t *testing.T) {
	svc := newTestService(nil)
	id := createTestMatch(t, svc)

	svc.Close(id)
	_, err := svc.Snapshot(id, "p1")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
