// Package app holds the match lifecycle use-cases on top of the pure engine:
// match creation, command dispatch with per-match serialization, round reward
// settlement and per-viewer state projection.
package app

import (
	"context"
	"errors"
	"sync"

	"bftcg/internal/catalog"
	"bftcg/internal/domain"
	"bftcg/internal/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrMatchNotFound is returned for commands against an unknown match id.
var ErrMatchNotFound = errors.New("match not found")

// Service contains the match use-cases. Engine operations on one match are
// serialized behind a per-match mutex; distinct matches proceed in parallel.
type Service struct {
	store   Store
	catalog catalog.Provider
	economy ports.EconomyPort
	rules   domain.Rules
	log     zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService wires a Service. A nil economy defaults to NoopEconomy.
func NewService(store Store, cat catalog.Provider, economy ports.EconomyPort, rules domain.Rules, logger zerolog.Logger) *Service {
	if economy == nil {
		economy = ports.NoopEconomy{}
	}
	return &Service{
		store:   store,
		catalog: cat,
		economy: economy,
		rules:   rules,
		log:     logger,
		locks:   make(map[string]*sync.Mutex),
	}
}

// CreateMatch starts a match from two validated, pre-shuffled decks and
// returns its id.
func (s *Service) CreateMatch(player1, player2 string, deck1, deck2 []string) (string, []Event, error) {
	state, err := domain.NewMatch(player1, player2, deck1, deck2, s.catalog, s.rules)
	if err != nil {
		return "", nil, err
	}

	id := uuid.New().String()
	s.store.Put(id, state)

	s.log.Info().
		Str("match_id", id).
		Str("player1", player1).
		Str("player2", player2).
		Msg("match created")

	events := []Event{{
		Kind:    EventMatchCreated,
		Payload: MatchCreatedPayload{MatchID: id, Players: [2]string{player1, player2}},
	}}
	return id, events, nil
}

// Assign commits a vehicle for the active player.
func (s *Service) Assign(ctx context.Context, matchID, playerID string, slot int, cardCode string) ([]Event, error) {
	unlock := s.lockMatch(matchID)
	defer unlock()

	state, ok := s.store.Get(matchID)
	if !ok {
		return nil, ErrMatchNotFound
	}

	if err := state.AssignVehicle(playerID, slot, cardCode, s.catalog); err != nil {
		return nil, err
	}
	s.store.Put(matchID, state)

	s.log.Debug().
		Str("match_id", matchID).
		Str("player", playerID).
		Int("slot", slot).
		Str("card", cardCode).
		Msg("vehicle assigned")

	return []Event{{
		Kind:    EventVehicleAssigned,
		Payload: VehicleAssignedPayload{MatchID: matchID, PlayerID: playerID, Slot: slot, CardCode: cardCode},
	}}, nil
}

// Advance moves the match one phase forward and settles any round reward
// that falls due.
func (s *Service) Advance(ctx context.Context, matchID, playerID string) ([]Event, error) {
	unlock := s.lockMatch(matchID)
	defer unlock()

	state, ok := s.store.Get(matchID)
	if !ok {
		return nil, ErrMatchNotFound
	}

	settled := len(state.RoundResults)
	if err := state.AdvancePhase(playerID, s.catalog); err != nil {
		return nil, err
	}
	s.store.Put(matchID, state)

	events := []Event{{
		Kind: EventPhaseAdvanced,
		Payload: PhaseAdvancedPayload{
			MatchID:      matchID,
			Phase:        state.Phase,
			Round:        state.Round,
			ActivePlayer: state.ActivePlayer,
			Pressure:     state.Pressure,
		},
	}}

	for _, result := range state.RoundResults[settled:] {
		events = append(events, Event{
			Kind:    EventRoundEnded,
			Payload: RoundEndedPayload{MatchID: matchID, Result: result},
		})
		if result.WinnerID == "" {
			continue
		}
		update := ports.WalletUpdate{
			UserID: result.WinnerID,
			Coins:  state.Rules.RoundRewardCoin,
			Metadata: map[string]interface{}{
				"reason":   "round_reward",
				"match_id": matchID,
				"round":    result.Round,
			},
		}
		if err := s.economy.UpdateBalances(ctx, []ports.WalletUpdate{update}); err != nil {
			// The match result stands; the payout is the recoverable part.
			s.log.Error().Err(err).
				Str("match_id", matchID).
				Str("winner", result.WinnerID).
				Msg("round reward payout failed")
		}
	}

	if state.Status == domain.StatusSharedDefeat {
		s.log.Info().Str("match_id", matchID).Int("pressure", state.Pressure).Msg("match lost to pressure")
		events = append(events, Event{
			Kind:    EventSharedDefeat,
			Payload: SharedDefeatPayload{MatchID: matchID, Pressure: state.Pressure},
		})
	}
	return events, nil
}

// Snapshot returns the viewer's redacted projection of the match.
func (s *Service) Snapshot(matchID, viewerID string) (MatchView, error) {
	unlock := s.lockMatch(matchID)
	defer unlock()

	state, ok := s.store.Get(matchID)
	if !ok {
		return MatchView{}, ErrMatchNotFound
	}
	if _, ok := state.Player(viewerID); !ok {
		return MatchView{}, domain.ErrUnknownPlayer
	}
	return buildView(matchID, state, viewerID, s.catalog), nil
}

// Close discards a finished match.
func (s *Service) Close(matchID string) {
	unlock := s.lockMatch(matchID)
	defer unlock()
	s.store.Delete(matchID)

	s.mu.Lock()
	delete(s.locks, matchID)
	s.mu.Unlock()
}

func (s *Service) lockMatch(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}
