package domain

import "fmt"

// Phase is the stage of the current player's turn cycle.
type Phase string

const (
	// PhasePlanning is when the active player may assign vehicles.
	PhasePlanning Phase = "planning"
	// PhaseResolution is entered after planning; advancing out of it resolves
	// both incident slots.
	PhaseResolution Phase = "resolution"
	// PhaseEscalation is entered after resolution; advancing out of it
	// escalates unresolved incidents and hands the turn over.
	PhaseEscalation Phase = "escalation"
)

// Status is the lifecycle state of a match.
type Status string

const (
	StatusActive Status = "active"
	// StatusSharedDefeat is terminal: global pressure reached its ceiling and
	// both players lose. No further commands are accepted.
	StatusSharedDefeat Status = "shared_defeat"
)

// NumSlots is the number of open incident slots on the board.
const NumSlots = 2

// CardSource is the catalog surface the engine depends on. Implementations
// own all randomness; the engine itself never draws from a global source.
type CardSource interface {
	// Vehicle resolves a vehicle card definition by code.
	Vehicle(code string) (VehicleCard, bool)
	// RandomIncident draws a fresh incident instance for slot seeding and
	// replacement.
	RandomIncident() IncidentCard
}

// Assignment is one vehicle committed to an incident slot during planning.
type Assignment struct {
	PlayerID string `json:"player_id"`
	CardCode string `json:"card_code"`
}

// PlayerState is the per-player half of a match.
type PlayerState struct {
	PlayerID string   `json:"player_id"`
	Energy   int      `json:"energy"`
	Crew     int      `json:"crew"`
	Victory  int      `json:"victory"` // EW, non-decreasing within a match
	Hand     []string `json:"hand"`
	DrawPile []string `json:"draw_pile"`
}

// RoundResult records the outcome of one completed two-player round.
// WinnerID is empty when no player had a unique, strictly positive EW gain.
type RoundResult struct {
	Round      int    `json:"round"`
	WinnerID   string `json:"winner_id"`
	Gain       int    `json:"gain"`
	CardsDrawn int    `json:"cards_drawn"`
}

// MatchState is the aggregate root for one match. It is a plain serializable
// value; AssignVehicle and AdvancePhase are the only mutating entry points.
// The engine assumes exclusive access during a call and does no locking.
type MatchState struct {
	Round        int    `json:"round"`
	Phase        Phase  `json:"phase"`
	Status       Status `json:"status"`
	Pressure     int    `json:"pressure"`
	ActivePlayer string `json:"active_player"`

	// PlayerOrder fixes the canonical ordering; index 0 is "player 1" whose
	// turn start marks a round boundary.
	PlayerOrder [2]string               `json:"player_order"`
	Players     map[string]*PlayerState `json:"players"`

	Slots            [NumSlots]IncidentCard `json:"slots"`
	Assignments      [NumSlots][]Assignment `json:"assignments"`
	AssignedThisTurn map[string]bool        `json:"assigned_this_turn"`
	SnapshotEW       map[string]int         `json:"snapshot_ew"`
	RoundResults     []RoundResult          `json:"round_results"`

	// Pending one-shot effect flags, set by out-of-band effects and consumed
	// by the engine.
	MediaBonusNextResolve bool `json:"media_bonus_next_resolve"`
	SkipNextEscalation    bool `json:"skip_next_escalation"`

	Rules Rules `json:"rules"`

	// Log is the append-only audit trail. It is never read back for control
	// decisions.
	Log []string `json:"log"`
}

// NewMatch creates a match from two pre-shuffled decks. Each deck must hold
// at least Rules.HandSize cards; the first HandSize go to the hand, the rest
// form the draw pile in order. Both board slots are seeded from the catalog.
func NewMatch(player1, player2 string, deck1, deck2 []string, cat CardSource, rules Rules) (*MatchState, error) {
	if len(deck1) < rules.HandSize || len(deck2) < rules.HandSize {
		return nil, ErrDeckTooSmall
	}

	m := &MatchState{
		Round:        1,
		Phase:        PhasePlanning,
		Status:       StatusActive,
		ActivePlayer: player1,
		PlayerOrder:  [2]string{player1, player2},
		Players: map[string]*PlayerState{
			player1: newPlayerState(player1, deck1, rules),
			player2: newPlayerState(player2, deck2, rules),
		},
		AssignedThisTurn: map[string]bool{player1: false, player2: false},
		SnapshotEW:       map[string]int{player1: 0, player2: 0},
		Rules:            rules,
	}

	for i := range m.Slots {
		m.Slots[i] = cat.RandomIncident()
	}

	m.logf("Match started: %s vs %s. %s begins planning.", player1, player2, player1)
	for i, inc := range m.Slots {
		m.logf("Incident %q opens in slot %d (req %s, reward %d EW).", inc.Name, i+1, inc.Requirements, inc.Reward)
	}
	return m, nil
}

func newPlayerState(id string, deck []string, rules Rules) *PlayerState {
	hand := append([]string(nil), deck[:rules.HandSize]...)
	pile := append([]string(nil), deck[rules.HandSize:]...)
	return &PlayerState{
		PlayerID: id,
		Energy:   rules.StartEnergy,
		Crew:     rules.StartCrew,
		Hand:     hand,
		DrawPile: pile,
	}
}

// Player returns the state for the given player id.
func (m *MatchState) Player(id string) (*PlayerState, bool) {
	p, ok := m.Players[id]
	return p, ok
}

// Opponent returns the other registered player id.
func (m *MatchState) Opponent(id string) string {
	if id == m.PlayerOrder[0] {
		return m.PlayerOrder[1]
	}
	return m.PlayerOrder[0]
}

// PendingTotals sums the stat vectors of all vehicles currently assigned to
// the slot. This is public information for both players.
func (m *MatchState) PendingTotals(slot int, cat CardSource) StatVector {
	var totals StatVector
	if slot < 0 || slot >= NumSlots {
		return totals
	}
	for _, a := range m.Assignments[slot] {
		if v, ok := cat.Vehicle(a.CardCode); ok {
			totals.Add(v.Stats)
		}
	}
	return totals
}

// GrantMediaBonus arms the "+1 EW on the next awarded resolution" effect.
func (m *MatchState) GrantMediaBonus() {
	m.MediaBonusNextResolve = true
	m.logf("Media attention: the next resolved incident awards +1 EW.")
}

// SuppressNextEscalation arms the "skip the next escalation step" effect.
func (m *MatchState) SuppressNextEscalation() {
	m.SkipNextEscalation = true
	m.logf("Reinforcements inbound: the next escalation step is suppressed.")
}

func (m *MatchState) logf(format string, args ...any) {
	m.Log = append(m.Log, fmt.Sprintf(format, args...))
}

// removeFirst removes the first occurrence of code from hand, preserving
// order. Reports whether a card was removed.
func removeFirst(hand []string, code string) ([]string, bool) {
	for i, c := range hand {
		if c == code {
			return append(hand[:i:i], hand[i+1:]...), true
		}
	}
	return hand, false
}
