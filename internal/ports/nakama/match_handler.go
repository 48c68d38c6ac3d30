package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"os"
	"time"

	"bftcg/internal/app"
	"bftcg/internal/catalog"
	"bftcg/internal/config"
	"bftcg/internal/domain"
	"bftcg/internal/logging"
	"bftcg/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

type lobbyPhase string

const (
	phaseLobby   lobbyPhase = "lobby"
	phasePlaying lobbyPhase = "playing"
	phaseEnded   lobbyPhase = "ended"
)

// Label is the match label advertised for quick-match queries.
type Label struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// matchLobby is the authoritative per-instance state Nakama hands back to us
// each tick. The engine state itself lives in the service's store, keyed by
// EngineID.
type matchLobby struct {
	Phase    lobbyPhase
	EngineID string

	Players map[string]runtime.Presence
	Seats   [2]string
	Themes  map[string]domain.Theme
}

func (l *matchLobby) seated() int {
	n := 0
	for _, uid := range l.Seats {
		if uid != "" {
			n++
		}
	}
	return n
}

func lowestAvailableSeat(seats *[2]string) int {
	for i := range seats {
		if seats[i] == "" {
			return i
		}
	}
	return 0
}

// matchHandler implements runtime.Match. Each instance owns a service with a
// private store, so the engine state dies with the match.
type matchHandler struct {
	svc *app.Service
	cat *catalog.MemoryProvider
}

func newMatchHandler(nk runtime.NakamaModule) *matchHandler {
	cat := catalog.Default(rand.New(rand.NewSource(time.Now().UnixNano())))
	log := logging.New(os.Stdout, logging.ParseLevel(os.Getenv("BFTCG_LOG_LEVEL")))
	var economy ports.EconomyPort
	if nk != nil {
		economy = NewEconomyAdapter(nk)
	}
	return &matchHandler{
		svc: app.NewService(app.NewMemoryStore(), cat, economy, config.Rules(), log),
		cat: cat,
	}
}

// MatchInit boots the two-seat lobby.
func (m *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	state := &matchLobby{
		Phase:   phaseLobby,
		Players: map[string]runtime.Presence{},
		Themes:  map[string]domain.Theme{},
	}

	labelBytes, _ := json.Marshal(Label{Open: true, Game: GameName, Phase: string(phaseLobby)})
	return state, 10, string(labelBytes)
}

// MatchJoinAttempt allows rejoin at any time and new joins only while a seat
// is free in the lobby.
func (m *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {

	s := state.(*matchLobby)

	if _, ok := s.Players[presence.GetUserId()]; ok {
		return state, true, ""
	}
	if s.Phase != phaseLobby {
		return state, false, "match_in_progress"
	}
	if s.seated() >= len(s.Seats) {
		return state, false, "match_full"
	}

	s.Themes[presence.GetUserId()] = themeFromMetadata(metadata)
	return state, true, ""
}

// MatchJoin seats joiners and starts the match once both seats fill.
func (m *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*matchLobby)

	for _, p := range presences {
		uid := p.GetUserId()

		if _, ok := s.Players[uid]; ok {
			s.Players[uid] = p // rejoin updates presence
			m.sendState(logger, dispatcher, s, uid)
			continue
		}

		seat := lowestAvailableSeat(&s.Seats)
		s.Seats[seat] = uid
		s.Players[uid] = p
		if _, ok := s.Themes[uid]; !ok {
			s.Themes[uid] = domain.ThemeFire
		}

		evt, _ := json.Marshal(map[string]any{"user_id": uid, "seat": seat + 1})
		_ = dispatcher.BroadcastMessage(OpPlayerJoined, evt, nil, nil, true)
	}

	if s.Phase == phaseLobby && s.seated() == len(s.Seats) {
		m.startMatch(logger, dispatcher, s)
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

// MatchLeave frees lobby seats; a leave mid-game forfeits the match for both
// sides and tears the instance down.
func (m *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {

	s := state.(*matchLobby)

	for _, p := range presences {
		uid := p.GetUserId()
		if _, ok := s.Players[uid]; !ok {
			continue
		}
		delete(s.Players, uid)
		delete(s.Themes, uid)
		for i := range s.Seats {
			if s.Seats[i] == uid {
				s.Seats[i] = ""
			}
		}

		evt, _ := json.Marshal(map[string]any{"user_id": uid})
		_ = dispatcher.BroadcastMessage(OpPlayerLeft, evt, nil, nil, true)

		if s.Phase == phasePlaying {
			end, _ := json.Marshal(map[string]any{"reason": "abandoned", "user_id": uid})
			_ = dispatcher.BroadcastMessage(OpMatchEnded, end, nil, nil, true)
			m.svc.Close(s.EngineID)
			return nil
		}
	}

	_ = dispatcher.MatchLabelUpdate(buildLabel(s))
	return state
}

// MatchLoop processes in-match commands.
func (m *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {

	s := state.(*matchLobby)

	for _, msg := range messages {
		if s.Phase != phasePlaying {
			m.reject(dispatcher, s, msg.GetUserId(), "match_not_running")
			continue
		}

		switch msg.GetOpCode() {
		case OpAssignVehicle:
			m.handleAssign(ctx, logger, dispatcher, s, msg)
		case OpAdvancePhase:
			m.handleAdvance(ctx, logger, dispatcher, s, msg)
		case OpRequestState:
			m.sendState(logger, dispatcher, s, msg.GetUserId())
		}
	}

	if s.Phase == phaseEnded {
		m.svc.Close(s.EngineID)
		return nil
	}
	return state
}

// MatchTerminate tears down the engine state on shutdown.
func (m *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	s := state.(*matchLobby)
	if s.EngineID != "" {
		m.svc.Close(s.EngineID)
	}
	return state
}

// MatchSignal is unused.
func (m *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule,
	dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}

/* ---- command handlers ---- */

func (m *matchHandler) handleAssign(ctx context.Context, logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchLobby, msg runtime.MatchData) {
	var payload struct {
		Slot     int    `json:"slot"`
		CardCode string `json:"card_code"`
	}
	if err := json.Unmarshal(msg.GetData(), &payload); err != nil {
		m.reject(dispatcher, s, msg.GetUserId(), "bad_payload")
		return
	}

	events, err := m.svc.Assign(ctx, s.EngineID, msg.GetUserId(), payload.Slot, payload.CardCode)
	if err != nil {
		m.reject(dispatcher, s, msg.GetUserId(), err.Error())
		return
	}
	m.dispatchEvents(logger, dispatcher, s, events)
	m.broadcastStates(logger, dispatcher, s)
}

func (m *matchHandler) handleAdvance(ctx context.Context, logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchLobby, msg runtime.MatchData) {
	events, err := m.svc.Advance(ctx, s.EngineID, msg.GetUserId())
	if err != nil {
		m.reject(dispatcher, s, msg.GetUserId(), err.Error())
		return
	}
	m.dispatchEvents(logger, dispatcher, s, events)
	m.broadcastStates(logger, dispatcher, s)
}

/* ---- lifecycle helpers ---- */

func (m *matchHandler) startMatch(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchLobby) {
	decks := make([][]string, len(s.Seats))
	for i, uid := range s.Seats {
		deck, err := m.cat.BuildThemeDeck(s.Themes[uid], catalog.DeckSize)
		if err != nil {
			deck = m.cat.BuildMixedDeck(catalog.DeckSize)
		}
		decks[i] = deck
	}

	id, events, err := m.svc.CreateMatch(s.Seats[0], s.Seats[1], decks[0], decks[1])
	if err != nil {
		logger.Error("match start failed: %v", err)
		return
	}
	s.EngineID = id
	s.Phase = phasePlaying

	evt, _ := json.Marshal(map[string]any{"players": s.Seats})
	_ = dispatcher.BroadcastMessage(OpMatchStarted, evt, nil, nil, true)
	m.dispatchEvents(logger, dispatcher, s, events)
	m.broadcastStates(logger, dispatcher, s)
}

// dispatchEvents forwards engine events to clients and flips the lobby to
// ended on a terminal event.
func (m *matchHandler) dispatchEvents(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchLobby, events []app.Event) {
	for _, evt := range events {
		data, err := json.Marshal(evt.Payload)
		if err != nil {
			logger.Error("event marshal failed: %v", err)
			continue
		}

		var recipients []runtime.Presence
		for _, uid := range evt.Recipients {
			if p, ok := s.Players[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		op, ok := opForEvent(evt.Kind)
		if !ok {
			continue
		}
		_ = dispatcher.BroadcastMessage(op, data, recipients, nil, true)

		if evt.Kind == app.EventSharedDefeat {
			s.Phase = phaseEnded
			_ = dispatcher.MatchLabelUpdate(buildLabel(s))
		}
	}
}

func opForEvent(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventVehicleAssigned:
		return OpVehicleAssigned, true
	case app.EventPhaseAdvanced:
		return OpPhaseAdvanced, true
	case app.EventRoundEnded:
		return OpRoundEnded, true
	case app.EventSharedDefeat:
		return OpMatchEnded, true
	default:
		return 0, false
	}
}

// broadcastStates sends each seated player their own redacted view.
func (m *matchHandler) broadcastStates(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchLobby) {
	for _, uid := range s.Seats {
		if uid != "" {
			m.sendState(logger, dispatcher, s, uid)
		}
	}
}

func (m *matchHandler) sendState(logger runtime.Logger, dispatcher runtime.MatchDispatcher, s *matchLobby, uid string) {
	if s.EngineID == "" {
		return
	}
	view, err := m.svc.Snapshot(s.EngineID, uid)
	if err != nil {
		logger.Error("snapshot for %s failed: %v", uid, err)
		return
	}
	data, _ := json.Marshal(view)

	p, ok := s.Players[uid]
	if !ok {
		return
	}
	_ = dispatcher.BroadcastMessage(OpStateUpdate, data, []runtime.Presence{p}, nil, true)
}

func (m *matchHandler) reject(dispatcher runtime.MatchDispatcher, s *matchLobby, uid, reason string) {
	p, ok := s.Players[uid]
	if !ok {
		return
	}
	data, _ := json.Marshal(map[string]any{"reason": reason})
	_ = dispatcher.BroadcastMessage(OpCommandRejected, data, []runtime.Presence{p}, nil, true)
}

func buildLabel(s *matchLobby) string {
	open := s.Phase == phaseLobby && s.seated() < len(s.Seats)
	b, _ := json.Marshal(Label{Open: open, Game: GameName, Phase: string(s.Phase)})
	return string(b)
}

// themeFromMetadata reads the joiner's requested deck theme; unknown values
// fall back to the fire theme.
func themeFromMetadata(metadata map[string]string) domain.Theme {
	switch domain.Theme(metadata["deck_theme"]) {
	case domain.ThemeTechnical:
		return domain.ThemeTechnical
	case domain.ThemeMedical:
		return domain.ThemeMedical
	default:
		return domain.ThemeFire
	}
}
