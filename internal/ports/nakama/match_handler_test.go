package nakama

import (
	"context"
	"encoding/json"
	"testing"

	"bftcg/internal/app"
	"bftcg/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy
// the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type sentMessage struct {
	opCode     int64
	data       []byte
	recipients []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	messages     []sentMessage
	labelUpdates int
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.messages = append(md.messages, sentMessage{
		opCode:     opCode,
		data:       append([]byte(nil), data...),
		recipients: presences,
	})
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

func (md *mockDispatcher) ops() []int64 {
	out := make([]int64, len(md.messages))
	for i, m := range md.messages {
		out[i] = m.opCode
	}
	return out
}

func (md *mockDispatcher) lastWithOp(op int64) (sentMessage, bool) {
	for i := len(md.messages) - 1; i >= 0; i-- {
		if md.messages[i].opCode == op {
			return md.messages[i], true
		}
	}
	return sentMessage{}, false
}

type fakePresence struct {
	userID string
}

func (p fakePresence) GetUserId() string                 { return p.userID }
func (p fakePresence) GetSessionId() string              { return "session-" + p.userID }
func (p fakePresence) GetNodeId() string                 { return "node" }
func (p fakePresence) GetHidden() bool                   { return false }
func (p fakePresence) GetPersistence() bool              { return true }
func (p fakePresence) GetUsername() string               { return p.userID }
func (p fakePresence) GetStatus() string                 { return "" }
func (p fakePresence) GetReason() runtime.PresenceReason { return runtime.PresenceReasonJoin }

type fakeMatchData struct {
	fakePresence
	opCode int64
	data   []byte
}

func (d fakeMatchData) GetOpCode() int64      { return d.opCode }
func (d fakeMatchData) GetData() []byte       { return d.data }
func (d fakeMatchData) GetReliable() bool     { return true }
func (d fakeMatchData) GetReceiveTime() int64 { return 0 }

func newRunningMatch(t *testing.T) (*matchHandler, *matchLobby, *mockDispatcher) {
	t.Helper()
	ctx := context.Background()
	h := newMatchHandler(nil)
	md := &mockDispatcher{}

	state, _, _ := h.MatchInit(ctx, noopLogger{}, nil, nil, nil)
	s := state.(*matchLobby)
	for _, uid := range []string{"p1", "p2"} {
		p := fakePresence{userID: uid}
		_, ok, reason := h.MatchJoinAttempt(ctx, noopLogger{}, nil, nil, md, 0, s, p, map[string]string{"deck_theme": "fire"})
		if !ok {
			t.Fatalf("join attempt for %s denied: %s", uid, reason)
		}
		h.MatchJoin(ctx, noopLogger{}, nil, nil, md, 0, s, []runtime.Presence{p})
	}

	if s.Phase != phasePlaying {
		t.Fatalf("expected match to start after second join, phase = %s", s.Phase)
	}
	if s.EngineID == "" {
		t.Fatal("expected an engine match id after start")
	}
	return h, s, md
}

func TestLowestAvailableSeat(t *testing.T) {
	tests := []struct {
		name  string
		seats [2]string
		want  int
	}{
		{"AllEmpty", [2]string{"", ""}, 0},
		{"FirstTaken", [2]string{"p1", ""}, 1},
		{"SecondTaken", [2]string{"", "p2"}, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			seats := test.seats
			if got := lowestAvailableSeat(&seats); got != test.want {
				t.Fatalf("lowestAvailableSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestJoinAttemptCapacityAndRejoin(t *testing.T) {
	ctx := context.Background()
	h, s, md := newRunningMatch(t)

	if _, ok, reason := h.MatchJoinAttempt(ctx, noopLogger{}, nil, nil, md, 0, s, fakePresence{userID: "p3"}, nil); ok {
		t.Fatal("expected third join to be denied")
	} else if reason != "match_in_progress" {
		t.Fatalf("unexpected denial reason %q", reason)
	}

	if _, ok, _ := h.MatchJoinAttempt(ctx, noopLogger{}, nil, nil, md, 0, s, fakePresence{userID: "p1"}, nil); !ok {
		t.Fatal("expected rejoin of a seated player to be allowed")
	}
}

func TestStartBroadcastsAndSendsPrivateState(t *testing.T) {
	_, _, md := newRunningMatch(t)

	started := false
	for _, op := range md.ops() {
		if op == OpMatchStarted {
			started = true
		}
	}
	if !started {
		t.Fatal("expected an OpMatchStarted broadcast")
	}

	msg, ok := md.lastWithOp(OpStateUpdate)
	if !ok {
		t.Fatal("expected per-player state updates after start")
	}
	if len(msg.recipients) != 1 {
		t.Fatalf("state update must be targeted, got %d recipients", len(msg.recipients))
	}

	var view app.MatchView
	if err := json.Unmarshal(msg.data, &view); err != nil {
		t.Fatalf("state update is not a MatchView: %v", err)
	}
	if view.You.PlayerID != msg.recipients[0].GetUserId() {
		t.Fatalf("state update for %s carries %s's view", msg.recipients[0].GetUserId(), view.You.PlayerID)
	}
	if len(view.You.Hand) == 0 {
		t.Fatal("viewer should see their own hand")
	}
}

func TestLoopAdvancesPhases(t *testing.T) {
	ctx := context.Background()
	h, s, md := newRunningMatch(t)

	msg := fakeMatchData{fakePresence: fakePresence{userID: "p1"}, opCode: OpAdvancePhase}
	if out := h.MatchLoop(ctx, noopLogger{}, nil, nil, md, 1, s, []runtime.MatchData{msg}); out == nil {
		t.Fatal("match ended unexpectedly")
	}

	evt, ok := md.lastWithOp(OpPhaseAdvanced)
	if !ok {
		t.Fatal("expected an OpPhaseAdvanced broadcast")
	}
	var payload app.PhaseAdvancedPayload
	if err := json.Unmarshal(evt.data, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Phase != domain.PhaseResolution {
		t.Fatalf("phase = %s, want %s", payload.Phase, domain.PhaseResolution)
	}
}

func TestLoopRejectsBadCommands(t *testing.T) {
	ctx := context.Background()
	h, s, md := newRunningMatch(t)

	// Inactive player may not advance.
	msg := fakeMatchData{fakePresence: fakePresence{userID: "p2"}, opCode: OpAdvancePhase}
	h.MatchLoop(ctx, noopLogger{}, nil, nil, md, 1, s, []runtime.MatchData{msg})

	rej, ok := md.lastWithOp(OpCommandRejected)
	if !ok {
		t.Fatal("expected an OpCommandRejected message")
	}
	if len(rej.recipients) != 1 || rej.recipients[0].GetUserId() != "p2" {
		t.Fatal("rejection must go to the sender only")
	}

	// Unknown card code.
	payload, _ := json.Marshal(map[string]any{"slot": 0, "card_code": "no-such-card"})
	assign := fakeMatchData{fakePresence: fakePresence{userID: "p1"}, opCode: OpAssignVehicle, data: payload}
	before := len(md.messages)
	h.MatchLoop(ctx, noopLogger{}, nil, nil, md, 2, s, []runtime.MatchData{assign})
	if _, ok := md.lastWithOp(OpCommandRejected); !ok || len(md.messages) != before+1 {
		t.Fatal("expected exactly one rejection for the bad assignment")
	}
}

func TestLeaveMidGameTearsDown(t *testing.T) {
	ctx := context.Background()
	h, s, md := newRunningMatch(t)

	out := h.MatchLeave(ctx, noopLogger{}, nil, nil, md, 3, s, []runtime.Presence{fakePresence{userID: "p1"}})
	if out != nil {
		t.Fatal("a mid-game leave should end the match instance")
	}
	if _, ok := md.lastWithOp(OpMatchEnded); !ok {
		t.Fatal("expected an OpMatchEnded broadcast")
	}
}
