package app

import "bftcg/internal/domain"

// EventKind identifies emitted match events for transport dispatch.
type EventKind string

const (
	EventMatchCreated    EventKind = "match_created"
	EventVehicleAssigned EventKind = "vehicle_assigned"
	EventPhaseAdvanced   EventKind = "phase_advanced"
	EventRoundEnded      EventKind = "round_ended"
	EventSharedDefeat    EventKind = "shared_defeat"
)

// Event is a match event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player IDs; empty means broadcast
}

type MatchCreatedPayload struct {
	MatchID string
	Players [2]string
}

type VehicleAssignedPayload struct {
	MatchID  string
	PlayerID string
	Slot     int
	CardCode string
}

type PhaseAdvancedPayload struct {
	MatchID      string
	Phase        domain.Phase
	Round        int
	ActivePlayer string
	Pressure     int
}

type RoundEndedPayload struct {
	MatchID string
	Result  domain.RoundResult
}

type SharedDefeatPayload struct {
	MatchID  string
	Pressure int
}
