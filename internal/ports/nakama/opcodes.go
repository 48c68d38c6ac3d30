package nakama

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpAssignVehicle int64 = 1
	OpAdvancePhase  int64 = 2
	OpRequestState  int64 = 3

	// Server -> Client events
	OpPlayerJoined    int64 = 101
	OpPlayerLeft      int64 = 102
	OpMatchStarted    int64 = 103
	OpStateUpdate     int64 = 104 // send privately, redacted per viewer
	OpVehicleAssigned int64 = 105
	OpPhaseAdvanced   int64 = 106
	OpRoundEnded      int64 = 107
	OpMatchEnded      int64 = 108
	OpCommandRejected int64 = 109 // send privately to the rejected sender
)
