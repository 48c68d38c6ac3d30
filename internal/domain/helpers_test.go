package domain

import "testing"

// stubCatalog is a deterministic CardSource for engine tests. RandomIncident
// serves incidents from a fixed queue, cycling when exhausted.
type stubCatalog struct {
	vehicles  map[string]VehicleCard
	incidents []IncidentCard
	next      int
}

func (s *stubCatalog) Vehicle(code string) (VehicleCard, bool) {
	v, ok := s.vehicles[code]
	return v, ok
}

func (s *stubCatalog) RandomIncident() IncidentCard {
	inc := s.incidents[s.next%len(s.incidents)]
	s.next++
	return inc
}

func testCatalog() *stubCatalog {
	return &stubCatalog{
		vehicles: map[string]VehicleCard{
			"pump": {
				Code: "pump", Name: "Pumper", CostEnergy: 2, CostCrew: 1,
				Stats: StatVector{AxisFire: 3},
			},
			"ladder": {
				Code: "ladder", Name: "Turntable Ladder", CostEnergy: 3, CostCrew: 1,
				Stats: StatVector{AxisHeight: 4, AxisFire: 1},
			},
			"crane": {
				Code: "crane", Name: "Recovery Crane", CostEnergy: 5, CostCrew: 2,
				Stats: StatVector{AxisTechnical: 6},
			},
			"medic": {
				Code: "medic", Name: "Ambulance", CostEnergy: 1, CostCrew: 1,
				Stats: StatVector{AxisRescue: 1},
			},
		},
		incidents: []IncidentCard{
			{
				Code: "blaze", Name: "Apartment Fire", Reward: 3, TimeLeft: 2,
				Requirements: StatVector{AxisFire: 3}, Tags: []string{"structure"},
			},
			{
				Code: "collapse", Name: "Trench Collapse", Reward: 4, TimeLeft: 3,
				Requirements: StatVector{AxisTechnical: 5}, Tags: []string{"entrapment"},
			},
		},
	}
}

func repeatDeck(code string, n int) []string {
	deck := make([]string, n)
	for i := range deck {
		deck[i] = code
	}
	return deck
}

// newTestMatch creates a match with p1/p2 holding 40-card single-vehicle
// decks, slot 0 seeded with the fire incident and slot 1 with the collapse.
func newTestMatch(t *testing.T, cat *stubCatalog) *MatchState {
	t.Helper()
	m, err := NewMatch("p1", "p2", repeatDeck("pump", 40), repeatDeck("pump", 40), cat, DefaultRules())
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

// advanceTo drives the active player's turn forward to the requested phase.
func advanceTo(t *testing.T, m *MatchState, cat CardSource, phase Phase) {
	t.Helper()
	for m.Phase != phase {
		if err := m.AdvancePhase(m.ActivePlayer, cat); err != nil {
			t.Fatalf("AdvancePhase: %v", err)
		}
	}
}
