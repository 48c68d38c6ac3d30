// Package bot provides a heuristic dispatch agent. It plays from the same
// redacted MatchView a human client would receive, so it can never act on
// hidden information.
package bot

import (
	"bftcg/internal/app"
	"bftcg/internal/catalog"
	"bftcg/internal/domain"
)

// Agent picks assignments for one seat.
type Agent struct {
	PlayerID string
	catalog  catalog.Provider
	tuning   Weights
}

// New returns an agent with the default tuning.
func New(playerID string, cat catalog.Provider) *Agent {
	return &Agent{PlayerID: playerID, catalog: cat, tuning: DefaultTuning}
}

// NewWithTuning returns an agent with explicit weights.
func NewWithTuning(playerID string, cat catalog.Provider, tuning Weights) *Agent {
	return &Agent{PlayerID: playerID, catalog: cat, tuning: tuning}
}

// ChooseAssignment scores every affordable (card, slot) pair and returns the
// best one. ok is false when the agent prefers to hold, it is not the active
// player, or the match is outside planning.
func (a *Agent) ChooseAssignment(view app.MatchView) (slot int, cardCode string, ok bool) {
	if view.Phase != domain.PhasePlanning || view.ActivePlayer != a.PlayerID {
		return 0, "", false
	}
	if view.You.Assigned {
		return 0, "", false
	}

	bestScore := a.tuning.HoldThreshold
	found := false

	for _, code := range dedupe(view.You.Hand) {
		vehicle, known := a.catalog.Vehicle(code)
		if !known {
			continue
		}
		cost := vehicle.CostEnergy + view.EnergySurcharge
		if view.You.Energy < cost || view.You.Crew < vehicle.CostCrew {
			continue
		}
		for s := range view.Slots {
			score := a.scoreAssignment(vehicle, cost, view.Slots[s])
			if score > bestScore {
				bestScore = score
				slot = s
				cardCode = code
				found = true
			}
		}
	}
	return slot, cardCode, found
}

func (a *Agent) scoreAssignment(v domain.VehicleCard, cost int, sv app.SlotView) float64 {
	coverage := 0
	remaining := 0
	for _, axis := range domain.Axes {
		deficit := sv.Incident.Requirements[axis] - sv.PendingTotals[axis]
		if deficit <= 0 {
			continue
		}
		covered := min(v.Stats[axis], deficit)
		coverage += covered
		remaining += deficit - covered
	}
	waste := v.Stats.Sum() - coverage

	score := a.tuning.Coverage*float64(coverage) -
		a.tuning.EnergyCost*float64(cost) -
		a.tuning.CrewCost*float64(v.CostCrew) -
		a.tuning.Waste*float64(waste)
	if coverage > 0 && remaining == 0 {
		score += a.tuning.Completion
	}
	return score
}

func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
