package app

import "bftcg/internal/domain"

// MatchView is the per-viewer projection of a match. The viewer sees their
// own hand; the opponent's hand and draw pile are reduced to counts. This is
// the only shape the service hands to transports, so a handler cannot leak a
// hidden hand by accident.
type MatchView struct {
	MatchID         string                    `json:"match_id"`
	Round           int                       `json:"round"`
	Phase           domain.Phase              `json:"phase"`
	Status          domain.Status             `json:"status"`
	Pressure        int                       `json:"pressure"`
	PressureMax     int                       `json:"pressure_max"`
	EnergySurcharge int                       `json:"energy_surcharge"`
	ActivePlayer    string                    `json:"active_player"`
	You             PlayerView                `json:"you"`
	Opponent        OpponentView              `json:"opponent"`
	Slots           [domain.NumSlots]SlotView `json:"slots"`
	Log             []string                  `json:"log"`
}

// PlayerView is the viewer's own, unredacted half.
type PlayerView struct {
	PlayerID     string   `json:"player_id"`
	Energy       int      `json:"energy"`
	Crew         int      `json:"crew"`
	Victory      int      `json:"victory"`
	Assigned     bool     `json:"assigned_this_turn"`
	Hand         []string `json:"hand"`
	DrawPileSize int      `json:"draw_pile_size"`
}

// OpponentView hides hand contents and pile order.
type OpponentView struct {
	PlayerID     string `json:"player_id"`
	Energy       int    `json:"energy"`
	Crew         int    `json:"crew"`
	Victory      int    `json:"victory"`
	Assigned     bool   `json:"assigned_this_turn"`
	HandSize     int    `json:"hand_size"`
	DrawPileSize int    `json:"draw_pile_size"`
}

// SlotView is one open incident with the publicly visible pending totals.
type SlotView struct {
	Incident      domain.IncidentCard `json:"incident"`
	PendingTotals domain.StatVector   `json:"pending_totals"`
	Assignments   []domain.Assignment `json:"assignments"`
}

func buildView(id string, m *domain.MatchState, viewerID string, cat domain.CardSource) MatchView {
	you := m.Players[viewerID]
	opp := m.Players[m.Opponent(viewerID)]

	view := MatchView{
		MatchID:         id,
		Round:           m.Round,
		Phase:           m.Phase,
		Status:          m.Status,
		Pressure:        m.Pressure,
		PressureMax:     m.Rules.PressureMax,
		EnergySurcharge: m.EnergySurcharge(),
		ActivePlayer:    m.ActivePlayer,
		You: PlayerView{
			PlayerID:     you.PlayerID,
			Energy:       you.Energy,
			Crew:         you.Crew,
			Victory:      you.Victory,
			Assigned:     m.AssignedThisTurn[you.PlayerID],
			Hand:         append([]string(nil), you.Hand...),
			DrawPileSize: len(you.DrawPile),
		},
		Opponent: OpponentView{
			PlayerID:     opp.PlayerID,
			Energy:       opp.Energy,
			Crew:         opp.Crew,
			Victory:      opp.Victory,
			Assigned:     m.AssignedThisTurn[opp.PlayerID],
			HandSize:     len(opp.Hand),
			DrawPileSize: len(opp.DrawPile),
		},
		Log: append([]string(nil), m.Log...),
	}
	for i := range view.Slots {
		view.Slots[i] = SlotView{
			Incident:      m.Slots[i],
			PendingTotals: m.PendingTotals(i, cat),
			Assignments:   append([]domain.Assignment(nil), m.Assignments[i]...),
		}
	}
	return view
}
