package domain

// AdvancePhase moves the match through its fixed cycle:
// planning -> resolution -> escalation -> planning (other player).
//
// Resolution runs while leaving the resolution phase, escalation while
// leaving the escalation phase. The escalation exit also flips the active
// player, regenerates the incoming player's resources and, once the cycle
// returns to player 1, settles the round reward and advances the round
// counter.
func (m *MatchState) AdvancePhase(playerID string, cat CardSource) error {
	if m.Status != StatusActive {
		return ErrMatchEnded
	}
	if playerID != m.ActivePlayer {
		return ErrNotYourTurn
	}

	switch m.Phase {
	case PhasePlanning:
		m.Phase = PhaseResolution
		m.logf("Phase -> resolution.")

	case PhaseResolution:
		m.resolveSlots(cat)
		m.Phase = PhaseEscalation
		m.logf("Phase -> escalation.")

	case PhaseEscalation:
		m.escalateSlots()
		if m.Status != StatusActive {
			// Pressure ceiling reached mid-escalation; the match is over and
			// the turn never passes.
			return nil
		}
		m.switchTurn()
		m.Phase = PhasePlanning
		m.logf("Turn passes to %s. Phase -> planning.", m.ActivePlayer)

	default:
		return ErrInvalidPhase
	}
	return nil
}

func (m *MatchState) resolveSlots(cat CardSource) {
	for slot := range m.Slots {
		m.resolveSlot(slot, cat)
	}
}

func (m *MatchState) resolveSlot(slot int, cat CardSource) {
	inc := &m.Slots[slot]
	assigned := m.Assignments[slot]

	var totals StatVector
	contrib := make(map[string]int, len(m.PlayerOrder))
	for _, a := range assigned {
		v, ok := cat.Vehicle(a.CardCode)
		if !ok {
			m.logf("Slot %d: unknown vehicle %s ignored during resolution.", slot+1, a.CardCode)
			continue
		}
		totals.Add(v.Stats)
		// Contribution counts all six axes, not just the required ones.
		contrib[a.PlayerID] += v.Stats.Sum()
	}

	met := totals.Meets(inc.Requirements)
	m.logf("Resolve slot %d %q: req=%s totals=%s.", slot+1, inc.Name, inc.Requirements, totals)

	if !met {
		m.logf("Slot %d unresolved; escalation follows.", slot+1)
		m.Assignments[slot] = nil
		return
	}

	if len(assigned) > 0 {
		winner := m.topContributor(contrib)
		bonus := 0
		if m.MediaBonusNextResolve {
			bonus = 1
			m.MediaBonusNextResolve = false
		}
		m.Players[winner].Victory += inc.Reward + bonus
		m.logf("Slot %d resolved: %s earns %d+%d EW.", slot+1, winner, inc.Reward, bonus)
	} else {
		// Requirements were trivially satisfied with nothing assigned. The
		// incident is still replaced, but nobody scores.
		m.logf("Slot %d resolved with no assignments; no EW awarded.", slot+1)
	}

	m.Slots[slot] = cat.RandomIncident()
	m.Assignments[slot] = nil
	m.logf("Incident %q opens in slot %d (req %s, reward %d EW).",
		m.Slots[slot].Name, slot+1, m.Slots[slot].Requirements, m.Slots[slot].Reward)
}

// topContributor returns the player with the strictly highest contribution.
// Ties go to the player listed first at match creation.
func (m *MatchState) topContributor(contrib map[string]int) string {
	best := ""
	bestScore := -1
	for _, id := range m.PlayerOrder {
		if score, ok := contrib[id]; ok && score > bestScore {
			best = id
			bestScore = score
		}
	}
	return best
}

func (m *MatchState) escalateSlots() {
	if m.SkipNextEscalation {
		m.SkipNextEscalation = false
		m.logf("Escalation suppressed this cycle.")
		return
	}

	for slot := range m.Slots {
		inc := &m.Slots[slot]
		inc.TimeLeft--
		m.raisePressure(1)

		if inc.TimeLeft > 0 {
			continue
		}

		// Countdown expired: every requirement axis already in play grows by
		// one. Escalation never introduces a new axis.
		for _, a := range Axes {
			if inc.Requirements[a] > 0 {
				inc.Requirements[a]++
			}
		}
		extra := 1
		if inc.HasAnyTag(m.Rules.SevereTags) {
			extra = 2
		}
		m.raisePressure(extra)
		inc.TimeLeft = m.Rules.EscalationReset
		m.logf("Slot %d escalates: req now %s, pressure +%d, timer reset to %d.",
			slot+1, inc.Requirements, extra, inc.TimeLeft)
	}
}

// raisePressure increases global pressure, clamped at the ceiling. Hitting
// the ceiling ends the match for both players.
func (m *MatchState) raisePressure(n int) {
	if m.Status != StatusActive {
		return
	}
	m.Pressure += n
	if m.Pressure >= m.Rules.PressureMax {
		m.Pressure = m.Rules.PressureMax
		m.Status = StatusSharedDefeat
		m.logf("Pressure reaches %d: the service is overwhelmed. Shared defeat.", m.Pressure)
	}
}

func (m *MatchState) switchTurn() {
	m.ActivePlayer = m.Opponent(m.ActivePlayer)
	for id := range m.AssignedThisTurn {
		m.AssignedThisTurn[id] = false
	}
	m.regenerate(m.ActivePlayer)

	if m.ActivePlayer == m.PlayerOrder[0] {
		m.endRound()
	}
}

// regenerate applies the turn-start resource income for one player. Crew
// income is suppressed entirely at high pressure; energy is unaffected.
func (m *MatchState) regenerate(id string) {
	p := m.Players[id]
	p.Energy = min(m.Rules.EnergyMax, p.Energy+m.Rules.EnergyRegen)
	regen := m.Rules.CrewRegen
	if m.Pressure >= m.Rules.CrewRegenPressure {
		regen = 0
	}
	p.Crew = min(m.Rules.CrewMax, p.Crew+regen)
	m.logf("%s regenerates to %d EP, %d crew.", id, p.Energy, p.Crew)
}

// endRound settles the round reward, refreshes the EW snapshots and advances
// the round counter. Runs only when the turn cycle returns to player 1.
func (m *MatchState) endRound() {
	result := RoundResult{Round: m.Round}

	maxGain := 0
	winners := 0
	for _, id := range m.PlayerOrder {
		gain := m.Players[id].Victory - m.SnapshotEW[id]
		switch {
		case gain > maxGain:
			maxGain = gain
			winners = 1
			result.WinnerID = id
			result.Gain = gain
		case gain == maxGain && gain > 0:
			winners++
		}
	}
	if winners != 1 {
		result.WinnerID = ""
		result.Gain = 0
	}

	if result.WinnerID != "" {
		result.CardsDrawn = m.draw(result.WinnerID, m.Rules.RoundRewardDraw)
		m.logf("Round %d winner %s (+%d EW) draws %d cards.",
			m.Round, result.WinnerID, result.Gain, result.CardsDrawn)
	} else {
		m.logf("Round %d ends with no clear winner.", m.Round)
	}

	for _, id := range m.PlayerOrder {
		m.SnapshotEW[id] = m.Players[id].Victory
	}
	m.RoundResults = append(m.RoundResults, result)
	m.Round++
}

// draw moves up to n cards from the player's draw pile to their hand,
// stopping silently when the pile runs out. There is no reshuffle.
func (m *MatchState) draw(id string, n int) int {
	p := m.Players[id]
	drawn := 0
	for drawn < n && len(p.DrawPile) > 0 {
		p.Hand = append(p.Hand, p.DrawPile[0])
		p.DrawPile = p.DrawPile[1:]
		drawn++
	}
	return drawn
}
