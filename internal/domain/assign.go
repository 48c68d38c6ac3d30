package domain

// AssignVehicle commits one vehicle from the active player's hand to an
// incident slot. Preconditions are checked in a fixed order and the first
// failure wins. On success the card is consumed for the match; there is no
// way to return it to the hand. The phase and active player never change.
func (m *MatchState) AssignVehicle(playerID string, slot int, cardCode string, cat CardSource) error {
	if m.Status != StatusActive {
		return ErrMatchEnded
	}
	if m.Phase != PhasePlanning {
		return ErrWrongPhase
	}
	if playerID != m.ActivePlayer {
		return ErrNotYourTurn
	}
	if slot < 0 || slot >= NumSlots {
		return ErrInvalidSlot
	}
	if m.AssignedThisTurn[playerID] {
		return ErrAlreadyAssigned
	}

	player, ok := m.Players[playerID]
	if !ok {
		return ErrUnknownPlayer
	}
	if !contains(player.Hand, cardCode) {
		return ErrCardNotInHand
	}

	vehicle, ok := cat.Vehicle(cardCode)
	if !ok {
		return ErrUnknownVehicle
	}

	cost := vehicle.CostEnergy + m.EnergySurcharge()
	if player.Energy < cost {
		return InsufficientEnergyError{Required: cost}
	}
	if player.Crew < vehicle.CostCrew {
		return ErrInsufficientCrew
	}

	player.Energy -= cost
	player.Crew -= vehicle.CostCrew
	player.Hand, _ = removeFirst(player.Hand, cardCode)
	m.Assignments[slot] = append(m.Assignments[slot], Assignment{PlayerID: playerID, CardCode: cardCode})
	m.AssignedThisTurn[playerID] = true

	m.logf("%s assigns %s to slot %d (cost %d EP, %d crew).", playerID, vehicle.Name, slot+1, cost, vehicle.CostCrew)
	return nil
}

// EnergySurcharge returns the extra energy cost applied to every assignment
// at the current pressure level.
func (m *MatchState) EnergySurcharge() int {
	if m.Pressure >= m.Rules.SurchargePressure {
		return 1
	}
	return 0
}

func contains(cards []string, code string) bool {
	for _, c := range cards {
		if c == code {
			return true
		}
	}
	return false
}
