package domain

// Rules holds the tunable numbers of the match engine. A MatchState carries
// its Rules by value so a serialized match replays under the settings it was
// created with.
type Rules struct {
	StartEnergy int `json:"start_energy"`
	StartCrew   int `json:"start_crew"`
	EnergyMax   int `json:"energy_max"`
	CrewMax     int `json:"crew_max"`
	EnergyRegen int `json:"energy_regen"`
	CrewRegen   int `json:"crew_regen"`

	// PressureMax is the global pressure ceiling. Reaching it ends the match
	// in a shared defeat.
	PressureMax int `json:"pressure_max"`
	// SurchargePressure is the pressure level at and above which every
	// assignment costs one extra energy.
	SurchargePressure int `json:"surcharge_pressure"`
	// CrewRegenPressure is the pressure level at and above which crew
	// regeneration is suppressed.
	CrewRegenPressure int `json:"crew_regen_pressure"`

	// EscalationReset is the TimeLeft an incident returns to after its
	// countdown expires.
	EscalationReset int `json:"escalation_reset"`
	// SevereTags marks incident tags that escalate with +2 pressure instead
	// of +1 when the countdown expires.
	SevereTags []string `json:"severe_tags"`

	HandSize        int   `json:"hand_size"`
	RoundRewardDraw int   `json:"round_reward_draw"`
	RoundRewardCoin int64 `json:"round_reward_coin"`
}

// DefaultRules returns the canonical ruleset.
func DefaultRules() Rules {
	return Rules{
		StartEnergy:       6,
		StartCrew:         5,
		EnergyMax:         10,
		CrewMax:           7,
		EnergyRegen:       2,
		CrewRegen:         1,
		PressureMax:       12,
		SurchargePressure: 5,
		CrewRegenPressure: 8,
		EscalationReset:   2,
		SevereTags:        []string{"large-scale", "hazmat", "height", "entrapment"},
		HandSize:          10,
		RoundRewardDraw:   5,
		RoundRewardCoin:   5,
	}
}
