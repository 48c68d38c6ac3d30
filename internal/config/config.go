package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"bftcg/internal/domain"
)

// GameConfig holds the operator-tunable match parameters. Zero-valued fields
// fall back to the built-in defaults, so a partial config file only overrides
// what it names.
type GameConfig struct {
	StartEnergy       int   `json:"start_energy"`
	StartCrew         int   `json:"start_crew"`
	EnergyMax         int   `json:"energy_max"`
	CrewMax           int   `json:"crew_max"`
	EnergyRegen       int   `json:"energy_regen"`
	CrewRegen         int   `json:"crew_regen"`
	PressureMax       int   `json:"pressure_max"`
	SurchargePressure int   `json:"surcharge_pressure"`
	CrewRegenPressure int   `json:"crew_regen_pressure"`
	EscalationReset   int   `json:"escalation_reset"`
	HandSize          int   `json:"hand_size"`
	RoundRewardDraw   int   `json:"round_reward_draw"`
	RoundRewardCoin   int64 `json:"round_reward_coin"`

	SevereTags []string `json:"severe_tags"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path. The first
// call wins; later calls return the first result.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, or nil when none was
// loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// Rules builds the effective rule set: defaults overlaid with whatever the
// loaded config specifies.
func Rules() domain.Rules {
	if cfg == nil {
		return domain.DefaultRules()
	}
	return cfg.apply(domain.DefaultRules())
}

func (c *GameConfig) apply(r domain.Rules) domain.Rules {
	if c.StartEnergy > 0 {
		r.StartEnergy = c.StartEnergy
	}
	if c.StartCrew > 0 {
		r.StartCrew = c.StartCrew
	}
	if c.EnergyMax > 0 {
		r.EnergyMax = c.EnergyMax
	}
	if c.CrewMax > 0 {
		r.CrewMax = c.CrewMax
	}
	if c.EnergyRegen > 0 {
		r.EnergyRegen = c.EnergyRegen
	}
	if c.CrewRegen > 0 {
		r.CrewRegen = c.CrewRegen
	}
	if c.PressureMax > 0 {
		r.PressureMax = c.PressureMax
	}
	if c.SurchargePressure > 0 {
		r.SurchargePressure = c.SurchargePressure
	}
	if c.CrewRegenPressure > 0 {
		r.CrewRegenPressure = c.CrewRegenPressure
	}
	if c.EscalationReset > 0 {
		r.EscalationReset = c.EscalationReset
	}
	if c.HandSize > 0 {
		r.HandSize = c.HandSize
	}
	if c.RoundRewardDraw > 0 {
		r.RoundRewardDraw = c.RoundRewardDraw
	}
	if c.RoundRewardCoin > 0 {
		r.RoundRewardCoin = c.RoundRewardCoin
	}
	if len(c.SevereTags) > 0 {
		r.SevereTags = append([]string(nil), c.SevereTags...)
	}
	return r
}
