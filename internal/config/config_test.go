package config

import (
	"os"
	"path/filepath"
	"testing"

	"bftcg/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverridesOnlyNamedFields(t *testing.T) {
	c := &GameConfig{
		PressureMax:     20,
		RoundRewardCoin: 10,
		SevereTags:      []string{"hazmat"},
	}
	r := c.apply(domain.DefaultRules())

	assert.Equal(t, 20, r.PressureMax)
	assert.Equal(t, int64(10), r.RoundRewardCoin)
	assert.Equal(t, []string{"hazmat"}, r.SevereTags)

	defaults := domain.DefaultRules()
	assert.Equal(t, defaults.StartEnergy, r.StartEnergy)
	assert.Equal(t, defaults.EnergyRegen, r.EnergyRegen)
	assert.Equal(t, defaults.HandSize, r.HandSize)
}

func TestRulesWithoutLoadedConfig(t *testing.T) {
	if cfg != nil {
		t.Skip("a config was already loaded in this process")
	}
	assert.Equal(t, domain.DefaultRules(), Rules())
}

func TestLoadGameConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pressure_max": 15, "severe_tags": ["hazmat", "height"]}`), 0o600))

	require.NoError(t, LoadGameConfig(path))

	loaded := GetGameConfig()
	require.NotNil(t, loaded)
	assert.Equal(t, 15, loaded.PressureMax)

	r := Rules()
	assert.Equal(t, 15, r.PressureMax)
	assert.Equal(t, []string{"hazmat", "height"}, r.SevereTags)
	assert.Equal(t, domain.DefaultRules().StartCrew, r.StartCrew)
}
