package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"caretier/internal/model"
)

func TestDefaultRuleSetValidates(t *testing.T) {
	rs, err := LoadRuleSet("")
	require.NoError(t, err)
	assert.Equal(t, "2025.1", rs.Version)
	assert.Len(t, rs.Bands, 4)
	assert.Equal(t, HoursModeActive, rs.HoursMode)
}

func TestValidateRejectsBandGap(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Bands = []TierBand{
		{Tier: model.TierIndependent, Min: 0, Max: 8},
		{Tier: model.TierInHome, Min: 10, Max: 16}, // gap at 9
		{Tier: model.TierAssistedLiving, Min: 17, Max: 24},
		{Tier: model.TierMemoryCare, Min: 25, Max: 100},
	}

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap or overlap")
}

func TestValidateRejectsBandOverlap(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Bands[1].Min = 7

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap or overlap")
}

func TestValidateRejectsBandsOutOfAcuityOrder(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Bands[1].Tier = model.TierAssistedLiving
	rs.Bands[2].Tier = model.TierInHome

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "acuity order")
}

func TestValidateRejectsUndefinedFlagReference(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Questions[1].Options[2].Flags = []string{"not_declared"}

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined flag")
}

func TestValidateRejectsCompositeCollidingWithFlag(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Composites[0].ID = "wandering"

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides")
}

func TestValidateRejectsNonIncreasingThresholds(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Gates.Cognition.ModerateMin = rs.Gates.Cognition.SevereMin

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strictly increasing")
}

func TestValidateRejectsScoredExclusiveOption(t *testing.T) {
	rs := DefaultRuleSet()
	for i, opt := range rs.Questions[5].Options {
		if opt.Exclusive {
			rs.Questions[5].Options[i].Points = 1
		}
	}

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must score 0")
}

func TestValidateRejectsSubUnityMultiplier(t *testing.T) {
	rs := DefaultRuleSet()
	rs.Hours.CognitionMultipliers[model.CognitionSevere] = 0.9

	err := rs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below 1.0")
}

func TestLoadRuleSetFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	rs := DefaultRuleSet()
	rs.Version = "test.override"
	writeRuleSetYAML(t, path, rs)

	loaded, err := LoadRuleSet(path)
	require.NoError(t, err)
	assert.Equal(t, "test.override", loaded.Version)
	assert.Len(t, loaded.Questions, len(rs.Questions))
}

func TestLoadRuleSetRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0o600))

	_, err := LoadRuleSet(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse rule set")
}

func TestLoadRuleSetRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	rs := DefaultRuleSet()
	rs.Bands[0].Min = 1 // bands no longer start at 0
	writeRuleSetYAML(t, path, rs)

	_, err := LoadRuleSet(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate rule set")
}

func TestLoadRuleSetMissingFile(t *testing.T) {
	_, err := LoadRuleSet(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read rule set")
}

func TestBandLookupHelpers(t *testing.T) {
	rs := DefaultRuleSet()

	band, ok := rs.BandFor(17)
	require.True(t, ok)
	assert.Equal(t, model.TierAssistedLiving, band.Tier)

	band, ok = rs.BandOf(model.TierInHome)
	require.True(t, ok)
	assert.Equal(t, 9, band.Min)

	_, ok = rs.BandOf(model.TierMemoryCareHighAcuity)
	assert.False(t, ok, "high acuity has no score band")
}

func writeRuleSetYAML(t *testing.T, path string, rs *RuleSet) {
	t.Helper()
	data, err := yaml.Marshal(rs)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}
