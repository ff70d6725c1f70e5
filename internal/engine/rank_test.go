package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretier/internal/model"
)

func TestEveryScoreMapsToExactlyOneBand(t *testing.T) {
	rules := defaultRules(t)

	for score := 0; score <= 100; score++ {
		matches := 0
		for _, band := range rules.Bands {
			if band.Contains(score) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "score %d must map to exactly one tier band", score)
	}
}

func openGates() gateResult {
	return gateResult{blocked: map[model.Tier]bool{}}
}

func TestRankContainingBandFirst(t *testing.T) {
	rules := defaultRules(t)

	rankings, promoted := rankTiers(rules, 12, model.NewFlagSet(), openGates())

	assert.False(t, promoted)
	require.Len(t, rankings, 5)
	assert.Equal(t, model.TierInHome, rankings[0].Tier)
	assert.Equal(t, 0.0, rankings[0].Score)
	assert.Equal(t, 1, rankings[0].Rank)
}

func TestRankRemainingTiersByMidpointDistance(t *testing.T) {
	rules := defaultRules(t)

	rankings, _ := rankTiers(rules, 12, model.NewFlagSet(), openGates())

	// From 12: independent mid 4 (dist 8), assisted mid 20.5 (8.5),
	// memory mid 62.5 (50.5), high acuity trails memory care.
	assert.Equal(t, model.TierIndependent, rankings[1].Tier)
	assert.Equal(t, model.TierAssistedLiving, rankings[2].Tier)
	assert.Equal(t, model.TierMemoryCare, rankings[3].Tier)
	assert.Equal(t, model.TierMemoryCareHighAcuity, rankings[4].Tier)
}

func TestHighAcuityTrailsMemoryCareWithoutPromotion(t *testing.T) {
	rules := defaultRules(t)

	rankings, promoted := rankTiers(rules, 40, model.NewFlagSet(), openGates())

	assert.False(t, promoted)
	assert.Equal(t, model.TierMemoryCare, rankings[0].Tier)
	assert.Equal(t, model.TierMemoryCareHighAcuity, rankings[1].Tier)
	assert.Equal(t, rankings[0].Score, rankings[1].Score)
}

func TestHighAcuityPromotedByFlags(t *testing.T) {
	rules := defaultRules(t)
	flags := model.NewFlagSet()
	flags.Add(model.Flag{ID: "wheelchair"})

	rankings, promoted := rankTiers(rules, 40, flags, openGates())

	assert.True(t, promoted)
	assert.Equal(t, model.TierMemoryCareHighAcuity, rankings[0].Tier)
	assert.Equal(t, model.TierMemoryCare, rankings[1].Tier)
}

func TestNoPromotionOutsideMemoryCareBand(t *testing.T) {
	rules := defaultRules(t)
	flags := model.NewFlagSet()
	flags.Add(model.Flag{ID: "wheelchair"})

	_, promoted := rankTiers(rules, 20, flags, openGates())

	assert.False(t, promoted)
}

func TestNoPromotionWhenGatesBlockHighAcuity(t *testing.T) {
	rules := defaultRules(t)
	flags := model.NewFlagSet()
	flags.Add(model.Flag{ID: "wheelchair"})
	gates := gateResult{blocked: map[model.Tier]bool{model.TierMemoryCareHighAcuity: true}}

	rankings, promoted := rankTiers(rules, 40, flags, gates)

	assert.False(t, promoted)
	assert.Equal(t, model.TierMemoryCare, rankings[0].Tier)
}

func TestSelectTierSkipsBlockedTiers(t *testing.T) {
	rules := defaultRules(t)
	gates := gateResult{blocked: map[model.Tier]bool{
		model.TierMemoryCare:           true,
		model.TierMemoryCareHighAcuity: true,
	}}

	rankings, _ := rankTiers(rules, 40, model.NewFlagSet(), gates)
	tier := selectTier(rankings, gates)

	assert.Equal(t, model.TierAssistedLiving, tier)
}
