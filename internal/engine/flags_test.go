package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretier/internal/model"
)

func TestExtractFlagsFromChosenOptions(t *testing.T) {
	rules := defaultRules(t)

	set := normalize(rules, model.RawAnswers{
		"living_situation": "alone",
		"mobility_status":  "wheelchair",
	})
	flags, warnings := extractFlags(rules, set, nil)

	assert.Empty(t, warnings)
	assert.True(t, flags.Has("lives_alone"))
	assert.True(t, flags.Has("wheelchair"))
	assert.Equal(t, model.SeverityHigh, flags["wheelchair"].Severity)
}

func TestEffectFlagsMergeAfterDeclarative(t *testing.T) {
	rules := defaultRules(t)

	set := normalize(rules, model.RawAnswers{"living_situation": "alone"})
	flags, warnings := extractFlags(rules, set, []string{"no_support", "lives_alone", "made_up"})

	assert.True(t, flags.Has("no_support"), "effect flag added")
	assert.True(t, flags.Has("lives_alone"), "duplicate id kept once")
	assert.False(t, flags.Has("made_up"))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "made_up")
}

func TestCompositeFlagsDeriveLast(t *testing.T) {
	rules := defaultRules(t)

	set := normalize(rules, model.RawAnswers{"memory_decline": "moderate"})
	flags, _ := extractFlags(rules, set, nil)

	assert.True(t, flags.Has("memory_loss"))
	assert.True(t, flags.Has("cognitive_risk"), "composite derived from memory_loss")
	assert.False(t, flags.Has("falls_risk"))
}

func TestExclusiveOptionSuppressesSiblingFlags(t *testing.T) {
	rules := defaultRules(t)

	set := normalize(rules, model.RawAnswers{
		"behavior_concerns": []string{"wandering", "none"},
	})
	flags, _ := extractFlags(rules, set, nil)

	assert.False(t, flags.Has("wandering"))
}

func TestSortedFlagsAreDeterministic(t *testing.T) {
	flags := model.NewFlagSet()
	flags.Add(model.Flag{ID: "b"})
	flags.Add(model.Flag{ID: "a"})
	flags.Add(model.Flag{ID: "c"})

	out := sortedFlags(flags)
	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}
