package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caretier/internal/config"
	"caretier/internal/model"
)

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	rules, err := config.LoadRuleSet("")
	require.NoError(t, err)
	return New(rules)
}

// fullDependencyAnswers is a submission with maximal needs across every
// domain: all ADL/IADL items, severe confirmed cognition, frequent falls,
// wheelchair mobility.
func fullDependencyAnswers() model.RawAnswers {
	return model.RawAnswers{
		"age_range":             "85_plus",
		"living_situation":      "alone",
		"medication_management": "administered",
		"mobility_status":       "wheelchair",
		"falls_history":         "multiple",
		"badl_needs":            []string{"bathing", "dressing", "toileting", "eating", "transfers", "grooming"},
		"iadl_needs":            []string{"meal_prep", "housekeeping", "finances", "transportation", "medications", "shopping"},
		"caregiver_support":     "none",
		"memory_decline":        "severe",
		"diagnosis_confirmed":   "yes",
		"behavior_concerns":     []string{"wandering", "sundowning"},
	}
}

func noNeedsAnswers() model.RawAnswers {
	return model.RawAnswers{
		"age_range":             "under_65",
		"living_situation":      "with_family",
		"medication_management": "independent",
		"mobility_status":       "independent",
		"falls_history":         "none",
		"badl_needs":            []string{"none"},
		"iadl_needs":            []string{"none"},
		"caregiver_support":     "live_in",
		"memory_decline":        "none",
		"behavior_concerns":     []string{"none"},
	}
}

func TestFullDependencyReachesHighAcuity(t *testing.T) {
	eng := defaultEngine(t)

	rec := eng.Evaluate(context.Background(), fullDependencyAnswers(), nil, Options{CompareHours: true})

	assert.Equal(t, model.TierMemoryCareHighAcuity, rec.Tier)
	assert.GreaterOrEqual(t, rec.Confidence, 0.9)
	require.NotNil(t, rec.HoursEstimate)
	assert.Equal(t, model.HoursBandFullDay, rec.HoursEstimate.Band)
	assert.Equal(t, 1, rec.TierRankings[0].Rank)
	assert.Equal(t, model.TierMemoryCareHighAcuity, rec.TierRankings[0].Tier)
}

func TestNoNeedsStaysIndependent(t *testing.T) {
	eng := defaultEngine(t)

	rec := eng.Evaluate(context.Background(), noNeedsAnswers(), nil, Options{})

	assert.Equal(t, model.TierIndependent, rec.Tier)
	assert.Equal(t, 0, rec.TierScore)
	assert.Nil(t, rec.HoursEstimate, "hours are not applicable outside in-home care")
	assert.Empty(t, rec.Flags)
}

func TestBoundaryScoreYieldsMinimalClarity(t *testing.T) {
	eng := defaultEngine(t)

	// Total lands exactly on the in_home/assisted_living boundary (17).
	answers := model.RawAnswers{
		"age_range":             "75_84",
		"living_situation":      "alone",
		"medication_management": "reminders",
		"mobility_status":       "cane_walker",
		"falls_history":         "one",
		"badl_needs":            []string{"bathing", "dressing"},
		"iadl_needs":            []string{"finances"},
		"caregiver_support":     "daily",
		"memory_decline":        "none",
		"behavior_concerns":     []string{"none"},
	}
	rec := eng.Evaluate(context.Background(), answers, nil, Options{})

	require.Equal(t, 17, rec.TierScore)
	assert.Equal(t, model.TierAssistedLiving, rec.Tier)
	assert.InDelta(t, 0.6, rec.Confidence, 1e-9, "full completeness, zero boundary clarity")
}

func TestHighSupportNeedBypassesBehaviorGate(t *testing.T) {
	eng := defaultEngine(t)

	answers := model.RawAnswers{
		"age_range":             "85_plus",
		"living_situation":      "alone",
		"medication_management": "administered",
		"mobility_status":       "wheelchair",
		"falls_history":         "multiple",
		"badl_needs":            []string{"bathing", "dressing", "toileting", "eating", "transfers", "grooming"},
		"iadl_needs":            []string{"meal_prep", "housekeeping"},
		"caregiver_support":     "none",
		"memory_decline":        "moderate",
		"diagnosis_confirmed":   "no",
		"behavior_concerns":     []string{"none"},
	}
	rec := eng.Evaluate(context.Background(), answers, nil, Options{})

	assert.Equal(t, model.TierMemoryCare, rec.Tier)
	for _, d := range rec.Audit.GateTrace {
		if d.Gate == "behavior" {
			assert.Empty(t, d.Blocked)
		}
	}
}

func TestBehaviorGateBlocksMemoryCareWithModerateSupport(t *testing.T) {
	eng := defaultEngine(t)

	answers := model.RawAnswers{
		"age_range":             "85_plus",
		"living_situation":      "alone",
		"medication_management": "administered",
		"mobility_status":       "bedbound",
		"falls_history":         "multiple",
		"badl_needs":            []string{"bathing", "dressing"},
		"iadl_needs":            []string{"finances"},
		"caregiver_support":     "none",
		"memory_decline":        "moderate",
		"behavior_concerns":     []string{"sundowning"},
	}
	rec := eng.Evaluate(context.Background(), answers, nil, Options{})

	require.GreaterOrEqual(t, rec.TierScore, 25, "score must rank memory_care first for the fallback to matter")
	assert.Equal(t, model.TierAssistedLiving, rec.Tier, "gated down to the next eligible tier")

	var behavior model.GateDecision
	for _, d := range rec.Audit.GateTrace {
		if d.Gate == "behavior" {
			behavior = d
		}
	}
	assert.Contains(t, behavior.Blocked, model.TierMemoryCare)
}

func TestSevereCognitionWithoutDiagnosisNeverHighAcuity(t *testing.T) {
	eng := defaultEngine(t)

	answers := fullDependencyAnswers()
	delete(answers, "diagnosis_confirmed")

	rec := eng.Evaluate(context.Background(), answers, nil, Options{})

	assert.Equal(t, model.TierMemoryCare, rec.Tier, "unconfirmed severe cognition caps at memory care")
	assert.NotEqual(t, model.TierMemoryCareHighAcuity, rec.TierRankings[0].Tier)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	eng := defaultEngine(t)
	answers := fullDependencyAnswers()

	first := eng.Evaluate(context.Background(), answers, []string{"no_support"}, Options{CompareHours: true})
	second := eng.Evaluate(context.Background(), answers, []string{"no_support"}, Options{CompareHours: true})

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestConfidenceAlwaysWithinBounds(t *testing.T) {
	eng := defaultEngine(t)

	cases := []model.RawAnswers{
		{},
		{"age_range": "85_plus"},
		{"age_range": "bogus", "mobility_status": 42},
		noNeedsAnswers(),
		fullDependencyAnswers(),
	}
	for _, answers := range cases {
		rec := eng.Evaluate(context.Background(), answers, nil, Options{})
		assert.GreaterOrEqual(t, rec.Confidence, 0.5)
		assert.LessOrEqual(t, rec.Confidence, 1.0)
	}
}

func TestIncreasingSeverityNeverDecreasesScore(t *testing.T) {
	eng := defaultEngine(t)

	base := noNeedsAnswers()
	previous := -1
	for _, falls := range []string{"none", "one", "multiple"} {
		answers := model.RawAnswers{}
		for k, v := range base {
			answers[k] = v
		}
		answers["falls_history"] = falls
		rec := eng.Evaluate(context.Background(), answers, nil, Options{})
		assert.GreaterOrEqual(t, rec.TierScore, previous)
		previous = rec.TierScore
	}
}

func TestPartialAnswersStillProduceRecommendation(t *testing.T) {
	eng := defaultEngine(t)

	rec := eng.Evaluate(context.Background(), model.RawAnswers{
		"memory_decline": "severe",
		"badl_needs":     []string{"bathing", "eating"},
	}, nil, Options{})

	require.NotNil(t, rec)
	assert.Len(t, rec.TierRankings, 5)
	assert.Less(t, rec.Confidence, 1.0)
}

func TestRankingsCoverAllTiersExactlyOnce(t *testing.T) {
	eng := defaultEngine(t)

	rec := eng.Evaluate(context.Background(), noNeedsAnswers(), nil, Options{})

	seen := make(map[model.Tier]bool)
	for i, r := range rec.TierRankings {
		assert.Equal(t, i+1, r.Rank)
		assert.False(t, seen[r.Tier], "tier %s ranked twice", r.Tier)
		seen[r.Tier] = true
	}
	assert.Len(t, seen, 5)
}
