package engine

import (
	"fmt"
	"sort"

	"caretier/internal/config"
	"caretier/internal/model"
)

// estimateHours runs the weighted daily-hours pipeline: sum the hour weights
// of every affirmed ADL/IADL need, scale by the cognition and falls
// multipliers, add flat increments for specific behaviors and
// high-dependency mobility states, then bucket the result into a band.
func estimateHours(rules *config.RuleSet, answers *model.AnswerSet, flags model.FlagSet, cogBand model.CognitionBand) *model.HoursEstimate {
	var factors []string
	hours := 0.0

	for i := range rules.Questions {
		q := &rules.Questions[i]
		ans := answers.Answer(q.ID)
		if !ans.Answered || exclusiveChosen(q, ans.OptionIDs) {
			continue
		}
		for _, id := range ans.OptionIDs {
			opt, ok := q.Option(id)
			if !ok || opt.HoursWeight <= 0 {
				continue
			}
			hours += opt.HoursWeight
			factors = append(factors, fmt.Sprintf("%s (+%.2gh)", opt.Label, opt.HoursWeight))
		}
	}

	if m, ok := rules.Hours.CognitionMultipliers[cogBand]; ok && m != 1.0 {
		hours *= m
		factors = append(factors, fmt.Sprintf("cognition band %s (x%.2g)", cogBand, m))
	}

	if flagID, m := maxMultiplier(rules.Hours.FallsMultipliers, flags); m > 1.0 {
		hours *= m
		factors = append(factors, fmt.Sprintf("falls history %s (x%.2g)", flagID, m))
	}

	hours += flatIncrements(rules.Hours.BehaviorIncrements, flags, &factors)
	hours += flatIncrements(rules.Hours.MobilityIncrements, flags, &factors)

	band := bucketHours(rules, hours)
	low, high := model.HoursBandRange(band)
	return &model.HoursEstimate{
		Band:                band,
		HoursLow:            low,
		HoursHigh:           high,
		ContributingFactors: factors,
	}
}

// maxMultiplier returns the largest configured multiplier whose flag is
// present, preferring the lexicographically smaller flag id on ties so the
// trace stays deterministic.
func maxMultiplier(multipliers map[string]float64, flags model.FlagSet) (string, float64) {
	bestID, best := "", 1.0
	for _, flagID := range sortedKeys(multipliers) {
		if !flags.Has(flagID) {
			continue
		}
		if m := multipliers[flagID]; m > best {
			bestID, best = flagID, m
		}
	}
	return bestID, best
}

func flatIncrements(increments map[string]float64, flags model.FlagSet, factors *[]string) float64 {
	added := 0.0
	for _, flagID := range sortedKeys(increments) {
		if !flags.Has(flagID) {
			continue
		}
		added += increments[flagID]
		*factors = append(*factors, fmt.Sprintf("%s (+%.2gh)", flagID, increments[flagID]))
	}
	return added
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// bucketHours maps a raw hours figure onto the fixed bands. Anything at or
// above the full-day cut collapses to the 24h band; the 12-16h band is
// reserved for adjudicated refinements.
func bucketHours(rules *config.RuleSet, hours float64) model.HoursBand {
	h := rules.Hours
	switch {
	case hours < h.UnderOneMax:
		return model.HoursBandUnder1
	case hours < h.OneToThreeMax:
		return model.HoursBand1To3
	case hours < h.FullDayMin:
		return model.HoursBand4To8
	}
	return model.HoursBandFullDay
}
