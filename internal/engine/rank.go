package engine

import (
	"math"
	"sort"

	"caretier/internal/config"
	"caretier/internal/model"
)

// rankTiers orders all five tiers by band fit. The tier whose band contains
// the total score ranks first; the rest follow by absolute distance of their
// band midpoint from the score, ties broken toward higher acuity
// (under-recommending care is the worse failure mode).
//
// The high-acuity tier has no band of its own: it normally trails memory care
// at the same distance, and is promoted to the top only when the score sits
// in the memory-care band, a configured high-acuity flag is present, and the
// gates have not blocked it.
func rankTiers(rules *config.RuleSet, total int, flags model.FlagSet, gates gateResult) ([]model.TierRanking, bool) {
	entries := make([]model.TierRanking, 0, len(model.AllTiers))
	for _, band := range rules.Bands {
		dist := 0.0
		if !band.Contains(total) {
			dist = math.Abs(band.Midpoint() - float64(total))
		}
		entries = append(entries, model.TierRanking{Tier: band.Tier, Score: dist})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score < entries[j].Score
		}
		return entries[i].Tier.Acuity() > entries[j].Tier.Acuity()
	})

	// Slot high acuity directly after memory care, carrying the same fit
	// distance.
	ranked := make([]model.TierRanking, 0, len(model.AllTiers))
	for _, e := range entries {
		ranked = append(ranked, e)
		if e.Tier == model.TierMemoryCare {
			ranked = append(ranked, model.TierRanking{Tier: model.TierMemoryCareHighAcuity, Score: e.Score})
		}
	}

	promoted := promoteHighAcuity(rules, total, flags, gates)
	if promoted {
		for i, e := range ranked {
			if e.Tier == model.TierMemoryCareHighAcuity {
				copy(ranked[1:i+1], ranked[:i])
				ranked[0] = e
				break
			}
		}
	}

	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, promoted
}

func promoteHighAcuity(rules *config.RuleSet, total int, flags model.FlagSet, gates gateResult) bool {
	if !gates.eligible(model.TierMemoryCareHighAcuity) {
		return false
	}
	band, ok := rules.BandFor(total)
	if !ok || band.Tier != model.TierMemoryCare {
		return false
	}
	return flags.HasAny(rules.HighAcuityFlags...)
}

// selectTier walks the ranking and returns the first tier both gates left
// eligible. Independent is exempt from gating, so the walk always terminates
// with a recommendation.
func selectTier(rankings []model.TierRanking, gates gateResult) model.Tier {
	for _, r := range rankings {
		if gates.eligible(r.Tier) {
			return r.Tier
		}
	}
	return model.TierIndependent
}
