package engine

import (
	"fmt"

	"caretier/internal/config"
	"caretier/internal/model"
)

// gateResult is the combined eligibility decision of both override gates.
// A tier must pass both gates to remain eligible; independent is exempt and
// is always the floor.
type gateResult struct {
	blocked       map[model.Tier]bool
	trace         []model.GateDecision
	cognitionBand model.CognitionBand
	supportNeed   model.SupportNeed
	confirmed     bool
}

func (g gateResult) eligible(tier model.Tier) bool {
	return !g.blocked[tier]
}

// cognitionBandOf classifies the cognition subtotal against the configured
// thresholds.
func cognitionBandOf(rules *config.RuleSet, cognitionScore int) model.CognitionBand {
	cg := rules.Gates.Cognition
	switch {
	case cognitionScore >= cg.SevereMin:
		return model.CognitionSevere
	case cognitionScore >= cg.ModerateMin:
		return model.CognitionModerate
	case cognitionScore >= cg.MildMin:
		return model.CognitionMild
	}
	return model.CognitionNone
}

// supportNeedOf classifies the ADL/support subtotal.
func supportNeedOf(rules *config.RuleSet, adlScore int) model.SupportNeed {
	st := rules.Gates.Support
	switch {
	case adlScore >= st.HighMin:
		return model.SupportHigh
	case adlScore >= st.ModerateMin:
		return model.SupportModerate
	}
	return model.SupportLow
}

// evaluateGates applies the Cognitive Gate and the Behavior Gate as
// independent predicates and records a trace entry for each. An unanswered
// diagnosis-confirmation question is conservatively treated as "not
// confirmed", capping acuity rather than failing.
func evaluateGates(rules *config.RuleSet, scores domainScores, flags model.FlagSet) gateResult {
	result := gateResult{
		blocked:       make(map[model.Tier]bool),
		cognitionBand: cognitionBandOf(rules, scores.subtotals[model.DomainCognition]),
		supportNeed:   supportNeedOf(rules, scores.subtotals[model.DomainADL]),
		confirmed:     flags.Has(rules.Gates.Cognition.ConfirmFlag),
	}

	// Cognitive Gate: memory-care tiers need at least a moderate cognition
	// band; the high-acuity tier additionally needs a severe band with a
	// confirmed diagnosis.
	cogDecision := model.GateDecision{Gate: "cognitive"}
	switch result.cognitionBand {
	case model.CognitionNone, model.CognitionMild:
		cogDecision.Blocked = []model.Tier{model.TierMemoryCare, model.TierMemoryCareHighAcuity}
		cogDecision.Reason = fmt.Sprintf("cognition band %s: memory care tiers not eligible", result.cognitionBand)
	case model.CognitionModerate:
		cogDecision.Blocked = []model.Tier{model.TierMemoryCareHighAcuity}
		cogDecision.Reason = "cognition band moderate: high-acuity memory care not eligible"
	case model.CognitionSevere:
		if result.confirmed {
			cogDecision.Reason = "cognition band severe with confirmed diagnosis: memory care tiers eligible"
		} else {
			cogDecision.Blocked = []model.Tier{model.TierMemoryCareHighAcuity}
			cogDecision.Reason = "cognition band severe without confirmed diagnosis: eligibility capped at memory care"
		}
	}
	result.trace = append(result.trace, cogDecision)

	// Behavior Gate: without documented risky behaviors, memory-care tiers
	// require a high support need.
	behaviorDecision := model.GateDecision{Gate: "behavior"}
	switch {
	case result.supportNeed == model.SupportHigh:
		behaviorDecision.Reason = "high support need bypasses the risky-behavior requirement"
	case flags.HasAny(rules.Gates.Behavior.RiskyFlags...):
		behaviorDecision.Reason = "risky behaviors documented: memory care tiers eligible"
	default:
		behaviorDecision.Blocked = []model.Tier{model.TierMemoryCare, model.TierMemoryCareHighAcuity}
		behaviorDecision.Reason = fmt.Sprintf("no risky behaviors documented with %s support need: memory care tiers not eligible", result.supportNeed)
	}
	result.trace = append(result.trace, behaviorDecision)

	for _, decision := range result.trace {
		for _, tier := range decision.Blocked {
			if tier == model.TierIndependent {
				continue
			}
			result.blocked[tier] = true
		}
	}

	return result
}
