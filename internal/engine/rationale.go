package engine

import (
	"fmt"

	"caretier/internal/model"
)

var domainTitles = map[model.Domain]string{
	model.DomainDemographics: "Demographics and isolation",
	model.DomainMobility:     "Medication, mobility and falls",
	model.DomainADL:          "Daily living and support needs",
	model.DomainCognition:    "Cognition and behavior",
}

// composeRationale renders the scoring and gate trace into ordered
// explanation bullets. Every bullet maps to a domain contribution or a gate
// decision already present in the trace; nothing new is introduced here, so
// the explanation stays auditable.
func composeRationale(scores domainScores, gates gateResult, promoted bool) []string {
	var bullets []string

	for _, d := range model.AllDomains {
		if sub := scores.subtotals[d]; sub > 0 {
			bullets = append(bullets, fmt.Sprintf("%s contribute %d of %d points", domainTitles[d], sub, scores.total))
		}
	}

	switch gates.cognitionBand {
	case model.CognitionMild:
		bullets = append(bullets, "Mild cognitive decline reported")
	case model.CognitionModerate:
		bullets = append(bullets, "Moderate cognitive decline reported")
	case model.CognitionSevere:
		if gates.confirmed {
			bullets = append(bullets, "Severe cognitive decline with a confirmed diagnosis")
		} else {
			bullets = append(bullets, "Severe cognitive decline without a confirmed diagnosis")
		}
	}

	for _, decision := range gates.trace {
		if len(decision.Blocked) > 0 {
			bullets = append(bullets, fmt.Sprintf("Gate (%s): %s", decision.Gate, decision.Reason))
		}
	}

	if promoted {
		bullets = append(bullets, "High-acuity indicators support memory care with high-acuity staffing")
	}

	return bullets
}
