package engine

import (
	"math"

	"caretier/internal/config"
	"caretier/internal/model"
)

const (
	completenessWeight  = 0.6
	boundaryWeight      = 0.4
	confidenceFloor     = 0.5
	fullClarityDistance = 3.0
)

// confidence blends answer completeness with score-to-boundary distance,
// floored at 0.5. The two signals are deliberately independent: either one
// alone is an incomplete trust measure.
func confidence(rules *config.RuleSet, answers *model.AnswerSet, total int) float64 {
	completeness := 1.0
	if answers.RequiredTotal > 0 {
		completeness = float64(answers.AnsweredRequired) / float64(answers.RequiredTotal)
	}

	clarity := 0.0
	if band, ok := rules.BandFor(total); ok {
		dist := math.Min(float64(total-band.Min), float64(band.Max-total))
		clarity = math.Min(dist/fullClarityDistance, 1.0)
	}

	value := completeness*completenessWeight + clarity*boundaryWeight
	return math.Max(confidenceFloor, value)
}
