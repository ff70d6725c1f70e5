package engine

import (
	"caretier/internal/config"
	"caretier/internal/model"
)

// domainScores holds the per-domain subtotals, the question ids that
// contributed to each, and the grand total.
type domainScores struct {
	subtotals    map[model.Domain]int
	contributors map[model.Domain][]string
	total        int
}

// scoreAnswers computes every domain subtotal from a normalized answer set.
// Scoring is purely additive and order-independent; the same answer set
// always produces the same scores.
func scoreAnswers(rules *config.RuleSet, answers *model.AnswerSet) domainScores {
	scores := domainScores{
		subtotals:    make(map[model.Domain]int, len(model.AllDomains)),
		contributors: make(map[model.Domain][]string),
	}
	for _, d := range model.AllDomains {
		scores.subtotals[d] = 0
	}

	for i := range rules.Questions {
		q := &rules.Questions[i]
		ans := answers.Answer(q.ID)
		if !ans.Answered {
			continue
		}
		points := scoreQuestion(q, ans)
		scores.subtotals[q.Domain] += points
		scores.total += points
		if points > 0 {
			scores.contributors[q.Domain] = append(scores.contributors[q.Domain], q.ID)
		}
	}

	return scores
}

// scoreQuestion applies the per-kind scoring primitive. An unanswered
// question scores 0; a chosen exclusive ("none of the above") option
// suppresses every other contribution on its question.
func scoreQuestion(q *model.Question, ans model.NormalizedAnswer) int {
	switch q.Kind {
	case model.KindSingleChoice:
		if len(ans.OptionIDs) == 0 {
			return 0
		}
		opt, ok := q.Option(ans.OptionIDs[0])
		if !ok {
			return 0
		}
		return opt.Points

	case model.KindMultiChoice:
		if exclusiveChosen(q, ans.OptionIDs) {
			return 0
		}
		sum := 0
		for _, id := range ans.OptionIDs {
			if opt, ok := q.Option(id); ok {
				sum += opt.Points
			}
		}
		return sum
	}

	// Numeric answers carry no declared point values; they count toward
	// completeness only.
	return 0
}

// exclusiveChosen reports whether any chosen option is an exclusive
// "none of the above" entry.
func exclusiveChosen(q *model.Question, optionIDs []string) bool {
	for _, id := range optionIDs {
		if opt, ok := q.Option(id); ok && opt.Exclusive {
			return true
		}
	}
	return false
}
