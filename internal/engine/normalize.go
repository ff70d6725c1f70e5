package engine

import (
	"fmt"

	"caretier/internal/config"
	"caretier/internal/model"
)

// normalize validates and coerces raw answer values into a typed AnswerSet.
// Missing or unrecognized values degrade to "unanswered" with a warning;
// normalization never fails.
func normalize(rules *config.RuleSet, raw model.RawAnswers) *model.AnswerSet {
	set := &model.AnswerSet{Values: make(map[string]model.NormalizedAnswer, len(rules.Questions))}

	for i := range rules.Questions {
		q := &rules.Questions[i]
		if q.Required {
			set.RequiredTotal++
		}

		ans := model.NormalizedAnswer{QuestionID: q.ID}
		value, present := raw[q.ID]
		if present && value != nil {
			switch q.Kind {
			case model.KindSingleChoice:
				ans = normalizeSingle(q, value, set)
			case model.KindMultiChoice:
				ans = normalizeMulti(q, value, set)
			case model.KindNumeric:
				ans = normalizeNumeric(q, value, set)
			}
		}

		set.Values[q.ID] = ans
		if ans.Answered && q.Required {
			set.AnsweredRequired++
		}
	}

	return set
}

func normalizeSingle(q *model.Question, value interface{}, set *model.AnswerSet) model.NormalizedAnswer {
	ans := model.NormalizedAnswer{QuestionID: q.ID}
	optionID, ok := value.(string)
	if !ok {
		set.Warnings = append(set.Warnings, fmt.Sprintf("question %s: expected an option id, got %T", q.ID, value))
		return ans
	}
	if _, found := q.Option(optionID); !found {
		set.Warnings = append(set.Warnings, fmt.Sprintf("question %s: unknown option %q", q.ID, optionID))
		return ans
	}
	ans.OptionIDs = []string{optionID}
	ans.Answered = true
	return ans
}

func normalizeMulti(q *model.Question, value interface{}, set *model.AnswerSet) model.NormalizedAnswer {
	ans := model.NormalizedAnswer{QuestionID: q.ID}

	var rawIDs []string
	switch v := value.(type) {
	case string:
		// A lone selection may arrive unwrapped.
		rawIDs = []string{v}
	case []string:
		rawIDs = v
	case []interface{}:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				set.Warnings = append(set.Warnings, fmt.Sprintf("question %s: expected option ids, got %T", q.ID, item))
				continue
			}
			rawIDs = append(rawIDs, s)
		}
	default:
		set.Warnings = append(set.Warnings, fmt.Sprintf("question %s: expected a list of option ids, got %T", q.ID, value))
		return ans
	}

	seen := make(map[string]bool, len(rawIDs))
	for _, id := range rawIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, found := q.Option(id); !found {
			set.Warnings = append(set.Warnings, fmt.Sprintf("question %s: unknown option %q", q.ID, id))
			continue
		}
		ans.OptionIDs = append(ans.OptionIDs, id)
	}

	ans.Answered = len(ans.OptionIDs) > 0
	return ans
}

func normalizeNumeric(q *model.Question, value interface{}, set *model.AnswerSet) model.NormalizedAnswer {
	ans := model.NormalizedAnswer{QuestionID: q.ID}
	switch v := value.(type) {
	case float64:
		ans.Number = v
	case int:
		ans.Number = float64(v)
	default:
		set.Warnings = append(set.Warnings, fmt.Sprintf("question %s: expected a number, got %T", q.ID, value))
		return ans
	}
	ans.Answered = true
	return ans
}
