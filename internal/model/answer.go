package model

// RawAnswers is the input contract: question id to a single option id,
// a list of option ids, or a number, matching the question's declared kind.
type RawAnswers map[string]interface{}

// NormalizedAnswer is one typed scoring input. Unanswered questions are kept
// with Answered=false rather than dropped, so completeness can be computed.
type NormalizedAnswer struct {
	QuestionID string
	OptionIDs  []string // chosen option ids (single choice yields one entry)
	Number     float64  // numeric kind only
	Answered   bool
}

// AnswerSet is the normalized, immutable view of one assessment submission.
// Re-scoring the same AnswerSet always yields the same result; re-submission
// creates a new AnswerSet.
type AnswerSet struct {
	Values map[string]NormalizedAnswer
	// AnsweredRequired / RequiredTotal feed the completeness half of the
	// confidence calculation
	AnsweredRequired int
	RequiredTotal    int
	// Warnings are non-fatal normalization notes (unknown options, type
	// mismatches). They never block scoring.
	Warnings []string
}

// Answer returns the normalized answer for a question id. A missing entry is
// reported as unanswered.
func (a *AnswerSet) Answer(questionID string) NormalizedAnswer {
	if v, ok := a.Values[questionID]; ok {
		return v
	}
	return NormalizedAnswer{QuestionID: questionID}
}
