package model

import "time"

// Assessment is one stored submission: the raw answers as received plus the
// recommendation produced for them. Rows are write-once; a corrected
// submission is stored as a new assessment.
type Assessment struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	Answers        RawAnswers      `json:"answers" bson:"answers"`
	EffectFlags    []string        `json:"effectFlags,omitempty" bson:"effectFlags,omitempty"`
	Recommendation *Recommendation `json:"recommendation" bson:"recommendation"`
	SubmittedAt    time.Time       `json:"submittedAt" bson:"submittedAt"`
}
