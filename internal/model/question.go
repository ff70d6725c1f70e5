package model

// QuestionKind defines how a question is answered and scored
type QuestionKind string

const (
	KindSingleChoice QuestionKind = "single_choice" // one option id, scores that option's points
	KindMultiChoice  QuestionKind = "multi_choice"  // list of option ids, scores the sum
	KindNumeric      QuestionKind = "numeric"       // free number, informational (no points)
)

// Domain groups questions into scoring subtotals
type Domain string

const (
	DomainDemographics Domain = "demographics" // demographics and isolation
	DomainMobility     Domain = "mobility"     // medication, mobility and falls
	DomainADL          Domain = "adl"          // ADL/IADL and support burden
	DomainCognition    Domain = "cognition"    // cognition and behavior
)

// AllDomains lists the scoring domains in presentation order.
var AllDomains = []Domain{DomainDemographics, DomainMobility, DomainADL, DomainCognition}

// Option is a declared answer choice with its point value and flag tags
type Option struct {
	ID    string `json:"id" yaml:"id" validate:"required"`
	Label string `json:"label" yaml:"label" validate:"required"`
	// Points contributed to the question's domain when this option is chosen
	Points int `json:"points" yaml:"points" validate:"gte=0"`
	// Flags are declarative flag ids raised when this option is chosen
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	// Exclusive marks a "none of the above" option: it scores 0 and
	// suppresses every other selection on the same question
	Exclusive bool `json:"exclusive,omitempty" yaml:"exclusive,omitempty"`
	// HoursWeight is the daily caregiving hours this need adds to the
	// baseline estimate (ADL/IADL options only)
	HoursWeight float64 `json:"hoursWeight,omitempty" yaml:"hoursWeight,omitempty" validate:"gte=0"`
}

// Question is one schema entry in the assessment questionnaire
type Question struct {
	ID       string       `json:"id" yaml:"id" validate:"required"`
	Domain   Domain       `json:"domain" yaml:"domain" validate:"required,oneof=demographics mobility adl cognition"`
	Kind     QuestionKind `json:"kind" yaml:"kind" validate:"required,oneof=single_choice multi_choice numeric"`
	Prompt   string       `json:"prompt" yaml:"prompt" validate:"required"`
	Required bool         `json:"required" yaml:"required"`
	Options  []Option     `json:"options,omitempty" yaml:"options,omitempty" validate:"dive"`
}

// Option returns the declared option with the given id, if any.
func (q *Question) Option(id string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}
