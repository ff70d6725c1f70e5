package model

// GateDecision is one gate's trace entry. Blocked lists the tiers the gate
// removed from eligibility; an empty list means the gate passed everything.
type GateDecision struct {
	Gate    string `json:"gate" bson:"gate"`
	Blocked []Tier `json:"blocked,omitempty" bson:"blocked,omitempty"`
	Reason  string `json:"reason" bson:"reason"`
}

// Audit carries the raw scoring state needed to replay and explain a
// recommendation after the fact.
type Audit struct {
	DomainSubtotals map[Domain]int `json:"domain_subtotals" bson:"domainSubtotals"`
	RuleSetVersion  string         `json:"rule_set_version" bson:"ruleSetVersion"`
	GateTrace       []GateDecision `json:"gate_trace" bson:"gateTrace"`
	// Notes records non-fatal degradations: normalization warnings,
	// adjudication fallbacks
	Notes []string `json:"notes,omitempty" bson:"notes,omitempty"`
	// ShadowHours holds the hours estimate when the estimator runs in
	// shadow mode (computed but not surfaced in the contract)
	ShadowHours *HoursEstimate `json:"shadow_hours,omitempty" bson:"shadowHours,omitempty"`
}

// Recommendation is the engine's single immutable output contract. Any change
// in inputs produces a new Recommendation; one is never patched in place.
type Recommendation struct {
	Tier          Tier           `json:"tier" bson:"tier"`
	TierScore     int            `json:"tier_score" bson:"tierScore"`
	TierRankings  []TierRanking  `json:"tier_rankings" bson:"tierRankings"`
	Confidence    float64        `json:"confidence" bson:"confidence"`
	Flags         []Flag         `json:"flags" bson:"flags"`
	Rationale     []string       `json:"rationale" bson:"rationale"`
	HoursEstimate *HoursEstimate `json:"hours_estimate" bson:"hoursEstimate,omitempty"`
	Audit         Audit          `json:"audit" bson:"audit"`
}
