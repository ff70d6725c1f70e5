package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"caretier/internal/model"
)

// HoursMode selects how the hours estimator runs.
type HoursMode string

const (
	HoursModeOff    HoursMode = "off"    // never compute
	HoursModeShadow HoursMode = "shadow" // compute, attach to audit only
	HoursModeActive HoursMode = "active" // surface in the output contract
)

// TierBand is a closed score range that selects a tier. The high-acuity tier
// has no band; it is reached only via high-acuity flags.
type TierBand struct {
	Tier model.Tier `json:"tier" yaml:"tier" validate:"required,oneof=independent in_home assisted_living memory_care"`
	Min  int        `json:"min" yaml:"min" validate:"gte=0"`
	Max  int        `json:"max" yaml:"max" validate:"gte=0,lte=100"`
}

// Midpoint is the band center used for distance ranking.
func (b TierBand) Midpoint() float64 {
	return (float64(b.Min) + float64(b.Max)) / 2
}

// Contains reports whether the band covers the given score.
func (b TierBand) Contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

// FlagDef declares a flag id's severity and user-facing message.
type FlagDef struct {
	Severity model.Severity `json:"severity" yaml:"severity" validate:"required,oneof=low moderate high"`
	Message  string         `json:"message" yaml:"message" validate:"required"`
}

// CompositeFlag is derived from the presence of any underlying flag.
type CompositeFlag struct {
	ID       string         `json:"id" yaml:"id" validate:"required"`
	Severity model.Severity `json:"severity" yaml:"severity" validate:"required,oneof=low moderate high"`
	Message  string         `json:"message" yaml:"message" validate:"required"`
	AnyOf    []string       `json:"anyOf" yaml:"anyOf" validate:"required,min=1"`
}

// CognitionGateRules classifies the cognition subtotal into bands and names
// the flag that counts as a formal diagnosis confirmation.
type CognitionGateRules struct {
	MildMin     int    `json:"mildMin" yaml:"mildMin" validate:"gte=1"`
	ModerateMin int    `json:"moderateMin" yaml:"moderateMin" validate:"gte=1"`
	SevereMin   int    `json:"severeMin" yaml:"severeMin" validate:"gte=1"`
	ConfirmFlag string `json:"confirmFlag" yaml:"confirmFlag" validate:"required"`
}

// BehaviorGateRules names the flags that count as risky behavior.
type BehaviorGateRules struct {
	RiskyFlags []string `json:"riskyFlags" yaml:"riskyFlags" validate:"required,min=1"`
}

// SupportThresholds classifies the ADL subtotal into support-need levels.
type SupportThresholds struct {
	ModerateMin int `json:"moderateMin" yaml:"moderateMin" validate:"gte=1"`
	HighMin     int `json:"highMin" yaml:"highMin" validate:"gte=1"`
}

// GateRules parameterizes the two override gates.
type GateRules struct {
	Cognition CognitionGateRules `json:"cognition" yaml:"cognition"`
	Behavior  BehaviorGateRules  `json:"behavior" yaml:"behavior"`
	Support   SupportThresholds  `json:"support" yaml:"support"`
}

// HoursRules parameterizes the daily-hours estimator. Per-item hour weights
// live on the schema options (Option.HoursWeight).
type HoursRules struct {
	// CognitionMultipliers scales the baseline by cognition band
	CognitionMultipliers map[model.CognitionBand]float64 `json:"cognitionMultipliers" yaml:"cognitionMultipliers" validate:"required,min=1"`
	// FallsMultipliers scales by falls-history flag; the largest present
	// multiplier applies, 1.0 when none match
	FallsMultipliers map[string]float64 `json:"fallsMultipliers" yaml:"fallsMultipliers"`
	// BehaviorIncrements adds flat hours per behavior flag
	BehaviorIncrements map[string]float64 `json:"behaviorIncrements" yaml:"behaviorIncrements"`
	// MobilityIncrements adds flat hours per high-dependency mobility flag
	MobilityIncrements map[string]float64 `json:"mobilityIncrements" yaml:"mobilityIncrements"`
	// Band cut points: a result below OneToThreeMax falls in "1-3h" (or
	// "<1h" below UnderOneMax), below FullDayMin in "4-8h", and anything
	// at or above FullDayMin collapses to the "24h" band
	UnderOneMax   float64 `json:"underOneMax" yaml:"underOneMax" validate:"gt=0"`
	OneToThreeMax float64 `json:"oneToThreeMax" yaml:"oneToThreeMax" validate:"gt=0"`
	FullDayMin    float64 `json:"fullDayMin" yaml:"fullDayMin" validate:"gt=0"`
}

// RuleSet is the complete engine configuration: question schema, tier bands,
// gate rules, flag catalog and hours weights. Loaded once, validated eagerly,
// read-only afterwards; a reload constructs a new RuleSet.
type RuleSet struct {
	Version         string             `json:"version" yaml:"version" validate:"required"`
	Questions       []model.Question   `json:"questions" yaml:"questions" validate:"required,min=1,dive"`
	Bands           []TierBand         `json:"bands" yaml:"bands" validate:"required,len=4,dive"`
	Gates           GateRules          `json:"gates" yaml:"gates"`
	Flags           map[string]FlagDef `json:"flags" yaml:"flags" validate:"required,min=1,dive"`
	Composites      []CompositeFlag    `json:"composites" yaml:"composites" validate:"dive"`
	HighAcuityFlags []string           `json:"highAcuityFlags" yaml:"highAcuityFlags" validate:"required,min=1"`
	Hours           HoursRules         `json:"hours" yaml:"hours"`
	HoursMode       HoursMode          `json:"hoursMode" yaml:"hoursMode" validate:"required,oneof=off shadow active"`
}

// LoadRuleSet returns the compiled-in default when path is empty, otherwise
// parses and validates the YAML file at path. Any malformed rule set is a
// load-time error; the engine refuses to start rather than substitute
// defaults.
func LoadRuleSet(path string) (*RuleSet, error) {
	if path == "" {
		rs := DefaultRuleSet()
		if err := rs.Validate(); err != nil {
			return nil, fmt.Errorf("default rule set invalid: %w", err)
		}
		return rs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parse rule set: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, fmt.Errorf("validate rule set %s: %w", path, err)
	}
	return &rs, nil
}

// Question returns the schema question with the given id, if declared.
func (rs *RuleSet) Question(id string) (*model.Question, bool) {
	for i := range rs.Questions {
		if rs.Questions[i].ID == id {
			return &rs.Questions[i], true
		}
	}
	return nil, false
}

// BandFor returns the tier band containing the given total score.
func (rs *RuleSet) BandFor(score int) (TierBand, bool) {
	for _, b := range rs.Bands {
		if b.Contains(score) {
			return b, true
		}
	}
	return TierBand{}, false
}

// BandOf returns the band declared for a tier, if any.
func (rs *RuleSet) BandOf(tier model.Tier) (TierBand, bool) {
	for _, b := range rs.Bands {
		if b.Tier == tier {
			return b, true
		}
	}
	return TierBand{}, false
}

// Validate runs struct-tag validation plus the cross-field invariants the
// tags cannot express. It must pass before the rule set is used.
func (rs *RuleSet) Validate() error {
	if err := validator.New().Struct(rs); err != nil {
		return err
	}

	// Bands must cover 0-100 exactly once with no gaps or overlaps,
	// ordered by acuity.
	bands := make([]TierBand, len(rs.Bands))
	copy(bands, rs.Bands)
	sort.Slice(bands, func(i, j int) bool { return bands[i].Min < bands[j].Min })
	if bands[0].Min != 0 {
		return fmt.Errorf("tier bands must start at 0, got %d", bands[0].Min)
	}
	if bands[len(bands)-1].Max != 100 {
		return fmt.Errorf("tier bands must end at 100, got %d", bands[len(bands)-1].Max)
	}
	for i, b := range bands {
		if b.Min > b.Max {
			return fmt.Errorf("tier band %s is inverted (%d-%d)", b.Tier, b.Min, b.Max)
		}
		if i > 0 {
			if b.Min != bands[i-1].Max+1 {
				return fmt.Errorf("gap or overlap between %s and %s bands", bands[i-1].Tier, b.Tier)
			}
			if b.Tier.Acuity() <= bands[i-1].Tier.Acuity() {
				return fmt.Errorf("tier bands out of acuity order: %s before %s", bands[i-1].Tier, b.Tier)
			}
		}
	}

	// Question ids unique; option ids unique per question; flag tags and
	// exclusive options well-formed.
	seenQ := make(map[string]bool)
	for _, q := range rs.Questions {
		if seenQ[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seenQ[q.ID] = true
		if q.Kind != model.KindNumeric && len(q.Options) == 0 {
			return fmt.Errorf("question %q has no options", q.ID)
		}
		seenO := make(map[string]bool)
		for _, opt := range q.Options {
			if seenO[opt.ID] {
				return fmt.Errorf("question %q: duplicate option id %q", q.ID, opt.ID)
			}
			seenO[opt.ID] = true
			if opt.Exclusive && opt.Points != 0 {
				return fmt.Errorf("question %q: exclusive option %q must score 0", q.ID, opt.ID)
			}
			for _, f := range opt.Flags {
				if _, ok := rs.Flags[f]; !ok {
					return fmt.Errorf("question %q option %q references undefined flag %q", q.ID, opt.ID, f)
				}
			}
		}
	}

	// Composite and gate flag references must resolve to defined flags.
	for _, c := range rs.Composites {
		if _, ok := rs.Flags[c.ID]; ok {
			return fmt.Errorf("composite flag %q collides with a declared flag", c.ID)
		}
		for _, f := range c.AnyOf {
			if _, ok := rs.Flags[f]; !ok {
				return fmt.Errorf("composite %q references undefined flag %q", c.ID, f)
			}
		}
	}
	for _, f := range rs.Gates.Behavior.RiskyFlags {
		if _, ok := rs.Flags[f]; !ok {
			return fmt.Errorf("behavior gate references undefined flag %q", f)
		}
	}
	if _, ok := rs.Flags[rs.Gates.Cognition.ConfirmFlag]; !ok {
		return fmt.Errorf("cognitive gate references undefined confirm flag %q", rs.Gates.Cognition.ConfirmFlag)
	}
	for _, f := range rs.HighAcuityFlags {
		if _, ok := rs.Flags[f]; !ok {
			return fmt.Errorf("high-acuity list references undefined flag %q", f)
		}
	}

	// Threshold ordering.
	cg := rs.Gates.Cognition
	if !(cg.MildMin < cg.ModerateMin && cg.ModerateMin < cg.SevereMin) {
		return fmt.Errorf("cognition band thresholds must be strictly increasing")
	}
	if rs.Gates.Support.ModerateMin >= rs.Gates.Support.HighMin {
		return fmt.Errorf("support thresholds must be strictly increasing")
	}

	// Hours multipliers and cut points.
	for band, m := range rs.Hours.CognitionMultipliers {
		if m < 1.0 {
			return fmt.Errorf("cognition multiplier for %s below 1.0", band)
		}
	}
	for f, m := range rs.Hours.FallsMultipliers {
		if m < 1.0 {
			return fmt.Errorf("falls multiplier for %s below 1.0", f)
		}
	}
	h := rs.Hours
	if !(h.UnderOneMax < h.OneToThreeMax && h.OneToThreeMax < h.FullDayMin) {
		return fmt.Errorf("hours band cut points must be strictly increasing")
	}

	return nil
}
