// Package engine evaluates a submitted answer set against the loaded rule
// set and produces an immutable care recommendation. The engine is a pure,
// synchronous function of its inputs: it holds no mutable state, performs no
// I/O of its own, and is safe to invoke concurrently for independent
// assessments. The optional hours adjudication call is the single suspension
// point and always falls back to the deterministic baseline.
package engine

import (
	"context"
	"fmt"

	"caretier/internal/config"
	"caretier/internal/model"
)

// Adjudicator gives a secondary opinion on the hours band. Implementations
// must be bounded by their own timeout; any error falls back to the baseline
// band and is surfaced only as an audit note.
type Adjudicator interface {
	AdjudicateBand(ctx context.Context, estimate model.HoursEstimate, subtotals map[model.Domain]int) (model.HoursBand, error)
}

// Options tunes a single evaluation without touching the shared rule set.
type Options struct {
	// HoursMode overrides the rule set's estimator mode when non-empty
	HoursMode config.HoursMode
	// CompareHours forces the hours estimate into the output contract even
	// when the recommended tier is not in_home
	CompareHours bool
	// Adjudicator, when set and the estimator is active, refines the hours
	// band via the external service
	Adjudicator Adjudicator
}

// Engine scores assessments against one immutable rule set. Swapping rules
// means constructing a new Engine; in-flight evaluations are never affected.
type Engine struct {
	rules *config.RuleSet
}

// New creates an engine over a validated rule set.
func New(rules *config.RuleSet) *Engine {
	return &Engine{rules: rules}
}

// Rules exposes the loaded rule set for read-only collaborators (schema
// endpoint, CLI output).
func (e *Engine) Rules() *config.RuleSet {
	return e.rules
}

// Evaluate runs the full pipeline once: normalize, score, extract flags,
// rank, gate, and assemble. The same raw answers and options always produce
// an identical recommendation.
func (e *Engine) Evaluate(ctx context.Context, raw model.RawAnswers, effectFlags []string, opts Options) *model.Recommendation {
	answers := normalize(e.rules, raw)
	scores := scoreAnswers(e.rules, answers)
	flags, flagWarnings := extractFlags(e.rules, answers, effectFlags)
	gates := evaluateGates(e.rules, scores, flags)
	rankings, promoted := rankTiers(e.rules, scores.total, flags, gates)
	tier := selectTier(rankings, gates)

	rec := &model.Recommendation{
		Tier:         tier,
		TierScore:    scores.total,
		TierRankings: rankings,
		Confidence:   confidence(e.rules, answers, scores.total),
		Flags:        sortedFlags(flags),
		Rationale:    composeRationale(scores, gates, promoted),
		Audit: model.Audit{
			DomainSubtotals: scores.subtotals,
			RuleSetVersion:  e.rules.Version,
			GateTrace:       gates.trace,
			Notes:           append(answers.Warnings, flagWarnings...),
		},
	}

	e.attachHours(ctx, rec, answers, flags, gates, opts)
	return rec
}

// attachHours runs the estimator according to the effective mode: off skips
// it, shadow computes into the audit block only, active surfaces it in the
// contract when the in_home tier is recommended or a comparison was
// requested.
func (e *Engine) attachHours(ctx context.Context, rec *model.Recommendation, answers *model.AnswerSet, flags model.FlagSet, gates gateResult, opts Options) {
	mode := e.rules.HoursMode
	if opts.HoursMode != "" {
		mode = opts.HoursMode
	}
	if mode == config.HoursModeOff {
		return
	}

	estimate := estimateHours(e.rules, answers, flags, gates.cognitionBand)

	if mode == config.HoursModeShadow {
		rec.Audit.ShadowHours = estimate
		return
	}

	if rec.Tier != model.TierInHome && !opts.CompareHours {
		return
	}

	if opts.Adjudicator != nil {
		band, err := opts.Adjudicator.AdjudicateBand(ctx, *estimate, rec.Audit.DomainSubtotals)
		if err != nil {
			rec.Audit.Notes = append(rec.Audit.Notes, "hours adjudication unavailable; using baseline band")
		} else if band != estimate.Band {
			rec.Audit.Notes = append(rec.Audit.Notes, fmt.Sprintf("hours band adjusted by adjudicator: %s -> %s", estimate.Band, band))
			low, high := model.HoursBandRange(band)
			estimate.Band, estimate.HoursLow, estimate.HoursHigh = band, low, high
		}
	}

	rec.HoursEstimate = estimate
}
