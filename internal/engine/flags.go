package engine

import (
	"fmt"
	"sort"

	"caretier/internal/config"
	"caretier/internal/model"
)

// extractFlags merges flags from the two sources in documented precedence:
// declarative per-option tags first, field-level effect flags second, and
// composite flags derived last. Unknown effect flag ids are skipped with a
// warning rather than failing the assessment.
func extractFlags(rules *config.RuleSet, answers *model.AnswerSet, effectFlags []string) (model.FlagSet, []string) {
	flags := model.NewFlagSet()
	var warnings []string

	// Declarative: flag tags on chosen options. A chosen exclusive option
	// suppresses its siblings' flags the same way it suppresses points.
	for i := range rules.Questions {
		q := &rules.Questions[i]
		ans := answers.Answer(q.ID)
		if !ans.Answered {
			continue
		}
		chosen := ans.OptionIDs
		if q.Kind == model.KindMultiChoice && exclusiveChosen(q, chosen) {
			continue
		}
		for _, id := range chosen {
			opt, ok := q.Option(id)
			if !ok {
				continue
			}
			for _, flagID := range opt.Flags {
				addFlag(rules, flags, flagID)
			}
		}
	}

	// Effect flags recorded by the collection layer.
	for _, flagID := range effectFlags {
		if _, defined := rules.Flags[flagID]; !defined {
			warnings = append(warnings, fmt.Sprintf("effect flag %q is not defined; ignored", flagID))
			continue
		}
		addFlag(rules, flags, flagID)
	}

	// Composites derive from whatever is present after the merge.
	for _, c := range rules.Composites {
		if flags.HasAny(c.AnyOf...) {
			flags.Add(model.Flag{ID: c.ID, Severity: c.Severity, Message: c.Message})
		}
	}

	return flags, warnings
}

func addFlag(rules *config.RuleSet, flags model.FlagSet, flagID string) {
	def, ok := rules.Flags[flagID]
	if !ok {
		return
	}
	flags.Add(model.Flag{ID: flagID, Severity: def.Severity, Message: def.Message})
}

// sortedFlags renders a flag set as a deterministic, id-ordered slice for the
// output contract.
func sortedFlags(flags model.FlagSet) []model.Flag {
	out := make([]model.Flag, 0, len(flags))
	for _, f := range flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
