package config

import "caretier/internal/model"

// DefaultRuleSet is the compiled-in assessment configuration. The hour
// weights and multipliers are tuning defaults meant to be revisited against
// real care-planning data; override them with a YAML rule set via RULES_PATH.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{
		Version:   "2025.1",
		HoursMode: HoursModeActive,
		Questions: []model.Question{
			{
				ID: "age_range", Domain: model.DomainDemographics, Kind: model.KindSingleChoice,
				Prompt: "How old is the person being assessed?", Required: true,
				Options: []model.Option{
					{ID: "under_65", Label: "Under 65", Points: 0},
					{ID: "65_74", Label: "65-74", Points: 1},
					{ID: "75_84", Label: "75-84", Points: 2},
					{ID: "85_plus", Label: "85 or older", Points: 3},
				},
			},
			{
				ID: "living_situation", Domain: model.DomainDemographics, Kind: model.KindSingleChoice,
				Prompt: "What is their current living situation?", Required: true,
				Options: []model.Option{
					{ID: "with_family", Label: "With family", Points: 0},
					{ID: "with_partner", Label: "With a spouse or partner", Points: 1},
					{ID: "alone", Label: "Alone", Points: 3, Flags: []string{"lives_alone"}},
				},
			},
			{
				ID: "medication_management", Domain: model.DomainMobility, Kind: model.KindSingleChoice,
				Prompt: "How do they manage their medications?", Required: true,
				Options: []model.Option{
					{ID: "independent", Label: "Fully independently", Points: 0},
					{ID: "reminders", Label: "With reminders", Points: 2},
					{ID: "administered", Label: "Someone administers them", Points: 4, Flags: []string{"med_dependence"}},
				},
			},
			{
				ID: "mobility_status", Domain: model.DomainMobility, Kind: model.KindSingleChoice,
				Prompt: "How do they get around?", Required: true,
				Options: []model.Option{
					{ID: "independent", Label: "Without assistance", Points: 0},
					{ID: "cane_walker", Label: "With a cane or walker", Points: 2, Flags: []string{"mobility_aid"}},
					{ID: "wheelchair", Label: "Primarily by wheelchair", Points: 4, Flags: []string{"wheelchair"}},
					{ID: "bedbound", Label: "They are bed-bound", Points: 6, Flags: []string{"bedbound"}},
				},
			},
			{
				ID: "falls_history", Domain: model.DomainMobility, Kind: model.KindSingleChoice,
				Prompt: "Have they fallen in the past year?", Required: true,
				Options: []model.Option{
					{ID: "none", Label: "No falls", Points: 0},
					{ID: "one", Label: "One fall", Points: 2, Flags: []string{"fall_history"}},
					{ID: "multiple", Label: "Multiple falls", Points: 4, Flags: []string{"frequent_falls"}},
				},
			},
			{
				ID: "badl_needs", Domain: model.DomainADL, Kind: model.KindMultiChoice,
				Prompt: "Which daily activities do they need help with?", Required: true,
				Options: []model.Option{
					{ID: "bathing", Label: "Bathing", Points: 2, HoursWeight: 0.75},
					{ID: "dressing", Label: "Dressing", Points: 2, HoursWeight: 0.5},
					{ID: "toileting", Label: "Toileting", Points: 2, HoursWeight: 1.0},
					{ID: "eating", Label: "Eating", Points: 2, HoursWeight: 1.5},
					{ID: "transfers", Label: "Getting in and out of bed or chairs", Points: 2, HoursWeight: 0.75},
					{ID: "grooming", Label: "Grooming", Points: 1, HoursWeight: 0.25},
					{ID: "none", Label: "None of the above", Points: 0, Exclusive: true},
				},
			},
			{
				ID: "iadl_needs", Domain: model.DomainADL, Kind: model.KindMultiChoice,
				Prompt: "Which household tasks do they need help with?", Required: true,
				Options: []model.Option{
					{ID: "meal_prep", Label: "Preparing meals", Points: 1, HoursWeight: 1.0},
					{ID: "housekeeping", Label: "Housekeeping and laundry", Points: 1, HoursWeight: 0.5},
					{ID: "finances", Label: "Managing finances", Points: 1, HoursWeight: 0.25},
					{ID: "transportation", Label: "Transportation", Points: 1, HoursWeight: 0.5},
					{ID: "medications", Label: "Managing medications", Points: 1, HoursWeight: 0.5},
					{ID: "shopping", Label: "Shopping and errands", Points: 1, HoursWeight: 0.5},
					{ID: "none", Label: "None of the above", Points: 0, Exclusive: true},
				},
			},
			{
				ID: "caregiver_support", Domain: model.DomainADL, Kind: model.KindSingleChoice,
				Prompt: "How much caregiver support do they currently have?", Required: true,
				Options: []model.Option{
					{ID: "live_in", Label: "Live-in or full-time", Points: 0},
					{ID: "daily", Label: "Daily visits", Points: 1},
					{ID: "weekly", Label: "Weekly visits", Points: 2},
					{ID: "none", Label: "No regular support", Points: 4, Flags: []string{"no_support"}},
				},
			},
			{
				ID: "memory_decline", Domain: model.DomainCognition, Kind: model.KindSingleChoice,
				Prompt: "Have you noticed memory loss or confusion?", Required: true,
				Options: []model.Option{
					{ID: "none", Label: "No concerns", Points: 0},
					{ID: "occasional", Label: "Occasional forgetfulness", Points: 2},
					{ID: "moderate", Label: "Regular confusion or repetition", Points: 5, Flags: []string{"memory_loss"}},
					{ID: "severe", Label: "Severe decline, does not recognize familiar people", Points: 8, Flags: []string{"severe_memory_loss"}},
				},
			},
			{
				ID: "diagnosis_confirmed", Domain: model.DomainCognition, Kind: model.KindSingleChoice,
				Prompt: "Is there a formal dementia or Alzheimer's diagnosis?", Required: false,
				Options: []model.Option{
					{ID: "yes", Label: "Yes, diagnosed by a physician", Points: 2, Flags: []string{"diagnosis_confirmed"}},
					{ID: "no", Label: "No formal diagnosis", Points: 0},
				},
			},
			{
				ID: "behavior_concerns", Domain: model.DomainCognition, Kind: model.KindMultiChoice,
				Prompt: "Which behaviors have you observed?", Required: true,
				Options: []model.Option{
					{ID: "wandering", Label: "Wandering or getting lost", Points: 3, Flags: []string{"wandering"}},
					{ID: "sundowning", Label: "Evening confusion or agitation", Points: 2, Flags: []string{"sundowning"}},
					{ID: "aggression", Label: "Verbal or physical aggression", Points: 3, Flags: []string{"aggression"}},
					{ID: "elopement", Label: "Attempts to leave home unattended", Points: 3, Flags: []string{"elopement_risk"}},
					{ID: "none", Label: "None of the above", Points: 0, Exclusive: true},
				},
			},
		},
		Bands: []TierBand{
			{Tier: model.TierIndependent, Min: 0, Max: 8},
			{Tier: model.TierInHome, Min: 9, Max: 16},
			{Tier: model.TierAssistedLiving, Min: 17, Max: 24},
			{Tier: model.TierMemoryCare, Min: 25, Max: 100},
		},
		Gates: GateRules{
			Cognition: CognitionGateRules{
				MildMin:     1,
				ModerateMin: 4,
				SevereMin:   8,
				ConfirmFlag: "diagnosis_confirmed",
			},
			Behavior: BehaviorGateRules{
				RiskyFlags: []string{"wandering", "aggression", "elopement_risk"},
			},
			Support: SupportThresholds{
				ModerateMin: 4,
				HighMin:     10,
			},
		},
		Flags: map[string]FlagDef{
			"lives_alone":         {Severity: model.SeverityLow, Message: "Lives alone without in-home companionship"},
			"med_dependence":      {Severity: model.SeverityModerate, Message: "Requires another person to administer medications"},
			"mobility_aid":        {Severity: model.SeverityLow, Message: "Uses a cane or walker"},
			"wheelchair":          {Severity: model.SeverityHigh, Message: "Primarily uses a wheelchair"},
			"bedbound":            {Severity: model.SeverityHigh, Message: "Bed-bound; full transfer assistance required"},
			"fall_history":        {Severity: model.SeverityModerate, Message: "At least one fall in the past year"},
			"frequent_falls":      {Severity: model.SeverityHigh, Message: "Multiple falls in the past year"},
			"no_support":          {Severity: model.SeverityHigh, Message: "No regular caregiver support available"},
			"memory_loss":         {Severity: model.SeverityModerate, Message: "Regular confusion or memory loss"},
			"severe_memory_loss":  {Severity: model.SeverityHigh, Message: "Severe cognitive decline"},
			"diagnosis_confirmed": {Severity: model.SeverityModerate, Message: "Formal dementia diagnosis on record"},
			"wandering":           {Severity: model.SeverityHigh, Message: "Wandering episodes reported"},
			"sundowning":          {Severity: model.SeverityModerate, Message: "Evening confusion (sundowning) reported"},
			"aggression":          {Severity: model.SeverityHigh, Message: "Aggressive episodes reported"},
			"elopement_risk":      {Severity: model.SeverityHigh, Message: "At risk of leaving home unattended"},
		},
		Composites: []CompositeFlag{
			{
				ID: "cognitive_risk", Severity: model.SeverityHigh,
				Message: "Cognitive risk indicators present",
				AnyOf:   []string{"memory_loss", "severe_memory_loss", "wandering", "sundowning", "elopement_risk"},
			},
			{
				ID: "falls_risk", Severity: model.SeverityModerate,
				Message: "Falls risk indicators present",
				AnyOf:   []string{"fall_history", "frequent_falls"},
			},
		},
		HighAcuityFlags: []string{"frequent_falls", "wheelchair", "bedbound", "wandering", "aggression", "elopement_risk"},
		Hours: HoursRules{
			CognitionMultipliers: map[model.CognitionBand]float64{
				model.CognitionNone:     1.0,
				model.CognitionMild:     1.2,
				model.CognitionModerate: 1.6,
				model.CognitionSevere:   2.2,
			},
			FallsMultipliers: map[string]float64{
				"fall_history":   1.2,
				"frequent_falls": 1.5,
			},
			BehaviorIncrements: map[string]float64{
				"wandering":  2.0,
				"sundowning": 1.5,
				"aggression": 1.5,
			},
			MobilityIncrements: map[string]float64{
				"wheelchair": 1.0,
				"bedbound":   3.0,
			},
			UnderOneMax:   1.0,
			OneToThreeMax: 4.0,
			FullDayMin:    12.0,
		},
	}
}
