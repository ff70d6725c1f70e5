package model

// CognitionBand classifies cognition answers for gate evaluation and the
// hours multiplier.
type CognitionBand string

const (
	CognitionNone     CognitionBand = "none"
	CognitionMild     CognitionBand = "mild"
	CognitionModerate CognitionBand = "moderate"
	CognitionSevere   CognitionBand = "severe"
)

// SupportNeed classifies the ADL/support burden for the behavior gate.
type SupportNeed string

const (
	SupportLow      SupportNeed = "low"
	SupportModerate SupportNeed = "moderate"
	SupportHigh     SupportNeed = "high"
)
