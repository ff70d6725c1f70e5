package model

// Severity grades how strongly a flag should weigh with downstream consumers
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
)

// Flag is a named risk/support indicator attached to a recommendation.
// Identity is the ID; a recommendation never carries duplicate IDs.
type Flag struct {
	ID       string   `json:"id" bson:"id"`
	Severity Severity `json:"severity" bson:"severity"`
	Message  string   `json:"message" bson:"message"`
}

// FlagSet is an id-keyed set of flags. Use NewFlagSet/Add to keep ids unique.
type FlagSet map[string]Flag

// NewFlagSet creates an empty flag set.
func NewFlagSet() FlagSet {
	return make(FlagSet)
}

// Add inserts a flag. The first flag added for an id wins.
func (s FlagSet) Add(f Flag) {
	if _, exists := s[f.ID]; !exists {
		s[f.ID] = f
	}
}

// Has reports whether the set contains the given flag id.
func (s FlagSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// HasAny reports whether the set contains any of the given flag ids.
func (s FlagSet) HasAny(ids ...string) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}
