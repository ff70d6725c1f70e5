package model

// Tier is a recommended level of care, ordered by acuity
type Tier string

const (
	TierIndependent          Tier = "independent"
	TierInHome               Tier = "in_home"
	TierAssistedLiving       Tier = "assisted_living"
	TierMemoryCare           Tier = "memory_care"
	TierMemoryCareHighAcuity Tier = "memory_care_high_acuity"
)

// AllTiers lists every tier in ascending acuity order.
var AllTiers = []Tier{
	TierIndependent,
	TierInHome,
	TierAssistedLiving,
	TierMemoryCare,
	TierMemoryCareHighAcuity,
}

// Acuity returns the tier's position in the care-intensity ordering. Higher
// means more intensive care. Unknown tiers return -1.
func (t Tier) Acuity() int {
	for i, tier := range AllTiers {
		if tier == t {
			return i
		}
	}
	return -1
}

// TierRanking is one entry in the full ordering of candidate tiers. Score is
// the band-fit distance: 0 when the total score falls inside the tier's band,
// otherwise the distance from the band midpoint. Lower is a better fit.
type TierRanking struct {
	Tier  Tier    `json:"tier" bson:"tier"`
	Score float64 `json:"score" bson:"score"`
	Rank  int     `json:"rank" bson:"rank"`
}
