package progression

// Tier is a named rank reached once experience meets Threshold.
type Tier struct {
	Name      string
	Threshold int64
}

// Tiers are ordered from the highest threshold down. The order and values are protocol
// constants.
var Tiers = []Tier{
	{Name: "Legend", Threshold: 60000},
	{Name: "Master", Threshold: 30000},
	{Name: "Diamond", Threshold: 15000},
	{Name: "Platinum", Threshold: 7500},
	{Name: "Gold", Threshold: 3000},
	{Name: "Silver", Threshold: 1000},
	{Name: "Bronze", Threshold: 0},
}

// RankFor returns the highest tier whose threshold is <= xp, or the lowest tier.
func RankFor(xp int64) string {
	for _, t := range Tiers {
		if xp >= t.Threshold {
			return t.Name
		}
	}
	return Tiers[len(Tiers)-1].Name
}

// ExperienceToNextRank returns how much experience is missing to reach the next
// strictly greater threshold, or 0 at the top tier.
func ExperienceToNextRank(xp int64) int64 {
	// Walk upward from the lowest tier.
	for i := len(Tiers) - 1; i >= 0; i-- {
		if Tiers[i].Threshold > xp {
			return Tiers[i].Threshold - xp
		}
	}
	return 0
}
