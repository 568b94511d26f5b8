package progression

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiers_SortedDescending(t *testing.T) {
	assert.True(t, sort.SliceIsSorted(Tiers, func(i, j int) bool {
		return Tiers[i].Threshold > Tiers[j].Threshold
	}))
}

func TestRankFor(t *testing.T) {
	cases := []struct {
		xp   int64
		want string
	}{
		{xp: 0, want: "Bronze"},
		{xp: 999, want: "Bronze"},
		{xp: 1000, want: "Silver"},
		{xp: 2999, want: "Silver"},
		{xp: 3000, want: "Gold"},
		{xp: 7500, want: "Platinum"},
		{xp: 15000, want: "Diamond"},
		{xp: 30000, want: "Master"},
		{xp: 60000, want: "Legend"},
		{xp: 1 << 40, want: "Legend"},
		{xp: -5, want: "Bronze"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, RankFor(tc.xp), "xp=%d", tc.xp)
	}
}

func TestExperienceToNextRank(t *testing.T) {
	cases := []struct {
		xp   int64
		want int64
	}{
		{xp: 0, want: 1000},
		{xp: 400, want: 600},
		{xp: 1000, want: 2000},
		{xp: 59999, want: 1},
		{xp: 60000, want: 0},
		{xp: 100000, want: 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExperienceToNextRank(tc.xp), "xp=%d", tc.xp)
	}
}
