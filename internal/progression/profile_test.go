package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_EnsureKeepsFirstCasing(t *testing.T) {
	r := NewRegistry()
	joined := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	p := r.Ensure("0xAbCd", 3, joined)
	again := r.Ensure(" 0xABCD ", 9, joined.Add(time.Hour))

	require.Same(t, p, again)
	assert.Equal(t, "0xAbCd", again.Address)
	assert.Equal(t, 3, again.SeasonID)
	assert.Equal(t, joined, again.JoinedAt)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_GetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Ensure("0xabc", 1, time.Time{}).RecordMatch(2, 100)

	got, ok := r.Get("0xABC")
	require.True(t, ok)
	got.TotalKills = 99

	again, _ := r.Get("0xabc")
	assert.Equal(t, int64(2), again.TotalKills)

	_, ok = r.Get("0xdef")
	assert.False(t, ok)
	assert.Nil(t, r.Lookup("0xdef"))
}

func TestProfile_RecordMatchAndWin(t *testing.T) {
	var p Profile
	p.RecordMatch(3, 100)
	p.RecordMatch(0, 100)
	p.RecordWin(500)

	assert.Equal(t, int64(3), p.TotalKills)
	assert.Equal(t, int64(2), p.TotalMatches)
	assert.Equal(t, int64(1), p.TotalWins)
	assert.Equal(t, int64(800), p.Experience)
	assert.Equal(t, "Bronze", p.Rank())
}

func TestRegistry_AllSorted(t *testing.T) {
	r := NewRegistry()
	r.Ensure("0xCC", 1, time.Time{})
	r.Ensure("0xaa", 1, time.Time{})
	r.Ensure("0xBb", 1, time.Time{})

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"0xaa", "0xBb", "0xCC"}, []string{all[0].Address, all[1].Address, all[2].Address})
}
