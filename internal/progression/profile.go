// Package progression tracks player profiles and maps experience onto ranks.
package progression

import (
	"sort"
	"time"

	"github.com/DoyleJ11/battle-royale-backend/internal/addr"
)

// Profile is a player's career across matches.
type Profile struct {
	Address      string    `json:"address"`
	TotalKills   int64     `json:"total_kills"`
	TotalWins    int64     `json:"total_wins"`
	TotalMatches int64     `json:"total_matches"`
	Experience   int64     `json:"experience"`
	SeasonID     int       `json:"season_id"`
	JoinedAt     time.Time `json:"joined_at"`
}

func (p Profile) Rank() string { return RankFor(p.Experience) }

// Registry holds profiles keyed by normalized address.
// It is not safe for concurrent use; the engine serializes access.
type Registry struct {
	profiles map[string]*Profile
}

func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]*Profile)}
}

// Get returns a copy of the profile for address.
func (r *Registry) Get(address string) (Profile, bool) {
	p, ok := r.profiles[addr.Normalize(address)]
	if !ok {
		return Profile{}, false
	}
	return *p, true
}

// Lookup returns the stored profile for mutation, or nil.
func (r *Registry) Lookup(address string) *Profile {
	return r.profiles[addr.Normalize(address)]
}

// Ensure returns the profile for address, creating it with the given season and time
// on first sight. The original casing of the first address seen is kept.
func (r *Registry) Ensure(address string, season int, now time.Time) *Profile {
	key := addr.Normalize(address)
	if p, ok := r.profiles[key]; ok {
		return p
	}
	p := &Profile{
		Address:  address,
		SeasonID: season,
		JoinedAt: now,
	}
	r.profiles[key] = p
	return p
}

// RecordMatch credits a participant with kills from one settled match.
func (p *Profile) RecordMatch(kills, xpPerKill int64) {
	p.TotalKills += kills
	p.TotalMatches++
	p.Experience += kills * xpPerKill
}

// RecordWin credits a match win.
func (p *Profile) RecordWin(xpPerWin int64) {
	p.TotalWins++
	p.Experience += xpPerWin
}

func (r *Registry) Len() int { return len(r.profiles) }

// All returns copies of every profile ordered by normalized address.
func (r *Registry) All() []Profile {
	keys := make([]string, 0, len(r.profiles))
	for k := range r.profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Profile, 0, len(keys))
	for _, k := range keys {
		out = append(out, *r.profiles[k])
	}
	return out
}
