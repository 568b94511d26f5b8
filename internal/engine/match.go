package engine

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/addr"
	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
)

// Match is keyed by participant address in its original casing.
// A zero EndedAt means the match has not ended.
type Match struct {
	ID           string           `json:"id"`
	LobbyID      string           `json:"lobby_id"`
	Participants []string         `json:"participants"`
	Kills        map[string]int64 `json:"kills"`
	Winner       string           `json:"winner,omitempty"`
	StartedAt    time.Time        `json:"started_at"`
	EndedAt      time.Time        `json:"ended_at,omitzero"`
}

func (m *Match) Ended() bool { return !m.EndedAt.IsZero() }

func (m *Match) clone() Match {
	c := *m
	c.Participants = slices.Clone(m.Participants)
	c.Kills = maps.Clone(m.Kills)
	return c
}

// participant returns the kill-count key matching address, if any.
func (m *Match) participant(address string) (string, bool) {
	for _, p := range m.Participants {
		if addr.Equal(p, address) {
			return p, true
		}
	}
	return "", false
}

// RecordKill credits killer with one kill. Unknown or ended matches are ignored; an
// unrecognized killer still emits KillRecorded without changing any count.
func (e *Engine) RecordKill(matchID, killer, victim, caller string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.matches[matchID]
	if !ok || m.Ended() {
		e.log.Debug("kill dropped", zap.String("match_id", matchID), zap.Bool("known", ok))
		return
	}

	if key, ok := m.participant(killer); ok {
		m.Kills[key]++
	}

	e.emit(eventlog.KindKillRecorded,
		eventlog.F("match_id", matchID),
		eventlog.F("killer", killer),
		eventlog.F("victim", victim),
		eventlog.F("caller", caller),
	)
	e.log.Debug("kill recorded", zap.String("match_id", matchID), zap.String("killer", killer), zap.String("victim", victim))
}

// EndMatch settles a match: every participant with kills is credited on their profile and
// the winner, if they already have a profile, is credited a win. An empty winner means
// nobody won. Ending again re-stamps the match and settles it again.
func (e *Engine) EndMatch(matchID, winner, caller string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.matches[matchID]
	if !ok {
		return e.reject("end", fmt.Errorf("%w: %s", ErrMatchNotFound, matchID))
	}

	now := e.clock.Now()
	m.Winner = winner
	m.EndedAt = now

	for _, p := range m.Participants {
		kills := m.Kills[p]
		if kills == 0 {
			continue
		}
		e.profiles.Ensure(p, e.season, now).RecordMatch(kills, XPPerKill)
	}
	if winner != "" {
		if prof := e.profiles.Lookup(winner); prof != nil {
			prof.RecordWin(XPPerWin)
		}
	}

	e.emit(eventlog.KindMatchEnded,
		eventlog.F("match_id", matchID),
		eventlog.F("winner", winner),
		eventlog.F("caller", caller),
	)
	e.log.Info("match ended", zap.String("match_id", matchID), zap.String("winner", winner))
	return nil
}

// ClaimPrize returns the share owed to player for an ended match: the prize share of the
// pool when player is the winner, zero otherwise. It records nothing, so repeated calls
// return the same amount.
func (e *Engine) ClaimPrize(matchID, player string) (int64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	m, ok := e.matches[matchID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	if !m.Ended() {
		return 0, fmt.Errorf("%w: %s", ErrMatchNotFinished, matchID)
	}
	if m.Winner == "" || !addr.Equal(player, m.Winner) {
		return 0, nil
	}
	return prizeShare(len(m.Kills)), nil
}

// EstimatePrizePool returns the winner's share for a match with playerCount participants.
func (e *Engine) EstimatePrizePool(playerCount int) int64 {
	return prizeShare(playerCount)
}
