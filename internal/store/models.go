package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/DoyleJ11/battle-royale-backend/internal/addr"
	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
	"github.com/DoyleJ11/battle-royale-backend/internal/progression"
)

// EventRecord is one row of the persisted event log. Seq restarts with every
// process, so rows are unique per (run_id, seq).
type EventRecord struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	RunID     string    `gorm:"type:uuid;uniqueIndex:idx_event_run_seq;not null" json:"run_id"`
	Seq       int       `gorm:"uniqueIndex:idx_event_run_seq;not null" json:"seq"`
	Kind      string    `gorm:"type:varchar(32);index;not null" json:"kind"`
	Payload   string    `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ProfileRecord mirrors progression.Profile, keyed by normalized address.
type ProfileRecord struct {
	Address      string    `gorm:"primaryKey" json:"address"`
	Display      string    `gorm:"not null" json:"display"`
	TotalKills   int64     `gorm:"default:0" json:"total_kills"`
	TotalWins    int64     `gorm:"default:0" json:"total_wins"`
	TotalMatches int64     `gorm:"default:0" json:"total_matches"`
	Experience   int64     `gorm:"default:0" json:"experience"`
	Rank         string    `gorm:"type:varchar(16)" json:"rank"`
	SeasonID     int       `gorm:"index" json:"season_id"`
	JoinedAt     time.Time `json:"joined_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func eventRecord(runID string, ev eventlog.Event) (EventRecord, error) {
	payload, err := json.Marshal(ev.Fields)
	if err != nil {
		return EventRecord{}, err
	}
	return EventRecord{
		ID:      uuid.NewString(),
		RunID:   runID,
		Seq:     ev.Seq,
		Kind:    string(ev.Kind),
		Payload: string(payload),
	}, nil
}

func profileRecord(p progression.Profile) ProfileRecord {
	return ProfileRecord{
		Address:      addr.Normalize(p.Address),
		Display:      p.Address,
		TotalKills:   p.TotalKills,
		TotalWins:    p.TotalWins,
		TotalMatches: p.TotalMatches,
		Experience:   p.Experience,
		Rank:         p.Rank(),
		SeasonID:     p.SeasonID,
		JoinedAt:     p.JoinedAt,
	}
}
