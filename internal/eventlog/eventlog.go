// Package eventlog is the append-only audit trail of engine events.
package eventlog

import "slices"

type Kind string

const (
	KindLobbyCreated  Kind = "LobbyCreated"
	KindPlayerJoined  Kind = "PlayerJoined"
	KindMatchStarted  Kind = "MatchStarted"
	KindKillRecorded  Kind = "KillRecorded"
	KindMatchEnded    Kind = "MatchEnded"
	KindSeasonRotated Kind = "SeasonRotated"
)

// Field is one key/value pair of an event payload.
type Field struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func F(key string, value any) Field { return Field{Key: key, Value: value} }

// Event is immutable once appended. Seq is its 1-based position in the log.
type Event struct {
	Seq    int     `json:"seq"`
	Kind   Kind    `json:"kind"`
	Fields []Field `json:"fields"`
}

// Clone returns a copy that shares no fields with e.
func (e Event) Clone() Event {
	e.Fields = slices.Clone(e.Fields)
	return e
}

// Get returns the first value stored under key.
func (e Event) Get(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Log is not safe for concurrent use; callers serialize appends.
type Log struct {
	events []Event
}

func New() *Log { return &Log{} }

// Append records an event and returns it with its sequence number set.
func (l *Log) Append(kind Kind, fields ...Field) Event {
	ev := Event{
		Seq:    len(l.events) + 1,
		Kind:   kind,
		Fields: slices.Clone(fields),
	}
	l.events = append(l.events, ev)
	return ev.Clone()
}

// Snapshot returns the events in append order. Every event is a copy.
func (l *Log) Snapshot() []Event {
	out := make([]Event, len(l.events))
	for i, ev := range l.events {
		out[i] = ev.Clone()
	}
	return out
}

func (l *Log) Len() int { return len(l.events) }
