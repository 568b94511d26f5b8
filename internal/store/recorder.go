package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/addr"
	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
	"github.com/DoyleJ11/battle-royale-backend/internal/progression"
)

// ErrStreamClosed is returned by Run when the event channel closes while the
// recorder is still expected to run, e.g. after the hub dropped it as slow.
var ErrStreamClosed = errors.New("store: event stream closed")

// Sink is where the recorder writes. *Store implements it.
type Sink interface {
	SaveEvent(ctx context.Context, rec EventRecord) error
	UpsertProfiles(ctx context.Context, recs []ProfileRecord) error
}

// Source is the read side of the engine the recorder needs.
type Source interface {
	Match(id string) (engine.Match, bool)
	Profile(address string) (progression.Profile, bool)
}

type Recorder struct {
	runID string
	sink  Sink
	src   Source
	log   *zap.Logger
}

func NewRecorder(sink Sink, src Source, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{runID: uuid.NewString(), sink: sink, src: src, log: log}
}

// RunID identifies this process's rows in the event table.
func (r *Recorder) RunID() string { return r.runID }

// Run persists events until ctx is done. A channel closed before that returns
// ErrStreamClosed. Write failures are logged and skipped.
func (r *Recorder) Run(ctx context.Context, events <-chan eventlog.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				return ErrStreamClosed
			}
			r.Record(ctx, ev)
		}
	}
}

func (r *Recorder) Record(ctx context.Context, ev eventlog.Event) {
	rec, err := eventRecord(r.runID, ev)
	if err != nil {
		r.log.Error("encode event", zap.Int("seq", ev.Seq), zap.Error(err))
		return
	}
	if err := r.sink.SaveEvent(ctx, rec); err != nil {
		r.log.Error("save event", zap.Int("seq", ev.Seq), zap.Error(err))
	}

	if ev.Kind != eventlog.KindMatchEnded {
		return
	}
	if err := r.sink.UpsertProfiles(ctx, r.settledProfiles(ev)); err != nil {
		r.log.Error("upsert profiles", zap.Int("seq", ev.Seq), zap.Error(err))
	}
}

// settledProfiles collects the profiles a MatchEnded event may have touched:
// every participant plus the winner, who need not have played.
func (r *Recorder) settledProfiles(ev eventlog.Event) []ProfileRecord {
	v, _ := ev.Get("match_id")
	matchID, _ := v.(string)
	m, ok := r.src.Match(matchID)
	if !ok {
		return nil
	}

	touched := append([]string(nil), m.Participants...)
	if w, ok := ev.Get("winner"); ok {
		if winner, _ := w.(string); winner != "" {
			touched = append(touched, winner)
		}
	}

	seen := make(map[string]struct{}, len(touched))
	var recs []ProfileRecord
	for _, a := range touched {
		key := addr.Normalize(a)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if prof, ok := r.src.Profile(a); ok {
			recs = append(recs, profileRecord(prof))
		}
	}
	return recs
}
