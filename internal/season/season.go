// Package season triggers season rotation on a fixed interval.
package season

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
)

// Rotator is satisfied by *engine.Engine.
type Rotator interface {
	RotateSeason(caller string) (engine.Season, error)
}

type Scheduler struct {
	sched  gocron.Scheduler
	rot    Rotator
	oracle string
	log    *zap.Logger
}

// New schedules a rotation every interval, signed as oracle. Call Start to begin.
func New(rot Rotator, oracle string, interval time.Duration, log *zap.Logger, opts ...gocron.SchedulerOption) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	sched, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("new scheduler: %w", err)
	}

	s := &Scheduler{sched: sched, rot: rot, oracle: oracle, log: log}
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.Tick),
		gocron.WithName("season-rotation"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("schedule rotation: %w", err)
	}
	return s, nil
}

func (s *Scheduler) Start() { s.sched.Start() }

func (s *Scheduler) Shutdown() error { return s.sched.Shutdown() }

// Tick rotates the season once.
func (s *Scheduler) Tick() {
	next, err := s.rot.RotateSeason(s.oracle)
	if err != nil {
		s.log.Error("season rotation failed", zap.Error(err))
		return
	}
	s.log.Info("season rotated by scheduler", zap.Int("season", next.ID), zap.Time("ends_at", next.EndsAt))
}
