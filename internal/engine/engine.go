// Package engine owns lobbies, matches, player profiles and the event log, and is the only
// place they are mutated.
package engine

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/addr"
	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
	"github.com/DoyleJ11/battle-royale-backend/internal/progression"
	"github.com/DoyleJ11/battle-royale-backend/internal/selector"
)

// Publisher receives every event right after it is appended, in log order.
// Publish is called with the engine lock held and must not call back into the engine.
type Publisher interface {
	Publish(ev eventlog.Event)
}

type Season struct {
	ID        int       `json:"id"`
	StartedAt time.Time `json:"started_at"`
	EndsAt    time.Time `json:"ends_at"`
}

// Engine serializes every operation through a single lock.
type Engine struct {
	mu sync.RWMutex

	clock  clockwork.Clock
	log    *zap.Logger
	pub    Publisher
	oracle string

	lobbies    map[string]*Lobby
	lobbyOrder []string
	matches    map[string]*Match
	matchOrder []string
	nextLobby  int
	nextMatch  int

	profiles *progression.Registry
	events   *eventlog.Log

	season      int
	seasonStart time.Time
}

type Option func(*Engine)

func WithClock(c clockwork.Clock) Option { return func(e *Engine) { e.clock = c } }

func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.log = l } }

func WithPublisher(p Publisher) Option { return func(e *Engine) { e.pub = p } }

// WithSeasonOracle overrides the address allowed to rotate seasons.
func WithSeasonOracle(address string) Option { return func(e *Engine) { e.oracle = address } }

func New(opts ...Option) *Engine {
	e := &Engine{
		clock:    clockwork.NewRealClock(),
		log:      zap.NewNop(),
		oracle:   SeasonOracle,
		lobbies:  make(map[string]*Lobby),
		matches:  make(map[string]*Match),
		profiles: progression.NewRegistry(),
		events:   eventlog.New(),
		season:   1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.seasonStart = e.clock.Now()
	return e
}

// emit appends to the log and forwards to the publisher. Caller holds e.mu.
func (e *Engine) emit(kind eventlog.Kind, fields ...eventlog.Field) eventlog.Event {
	ev := e.events.Append(kind, fields...)
	if e.pub != nil {
		e.pub.Publish(ev.Clone())
	}
	return ev
}

// RotateSeason starts the next season. Only the season oracle may call it.
func (e *Engine) RotateSeason(caller string) (Season, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !addr.Equal(caller, e.oracle) {
		e.log.Debug("season rotation rejected", zap.String("caller", caller))
		return Season{}, fmt.Errorf("%w: %s", ErrNotSeasonOracle, caller)
	}

	e.season++
	e.seasonStart = e.clock.Now()
	e.emit(eventlog.KindSeasonRotated,
		eventlog.F("season", e.season),
		eventlog.F("caller", caller),
	)
	e.log.Info("season rotated", zap.Int("season", e.season))
	return e.currentSeason(), nil
}

func (e *Engine) CurrentSeason() Season {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.currentSeason()
}

func (e *Engine) currentSeason() Season {
	return Season{ID: e.season, StartedAt: e.seasonStart, EndsAt: e.seasonStart.Add(SeasonDuration)}
}

// Queries

func (e *Engine) Profile(address string) (progression.Profile, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.profiles.Get(address)
}

func (e *Engine) Profiles() []progression.Profile {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.profiles.All()
}

func (e *Engine) Lobby(id string) (Lobby, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	l, ok := e.lobbies[id]
	if !ok {
		return Lobby{}, false
	}
	return l.clone(), true
}

func (e *Engine) Match(id string) (Match, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, ok := e.matches[id]
	if !ok {
		return Match{}, false
	}
	return m.clone(), true
}

// LobbyIDs returns lobby ids in creation order.
func (e *Engine) LobbyIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.lobbyOrder)
}

// MatchIDs returns match ids in start order.
func (e *Engine) MatchIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.matchOrder)
}

// Events returns an ordered snapshot of the event log.
func (e *Engine) Events() []eventlog.Event {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.events.Snapshot()
}

// MapForMatch returns the map a known match is played on.
func (e *Engine) MapForMatch(matchID string) (string, error) {
	e.mu.RLock()
	_, ok := e.matches[matchID]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMatchNotFound, matchID)
	}
	return selector.MapForMatch(matchID), nil
}
