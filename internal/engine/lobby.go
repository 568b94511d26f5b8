package engine

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/addr"
	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
	"github.com/DoyleJ11/battle-royale-backend/internal/selector"
)

type Phase string

// PhaseCountdown and PhaseFinished are declared for clients but no operation enters them.
const (
	PhaseWaiting    Phase = "waiting"
	PhaseCountdown  Phase = "countdown"
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

type Lobby struct {
	ID        string    `json:"id"`
	Creator   string    `json:"creator"`
	Players   []string  `json:"players"`
	Phase     Phase     `json:"phase"`
	MatchID   string    `json:"match_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	EntryFee  int64     `json:"entry_fee,string"`
}

func (l *Lobby) clone() Lobby {
	c := *l
	c.Players = slices.Clone(l.Players)
	return c
}

func (l *Lobby) hasPlayer(player string) bool {
	return slices.ContainsFunc(l.Players, func(p string) bool { return addr.Equal(p, player) })
}

// CreateLobby opens a lobby in the waiting phase and returns its id.
// Out of range fees silently fall back to EntryFee.
func (e *Engine) CreateLobby(creator string, entryFee int64) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.nextLobby++
	id := fmt.Sprintf("lobby-%d", e.nextLobby)
	l := &Lobby{
		ID:        id,
		Creator:   creator,
		Players:   []string{},
		Phase:     PhaseWaiting,
		CreatedAt: e.clock.Now(),
		EntryFee:  NormalizeFee(entryFee),
	}
	e.lobbies[id] = l
	e.lobbyOrder = append(e.lobbyOrder, id)

	e.emit(eventlog.KindLobbyCreated,
		eventlog.F("lobby_id", id),
		eventlog.F("creator", creator),
		eventlog.F("entry_fee", l.EntryFee),
	)
	e.log.Debug("lobby created", zap.String("lobby_id", id), zap.String("creator", creator), zap.Int64("entry_fee", l.EntryFee))
	return id
}

// JoinLobby adds player to a waiting lobby. Joining twice is a no-op for membership but
// still emits PlayerJoined.
func (e *Engine) JoinLobby(lobbyID, player string, valueSent int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.lobbies[lobbyID]
	if !ok {
		return e.reject("join", fmt.Errorf("%w: %s", ErrLobbyNotFound, lobbyID))
	}
	if l.Phase != PhaseWaiting {
		return e.reject("join", fmt.Errorf("%w: %s is %s", ErrLobbyNotJoinable, lobbyID, l.Phase))
	}
	if len(l.Players) >= MaxPlayersPerLobby {
		return e.reject("join", fmt.Errorf("%w: %s", ErrLobbyFull, lobbyID))
	}
	if valueSent < l.EntryFee {
		return e.reject("join", &InsufficientEntryError{LobbyID: lobbyID, Required: l.EntryFee, Sent: valueSent})
	}

	if !l.hasPlayer(player) {
		l.Players = append(l.Players, player)
	}

	e.emit(eventlog.KindPlayerJoined,
		eventlog.F("lobby_id", lobbyID),
		eventlog.F("player", player),
		eventlog.F("value", valueSent),
	)
	e.log.Debug("player joined", zap.String("lobby_id", lobbyID), zap.String("player", player), zap.Int("players", len(l.Players)))
	return nil
}

// StartMatch moves a waiting lobby into play. Only the lobby creator may start it.
func (e *Engine) StartMatch(lobbyID, caller string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	l, ok := e.lobbies[lobbyID]
	if !ok {
		return "", e.reject("start", fmt.Errorf("%w: %s", ErrLobbyNotFound, lobbyID))
	}
	if !addr.Equal(caller, l.Creator) {
		return "", e.reject("start", fmt.Errorf("%w: %s", ErrNotGameMaster, caller))
	}
	if l.Phase != PhaseWaiting {
		return "", e.reject("start", fmt.Errorf("%w: %s", ErrLobbyAlreadyStarted, lobbyID))
	}
	if len(l.Players) < MinPlayersToStart {
		return "", e.reject("start", fmt.Errorf("%w: %d of %d", ErrNotEnoughPlayers, len(l.Players), MinPlayersToStart))
	}

	e.nextMatch++
	matchID := fmt.Sprintf("match-%d", e.nextMatch)

	m := &Match{
		ID:           matchID,
		LobbyID:      lobbyID,
		Participants: slices.Clone(l.Players),
		Kills:        make(map[string]int64, len(l.Players)),
		StartedAt:    e.clock.Now(),
	}
	for _, p := range l.Players {
		m.Kills[p] = 0
	}
	e.matches[matchID] = m
	e.matchOrder = append(e.matchOrder, matchID)

	l.Phase = PhaseInProgress
	l.MatchID = matchID

	e.emit(eventlog.KindMatchStarted,
		eventlog.F("lobby_id", lobbyID),
		eventlog.F("match_id", matchID),
		eventlog.F("players", len(m.Participants)),
		eventlog.F("map", selector.MapForMatch(matchID)),
	)
	e.log.Info("match started", zap.String("lobby_id", lobbyID), zap.String("match_id", matchID), zap.Int("players", len(m.Participants)))
	return matchID, nil
}

func (e *Engine) reject(op string, err error) error {
	e.log.Debug("operation rejected", zap.String("op", op), zap.Error(err))
	return err
}
