package engine

import (
	"errors"
	"fmt"
)

var ErrLobbyNotFound = errors.New("lobby not found")
var ErrLobbyNotJoinable = errors.New("lobby not accepting players")
var ErrLobbyAlreadyStarted = errors.New("lobby already started")
var ErrLobbyFull = errors.New("lobby full")
var ErrNotEnoughPlayers = errors.New("not enough players to start")
var ErrInsufficientEntry = errors.New("insufficient entry")
var ErrNotGameMaster = errors.New("caller is not the lobby game master")
var ErrMatchNotFound = errors.New("match not found")
var ErrMatchNotFinished = errors.New("match not finished")
var ErrNotSeasonOracle = errors.New("caller is not the season oracle")

// InsufficientEntryError reports the fee a lobby requires and what was sent.
// It matches ErrInsufficientEntry with errors.Is.
type InsufficientEntryError struct {
	LobbyID  string
	Required int64
	Sent     int64
}

func (e *InsufficientEntryError) Error() string {
	return fmt.Sprintf("insufficient entry for %s: required %d, sent %d", e.LobbyID, e.Required, e.Sent)
}

func (e *InsufficientEntryError) Is(target error) bool { return target == ErrInsufficientEntry }

// Code returns a stable machine-readable name for an engine error, or "internal".
func Code(err error) string {
	switch {
	case errors.Is(err, ErrLobbyNotFound):
		return "lobby_not_found"
	case errors.Is(err, ErrLobbyNotJoinable):
		return "lobby_not_joinable"
	case errors.Is(err, ErrLobbyAlreadyStarted):
		return "lobby_already_started"
	case errors.Is(err, ErrLobbyFull):
		return "lobby_full"
	case errors.Is(err, ErrNotEnoughPlayers):
		return "not_enough_players"
	case errors.Is(err, ErrInsufficientEntry):
		return "insufficient_entry"
	case errors.Is(err, ErrNotGameMaster):
		return "not_game_master"
	case errors.Is(err, ErrMatchNotFound):
		return "match_not_found"
	case errors.Is(err, ErrMatchNotFinished):
		return "match_not_finished"
	case errors.Is(err, ErrNotSeasonOracle):
		return "not_season_oracle"
	default:
		return "internal"
	}
}
