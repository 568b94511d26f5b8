package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: lobby-1", ErrLobbyNotFound), want: "lobby_not_found"},
		{err: ErrLobbyNotJoinable, want: "lobby_not_joinable"},
		{err: ErrLobbyAlreadyStarted, want: "lobby_already_started"},
		{err: ErrLobbyFull, want: "lobby_full"},
		{err: ErrNotEnoughPlayers, want: "not_enough_players"},
		{err: &InsufficientEntryError{Required: 2, Sent: 1}, want: "insufficient_entry"},
		{err: ErrNotGameMaster, want: "not_game_master"},
		{err: ErrMatchNotFound, want: "match_not_found"},
		{err: ErrMatchNotFinished, want: "match_not_finished"},
		{err: ErrNotSeasonOracle, want: "not_season_oracle"},
		{err: errors.New("boom"), want: "internal"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Code(tc.err), "%v", tc.err)
	}
}

func TestInsufficientEntryError_Message(t *testing.T) {
	err := &InsufficientEntryError{LobbyID: "lobby-3", Required: 10, Sent: 4}
	assert.Equal(t, "insufficient entry for lobby-3: required 10, sent 4", err.Error())
	assert.NotErrorIs(t, err, ErrLobbyFull)
}
