package types

import "github.com/DoyleJ11/battle-royale-backend/internal/eventlog"

// Client -> Server (websocket)
//
// Type selects the engine operation; only the fields it needs are read.
//   CreateLobby: creator, entry_fee
//   JoinLobby:   lobby_id, player, value
//   StartMatch:  lobby_id, caller
//   RecordKill:  match_id, killer, victim, caller
//   EndMatch:    match_id, winner, caller
//   ClaimPrize:  match_id, player
type ClientMessage struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
	LobbyID   string `json:"lobby_id,omitempty"`
	MatchID   string `json:"match_id,omitempty"`
	Creator   string `json:"creator,omitempty"`
	Player    string `json:"player,omitempty"`
	Caller    string `json:"caller,omitempty"`
	Killer    string `json:"killer,omitempty"`
	Victim    string `json:"victim,omitempty"`
	Winner    string `json:"winner,omitempty"`
	EntryFee  int64  `json:"entry_fee,string,omitempty"`
	Value     int64  `json:"value,string,omitempty"`
}

// Server -> Client (websocket)
type ServerMessage struct {
	Type      string          `json:"type"` // "Event" | "Ack" | "Error"
	RequestID string          `json:"request_id,omitempty"`
	Event     *eventlog.Event `json:"event,omitempty"`
	LobbyID   string          `json:"lobby_id,omitempty"`
	MatchID   string          `json:"match_id,omitempty"`
	Share     *int64          `json:"share,string,omitempty"`
	Code      string          `json:"code,omitempty"`
	Error     string          `json:"error,omitempty"`
}

const (
	MsgEvent = "Event"
	MsgAck   = "Ack"
	MsgError = "Error"
)
