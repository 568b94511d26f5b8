package types

import "github.com/DoyleJ11/battle-royale-backend/internal/progression"

// HTTP request and response bodies. Amounts are base-10 strings.

type CreateLobbyRequest struct {
	Creator  string `json:"creator"`
	EntryFee int64  `json:"entry_fee,string"`
}

type CreateLobbyResponse struct {
	LobbyID string `json:"lobby_id"`
}

type JoinLobbyRequest struct {
	Player string `json:"player"`
	Value  int64  `json:"value,string"`
}

type StartMatchRequest struct {
	Caller string `json:"caller"`
}

type StartMatchResponse struct {
	MatchID string `json:"match_id"`
}

type RecordKillRequest struct {
	Killer string `json:"killer"`
	Victim string `json:"victim"`
	Caller string `json:"caller"`
}

// EndMatchRequest: an empty winner ends the match without a winner.
type EndMatchRequest struct {
	Winner string `json:"winner"`
	Caller string `json:"caller"`
}

type RotateSeasonRequest struct {
	Caller string `json:"caller"`
}

type PrizeResponse struct {
	MatchID string `json:"match_id"`
	Player  string `json:"player"`
	Share   int64  `json:"share,string"`
}

type PrizePoolResponse struct {
	Players int   `json:"players"`
	Pool    int64 `json:"pool,string"`
}

type ProfileResponse struct {
	progression.Profile
	Rank                 string `json:"rank"`
	ExperienceToNextRank int64  `json:"experience_to_next_rank"`
}

type RankResponse struct {
	Experience           int64  `json:"experience"`
	Rank                 string `json:"rank"`
	ExperienceToNextRank int64  `json:"experience_to_next_rank"`
}

type LootResponse struct {
	Seed   string `json:"seed"`
	Index  int    `json:"index"`
	Weapon string `json:"weapon"`
	Rarity string `json:"rarity"`
	Skin   string `json:"skin"`
	Emote  string `json:"emote"`
}

type MapResponse struct {
	MatchID string `json:"match_id"`
	Map     string `json:"map"`
}

type IDsResponse struct {
	IDs []string `json:"ids"`
}

type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}
