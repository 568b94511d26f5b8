package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
	"github.com/DoyleJ11/battle-royale-backend/internal/progression"
	"github.com/DoyleJ11/battle-royale-backend/internal/selector"
	"github.com/DoyleJ11/battle-royale-backend/pkg/types"
)

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func CreateLobby(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateLobbyRequest
		if !decode(w, r, &req) {
			return
		}
		id := e.CreateLobby(req.Creator, req.EntryFee)
		writeJSON(w, http.StatusCreated, types.CreateLobbyResponse{LobbyID: id})
	}
}

func JoinLobby(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.JoinLobbyRequest
		if !decode(w, r, &req) {
			return
		}
		if err := e.JoinLobby(chi.URLParam(r, "lobbyID"), req.Player, req.Value); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func StartMatch(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.StartMatchRequest
		if !decode(w, r, &req) {
			return
		}
		matchID, err := e.StartMatch(chi.URLParam(r, "lobbyID"), req.Caller)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, types.StartMatchResponse{MatchID: matchID})
	}
}

func GetLobby(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "lobbyID")
		l, ok := e.Lobby(id)
		if !ok {
			writeError(w, engine.ErrLobbyNotFound)
			return
		}
		writeJSON(w, http.StatusOK, l)
	}
}

func ListLobbies(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.IDsResponse{IDs: e.LobbyIDs()})
	}
}

func RecordKill(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RecordKillRequest
		if !decode(w, r, &req) {
			return
		}
		e.RecordKill(chi.URLParam(r, "matchID"), req.Killer, req.Victim, req.Caller)
		w.WriteHeader(http.StatusAccepted)
	}
}

func EndMatch(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EndMatchRequest
		if !decode(w, r, &req) {
			return
		}
		if err := e.EndMatch(chi.URLParam(r, "matchID"), req.Winner, req.Caller); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ClaimPrize(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")
		player := r.URL.Query().Get("player")
		share, err := e.ClaimPrize(matchID, player)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.PrizeResponse{MatchID: matchID, Player: player, Share: share})
	}
}

func GetMatch(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, ok := e.Match(chi.URLParam(r, "matchID"))
		if !ok {
			writeError(w, engine.ErrMatchNotFound)
			return
		}
		writeJSON(w, http.StatusOK, m)
	}
}

func ListMatches(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, types.IDsResponse{IDs: e.MatchIDs()})
	}
}

func MapForMatch(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := chi.URLParam(r, "matchID")
		name, err := e.MapForMatch(matchID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.MapResponse{MatchID: matchID, Map: name})
	}
}

func GetProfile(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := e.Profile(chi.URLParam(r, "address"))
		if !ok {
			writeJSON(w, http.StatusNotFound, types.ErrorResponse{Code: "profile_not_found", Error: "profile not found"})
			return
		}
		writeJSON(w, http.StatusOK, types.ProfileResponse{
			Profile:              p,
			Rank:                 p.Rank(),
			ExperienceToNextRank: progression.ExperienceToNextRank(p.Experience),
		})
	}
}

func ListProfiles(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, e.Profiles())
	}
}

func Events(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, e.Events())
	}
}

func CurrentSeason(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, e.CurrentSeason())
	}
}

func RotateSeason(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RotateSeasonRequest
		if !decode(w, r, &req) {
			return
		}
		s, err := e.RotateSeason(req.Caller)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}

func EstimatePrizePool(e *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, ok := intParam(w, r, "players")
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, types.PrizePoolResponse{Players: n, Pool: e.EstimatePrizePool(n)})
	}
}

func RankFor(w http.ResponseWriter, r *http.Request) {
	xp, err := strconv.ParseInt(r.URL.Query().Get("xp"), 10, 64)
	if err != nil || xp < 0 {
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Code: "bad_request", Error: "xp must be a non-negative integer"})
		return
	}
	writeJSON(w, http.StatusOK, types.RankResponse{
		Experience:           xp,
		Rank:                 progression.RankFor(xp),
		ExperienceToNextRank: progression.ExperienceToNextRank(xp),
	})
}

// Loot returns every seeded cosmetic for ?index=, using ?seed= or the arena seed.
func Loot(w http.ResponseWriter, r *http.Request) {
	idx, ok := intParam(w, r, "index")
	if !ok {
		return
	}
	seed := r.URL.Query().Get("seed")
	if seed == "" {
		seed = selector.ArenaSeed
	}
	writeJSON(w, http.StatusOK, types.LootResponse{
		Seed:   seed,
		Index:  idx,
		Weapon: selector.WeaponForSeed(seed, idx),
		Rarity: selector.LootRarityForSeed(seed, idx),
		Skin:   selector.SkinForSeed(seed, idx),
		Emote:  selector.EmoteForSeed(seed, idx),
	})
}
