package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
	"github.com/DoyleJ11/battle-royale-backend/internal/hub"
	"github.com/DoyleJ11/battle-royale-backend/internal/ws"
)

func SetupRoutes(e *engine.Engine, h *hub.Hub, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", Healthz)
	r.Get("/ws", ws.Handler(e, h, log))

	r.Route("/lobbies", func(r chi.Router) {
		r.Get("/", ListLobbies(e))
		r.Post("/", CreateLobby(e))
		r.Get("/{lobbyID}", GetLobby(e))
		r.Post("/{lobbyID}/join", JoinLobby(e))
		r.Post("/{lobbyID}/start", StartMatch(e))
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", ListMatches(e))
		r.Get("/{matchID}", GetMatch(e))
		r.Post("/{matchID}/kills", RecordKill(e))
		r.Post("/{matchID}/end", EndMatch(e))
		r.Get("/{matchID}/prize", ClaimPrize(e))
		r.Get("/{matchID}/map", MapForMatch(e))
	})

	r.Get("/profiles", ListProfiles(e))
	r.Get("/profiles/{address}", GetProfile(e))
	r.Get("/events", Events(e))
	r.Get("/season", CurrentSeason(e))
	r.Post("/season/rotate", RotateSeason(e))

	r.Get("/prize-pool", EstimatePrizePool(e))
	r.Get("/ranks", RankFor)
	r.Get("/loot", Loot)
	return r
}
