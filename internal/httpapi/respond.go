package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
	"github.com/DoyleJ11/battle-royale-backend/pkg/types"
)

// statusFor maps engine error codes to HTTP statuses.
var statusFor = map[string]int{
	"lobby_not_found":       http.StatusNotFound,
	"match_not_found":       http.StatusNotFound,
	"lobby_not_joinable":    http.StatusConflict,
	"lobby_already_started": http.StatusConflict,
	"lobby_full":            http.StatusConflict,
	"not_enough_players":    http.StatusConflict,
	"match_not_finished":    http.StatusConflict,
	"insufficient_entry":    http.StatusPaymentRequired,
	"not_game_master":       http.StatusForbidden,
	"not_season_oracle":     http.StatusForbidden,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := engine.Code(err)
	status, ok := statusFor[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, types.ErrorResponse{Code: code, Error: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Code: "bad_request", Error: err.Error()})
		return false
	}
	return true
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Code: "bad_request", Error: name + " must be an integer"})
		return 0, false
	}
	return n, true
}
