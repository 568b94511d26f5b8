package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
	"github.com/DoyleJ11/battle-royale-backend/internal/hub"
	"github.com/DoyleJ11/battle-royale-backend/pkg/types"
)

// Handler streams engine events to the client and applies commands it sends.
// ?since=N replays logged events with seq > N before live ones.
func Handler(e *engine.Engine, h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		since := 0
		if s := r.URL.Query().Get("since"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				http.Error(w, "bad since", http.StatusBadRequest)
				return
			}
			since = n
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		out := make(chan eventlog.Event, 64)
		if !h.Subscribe(clientID, out) {
			conn.Close(websocket.StatusGoingAway, "shutting down")
			return
		}
		defer h.Unsubscribe(clientID)
		log.Debug("ws client connected", zap.String("client_id", clientID), zap.Int("since", since))

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			last := since
			for _, ev := range e.Events() {
				if ev.Seq > last {
					if err := write(writeCtx, conn, eventMessage(ev)); err != nil {
						return
					}
					last = ev.Seq
				}
			}
			for ev := range out {
				if ev.Seq <= last {
					continue
				}
				if err := write(writeCtx, conn, eventMessage(ev)); err != nil {
					return
				}
				last = ev.Seq
			}
			// Hub dropped us or shut down.
			conn.Close(websocket.StatusTryAgainLater, "event stream closed")
		}()

		// Reader loop
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				default:
					log.Debug("ws read failed", zap.String("client_id", clientID), zap.Error(err))
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				_ = write(r.Context(), conn, types.ServerMessage{Type: types.MsgError, Code: "bad_json", Error: "bad json"})
				continue
			}

			_ = write(r.Context(), conn, Apply(e, cm))
		}
	}
}

// Apply runs one client command against the engine and builds the reply.
func Apply(e *engine.Engine, cm types.ClientMessage) types.ServerMessage {
	reply := types.ServerMessage{Type: types.MsgAck, RequestID: cm.RequestID}
	var err error

	switch cm.Type {
	case "CreateLobby":
		reply.LobbyID = e.CreateLobby(cm.Creator, cm.EntryFee)
	case "JoinLobby":
		reply.LobbyID = cm.LobbyID
		err = e.JoinLobby(cm.LobbyID, cm.Player, cm.Value)
	case "StartMatch":
		reply.LobbyID = cm.LobbyID
		reply.MatchID, err = e.StartMatch(cm.LobbyID, cm.Caller)
	case "RecordKill":
		reply.MatchID = cm.MatchID
		e.RecordKill(cm.MatchID, cm.Killer, cm.Victim, cm.Caller)
	case "EndMatch":
		reply.MatchID = cm.MatchID
		err = e.EndMatch(cm.MatchID, cm.Winner, cm.Caller)
	case "ClaimPrize":
		reply.MatchID = cm.MatchID
		var share int64
		share, err = e.ClaimPrize(cm.MatchID, cm.Player)
		reply.Share = &share
	default:
		return types.ServerMessage{Type: types.MsgError, RequestID: cm.RequestID, Code: "unknown_type", Error: "unknown type"}
	}

	if err != nil {
		return types.ServerMessage{Type: types.MsgError, RequestID: cm.RequestID, Code: engine.Code(err), Error: err.Error()}
	}
	return reply
}

func eventMessage(ev eventlog.Event) types.ServerMessage {
	return types.ServerMessage{Type: types.MsgEvent, Event: &ev}
}

func write(ctx context.Context, conn *websocket.Conn, msg types.ServerMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, payload)
}
