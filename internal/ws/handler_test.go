package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
	"github.com/DoyleJ11/battle-royale-backend/internal/hub"
	"github.com/DoyleJ11/battle-royale-backend/pkg/types"
)

const creator = "0xCreator"

func TestApply_LobbyToPrize(t *testing.T) {
	e := engine.New()

	created := Apply(e, types.ClientMessage{Type: "CreateLobby", RequestID: "r1", Creator: creator})
	require.Equal(t, types.MsgAck, created.Type)
	assert.Equal(t, "r1", created.RequestID)
	lobbyID := created.LobbyID
	require.NotEmpty(t, lobbyID)

	for _, p := range []string{"0xa", "0xb", "0xc", "0xd"} {
		reply := Apply(e, types.ClientMessage{Type: "JoinLobby", LobbyID: lobbyID, Player: p, Value: engine.EntryFee})
		require.Equal(t, types.MsgAck, reply.Type, reply.Error)
	}

	started := Apply(e, types.ClientMessage{Type: "StartMatch", LobbyID: lobbyID, Caller: creator})
	require.Equal(t, types.MsgAck, started.Type, started.Error)
	matchID := started.MatchID

	assert.Equal(t, types.MsgAck, Apply(e, types.ClientMessage{Type: "RecordKill", MatchID: matchID, Killer: "0xa", Victim: "0xb"}).Type)
	assert.Equal(t, types.MsgAck, Apply(e, types.ClientMessage{Type: "EndMatch", MatchID: matchID, Winner: "0xa"}).Type)

	prize := Apply(e, types.ClientMessage{Type: "ClaimPrize", MatchID: matchID, Player: "0xA"})
	require.Equal(t, types.MsgAck, prize.Type)
	require.NotNil(t, prize.Share)
	assert.Equal(t, e.EstimatePrizePool(4), *prize.Share)
}

func TestApply_Errors(t *testing.T) {
	e := engine.New()

	reply := Apply(e, types.ClientMessage{Type: "JoinLobby", RequestID: "r9", LobbyID: "lobby-7", Player: "0xa", Value: 1})
	assert.Equal(t, types.MsgError, reply.Type)
	assert.Equal(t, "lobby_not_found", reply.Code)
	assert.Equal(t, "r9", reply.RequestID)

	reply = Apply(e, types.ClientMessage{Type: "ClaimPrize", MatchID: "match-1", Player: "0xa"})
	assert.Equal(t, "match_not_found", reply.Code)

	reply = Apply(e, types.ClientMessage{Type: "Teleport"})
	assert.Equal(t, "unknown_type", reply.Code)
}

func newServer(t *testing.T) (*engine.Engine, string) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := hub.NewHub(ctx, zap.NewNop(), 16)
	e := engine.New(engine.WithPublisher(h))
	srv := httptest.NewServer(Handler(e, h, zap.NewNop()))
	t.Cleanup(srv.Close)
	return e, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) types.ServerMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	var msg types.ServerMessage
	require.NoError(t, wsjson.Read(ctx, conn, &msg))
	return msg
}

func TestHandler_ReplaysBacklog(t *testing.T) {
	e, url := newServer(t)
	e.CreateLobby(creator, 0)
	e.CreateLobby(creator, 0)

	conn := dial(t, url+"?since=1")

	msg := read(t, conn)
	require.Equal(t, types.MsgEvent, msg.Type)
	require.NotNil(t, msg.Event)
	assert.Equal(t, 2, msg.Event.Seq)
	assert.Equal(t, eventlog.KindLobbyCreated, msg.Event.Kind)
}

func TestHandler_CommandAckAndLiveEvent(t *testing.T) {
	_, url := newServer(t)
	conn := dial(t, url)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, wsjson.Write(ctx, conn, types.ClientMessage{Type: "CreateLobby", RequestID: "r1", Creator: creator}))

	// Ack and event are written by different goroutines, so either may come first.
	got := map[string]types.ServerMessage{}
	for len(got) < 2 {
		msg := read(t, conn)
		got[msg.Type] = msg
	}

	assert.Equal(t, "lobby-1", got[types.MsgAck].LobbyID)
	require.NotNil(t, got[types.MsgEvent].Event)
	assert.Equal(t, eventlog.KindLobbyCreated, got[types.MsgEvent].Event.Kind)
}

func TestHandler_BadJSON(t *testing.T) {
	_, url := newServer(t)
	conn := dial(t, url)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{nope")))

	msg := read(t, conn)
	assert.Equal(t, types.MsgError, msg.Type)
	assert.Equal(t, "bad_json", msg.Code)
}
