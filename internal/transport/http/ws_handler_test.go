package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/mathrush/mathrush-server/internal/config"
	"github.com/mathrush/mathrush-server/internal/game"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	nop := zerolog.Nop()
	hub := game.NewHub(&nop, 300*time.Millisecond, 50*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := NewServer(hub, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &nop)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func dialWS(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

// readUntil reads messages until one with the wanted type arrives.
func readUntil(t *testing.T, ctx context.Context, conn *websocket.Conn, msgType string) map[string]any {
	t.Helper()

	for {
		var msg map[string]any
		if err := wsjson.Read(ctx, conn, &msg); err != nil {
			t.Fatalf("read while waiting for %q: %v", msgType, err)
		}
		if msg["type"] == msgType {
			return msg
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestWebSocketHelloAndRoomCreation(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)

	hello := readUntil(t, ctx, conn, "hello")
	playerID, _ := hello["playerId"].(string)
	if len(playerID) != 6 {
		t.Fatalf("playerId %q does not have 6 characters", playerID)
	}
	topics, _ := hello["supportedTopics"].([]any)
	if len(topics) != 4 {
		t.Fatalf("got %d supported topics, want 4", len(topics))
	}

	_ = wsjson.Write(ctx, conn, map[string]any{"type": "set_name", "name": "tester"})
	_ = wsjson.Write(ctx, conn, map[string]any{"type": "create_room", "topics": []string{"add"}, "limit": 2})

	created := readUntil(t, ctx, conn, "room_created")
	code, _ := created["code"].(string)
	if len(code) != 6 {
		t.Fatalf("room code %q does not have 6 characters", code)
	}
	if created["hostId"] != playerID {
		t.Fatalf("hostId %v, want %q", created["hostId"], playerID)
	}
	if created["limit"] != float64(2) {
		t.Fatalf("limit %v, want 2", created["limit"])
	}
}

func TestWebSocketChatRoundTrip(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	readUntil(t, ctx, conn, "hello")

	_ = wsjson.Write(ctx, conn, map[string]any{"type": "create_room"})
	readUntil(t, ctx, conn, "room_created")

	_ = wsjson.Write(ctx, conn, map[string]any{"type": "chat", "text": "good luck everyone"})

	for {
		msg := readUntil(t, ctx, conn, "chat")
		message, _ := msg["message"].(map[string]any)
		if message["playerId"] == nil {
			continue // system notice
		}
		if message["text"] != "good luck everyone" {
			t.Fatalf("chat text %v, want %q", message["text"], "good luck everyone")
		}
		return
	}
}

func TestWebSocketJoinUnknownRoom(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	readUntil(t, ctx, conn, "hello")

	_ = wsjson.Write(ctx, conn, map[string]any{"type": "join_room", "code": "zzzzzz"})

	errMsg := readUntil(t, ctx, conn, "error")
	if errMsg["message"] != "Room not found" {
		t.Fatalf("error message %v, want %q", errMsg["message"], "Room not found")
	}
}

func TestWebSocketFullGameFlow(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn := dialWS(t, ctx, ts)
	readUntil(t, ctx, conn, "hello")

	_ = wsjson.Write(ctx, conn, map[string]any{"type": "create_room", "topics": []string{"mul"}, "limit": 1})
	readUntil(t, ctx, conn, "room_created")

	_ = wsjson.Write(ctx, conn, map[string]any{"type": "start"})

	q := readUntil(t, ctx, conn, "question")
	question, _ := q["question"].(map[string]any)
	if _, leaked := question["answer"]; leaked {
		t.Fatal("question broadcast leaked the answer")
	}
	options, _ := question["options"].([]any)
	if len(options) != 4 {
		t.Fatalf("got %d options, want 4", len(options))
	}

	reveal := readUntil(t, ctx, conn, "reveal")
	if reveal["questionId"] != question["id"] {
		t.Fatalf("reveal questionId %v, want %v", reveal["questionId"], question["id"])
	}

	end := readUntil(t, ctx, conn, "end_game")
	if end["totalQuestions"] != float64(1) {
		t.Fatalf("totalQuestions %v, want 1", end["totalQuestions"])
	}
}
