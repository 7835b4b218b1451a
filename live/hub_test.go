package live

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, "results")
		if !hub.Register(client) {
			conn.Close()
			return
		}
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(srv.Close)
	return hub, srv
}

func waitForRoomSize(t *testing.T, hub *Hub, room string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.RoomSize(room) != want {
		if time.Now().After(deadline) {
			t.Fatalf("room %s never reached %d clients (have %d)", room, want, hub.RoomSize(room))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastReachesRoomClients(t *testing.T) {
	hub, srv := newTestHub(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitForRoomSize(t, hub, "results", 1)

	hub.BroadcastToRoom("results", map[string]string{"type": "MATCH_REGISTERED"})
	hub.BroadcastToRoom("elsewhere", map[string]string{"type": "IGNORED"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg map[string]string
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("invalid JSON %q: %v", data, err)
	}
	if msg["type"] != "MATCH_REGISTERED" {
		t.Fatalf("unexpected message %v", msg)
	}
}

func TestClientDisconnectLeavesRoom(t *testing.T) {
	hub, srv := newTestHub(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForRoomSize(t, hub, "results", 1)

	conn.Close()
	waitForRoomSize(t, hub, "results", 0)
}

func TestBroadcastToEmptyRoomIsNoop(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hub.BroadcastToRoom("results", "anything")
	if hub.RoomSize("results") != 0 {
		t.Fatalf("expected empty room")
	}
}
