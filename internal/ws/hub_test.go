package ws

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/planline/planboard/pkg/logger"
)

func TestMain(m *testing.M) {
	_, err := logger.Init("info", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))

	// Registration happens in the server handler; publish until the client
	// sees a frame.
	got := make(chan []byte, 1)
	go func() {
		_, msg, err := conn.ReadMessage()
		if err == nil {
			got <- msg
		}
	}()

	var msg []byte
	deadline := time.After(2 * time.Second)
	for msg == nil {
		hub.Publish("assignment.created", map[string]int{"id": 7})
		select {
		case msg = <-got:
		case <-time.After(50 * time.Millisecond):
		case <-deadline:
			t.Fatal("no broadcast received")
		}
	}

	var ev Event
	require.NoError(t, json.Unmarshal(msg, &ev))
	require.Equal(t, "assignment.created", ev.Type)
}
