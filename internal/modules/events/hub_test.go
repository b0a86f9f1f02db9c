package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestConn(t *testing.T, hub *Hub, studentID int64) *websocket.Conn {
	t.Helper()

	handler := NewHandler(hub, nil)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := handler.upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(studentID, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	// Registration happens in the server handler; wait for it.
	require.Eventually(t, func() bool { return hub.IsOnline(studentID) },
		time.Second, 10*time.Millisecond)

	return client
}

func TestHandler_OriginFiltering(t *testing.T) {
	hub := NewHub()
	handler := NewHandler(hub, map[string]bool{"http://localhost:3000": true})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := handler.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		_ = conn.Close()
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	// Allowed origin upgrades.
	client, _, err := websocket.DefaultDialer.Dial(url,
		http.Header{"Origin": []string{"http://localhost:3000"}})
	require.NoError(t, err)
	_ = client.Close()

	// Non-browser clients send no Origin and pass.
	client, _, err = websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = client.Close()

	// Unknown origin is refused at the handshake.
	_, resp, err := websocket.DefaultDialer.Dial(url,
		http.Header{"Origin": []string{"http://evil.example.com"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestHub_SendToStudent(t *testing.T) {
	hub := NewHub()
	client := dialTestConn(t, hub, 7)

	ok := hub.SendToStudent(7, map[string]any{"type": "booking.approved", "booking_id": 3})
	assert.True(t, ok)

	var event map[string]any
	require.NoError(t, client.ReadJSON(&event))
	assert.Equal(t, "booking.approved", event["type"])
	assert.EqualValues(t, 3, event["booking_id"])
}

func TestHub_SendToOfflineStudent(t *testing.T) {
	hub := NewHub()

	assert.False(t, hub.SendToStudent(42, map[string]any{"type": "booking.approved"}))
	assert.False(t, hub.IsOnline(42))
	assert.Zero(t, hub.OnlineCount())
}

func TestHub_UnregisterClosesConnection(t *testing.T) {
	hub := NewHub()
	dialTestConn(t, hub, 7)

	assert.Equal(t, 1, hub.OnlineCount())
	hub.Unregister(7)
	assert.False(t, hub.IsOnline(7))
	assert.False(t, hub.SendToStudent(7, "anything"))
}
