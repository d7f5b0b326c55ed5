package feed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/food-delivery/models"
)

func TestHubBroadcastOrderSaved(t *testing.T) {
	hub := NewHub()
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if err := hub.Register(conn, 1); err != nil {
			conn.Close()
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
		hub.Unregister(conn)
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var hello Message
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, EventSubscribed, hello.Event)
	assert.Equal(t, 1, hub.Len())

	hub.BroadcastOrderSaved(models.PlacedOrder{ID: 11, UserID: 1, TotalAmount: decimal.NewFromInt(10)})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Event string `json:"event"`
		Data  struct {
			OrderID     uint            `json:"orderId"`
			TotalAmount decimal.Decimal `json:"totalAmount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, EventOrderSaved, msg.Event)
	assert.Equal(t, uint(11), msg.Data.OrderID)
	assert.True(t, decimal.NewFromInt(10).Equal(msg.Data.TotalAmount))

	conn.Close()
	assert.Eventually(t, func() bool { return hub.Len() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHubDropsStalledClient(t *testing.T) {
	hub := NewHub()
	hub.writeWait = 50 * time.Millisecond
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if err := hub.Register(conn, 2); err != nil {
			conn.Close()
		}
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var hello Message
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, 1, hub.Len())

	// The dashboard stops reading; a payload larger than the socket buffers
	// makes the hub's write block until the deadline.
	big := strings.Repeat("x", 32<<20)
	done := make(chan struct{})
	go func() {
		hub.Broadcast(Message{Event: EventOrderSaved, Data: big})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("broadcast blocked on a stalled client")
	}
	assert.Equal(t, 0, hub.Len())
}
