package feed

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/food-delivery/models"
	"github.com/yeremiapane/food-delivery/utils"
)

const (
	EventSubscribed = "subscribed"
	EventOrderSaved = "order_saved"
)

// writeWait bounds each write so a stalled dashboard cannot hold the hub.
const writeWait = 10 * time.Second

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub fans order events out to every connected restaurant dashboard.
type Hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]uint // conn -> user id
	writeWait time.Duration
}

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]uint),
		writeWait: writeWait,
	}
}

// Register greets conn with a subscribed event and starts sending it
// broadcasts. Writes happen under the hub lock so a connection never has two
// concurrent writers.
func (h *Hub) Register(conn *websocket.Conn, userID uint) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(h.writeWait))
	if err := conn.WriteJSON(Message{Event: EventSubscribed}); err != nil {
		return err
	}
	h.clients[conn] = userID
	return nil
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) BroadcastOrderSaved(order models.PlacedOrder) {
	h.Broadcast(Message{Event: EventOrderSaved, Data: order})
}

// Broadcast writes msg to every client. Clients that fail the write are dropped.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.WithError(err).Error("marshal feed message")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, userID := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.WithError(err).Errorf("feed write to user %d failed, dropping client", userID)
			delete(h.clients, conn)
			conn.Close()
		}
	}
	utils.InfoLogger.Debugf("broadcast %s to %d clients", msg.Event, len(h.clients))
}
