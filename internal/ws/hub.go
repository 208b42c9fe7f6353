package ws

import (
	"encoding/json"
	"log"
	"sync"

	"contest-judge-backend/internal/events"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans out contest events to connected observers, keyed by contest id.
type Hub struct {
	mu       sync.RWMutex
	contests map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		contests: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(contestID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.contests[contestID] == nil {
		h.contests[contestID] = make(map[*websocket.Conn]bool)
	}
	h.contests[contestID][conn] = true
	log.Printf("ws: client connected to contest %d (total: %d)", contestID, len(h.contests[contestID]))
}

func (h *Hub) RemoveConnection(contestID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.contests[contestID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.contests, contestID)
		}
		log.Printf("ws: client disconnected from contest %d", contestID)
	}
}

func (h *Hub) Broadcast(contestID uint, message WSMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.contests[contestID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}

// PublishSubmission implements events.Publisher over the hub.
func (h *Hub) PublishSubmission(t events.Type, ev events.SubmissionEvent) {
	h.Broadcast(ev.ContestID, WSMessage{Type: string(t), Data: ev})
}
