package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub fans write events out to the sockets of the users they concern. This
// is the re-delivery half of the reactive store model: clients subscribe
// once and get pushed fresh state after relevant mutations.
type Hub struct {
	clients    map[*Client]uuid.UUID
	byUser     map[uuid.UUID]map[*Client]bool
	deliver    chan delivery
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type delivery struct {
	userIDs []uuid.UUID
	payload []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]uuid.UUID),
		byUser:     make(map[uuid.UUID]map[*Client]bool),
		deliver:    make(chan delivery, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = client.userID
			if h.byUser[client.userID] == nil {
				h.byUser[client.userID] = make(map[*Client]bool)
			}
			h.byUser[client.userID][client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if userID, ok := h.clients[client]; ok {
				delete(h.clients, client)
				if peers := h.byUser[userID]; peers != nil {
					delete(peers, client)
					if len(peers) == 0 {
						delete(h.byUser, userID)
					}
				}
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | total_clients=%d", total)
			}

		case d := <-h.deliver:
			h.mutex.RLock()
			targets := make([]*Client, 0)
			for _, userID := range d.userIDs {
				for c := range h.byUser[userID] {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- d.payload:
				default:
					// A slow reader loses its connection, not the hub.
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Push queues payload for every open socket of the given users, dropping
// the event when the hub buffer is full.
func (h *Hub) Push(userIDs []uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.deliver <- delivery{userIDs: userIDs, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS push dropped | reason=buffer_full")
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
