package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
)

// EventMessageCreated — новое сообщение из формы обратной связи.
const EventMessageCreated = "message.created"

// Hub управляет всеми WebSocket клиентами админки.
type Hub struct {
	mu         sync.RWMutex
	clients    map[int64]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	ctx        context.Context
}

// NewHub создаёт новый хаб. Run завершается вместе с ctx.
func NewHub(ctx context.Context) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 32),
		ctx:        ctx,
	}
}

// Run запускает главный цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case payload := <-h.broadcast:
			h.send(payload)
		}
	}
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.ctx.Done():
	}
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.ctx.Done():
	}
}

// Broadcast рассылает событие всем подключённым администраторам.
func (h *Hub) Broadcast(event string, data any) error {
	// поле "type" содержит имя события, "data" — полезную нагрузку
	payload := map[string]any{
		"type": event,
		"data": data,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ws: не удалось сериализовать сообщение: %w", err)
	}

	if err := h.ctx.Err(); err != nil {
		return err
	}
	select {
	case h.broadcast <- raw:
		return nil
	case <-h.ctx.Done():
		return h.ctx.Err()
	}
}

// ClientCount возвращает количество открытых соединений.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, clients := range h.clients {
		count += len(clients)
	}
	return count
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.adminID]; !ok {
		h.clients[client.adminID] = make(map[*Client]struct{})
	}
	h.clients[client.adminID][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.adminID]; ok {
		if _, present := clients[client]; !present {
			return
		}
		delete(clients, client)
		close(client.send)
		if len(clients) == 0 {
			delete(h.clients, client.adminID)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for adminID, clients := range h.clients {
		for client := range clients {
			close(client.send)
		}
		delete(h.clients, adminID)
	}
}

func (h *Hub) send(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, clients := range h.clients {
		for client := range clients {
			select {
			case client.send <- payload:
			default:
				// медленный клиент отключается, закрываем вне цикла хаба
				slow := client
				goroutine.SafeGo("ws-close-slow-client", slow.Close)
			}
		}
	}
}
