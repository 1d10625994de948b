package websocketPkg

import (
	"log"
	"sync"

	"ShopSmartGolang/internal/entity"

	"github.com/gofiber/websocket/v2"

	jsoniter "github.com/json-iterator/go"
)

// IHub broadcasts storefront events to connected browser clients. The cart-add
// channel is fire-and-forget: a slow or dead connection is dropped, never
// retried, and the publisher is not told either way.
type IHub interface {
	Register(conn *websocket.Conn)
	Unregister(conn *websocket.Conn)
	BroadcastCartAdd(event entity.CartAddEvent)
	ConnectionCount() int
}

type eventEnvelope struct {
	Type   string      `json:"type"`
	Detail interface{} `json:"detail"`
}

type hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() IHub {
	return &hub{
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (h *hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = struct{}{}
}

func (h *hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, conn)
}

func (h *hub) BroadcastCartAdd(event entity.CartAddEvent) {
	payload, err := jsoniter.Marshal(eventEnvelope{
		Type:   "add-to-cart",
		Detail: event,
	})
	if err != nil {
		log.Printf("Failed to marshal cart-add event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Dropping dead websocket connection: %v", err)
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.conns)
}
