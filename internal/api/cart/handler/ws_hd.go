package cartHandler

import (
	"ShopSmartGolang/pkg/log"

	"github.com/gofiber/websocket/v2"
)

// HandleEventStream keeps a storefront client subscribed to cart-add events.
// The client never sends anything meaningful; reads only serve to detect the
// connection closing.
func (h *CartHandler) HandleEventStream(conn *websocket.Conn) {
	h.hub.Register(conn)
	defer func() {
		h.hub.Unregister(conn)
		conn.Close()
	}()

	h.log.WithFields(log.Fields{
		"remote_addr": conn.RemoteAddr().String(),
		"connections": h.hub.ConnectionCount(),
	}).Info("Cart event stream connected")

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.log.WithFields(log.Fields{
		"remote_addr": conn.RemoteAddr().String(),
	}).Debug("Cart event stream disconnected")
}
