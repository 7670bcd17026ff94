package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	wsMu      sync.Mutex
	wsClients = make(map[*websocket.Conn]bool)
)

type orderUpdate struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// GET /user/orders-ws
// Subscribers receive a JSON message whenever an order status changes.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsMu.Lock()
	wsClients[conn] = true
	wsMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsMu.Lock()
			delete(wsClients, conn)
			wsMu.Unlock()
			break
		}
	}
}

// BroadcastOrderUpdate pushes a status change to every connected client.
func BroadcastOrderUpdate(orderID, status string) {
	payload, err := json.Marshal(orderUpdate{OrderID: orderID, Status: status})
	if err != nil {
		return
	}

	wsMu.Lock()
	defer wsMu.Unlock()
	for conn := range wsClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}
