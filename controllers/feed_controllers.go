package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/flipSOsigma/catering-app/feed"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin sudah disaring middleware CORS
	},
}

// FeedHandler -> endpoint WebSocket dashboard. Client menerima broadcast
// order_created/order_updated/order_deleted.
func FeedHandler(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	role := roleInterface.(string)

	if role != "staff" && role != "admin" {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	feed.RegisterClient(ws, role)

	// Baca terus sampai koneksi putus; feed ini satu arah.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	feed.UnregisterClient(ws)
}
