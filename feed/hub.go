package feed

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/flipSOsigma/catering-app/models"
	"github.com/flipSOsigma/catering-app/utils"
)

// Event types untuk feed dashboard
const (
	EventOrderCreated = "order_created"
	EventOrderUpdated = "order_updated"
	EventOrderDeleted = "order_deleted"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client dashboard yang sedang terhubung dan
// menyiarkan perubahan order supaya daftar pesanan tidak perlu polling.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient -> menambahkan connection ke set dengan role
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient -> melepaskan connection
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderCreated -> order baru masuk
func BroadcastOrderCreated(order models.Order) {
	broadcast(Message{Event: EventOrderCreated, Data: order})
}

// BroadcastOrderUpdated -> order direvisi
func BroadcastOrderUpdated(order models.Order) {
	broadcast(Message{Event: EventOrderUpdated, Data: order})
}

// BroadcastOrderDeleted -> order dihapus, cukup kirim unique_id
func BroadcastOrderDeleted(uniqueID string) {
	broadcast(Message{Event: EventOrderDeleted, Data: map[string]string{"unique_id": uniqueID}})
}

func broadcast(msg Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("feed: gagal marshal pesan: %v", err)
		return
	}

	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			// Connection mati, lepaskan dari set
			delete(hub.clients, conn)
			conn.Close()
		}
	}
}
