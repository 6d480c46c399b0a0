package feed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/flipSOsigma/catering-app/models"
	"github.com/flipSOsigma/catering-app/utils"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialTestClient membuka pasangan koneksi websocket lewat server httptest
// dan mendaftarkan sisi server ke hub.
func dialTestClient(t *testing.T, role string) (*websocket.Conn, func()) {
	t.Helper()

	registered := make(chan *websocket.Conn, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		RegisterClient(ws, role)
		registered <- ws
	}))

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)

	serverConn := <-registered
	cleanup := func() {
		UnregisterClient(serverConn)
		client.Close()
		server.Close()
	}
	return client, cleanup
}

func TestBroadcastReachesRegisteredClients(t *testing.T) {
	utils.InitLogger()

	client, cleanup := dialTestClient(t, "staff")
	defer cleanup()

	order := models.Order{UniqueID: "uid-123", EventName: "Pernikahan Tia & Rizky"}
	BroadcastOrderCreated(order)

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := client.ReadMessage()
	assert.NoError(t, err)

	var msg Message
	assert.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, EventOrderCreated, msg.Event)
	data := msg.Data.(map[string]interface{})
	assert.Equal(t, "uid-123", data["unique_id"])
}

func TestBroadcastOrderDeletedCarriesUniqueID(t *testing.T) {
	utils.InitLogger()

	client, cleanup := dialTestClient(t, "admin")
	defer cleanup()

	BroadcastOrderDeleted("uid-456")

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := client.ReadMessage()
	assert.NoError(t, err)

	var msg Message
	assert.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, EventOrderDeleted, msg.Event)
	data := msg.Data.(map[string]interface{})
	assert.Equal(t, "uid-456", data["unique_id"])
}

func TestBroadcastDropsDeadConnections(t *testing.T) {
	utils.InitLogger()

	client, cleanup := dialTestClient(t, "staff")
	// Matikan sisi client lebih dulu, broadcast harus membersihkan set.
	// Error tulis baru muncul setelah RST sampai, jadi coba beberapa kali.
	client.Close()

	cleaned := false
	for i := 0; i < 20 && !cleaned; i++ {
		BroadcastOrderDeleted("uid-789")
		hub.mutex.Lock()
		cleaned = len(hub.clients) == 0
		hub.mutex.Unlock()
		time.Sleep(50 * time.Millisecond)
	}
	assert.True(t, cleaned)

	cleanup()
}
