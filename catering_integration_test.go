package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flipSOsigma/catering-app/models"
	"github.com/flipSOsigma/catering-app/router"
	"github.com/flipSOsigma/catering-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama aplikasi:
// 0. Seed admin, login -> token
// 1. Create order Wedding
// 2. Get order by unique_id, cek total turunan
// 3. Update order, cek total dihitung ulang
// 4. Unduh invoice PDF
// 5. Delete order (admin)
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	token := loginTest(t, r)

	uid := createOrderTest(t, r, token)

	getOrderTest(t, r, token, uid)

	updateOrderTest(t, r, token, uid)

	downloadInvoiceTest(t, r, token, uid)

	deleteOrderTest(t, r, token, uid)
}

// setupIntegrationDB -> migrasi model di SQLite in-memory + seed admin
func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.Customer{},
		&models.Event{},
		&models.Section{},
		&models.Portion{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Username: "admin_anisa",
		Email:    "admin@anisacatering.com",
		Password: string(hashedPassword),
		Role:     "admin",
	})

	return db
}

func loginTest(t *testing.T, r *gin.Engine) string {
	body := map[string]string{
		"username": "admin_anisa",
		"password": "secret123",
	}
	bodyBytes, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("loginTest fail: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if !resp.Status {
		t.Fatalf("loginTest: status=false, msg=%s", resp.Message)
	}
	if resp.Data.Token == "" {
		t.Fatalf("loginTest: token empty")
	}

	return resp.Data.Token
}

// integrationOrderPayload -> order Wedding yang lolos semua ambang porsi:
// visitor = 50*2 = 100, buffet+menu = 300, buffet+dessert = 250.
func integrationOrderPayload() map[string]interface{} {
	return map[string]interface{}{
		"event_name": "Pernikahan Laras & Adi",
		"invitation": 50,
		"customer": map[string]interface{}{
			"customer_name":  "Laras Ayu",
			"customer_phone": "081234567890",
			"customer_email": "laras@example.com",
		},
		"event": map[string]interface{}{
			"event_name":     "Resepsi",
			"event_location": "Banyumanik",
			"event_building": "Graha Cemara",
			"event_date":     "2025-10-12",
			"event_time":     "11:00",
			"event_category": "Wedding",
		},
		"sections": []map[string]interface{}{
			{
				"section_name": "Buffet",
				"portions": []map[string]interface{}{
					{"portion_name": "Nasi Putih", "portion_count": 200, "portion_price": 15000},
				},
			},
			{
				"section_name": "Menu Pondokan",
				"portions": []map[string]interface{}{
					{"portion_name": "Sate Ayam", "portion_count": 100, "portion_price": 20000},
				},
			},
			{
				"section_name": "Dessert",
				"portions": []map[string]interface{}{
					{"portion_name": "Es Puter", "portion_count": 50, "portion_price": 8000},
				},
			},
		},
	}
}

// createOrderTest -> POST /order => 201 {ok, unique_id}
func createOrderTest(t *testing.T, r *gin.Engine, token string) string {
	bodyBytes, _ := json.Marshal(integrationOrderPayload())

	req := httptest.NewRequest(http.MethodPost, "/order", bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("createOrderTest: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		OK       bool   `json:"ok"`
		UniqueID string `json:"unique_id"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.OK {
		t.Fatalf("createOrderTest: ok=false, body=%s", w.Body.String())
	}
	if resp.UniqueID == "" {
		t.Fatalf("createOrderTest: unique_id empty")
	}

	return resp.UniqueID
}

// getOrderTest -> GET /order/:uid => array dengan record pertama, total
// turunan sudah dihitung server
func getOrderTest(t *testing.T, r *gin.Engine, token, uid string) {
	req := httptest.NewRequest(http.MethodGet, "/order/"+uid, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("getOrderTest: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var records []struct {
		UniqueID string `json:"unique_id"`
		Price    int    `json:"price"`
		Portion  int    `json:"portion"`
		Visitor  int    `json:"visitor"`
	}
	json.Unmarshal(w.Body.Bytes(), &records)
	if len(records) != 1 {
		t.Fatalf("getOrderTest: expected 1 record, got %d", len(records))
	}
	if records[0].UniqueID != uid {
		t.Fatalf("getOrderTest: unique_id mismatch")
	}
	wantPrice := 200*15000 + 100*20000 + 50*8000
	if records[0].Price != wantPrice {
		t.Fatalf("getOrderTest: expected price %d, got %d", wantPrice, records[0].Price)
	}
	if records[0].Portion != 350 {
		t.Fatalf("getOrderTest: expected portion 350, got %d", records[0].Portion)
	}
	if records[0].Visitor != 100 {
		t.Fatalf("getOrderTest: expected visitor 100, got %d", records[0].Visitor)
	}
}

// updateOrderTest -> PUT /order/:uid, total dihitung ulang
func updateOrderTest(t *testing.T, r *gin.Engine, token, uid string) {
	payload := integrationOrderPayload()
	payload["sections"].([]map[string]interface{})[0]["portions"].([]map[string]interface{})[0]["portion_count"] = 250
	bodyBytes, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPut, "/order/"+uid, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("updateOrderTest: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/order/"+uid, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var records []struct {
		Price int `json:"price"`
	}
	json.Unmarshal(w.Body.Bytes(), &records)
	wantPrice := 250*15000 + 100*20000 + 50*8000
	if len(records) != 1 || records[0].Price != wantPrice {
		t.Fatalf("updateOrderTest: expected price %d, body=%s", wantPrice, w.Body.String())
	}
}

// downloadInvoiceTest -> GET /order/:uid/document/invoice => PDF
func downloadInvoiceTest(t *testing.T, r *gin.Engine, token, uid string) {
	req := httptest.NewRequest(http.MethodGet, "/order/"+uid+"/document/invoice", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("downloadInvoiceTest: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("downloadInvoiceTest: expected application/pdf, got %s", ct)
	}
	if !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatalf("downloadInvoiceTest: body is not a PDF")
	}
}

// deleteOrderTest -> DELETE /order/:uid (admin) lalu GET => 404
func deleteOrderTest(t *testing.T, r *gin.Engine, token, uid string) {
	req := httptest.NewRequest(http.MethodDelete, "/order/"+uid, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("deleteOrderTest: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/order/"+uid, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleteOrderTest: expected 404 after delete, got %d", w.Code)
	}
}
