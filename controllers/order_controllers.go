package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flipSOsigma/catering-app/feed"
	"github.com/flipSOsigma/catering-app/models"
	"github.com/flipSOsigma/catering-app/services"
	"github.com/flipSOsigma/catering-app/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetAllOrders -> daftar order untuk dashboard, bisa difilter kategori
// (?category=Wedding|Ricebox)
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Preload("Customer").Preload("Event").
		Preload("Sections").Preload("Sections.Portions")

	if category := c.Query("category"); category != "" {
		cat := models.Category(category)
		if !cat.Valid() {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("kategori %s tidak dikenal", category))
			return
		}
		query = query.Joins("JOIN events ON events.order_id = orders.id").
			Where("events.category = ?", cat)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByUID -> detail 1 order. Kontrak wire lama: respons berupa array
// JSON dengan record di elemen pertama, jangan diubah ke objek tunggal.
func (oc *OrderController) GetOrderByUID(c *gin.Context) {
	uid := c.Param("uid")

	var order models.Order
	if err := oc.preloadAll().Where("unique_id = ?", uid).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	c.JSON(http.StatusOK, []models.Order{order})
}

// NewDraft -> order kosong untuk form create (GET /order/draft/:category)
func (oc *OrderController) NewDraft(c *gin.Context) {
	cat := models.Category(c.Param("category"))
	if !cat.Valid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("kategori %s tidak dikenal", c.Param("category")))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Draft order", services.NewDraftOrder(cat))
}

// CreateOrder -> simpan order baru. Total dihitung ulang dan divalidasi di
// server; angka kiriman klien tidak dipercaya.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	prepared, result, err := oc.prepareOrder(order)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !result.IsValid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "message": result.Message})
		return
	}

	prepared.ID = 0
	prepared.UniqueID = uuid.NewString()
	prepared.CreatedAt = time.Now()
	prepared.UpdatedAt = time.Now()
	prepared.CreatedBy = usernameFromContext(c)
	prepared.UpdatedBy = prepared.CreatedBy

	if err := oc.DB.Create(&prepared).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order created: %s (%s) by %s", prepared.UniqueID, prepared.Event.Category, prepared.CreatedBy)
	feed.BroadcastOrderCreated(prepared)

	c.JSON(http.StatusCreated, gin.H{"ok": true, "unique_id": prepared.UniqueID})
}

// UpdateOrder -> PUT /order/:uid mengganti seluruh isi order. Penulis
// terakhir menang; tidak ada kontrol konkurensi optimis di sisi ini.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	uid := c.Param("uid")

	var existing models.Order
	if err := oc.preloadAll().Where("unique_id = ?", uid).First(&existing).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	prepared, result, err := oc.prepareOrder(order)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !result.IsValid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "message": result.Message})
		return
	}

	prepared.ID = existing.ID
	prepared.UniqueID = existing.UniqueID
	prepared.CreatedAt = existing.CreatedAt
	prepared.CreatedBy = existing.CreatedBy
	prepared.UpdatedAt = time.Now()
	prepared.UpdatedBy = usernameFromContext(c)
	prepared.Customer.OrderID = existing.ID
	prepared.Event.OrderID = existing.ID

	tx := oc.DB.Begin()

	// Ganti isi bersarang seutuhnya: hapus section/portion lama lalu tulis
	// ulang dari snapshot yang sudah dihitung.
	oldSectionIDs := make([]string, 0, len(existing.Sections))
	for _, s := range existing.Sections {
		oldSectionIDs = append(oldSectionIDs, s.ID)
	}
	if len(oldSectionIDs) > 0 {
		if err := tx.Where("section_id IN ?", oldSectionIDs).Delete(&models.Portion{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		if err := tx.Where("order_id = ?", existing.ID).Delete(&models.Section{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	if err := tx.Where("order_id = ?", existing.ID).Delete(&models.Customer{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Where("order_id = ?", existing.ID).Delete(&models.Event{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&prepared).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order updated: %s by %s", prepared.UniqueID, prepared.UpdatedBy)
	feed.BroadcastOrderUpdated(prepared)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeleteOrder -> hapus order beserta isi bersarangnya (khusus admin)
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	uid := c.Param("uid")

	var order models.Order
	if err := oc.preloadAll().Where("unique_id = ?", uid).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	tx := oc.DB.Begin()
	for _, s := range order.Sections {
		if err := tx.Where("section_id = ?", s.ID).Delete(&models.Portion{}).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	for _, m := range []interface{}{&models.Section{}, &models.Customer{}, &models.Event{}} {
		if err := tx.Where("order_id = ?", order.ID).Delete(m).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}
	if err := tx.Delete(&models.Order{}, order.ID).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	feed.BroadcastOrderDeleted(uid)

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetWhatsAppLink -> URL wa.me konfirmasi pesanan untuk tombol share
func (oc *OrderController) GetWhatsAppLink(c *gin.Context) {
	uid := c.Param("uid")

	var order models.Order
	if err := oc.preloadAll().Where("unique_id = ?", uid).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if order.Customer.Phone == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("customer belum punya nomor telepon"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "WhatsApp link", gin.H{
		"url":     services.WhatsAppLink(order, order.Customer.Phone),
		"message": services.GenerateWhatsAppMessage(order),
	})
}

// prepareOrder menormalkan payload klien: rekonstruksi delta tamu, isi id
// yang kosong, hitung ulang semua total, lalu validasi.
func (oc *OrderController) prepareOrder(order models.Order) (models.Order, services.ValidationResult, error) {
	if !order.Event.Category.Valid() {
		return order, services.ValidationResult{}, fmt.Errorf("kategori %s tidak dikenal", order.Event.Category)
	}

	prepared := services.ReconcileGuests(order)
	prepared = services.EnsureIdentifiers(prepared)
	prepared = services.Recalculate(prepared)

	return prepared, services.Validate(prepared), nil
}

func (oc *OrderController) preloadAll() *gorm.DB {
	return oc.DB.Preload("Customer").Preload("Event").
		Preload("Sections").Preload("Sections.Portions")
}

func usernameFromContext(c *gin.Context) string {
	if v, ok := c.Get("username"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
