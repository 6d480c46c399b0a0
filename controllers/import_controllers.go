package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flipSOsigma/catering-app/models"
	"github.com/flipSOsigma/catering-app/services"
	"github.com/flipSOsigma/catering-app/utils"
)

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

// Kolom yang diharapkan per baris import, sesuai template spreadsheet tim:
// event_name, category, customer_name, customer_phone, customer_email,
// event_date, event_time, event_location, event_building, invitation
const importColumnCount = 10

// ImportOrders -> POST /order/xlsx. Menerima export spreadsheet (nilai
// dipisah koma) dan membuat order draft per baris. Baris yang rusak
// dilaporkan tapi tidak menggagalkan baris lain.
func (ic *ImportController) ImportOrders(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("file upload tidak ditemukan: %w", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("format file tidak terbaca: %w", err))
		return
	}

	username := usernameFromContext(c)
	created := 0
	var failures []string

	for i, row := range records {
		// Lewati baris header
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "event_name") {
			continue
		}
		if len(row) < importColumnCount {
			failures = append(failures, fmt.Sprintf("baris %d: kolom kurang (%d dari %d)", i+1, len(row), importColumnCount))
			continue
		}

		order, err := ic.orderFromRow(row)
		if err != nil {
			failures = append(failures, fmt.Sprintf("baris %d: %v", i+1, err))
			continue
		}

		order.UniqueID = uuid.NewString()
		order.CreatedAt = time.Now()
		order.UpdatedAt = time.Now()
		order.CreatedBy = username
		order.UpdatedBy = username

		if err := ic.DB.Create(&order).Error; err != nil {
			failures = append(failures, fmt.Sprintf("baris %d: %v", i+1, err))
			continue
		}
		created++
	}

	utils.InfoLogger.Printf("Bulk import: %d order dibuat, %d baris gagal", created, len(failures))

	utils.RespondJSON(c, http.StatusOK, "Import selesai", gin.H{
		"created":  created,
		"failures": failures,
	})
}

func (ic *ImportController) orderFromRow(row []string) (models.Order, error) {
	for i := range row {
		row[i] = strings.TrimSpace(row[i])
	}

	category := models.Category(row[1])
	if !category.Valid() {
		return models.Order{}, fmt.Errorf("kategori %q tidak dikenal", row[1])
	}

	// Mulai dari draft kategori supaya section default-nya lengkap
	order := services.NewDraftOrder(category)
	order.EventName = row[0]
	order.Customer = models.Customer{Name: row[2], Phone: row[3], Email: row[4]}
	order.Event.Name = row[0]
	order.Event.Date = row[5]
	order.Event.Time = row[6]
	order.Event.Location = row[7]
	order.Event.Building = row[8]

	if category == models.CategoryWedding {
		order.Invitation = utils.ParseAmount(row[9])
	}

	return services.Recalculate(order), nil
}
