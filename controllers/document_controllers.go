package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/flipSOsigma/catering-app/documents"
	"github.com/flipSOsigma/catering-app/models"
	"github.com/flipSOsigma/catering-app/utils"
)

type DocumentController struct {
	DB *gorm.DB
}

func NewDocumentController(db *gorm.DB) *DocumentController {
	return &DocumentController{DB: db}
}

// GenerateDocument -> GET /order/:uid/document/:variant, unduh PDF.
// Varian: invoice, surat-jalan, surat-dapur.
func (dc *DocumentController) GenerateDocument(c *gin.Context) {
	uid := c.Param("uid")
	variant := documents.Variant(c.Param("variant"))

	var order models.Order
	if err := dc.DB.Preload("Customer").Preload("Event").
		Preload("Sections").Preload("Sections.Portions").
		Where("unique_id = ?", uid).First(&order).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	doc, err := documents.Assemble(order, variant)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	pdfBytes, err := documents.Render(doc)
	if err != nil {
		// Jangan kirim artefak setengah jadi; cukup satu error generik.
		utils.ErrorLogger.Printf("Document render failed for %s: %v", uid, err)
		utils.RespondError(c, http.StatusInternalServerError, fmt.Errorf("failed to generate document"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", documents.FileName(order, variant)))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
