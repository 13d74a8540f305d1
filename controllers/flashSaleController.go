package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgFlashSaleNotFound = "Flash sale not found"

type flashSaleItemInput struct {
	ProductId int     `json:"productId" binding:"required"`
	SalePrice float64 `json:"salePrice"`
	Discount  float64 `json:"discount"`
}

type flashSaleInput struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	StartTime   string               `json:"startTime" binding:"required"`
	EndTime     string               `json:"endTime" binding:"required"`
	Active      *bool                `json:"active"`
	Items       []flashSaleItemInput `json:"items" binding:"required"`
}

func (in *flashSaleInput) parseWindow() (time.Time, time.Time, string) {
	startTime, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid start time"
	}
	endTime, err := time.Parse(time.RFC3339, in.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid end time"
	}
	if endTime.Before(startTime) {
		return time.Time{}, time.Time{}, "End time must be after start time"
	}
	return startTime, endTime, ""
}

// fillProductNames attaches product names to items for admin listings.
func fillProductNames(items []models.FlashSaleItem) {
	for i := range items {
		var product models.Product
		if err := initializers.DB.Select("id", "name").First(&product, items[i].ProductID).Error; err == nil {
			items[i].ProductName = product.Name
		}
	}
}

// GetFlashSales handles GET /admin/flash-sales
func GetFlashSales(ctx *gin.Context) {
	var sales []models.FlashSale
	result := initializers.DB.Preload("Items").Order("created_at desc").Find(&sales)
	if result.Error != nil {
		log.Println("Error fetching flash sales:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	for i := range sales {
		fillProductNames(sales[i].Items)
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"flashSales": sales})
}

// GetFlashSale handles GET /admin/flash-sales/:id
func GetFlashSale(ctx *gin.Context) {
	saleId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid flash sale ID")
		return
	}

	var sale models.FlashSale
	if result := initializers.DB.Preload("Items").First(&sale, saleId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgFlashSaleNotFound)
		} else {
			log.Println("Error fetching flash sale:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	fillProductNames(sale.Items)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"flashSale": sale})
}

// CreateFlashSale handles POST /admin/flash-sales. The sale and its initial
// items are written in one transaction.
func CreateFlashSale(ctx *gin.Context) {
	var input flashSaleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Title, start time, end time and items are required")
		return
	}

	startTime, endTime, msg := input.parseWindow()
	if msg != "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msg)
		return
	}

	sale := models.FlashSale{
		Title:       input.Title,
		Description: input.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Active:      input.Active == nil || *input.Active,
	}
	for _, item := range input.Items {
		sale.Items = append(sale.Items, models.FlashSaleItem{
			ProductID: item.ProductId,
			SalePrice: item.SalePrice,
			Discount:  item.Discount,
		})
	}

	tx := initializers.DB.Begin()
	if tx.Error != nil {
		log.Println("Error starting transaction:", tx.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := tx.Create(&sale).Error; err != nil {
		tx.Rollback()
		log.Println("Error creating flash sale:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing flash sale:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":   "Flash sale created successfully",
		"flashSale": sale,
	})
}

// UpdateFlashSale handles PUT /admin/flash-sales/:id. Items are replaced
// wholesale: the old rows are deleted and the new set inserted inside one
// transaction.
func UpdateFlashSale(ctx *gin.Context) {
	saleId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid flash sale ID")
		return
	}

	var input flashSaleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Title, start time, end time and items are required")
		return
	}

	startTime, endTime, msg := input.parseWindow()
	if msg != "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msg)
		return
	}

	var sale models.FlashSale
	if result := initializers.DB.First(&sale, saleId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgFlashSaleNotFound)
		} else {
			log.Println("Error fetching flash sale:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	tx := initializers.DB.Begin()
	if tx.Error != nil {
		log.Println("Error starting transaction:", tx.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sale.Title = input.Title
	sale.Description = input.Description
	sale.StartTime = startTime
	sale.EndTime = endTime
	if input.Active != nil {
		sale.Active = *input.Active
	}
	if err := tx.Save(&sale).Error; err != nil {
		tx.Rollback()
		log.Println("Error updating flash sale:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := tx.Unscoped().Where("flash_sale_id = ?", sale.ID).
		Delete(&models.FlashSaleItem{}).Error; err != nil {
		tx.Rollback()
		log.Println("Error clearing flash sale items:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	items := make([]models.FlashSaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.FlashSaleItem{
			FlashSaleID: int(sale.ID),
			ProductID:   item.ProductId,
			SalePrice:   item.SalePrice,
			Discount:    item.Discount,
		})
	}
	if len(items) > 0 {
		if err := tx.Create(&items).Error; err != nil {
			tx.Rollback()
			log.Println("Error recreating flash sale items:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing flash sale update:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sale.Items = items
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   "Flash sale updated successfully",
		"flashSale": sale,
	})
}

// ToggleFlashSale handles PATCH /admin/flash-sales/:id/toggle
func ToggleFlashSale(ctx *gin.Context) {
	saleId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid flash sale ID")
		return
	}

	var sale models.FlashSale
	if result := initializers.DB.First(&sale, saleId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgFlashSaleNotFound)
		} else {
			log.Println("Error fetching flash sale:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if err := initializers.DB.Model(&sale).Update("active", !sale.Active).Error; err != nil {
		log.Println("Error toggling flash sale:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   "Flash sale toggled successfully",
		"flashSale": sale,
	})
}

// DeleteFlashSale handles DELETE /admin/flash-sales/:id
func DeleteFlashSale(ctx *gin.Context) {
	saleId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid flash sale ID")
		return
	}

	var sale models.FlashSale
	if result := initializers.DB.First(&sale, saleId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgFlashSaleNotFound)
		} else {
			log.Println("Error fetching flash sale:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	tx := initializers.DB.Begin()
	if tx.Error != nil {
		log.Println("Error starting transaction:", tx.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := tx.Unscoped().Where("flash_sale_id = ?", sale.ID).
		Delete(&models.FlashSaleItem{}).Error; err != nil {
		tx.Rollback()
		log.Println("Error deleting flash sale items:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := tx.Unscoped().Delete(&sale).Error; err != nil {
		tx.Rollback()
		log.Println("Error deleting flash sale:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing flash sale delete:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Flash sale deleted successfully"})
}
