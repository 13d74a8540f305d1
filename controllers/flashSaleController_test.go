package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func flashSaleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/admin/flash-sales/:id", UpdateFlashSale)
	return router
}

func seedFlashSale(t *testing.T, db *gorm.DB) models.FlashSale {
	t.Helper()
	sale := models.FlashSale{
		Title:     "Diwali",
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   time.Now().Add(time.Hour),
		Active:    true,
		Items: []models.FlashSaleItem{
			{ProductID: 1, SalePrice: 100, Discount: 20},
			{ProductID: 2, SalePrice: 50, Discount: 10},
		},
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatal(err)
	}
	return sale
}

func putFlashSale(t *testing.T, router *gin.Engine, saleID uint, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut,
		"/admin/flash-sales/"+strconv.Itoa(int(saleID)), bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestUpdateFlashSaleReplacesItemsAtomically(t *testing.T) {
	db := openTestDB(t)
	router := flashSaleRouter()
	sale := seedFlashSale(t, db)

	// Fault hook: while armed, every flash_sale_items insert fails.
	failItemInserts := false
	err := db.Callback().Create().Before("gorm:create").
		Register("flash_sale_item_fault", func(tx *gorm.DB) {
			if failItemInserts && tx.Statement.Table == "flash_sale_items" {
				tx.AddError(errors.New("forced item insert failure"))
			}
		})
	if err != nil {
		t.Fatal(err)
	}

	body := gin.H{
		"title":     "Diwali v2",
		"startTime": time.Now().Add(-time.Hour).Format(time.RFC3339),
		"endTime":   time.Now().Add(2 * time.Hour).Format(time.RFC3339),
		"items":     []gin.H{{"productId": 9, "salePrice": 75, "discount": 25}},
	}

	failItemInserts = true
	if recorder := putFlashSale(t, router, sale.ID, body); recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status under fault = %d, want %d", recorder.Code, http.StatusInternalServerError)
	}

	// The delete-then-recreate must have rolled back as a unit.
	var items []models.FlashSaleItem
	if err := db.Where("flash_sale_id = ?", sale.ID).Order("product_id asc").Find(&items).Error; err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].ProductID != 1 || items[1].ProductID != 2 {
		t.Fatalf("items after failed update = %+v, want the original pair", items)
	}
	var reloaded models.FlashSale
	if err := db.First(&reloaded, sale.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.Title != "Diwali" {
		t.Errorf("title after failed update = %q, want unchanged", reloaded.Title)
	}

	failItemInserts = false
	if recorder := putFlashSale(t, router, sale.ID, body); recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}
	if err := db.Where("flash_sale_id = ?", sale.ID).Find(&items).Error; err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ProductID != 9 {
		t.Fatalf("items after update = %+v, want the single replacement", items)
	}
}
