package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func couponRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/validate-coupon", ValidateCoupon)
	router.POST("/apply-coupon", ApplyCoupon)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func seedCoupon(t *testing.T, db *gorm.DB, mutate func(*models.Coupon)) models.Coupon {
	t.Helper()
	coupon := models.Coupon{
		Code:          "SAVE10",
		DiscountType:  models.DiscountTypeFixed,
		DiscountValue: 10,
		IsActive:      true,
		StartDate:     time.Now().Add(-time.Hour),
		EndDate:       time.Now().Add(time.Hour),
	}
	if mutate != nil {
		mutate(&coupon)
	}
	if err := db.Create(&coupon).Error; err != nil {
		t.Fatal(err)
	}
	return coupon
}

func TestValidateCouponRequiresCartItems(t *testing.T) {
	openTestDB(t)
	router := couponRouter()

	recorder := postJSON(t, router, "/validate-coupon", gin.H{
		"code":        "SAVE10",
		"userId":      1,
		"totalAmount": 100,
	})
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}

func TestValidateCouponReadsCartItems(t *testing.T) {
	db := openTestDB(t)
	router := couponRouter()
	seedCoupon(t, db, func(coupon *models.Coupon) {
		coupon.ApplicableProductIds = []int{42}
	})

	t.Run("restricted product in cart", func(t *testing.T) {
		recorder := postJSON(t, router, "/validate-coupon", gin.H{
			"code":        "SAVE10",
			"userId":      1,
			"cartItems":   []gin.H{{"productId": 42}, {"productId": 7}},
			"totalAmount": 100,
		})
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
		}
		if !strings.Contains(recorder.Body.String(), `"valid":true`) {
			t.Errorf("body %s missing valid flag", recorder.Body.String())
		}
	})

	t.Run("restricted product absent", func(t *testing.T) {
		recorder := postJSON(t, router, "/validate-coupon", gin.H{
			"code":        "SAVE10",
			"userId":      1,
			"cartItems":   []gin.H{{"productId": 7}},
			"totalAmount": 100,
		})
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
		}
		if !strings.Contains(recorder.Body.String(), "products in your cart") {
			t.Errorf("body %s missing cart restriction message", recorder.Body.String())
		}
	})
}

func TestApplyCouponDuplicateTriple(t *testing.T) {
	db := openTestDB(t)
	router := couponRouter()
	coupon := seedCoupon(t, db, nil)

	body := gin.H{"couponId": coupon.ID, "userId": 1, "orderId": 5}

	if recorder := postJSON(t, router, "/apply-coupon", body); recorder.Code != http.StatusOK {
		t.Fatalf("first apply status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	recorder := postJSON(t, router, "/apply-coupon", body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("second apply status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
	if !strings.Contains(recorder.Body.String(), "already been applied") {
		t.Errorf("body %s missing duplicate message", recorder.Body.String())
	}

	var reloaded models.Coupon
	if err := db.First(&reloaded, coupon.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.UsageCount != 1 {
		t.Errorf("usage count = %d, want 1", reloaded.UsageCount)
	}
	var usages int64
	db.Model(&models.CouponUsage{}).Count(&usages)
	if usages != 1 {
		t.Errorf("usage rows = %d, want 1", usages)
	}
}
