package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func orderRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/admin/orders/:id/status", UpdateOrderStatus)
	return router
}

func putStatus(t *testing.T, router *gin.Engine, orderID uint, status string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut,
		"/admin/orders/"+strconv.Itoa(int(orderID))+"/status",
		bytes.NewReader([]byte(`{"status":"`+status+`"}`)))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func seedOrder(t *testing.T, db *gorm.DB, status string, amount float64) models.Order {
	t.Helper()
	user := models.User{FirstName: "Asha", Email: "asha@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	order := models.Order{UserID: int(user.ID), Amount: amount, Status: status}
	if err := db.Create(&order).Error; err != nil {
		t.Fatal(err)
	}
	return order
}

func TestCancelPaidOrderRefundsWalletOnce(t *testing.T) {
	db := openTestDB(t)
	router := orderRouter()
	order := seedOrder(t, db, models.OrderStatusPaid, 250)

	if recorder := putStatus(t, router, order.ID, models.OrderStatusCancelled); recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	var wallet models.Wallet
	if err := db.Where("user_id = ?", order.UserID).First(&wallet).Error; err != nil {
		t.Fatal("wallet not created:", err)
	}
	if wallet.Balance != 250 {
		t.Errorf("balance = %v, want 250", wallet.Balance)
	}
	var credits int64
	db.Model(&models.Transaction{}).
		Where("wallet_id = ? AND type = ?", wallet.ID, models.TransactionCredit).
		Count(&credits)
	if credits != 1 {
		t.Errorf("credit transactions = %d, want 1", credits)
	}

	// Cancelling again must not credit a second time.
	if recorder := putStatus(t, router, order.ID, models.OrderStatusCancelled); recorder.Code != http.StatusOK {
		t.Fatalf("repeat status = %d", recorder.Code)
	}
	db.First(&wallet, wallet.ID)
	if wallet.Balance != 250 {
		t.Errorf("balance after repeat = %v, want 250", wallet.Balance)
	}
	db.Model(&models.Transaction{}).
		Where("wallet_id = ? AND type = ?", wallet.ID, models.TransactionCredit).
		Count(&credits)
	if credits != 1 {
		t.Errorf("credit transactions after repeat = %d, want 1", credits)
	}
}

func TestCancelUnpaidOrderLeavesWalletUntouched(t *testing.T) {
	db := openTestDB(t)
	router := orderRouter()
	order := seedOrder(t, db, models.OrderStatusInitiated, 99)

	if recorder := putStatus(t, router, order.ID, models.OrderStatusCancelled); recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", recorder.Code, recorder.Body.String())
	}

	var wallets int64
	db.Model(&models.Wallet{}).Where("user_id = ?", order.UserID).Count(&wallets)
	if wallets != 0 {
		t.Errorf("wallet rows = %d, want 0", wallets)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.Status != models.OrderStatusCancelled {
		t.Errorf("status = %q, want %q", reloaded.Status, models.OrderStatusCancelled)
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)
	router := orderRouter()
	order := seedOrder(t, db, models.OrderStatusPaid, 10)

	recorder := putStatus(t, router, order.ID, "REFUNDED")
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}
}
