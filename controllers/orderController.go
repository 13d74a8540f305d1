package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	msgOrderNotFound  = "Order not found"
	defaultOrderLimit = 20
)

// GetOrders handles GET /admin/orders with page/limit pagination, an
// optional status filter and a search term matched against the order id and
// the customer's name or email.
func GetOrders(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultOrderLimit)))
	if err != nil || limit < 1 {
		limit = defaultOrderLimit
	}

	query := initializers.DB.Model(&models.Order{}).
		Joins("JOIN users ON users.id = orders.user_id")

	if status := ctx.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order status")
			return
		}
		query = query.Where("orders.status = ?", status)
	}
	if search := ctx.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"CAST(orders.id AS CHAR) LIKE ? OR users.first_name LIKE ? OR users.last_name LIKE ? OR users.email LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Println("Error counting orders:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var orders []models.Order
	result := query.Preload("User").Preload("OrderItems").
		Order("orders.created_at desc").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders)
	if result.Error != nil {
		log.Println("Error fetching orders:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders":     orders,
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
	})
}

// GetOrder handles GET /admin/orders/:id
func GetOrder(ctx *gin.Context) {
	orderId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var order models.Order
	result := initializers.DB.Preload("User").Preload("OrderItems").
		Preload("ShippingAddress").First(&order, orderId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Error fetching order:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	// Attach product summaries without preloading full product rows.
	items := make([]gin.H, 0, len(order.OrderItems))
	for _, item := range order.OrderItems {
		var product models.Product
		summary := gin.H{
			"id":        item.ID,
			"productId": item.ProductID,
			"quantity":  item.Quantity,
			"price":     item.Price,
		}
		if err := initializers.DB.Select("id", "name").First(&product, item.ProductID).Error; err == nil {
			summary["productName"] = product.Name
		}
		items = append(items, summary)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"order": order,
		"items": items,
	})
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status. Cancelling a paid
// order refunds the amount to the customer's wallet; the wallet upsert, the
// credit transaction and the status write commit together or not at all.
func UpdateOrderStatus(ctx *gin.Context) {
	orderId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Status is required")
		return
	}
	if !models.ValidOrderStatus(body.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order status")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Error fetching order:", result.Error)
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

	if models.RefundsWallet(order.Status, body.Status) {
		var wallet models.Wallet
		err := tx.Where("user_id = ?", order.UserID).First(&wallet).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			wallet = models.Wallet{UserID: order.UserID, Balance: order.Amount}
			err = tx.Create(&wallet).Error
		case err == nil:
			err = tx.Model(&wallet).
				UpdateColumn("balance", gorm.Expr("balance + ?", order.Amount)).Error
		}
		if err != nil {
			tx.Rollback()
			log.Println("Error crediting wallet:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		transaction := models.Transaction{
			WalletID:    int(wallet.ID),
			Amount:      order.Amount,
			Type:        models.TransactionCredit,
			Description: fmt.Sprintf("Refund for cancelled order #%d", order.ID),
		}
		if err := tx.Create(&transaction).Error; err != nil {
			tx.Rollback()
			log.Println("Error recording refund transaction:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	if err := tx.Model(&order).Update("status", body.Status).Error; err != nil {
		tx.Rollback()
		log.Println("Error updating order status:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing order status update:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"order":   order,
	})
}

// UpdateDelivery handles PUT /admin/orders/:id/delivery
func UpdateDelivery(ctx *gin.Context) {
	orderId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var body struct {
		Delivery string `json:"delivery" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Delivery status is required")
		return
	}
	if !models.ValidDeliveryStatus(body.Delivery) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid delivery status")
		return
	}

	var order models.Order
	if result := initializers.DB.First(&order, orderId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		} else {
			log.Println("Error fetching order:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if err := initializers.DB.Model(&order).Update("delivery", body.Delivery).Error; err != nil {
		log.Println("Error updating delivery status:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Delivery status updated successfully",
		"order":   order,
	})
}
