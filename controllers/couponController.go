package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgCouponNotFound = "Coupon not found"

type couponInput struct {
	Code                 string   `json:"code" binding:"required"`
	Description          string   `json:"description"`
	DiscountType         string   `json:"discountType" binding:"required"`
	DiscountValue        float64  `json:"discountValue" binding:"required"`
	MinPurchaseAmount    *float64 `json:"minPurchaseAmount"`
	MaxDiscountAmount    *float64 `json:"maxDiscountAmount"`
	StartDate            string   `json:"startDate" binding:"required"`
	EndDate              string   `json:"endDate" binding:"required"`
	IsActive             *bool    `json:"isActive"`
	UsageLimit           *int     `json:"usageLimit"`
	PerUserLimit         *int     `json:"perUserLimit"`
	ApplicableUserIds    []int    `json:"applicableUserIds"`
	ApplicableProductIds []int    `json:"applicableProductIds"`
	ApplicableCategories []string `json:"applicableCategories"`
	ApplicableOccasions  []string `json:"applicableOccasions"`
	ApplicableRecipients []string `json:"applicableRecipients"`
}

// validate checks the input and returns the parsed dates, or a message
// describing the first problem.
func (in *couponInput) validate() (time.Time, time.Time, string) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if !models.ValidCouponCode(in.Code) {
		return time.Time{}, time.Time{}, "Coupon code must contain only uppercase letters and numbers"
	}
	if msg := models.ValidateDiscount(in.DiscountType, in.DiscountValue); msg != "" {
		return time.Time{}, time.Time{}, msg
	}
	startDate, err := time.Parse(time.RFC3339, in.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid start date"
	}
	endDate, err := time.Parse(time.RFC3339, in.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, "Invalid end date"
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, "End date must be after start date"
	}
	return startDate, endDate, ""
}

func (in *couponInput) apply(coupon *models.Coupon, startDate, endDate time.Time) {
	coupon.Code = in.Code
	coupon.Description = in.Description
	coupon.DiscountType = in.DiscountType
	coupon.DiscountValue = in.DiscountValue
	coupon.MinPurchaseAmount = in.MinPurchaseAmount
	coupon.MaxDiscountAmount = in.MaxDiscountAmount
	coupon.StartDate = startDate
	coupon.EndDate = endDate
	coupon.IsActive = in.IsActive == nil || *in.IsActive
	coupon.UsageLimit = in.UsageLimit
	coupon.PerUserLimit = in.PerUserLimit
	coupon.ApplicableUserIds = emptyIfNilInts(in.ApplicableUserIds)
	coupon.ApplicableProductIds = emptyIfNilInts(in.ApplicableProductIds)
	coupon.ApplicableCategories = emptyIfNilStrings(in.ApplicableCategories)
	coupon.ApplicableOccasions = emptyIfNilStrings(in.ApplicableOccasions)
	coupon.ApplicableRecipients = emptyIfNilStrings(in.ApplicableRecipients)
}

func emptyIfNilInts(list []int) []int {
	if list == nil {
		return []int{}
	}
	return list
}

func emptyIfNilStrings(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// GetCoupons handles GET /admin/coupons
func GetCoupons(ctx *gin.Context) {
	var coupons []models.Coupon
	if result := initializers.DB.Order("created_at desc").Find(&coupons); result.Error != nil {
		log.Println("Error fetching coupons:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, coupons)
}

// CreateCoupon handles POST /admin/coupons
func CreateCoupon(ctx *gin.Context) {
	var input couponInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest,
			"Code, discount type, discount value, start date and end date are required")
		return
	}

	startDate, endDate, msg := input.validate()
	if msg != "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msg)
		return
	}

	var existing models.Coupon
	if result := initializers.DB.Where("code = ?", input.Code).First(&existing); result.Error == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Coupon code already exists")
		return
	}

	var coupon models.Coupon
	input.apply(&coupon, startDate, endDate)
	if result := initializers.DB.Create(&coupon); result.Error != nil {
		log.Println("Error creating coupon:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, coupon)
}

// UpdateCoupon handles PUT /admin/coupons/:id
func UpdateCoupon(ctx *gin.Context) {
	couponId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	var input couponInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest,
			"Code, discount type, discount value, start date and end date are required")
		return
	}

	startDate, endDate, msg := input.validate()
	if msg != "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msg)
		return
	}

	var coupon models.Coupon
	if result := initializers.DB.First(&coupon, couponId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCouponNotFound)
		} else {
			log.Println("Error fetching coupon:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var conflicting models.Coupon
	result := initializers.DB.Where("code = ? AND id != ?", input.Code, couponId).First(&conflicting)
	if result.Error == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Coupon code already exists")
		return
	}

	input.apply(&coupon, startDate, endDate)
	if result := initializers.DB.Save(&coupon); result.Error != nil {
		log.Println("Error updating coupon:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, coupon)
}

// DeleteCoupon handles DELETE /admin/coupons/:id
func DeleteCoupon(ctx *gin.Context) {
	couponId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid coupon ID")
		return
	}

	var coupon models.Coupon
	if result := initializers.DB.First(&coupon, couponId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCouponNotFound)
		} else {
			log.Println("Error fetching coupon:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if result := initializers.DB.Delete(&coupon); result.Error != nil {
		log.Println("Error deleting coupon:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}

type cartItemRef struct {
	ProductId int `json:"productId" binding:"required"`
}

func cartProductIDs(items []cartItemRef) []int {
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductId)
	}
	return ids
}

// ValidateCoupon handles POST /validate-coupon. The checkout sends its cart
// lines; the checks run in a fixed order and nothing is mutated. Applying
// the coupon is a separate call.
func ValidateCoupon(ctx *gin.Context) {
	var body struct {
		Code        string        `json:"code" binding:"required"`
		UserId      int           `json:"userId" binding:"required"`
		CartItems   []cartItemRef `json:"cartItems" binding:"required"`
		TotalAmount float64       `json:"totalAmount" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Code, user, cart items and total amount are required")
		return
	}

	var coupon models.Coupon
	result := initializers.DB.Where("code = ?", strings.ToUpper(strings.TrimSpace(body.Code))).First(&coupon)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCouponNotFound)
		} else {
			log.Println("Error fetching coupon:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var priorUses int64
	if coupon.PerUserLimit != nil {
		result := initializers.DB.Model(&models.CouponUsage{}).
			Where("coupon_id = ? AND user_id = ?", coupon.ID, body.UserId).Count(&priorUses)
		if result.Error != nil {
			log.Println("Error counting coupon usage:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	if msg := coupon.Eligibility(body.UserId, priorUses, cartProductIDs(body.CartItems), body.TotalAmount, time.Now()); msg != "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msg)
		return
	}

	discountAmount := coupon.DiscountAmount(body.TotalAmount)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"valid":          true,
		"coupon":         coupon,
		"discountAmount": discountAmount,
		"finalAmount":    body.TotalAmount - discountAmount,
	})
}

// ApplyCoupon handles POST /apply-coupon. The usage row and the counter
// increment commit together or not at all.
func ApplyCoupon(ctx *gin.Context) {
	var body struct {
		CouponId int `json:"couponId" binding:"required"`
		UserId   int `json:"userId" binding:"required"`
		OrderId  int `json:"orderId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Coupon, user and order are required")
		return
	}

	var coupon models.Coupon
	if result := initializers.DB.First(&coupon, body.CouponId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgCouponNotFound)
		} else {
			log.Println("Error fetching coupon:", result.Error)
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

	usage := models.CouponUsage{
		CouponID: body.CouponId,
		UserID:   body.UserId,
		OrderID:  body.OrderId,
	}
	if err := tx.Create(&usage).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusBadRequest, "This coupon has already been applied to this order")
		} else {
			log.Println("Error recording coupon usage:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if err := tx.Model(&models.Coupon{}).Where("id = ?", body.CouponId).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error; err != nil {
		tx.Rollback()
		log.Println("Error incrementing coupon usage count:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing coupon usage:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Coupon applied successfully",
		"usage":   usage,
	})
}
