package models

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	DiscountTypePercentage = "PERCENTAGE"
	DiscountTypeFixed      = "FIXED"
)

var couponCodePattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ValidCouponCode reports whether code is non-empty uppercase alphanumeric.
func ValidCouponCode(code string) bool {
	return couponCodePattern.MatchString(code)
}

type Coupon struct {
	gorm.Model
	Code                 string                      `json:"code" gorm:"uniqueIndex;size:64"`
	Description          string                      `json:"description"`
	DiscountType         string                      `json:"discountType" gorm:"size:20"`
	DiscountValue        float64                     `json:"discountValue"`
	MinPurchaseAmount    *float64                    `json:"minPurchaseAmount"`
	MaxDiscountAmount    *float64                    `json:"maxDiscountAmount"`
	StartDate            time.Time                   `json:"startDate"`
	EndDate              time.Time                   `json:"endDate"`
	IsActive             bool                        `json:"isActive"`
	UsageLimit           *int                        `json:"usageLimit"`
	PerUserLimit         *int                        `json:"perUserLimit"`
	UsageCount           int                         `json:"usageCount"`
	ApplicableUserIds    datatypes.JSONSlice[int]    `json:"applicableUserIds"`
	ApplicableProductIds datatypes.JSONSlice[int]    `json:"applicableProductIds"`
	ApplicableCategories datatypes.JSONSlice[string] `json:"applicableCategories"`
	ApplicableOccasions  datatypes.JSONSlice[string] `json:"applicableOccasions"`
	ApplicableRecipients datatypes.JSONSlice[string] `json:"applicableRecipients"`
}

// CouponUsage records one redemption. The unique triple guards against the
// same coupon being applied twice to one order.
type CouponUsage struct {
	gorm.Model
	CouponID int `json:"couponId" gorm:"uniqueIndex:idx_coupon_usage_triple"`
	UserID   int `json:"userId" gorm:"uniqueIndex:idx_coupon_usage_triple"`
	OrderID  int `json:"orderId" gorm:"uniqueIndex:idx_coupon_usage_triple"`
}

// ValidateDiscount returns a problem description for the type/value pair, or
// an empty string when the pair is acceptable.
func ValidateDiscount(discountType string, value float64) string {
	switch discountType {
	case DiscountTypePercentage:
		if value <= 0 || value > 100 {
			return "Percentage discount must be between 0 and 100"
		}
	case DiscountTypeFixed:
		if value <= 0 {
			return "Fixed discount must be greater than 0"
		}
	default:
		return "Discount type must be PERCENTAGE or FIXED"
	}
	return ""
}

// Eligibility evaluates the redemption rules in their fixed order and returns
// the first failure as a message, or an empty string when the coupon applies.
// It never mutates state; priorUses is the caller's count of this user's
// existing usage rows for the coupon.
func (c *Coupon) Eligibility(userID int, priorUses int64, cartProductIDs []int, totalAmount float64, now time.Time) string {
	if !c.IsActive {
		return "Coupon is not active"
	}
	if now.Before(c.StartDate) || now.After(c.EndDate) {
		return "Coupon is expired or not yet valid"
	}
	if c.UsageLimit != nil && c.UsageCount >= *c.UsageLimit {
		return "Coupon usage limit exceeded"
	}
	if c.PerUserLimit != nil && priorUses >= int64(*c.PerUserLimit) {
		return "You have already used this coupon the maximum number of times"
	}
	if c.MinPurchaseAmount != nil && totalAmount < *c.MinPurchaseAmount {
		return fmt.Sprintf("Minimum purchase amount of %g not met", *c.MinPurchaseAmount)
	}
	if len(c.ApplicableUserIds) > 0 && !containsInt(c.ApplicableUserIds, userID) {
		return "Coupon is not applicable for your account"
	}
	if len(c.ApplicableProductIds) > 0 {
		applies := false
		for _, id := range cartProductIDs {
			if containsInt(c.ApplicableProductIds, id) {
				applies = true
				break
			}
		}
		if !applies {
			return "Coupon is not applicable for the products in your cart"
		}
	}
	return ""
}

// DiscountAmount computes the discount for totalAmount: percentage capped at
// MaxDiscountAmount when set, fixed capped at the total. The result is
// rounded to cents, half away from zero.
func (c *Coupon) DiscountAmount(totalAmount float64) float64 {
	var discount float64
	if c.DiscountType == DiscountTypePercentage {
		discount = totalAmount * c.DiscountValue / 100
		if c.MaxDiscountAmount != nil && discount > *c.MaxDiscountAmount {
			discount = *c.MaxDiscountAmount
		}
	} else {
		discount = c.DiscountValue
		if discount > totalAmount {
			discount = totalAmount
		}
	}
	return math.Round(discount*100) / 100
}

func containsInt(list []int, want int) bool {
	for _, id := range list {
		if id == want {
			return true
		}
	}
	return false
}
