package models

import (
	"testing"
	"time"
)

func TestValidCouponCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"SAVE20", true},
		{"2024", true},
		{"save20", false},
		{"SAVE 20", false},
		{"SAVE-20", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidCouponCode(tt.code); got != tt.want {
			t.Errorf("ValidCouponCode(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestValidateDiscount(t *testing.T) {
	tests := []struct {
		name         string
		discountType string
		value        float64
		wantProblem  bool
	}{
		{"percentage in range", DiscountTypePercentage, 50, false},
		{"percentage at upper bound", DiscountTypePercentage, 100, false},
		{"percentage zero", DiscountTypePercentage, 0, true},
		{"percentage over 100", DiscountTypePercentage, 101, true},
		{"fixed positive", DiscountTypeFixed, 250, false},
		{"fixed zero", DiscountTypeFixed, 0, true},
		{"fixed negative", DiscountTypeFixed, -5, true},
		{"unknown type", "BOGOF", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := ValidateDiscount(tt.discountType, tt.value)
			if (msg != "") != tt.wantProblem {
				t.Errorf("ValidateDiscount(%q, %v) = %q, wantProblem=%v",
					tt.discountType, tt.value, msg, tt.wantProblem)
			}
		})
	}
}

func activeCoupon() Coupon {
	return Coupon{
		DiscountType:  DiscountTypePercentage,
		DiscountValue: 10,
		IsActive:      true,
		StartDate:     time.Now().Add(-time.Hour),
		EndDate:       time.Now().Add(time.Hour),
	}
}

func TestEligibilityOrder(t *testing.T) {
	now := time.Now()
	limit := 1
	minPurchase := 500.0

	t.Run("inactive beats expired", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.IsActive = false
		coupon.EndDate = now.Add(-time.Minute)
		if msg := coupon.Eligibility(1, 0, nil, 100, now); msg != "Coupon is not active" {
			t.Errorf("got %q, want inactive message first", msg)
		}
	})

	t.Run("window beats usage limit", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.EndDate = now.Add(-time.Minute)
		coupon.UsageLimit = &limit
		coupon.UsageCount = 5
		if msg := coupon.Eligibility(1, 0, nil, 100, now); msg != "Coupon is expired or not yet valid" {
			t.Errorf("got %q, want window message before usage limit", msg)
		}
	})

	t.Run("usage limit beats per-user limit", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.UsageLimit = &limit
		coupon.UsageCount = 1
		coupon.PerUserLimit = &limit
		if msg := coupon.Eligibility(1, 3, nil, 100, now); msg != "Coupon usage limit exceeded" {
			t.Errorf("got %q, want usage limit before per-user limit", msg)
		}
	})

	t.Run("per-user limit beats min purchase", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.PerUserLimit = &limit
		coupon.MinPurchaseAmount = &minPurchase
		if msg := coupon.Eligibility(1, 1, nil, 100, now); msg != "You have already used this coupon the maximum number of times" {
			t.Errorf("got %q, want per-user limit before min purchase", msg)
		}
	})

	t.Run("min purchase beats user restriction", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.MinPurchaseAmount = &minPurchase
		coupon.ApplicableUserIds = []int{99}
		if msg := coupon.Eligibility(1, 0, nil, 100, now); msg != "Minimum purchase amount of 500 not met" {
			t.Errorf("got %q, want min purchase before user restriction", msg)
		}
	})

	t.Run("user restriction beats product restriction", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.ApplicableUserIds = []int{99}
		coupon.ApplicableProductIds = []int{42}
		if msg := coupon.Eligibility(1, 0, []int{7}, 100, now); msg != "Coupon is not applicable for your account" {
			t.Errorf("got %q, want user restriction before product restriction", msg)
		}
	})

	t.Run("product restriction last", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.ApplicableProductIds = []int{42}
		if msg := coupon.Eligibility(1, 0, []int{7}, 100, now); msg != "Coupon is not applicable for the products in your cart" {
			t.Errorf("got %q, want product restriction message", msg)
		}
	})

	t.Run("all rules pass", func(t *testing.T) {
		coupon := activeCoupon()
		coupon.ApplicableUserIds = []int{1}
		coupon.ApplicableProductIds = []int{42}
		if msg := coupon.Eligibility(1, 0, []int{42, 7}, 1000, now); msg != "" {
			t.Errorf("got %q, want eligible", msg)
		}
	})
}

func TestEligibilityDoesNotMutate(t *testing.T) {
	coupon := activeCoupon()
	coupon.UsageCount = 3
	before := coupon
	coupon.Eligibility(1, 0, []int{1}, 100, time.Now())
	if coupon.UsageCount != before.UsageCount || coupon.IsActive != before.IsActive {
		t.Error("Eligibility mutated the coupon")
	}
}

func TestDiscountAmount(t *testing.T) {
	cap50 := 50.0
	tests := []struct {
		name   string
		coupon Coupon
		total  float64
		want   float64
	}{
		{
			name:   "percentage",
			coupon: Coupon{DiscountType: DiscountTypePercentage, DiscountValue: 10},
			total:  200,
			want:   20,
		},
		{
			name:   "percentage capped",
			coupon: Coupon{DiscountType: DiscountTypePercentage, DiscountValue: 10, MaxDiscountAmount: &cap50},
			total:  1000,
			want:   50,
		},
		{
			name:   "fixed",
			coupon: Coupon{DiscountType: DiscountTypeFixed, DiscountValue: 75},
			total:  200,
			want:   75,
		},
		{
			name:   "fixed capped at total",
			coupon: Coupon{DiscountType: DiscountTypeFixed, DiscountValue: 500},
			total:  200,
			want:   200,
		},
		{
			name:   "rounded to cents half away from zero",
			coupon: Coupon{DiscountType: DiscountTypePercentage, DiscountValue: 15},
			total:  99.99,
			want:   15.0, // 14.9985 rounds to 15.00
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.DiscountAmount(tt.total); got != tt.want {
				t.Errorf("DiscountAmount(%v) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}
