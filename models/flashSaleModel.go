package models

import (
	"time"

	"gorm.io/gorm"
)

type FlashSale struct {
	gorm.Model
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartTime   time.Time       `json:"startTime"`
	EndTime     time.Time       `json:"endTime"`
	Active      bool            `json:"active"`
	Items       []FlashSaleItem `json:"items" gorm:"foreignKey:FlashSaleID;constraint:OnDelete:CASCADE"`
}

type FlashSaleItem struct {
	gorm.Model
	FlashSaleID int     `json:"flashSaleId"`
	ProductID   int     `json:"productId"`
	SalePrice   float64 `json:"salePrice"`
	Discount    float64 `json:"discount"`

	// Denormalized for admin listings, not persisted.
	ProductName string `json:"productName,omitempty" gorm:"-"`
}
