package models

import "gorm.io/gorm"

type CartItem struct {
	gorm.Model
	UserID    int `json:"userId"`
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type WishlistItem struct {
	gorm.Model
	UserID    int `json:"userId"`
	ProductID int `json:"productId"`
}
