package models

import "gorm.io/gorm"

type Testimonial struct {
	gorm.Model
	Name     string `json:"name"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
	ImageUrl string `json:"imageUrl"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}
