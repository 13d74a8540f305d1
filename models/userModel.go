package models

import "gorm.io/gorm"

type Admin struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" gorm:"uniqueIndex;size:191"`
	Phone     string `json:"phone"`
	Password  string `json:"-"`
}

type User struct {
	gorm.Model
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" gorm:"uniqueIndex;size:191"`
	Phone     string `json:"phone"`
	Password  string `json:"-"`
}

type RegisterData struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
