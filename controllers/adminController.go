package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAdmins handles GET /admin/admins
func GetAdmins(ctx *gin.Context) {
	var admins []models.Admin
	result := initializers.DB.Select("id", "first_name", "last_name", "email").
		Order("first_name asc").Find(&admins)
	if result.Error != nil {
		log.Println("Error fetching admins:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, admins)
}

// GetAdmin handles GET /admin/admins/:id
func GetAdmin(ctx *gin.Context) {
	adminId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid admin ID")
		return
	}

	var admin models.Admin
	result := initializers.DB.Select("id", "first_name", "last_name", "email").First(&admin, adminId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgAdminNotFound)
		} else {
			log.Println("Error fetching admin:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}
	ctx.JSON(http.StatusOK, admin)
}

// CreateAdmin handles POST /admin/admins
func CreateAdmin(ctx *gin.Context) {
	var body struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName"`
		Email     string `json:"email" binding:"required,email"`
		Phone     string `json:"phone" binding:"required"`
		Password  string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "First name, email, phone and password are required")
		return
	}

	var existingAdmin models.Admin
	if result := initializers.DB.Where("email = ?", body.Email).First(&existingAdmin); result.Error == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email is already in use")
		return
	}

	hashedPassword, err := hashPassword(body.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	admin := models.Admin{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		Password:  hashedPassword,
	}
	if result := initializers.DB.Create(&admin); result.Error != nil {
		log.Println("Error creating admin:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, admin)
}

// UpdateAdmin handles PUT /admin/admins/:id
func UpdateAdmin(ctx *gin.Context) {
	adminId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid admin ID")
		return
	}

	var body struct {
		FirstName string `json:"firstName" binding:"required"`
		LastName  string `json:"lastName"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "First name and email are required")
		return
	}

	var conflicting models.Admin
	result := initializers.DB.Where("email = ? AND id != ?", body.Email, adminId).First(&conflicting)
	if result.Error == nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email is already in use")
		return
	}

	updates := map[string]any{
		"first_name": body.FirstName,
		"last_name":  body.LastName,
		"email":      body.Email,
	}
	if body.Password != "" {
		hashedPassword, err := hashPassword(body.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		updates["password"] = hashedPassword
	}

	var admin models.Admin
	if result := initializers.DB.First(&admin, adminId); result.Error != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgAdminNotFound)
		return
	}

	if result := initializers.DB.Model(&admin).Updates(updates); result.Error != nil {
		log.Println("Error updating admin:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// DeleteAdmin handles DELETE /admin/admins/:id. At least one admin account
// must always remain.
func DeleteAdmin(ctx *gin.Context) {
	adminId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid admin ID")
		return
	}

	var admin models.Admin
	if result := initializers.DB.First(&admin, adminId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgAdminNotFound)
		} else {
			log.Println("Error fetching admin:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var adminCount int64
	initializers.DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount <= 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Cannot delete the last admin account")
		return
	}

	if result := initializers.DB.Delete(&admin); result.Error != nil {
		log.Println("Error deleting admin:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
