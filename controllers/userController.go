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

// GetUsers handles GET /admin/users, a flat listing used for coupon
// targeting.
func GetUsers(ctx *gin.Context) {
	var users []models.User
	result := initializers.DB.Select("id", "first_name", "last_name", "email").
		Order("first_name asc").Find(&users)
	if result.Error != nil {
		log.Println("Error fetching users:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUsersWithContact handles GET /admin/get-users
func GetUsersWithContact(ctx *gin.Context) {
	var users []models.User
	result := initializers.DB.Select("id", "first_name", "last_name", "email", "phone").Find(&users)
	if result.Error != nil {
		log.Println("Error fetching users:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"users": users})
}

// DeleteUser handles DELETE /admin/delete-user/:userId
func DeleteUser(ctx *gin.Context) {
	userId, ok := parseIDParam(ctx, "userId")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var user models.User
	if result := initializers.DB.First(&user, userId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Error fetching user:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if result := initializers.DB.Delete(&user); result.Error != nil {
		log.Println("Error deleting user:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
