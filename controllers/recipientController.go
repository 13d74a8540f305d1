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

// GetRecipients handles GET /admin/get-recipient
func GetRecipients(ctx *gin.Context) {
	var recipients []models.Recipient
	if result := initializers.DB.Order("name asc").Find(&recipients); result.Error != nil {
		log.Println("Error fetching recipients:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"recipients": recipients})
}

// AddRecipient handles POST /admin/add-recipient
func AddRecipient(ctx *gin.Context) {
	var body struct {
		Recipients string `json:"recipients" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Recipient name is required")
		return
	}

	conflict, err := nameConflict(&models.Recipient{}, body.Recipients, 0)
	if err != nil {
		log.Println("Error checking recipient name:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest, "Recipient already exists")
		return
	}

	recipient := models.Recipient{Name: body.Recipients}
	if result := initializers.DB.Create(&recipient); result.Error != nil {
		log.Println("Error adding recipient:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":   "Recipient added successfully",
		"recipient": recipient,
	})
}

// UpdateRecipient handles PUT /admin/update-recipient/:id
func UpdateRecipient(ctx *gin.Context) {
	recipientId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid recipient ID")
		return
	}

	var body struct {
		Recipients string `json:"recipients" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Recipient name is required")
		return
	}

	var recipient models.Recipient
	if result := initializers.DB.First(&recipient, recipientId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Recipient not found")
		} else {
			log.Println("Error fetching recipient:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	conflict, err := nameConflict(&models.Recipient{}, body.Recipients, recipientId)
	if err != nil {
		log.Println("Error checking recipient name:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest, "Recipient name already exists")
		return
	}

	recipient.Name = body.Recipients
	if result := initializers.DB.Save(&recipient); result.Error != nil {
		log.Println("Error updating recipient:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":   "Recipient updated successfully",
		"recipient": recipient,
	})
}

// DeleteRecipient handles DELETE /admin/delete-recipient/:id
func DeleteRecipient(ctx *gin.Context) {
	recipientId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid recipient ID")
		return
	}

	var recipient models.Recipient
	if result := initializers.DB.First(&recipient, recipientId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Recipient not found")
		} else {
			log.Println("Error fetching recipient:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if result := initializers.DB.Delete(&recipient); result.Error != nil {
		log.Println("Error deleting recipient:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Recipient deleted successfully"})
}

// GetRecipientSummaries handles GET /admin/recipients
func GetRecipientSummaries(ctx *gin.Context) {
	var recipients []models.Recipient
	result := initializers.DB.Select("id", "name").Order("name asc").Find(&recipients)
	if result.Error != nil {
		log.Println("Error fetching recipient summaries:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	summaries := make([]gin.H, 0, len(recipients))
	for _, recipient := range recipients {
		summaries = append(summaries, gin.H{"id": recipient.ID, "name": recipient.Name})
	}
	ctx.JSON(http.StatusOK, summaries)
}
