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

// GetOccasions handles GET /admin/get-occasion
func GetOccasions(ctx *gin.Context) {
	var occasions []models.Occasion
	if result := initializers.DB.Order("name asc").Find(&occasions); result.Error != nil {
		log.Println("Error fetching occasions:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"occasions": occasions})
}

// AddOccasion handles POST /admin/add-occasion
func AddOccasion(ctx *gin.Context) {
	var body struct {
		Occasions string `json:"occasions" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Occasion name is required")
		return
	}

	conflict, err := nameConflict(&models.Occasion{}, body.Occasions, 0)
	if err != nil {
		log.Println("Error checking occasion name:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest, "Occasion already exists")
		return
	}

	occasion := models.Occasion{Name: body.Occasions}
	if result := initializers.DB.Create(&occasion); result.Error != nil {
		log.Println("Error adding occasion:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Occasion added successfully",
		"occasion": occasion,
	})
}

// UpdateOccasion handles PUT /admin/update-occasion/:id
func UpdateOccasion(ctx *gin.Context) {
	occasionId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid occasion ID")
		return
	}

	var body struct {
		Occasions string `json:"occasions" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Occasion name is required")
		return
	}

	var occasion models.Occasion
	if result := initializers.DB.First(&occasion, occasionId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Occasion not found")
		} else {
			log.Println("Error fetching occasion:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	conflict, err := nameConflict(&models.Occasion{}, body.Occasions, occasionId)
	if err != nil {
		log.Println("Error checking occasion name:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest, "Occasion name already exists")
		return
	}

	occasion.Name = body.Occasions
	if result := initializers.DB.Save(&occasion); result.Error != nil {
		log.Println("Error updating occasion:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Occasion updated successfully",
		"occasion": occasion,
	})
}

// DeleteOccasion handles DELETE /admin/delete-occasion/:id
func DeleteOccasion(ctx *gin.Context) {
	occasionId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid occasion ID")
		return
	}

	var occasion models.Occasion
	if result := initializers.DB.First(&occasion, occasionId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Occasion not found")
		} else {
			log.Println("Error fetching occasion:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if result := initializers.DB.Delete(&occasion); result.Error != nil {
		log.Println("Error deleting occasion:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Occasion deleted successfully"})
}

// GetOccasionSummaries handles GET /admin/occasions
func GetOccasionSummaries(ctx *gin.Context) {
	var occasions []models.Occasion
	result := initializers.DB.Select("id", "name").Order("name asc").Find(&occasions)
	if result.Error != nil {
		log.Println("Error fetching occasion summaries:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	summaries := make([]gin.H, 0, len(occasions))
	for _, occasion := range occasions {
		summaries = append(summaries, gin.H{"id": occasion.ID, "name": occasion.Name})
	}
	ctx.JSON(http.StatusOK, summaries)
}
