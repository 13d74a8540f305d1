package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func catalogNameConflict(kind, name string, excludeID int) (bool, error) {
	query := initializers.DB.Model(&models.CatalogEntry{}).
		Where("kind = ? AND LOWER(name) = LOWER(?)", kind, name)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetCatalog handles GET /admin/get-categories. Entries are stored one row
// per name but the response keeps the grouped shape the admin panel reads.
func GetCatalog(ctx *gin.Context) {
	var entries []models.CatalogEntry
	if result := initializers.DB.Order("kind asc, name asc").Find(&entries); result.Error != nil {
		log.Println("Error fetching catalog entries:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	grouped := gin.H{
		models.CatalogKindCategories: []string{},
		models.CatalogKindOccasions:  []string{},
		models.CatalogKindRecipients: []string{},
	}
	for _, entry := range entries {
		grouped[entry.Kind] = append(grouped[entry.Kind].([]string), entry.Name)
	}
	grouped["entries"] = entries

	sendJSONResponse(ctx, http.StatusOK, grouped)
}

// AddCatalogEntry handles POST /admin/add-catalog-entry
func AddCatalogEntry(ctx *gin.Context) {
	var body struct {
		Type string `json:"type" binding:"required"`
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Type and name are required")
		return
	}
	if !models.ValidCatalogKind(body.Type) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid type")
		return
	}

	conflict, err := catalogNameConflict(body.Type, body.Name, 0)
	if err != nil {
		log.Println("Error checking catalog entry:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("%s already exists in %s", body.Name, body.Type))
		return
	}

	entry := models.CatalogEntry{Kind: body.Type, Name: body.Name}
	if result := initializers.DB.Create(&entry); result.Error != nil {
		log.Println("Error adding catalog entry:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Entry added successfully",
		"entry":   entry,
	})
}

// UpdateCatalogEntry handles PUT /admin/update-catalog-entry/:id
func UpdateCatalogEntry(ctx *gin.Context) {
	entryId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	var body struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name is required")
		return
	}

	var entry models.CatalogEntry
	if result := initializers.DB.First(&entry, entryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Entry not found")
		} else {
			log.Println("Error fetching catalog entry:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	conflict, err := catalogNameConflict(entry.Kind, body.Name, entryId)
	if err != nil {
		log.Println("Error checking catalog entry:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("%s already exists in %s", body.Name, entry.Kind))
		return
	}

	entry.Name = body.Name
	if result := initializers.DB.Save(&entry); result.Error != nil {
		log.Println("Error updating catalog entry:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Entry updated successfully",
		"entry":   entry,
	})
}

// DeleteCatalogEntry handles DELETE /admin/delete-catalog-entry/:id
func DeleteCatalogEntry(ctx *gin.Context) {
	entryId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid entry ID")
		return
	}

	var entry models.CatalogEntry
	if result := initializers.DB.First(&entry, entryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Entry not found")
		} else {
			log.Println("Error fetching catalog entry:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if result := initializers.DB.Delete(&entry); result.Error != nil {
		log.Println("Error deleting catalog entry:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Entry deleted successfully"})
}
