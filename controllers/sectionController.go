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

// nameConflict reports whether another row of model already uses name,
// ignoring case. excludeID > 0 leaves that row out of the check so renaming
// a row to its own name succeeds.
func nameConflict(model any, name string, excludeID int) (bool, error) {
	query := initializers.DB.Model(model).Where("LOWER(name) = LOWER(?)", name)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSections handles GET /admin/get-sections
func GetSections(ctx *gin.Context) {
	var sections []models.Section
	if result := initializers.DB.Order("name asc").Find(&sections); result.Error != nil {
		log.Println("Error fetching sections:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": sections})
}

// AddSection handles POST /admin/add-section
func AddSection(ctx *gin.Context) {
	var body struct {
		Category string `json:"category" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category name is required")
		return
	}

	conflict, err := nameConflict(&models.Section{}, body.Category, 0)
	if err != nil {
		log.Println("Error checking section name:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category already exists")
		return
	}

	section := models.Section{Name: body.Category, SubCategories: []string{}}
	if result := initializers.DB.Create(&section); result.Error != nil {
		log.Println("Error adding section:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Category added successfully",
		"category": section,
	})
}

// UpdateSection handles PUT /admin/update-section/:id
func UpdateSection(ctx *gin.Context) {
	sectionId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var body struct {
		Category string `json:"category" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category name is required")
		return
	}

	var section models.Section
	if result := initializers.DB.First(&section, sectionId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching section:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	conflict, err := nameConflict(&models.Section{}, body.Category, sectionId)
	if err != nil {
		log.Println("Error checking section name:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category name already exists")
		return
	}

	section.Name = body.Category
	if result := initializers.DB.Save(&section); result.Error != nil {
		log.Println("Error updating section:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": section,
	})
}

// DeleteSection handles DELETE /admin/delete-section/:id. Products keep
// their section references; stale ids are ignored by consumers.
func DeleteSection(ctx *gin.Context) {
	sectionId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var section models.Section
	if result := initializers.DB.First(&section, sectionId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching section:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if result := initializers.DB.Delete(&section); result.Error != nil {
		log.Println("Error deleting section:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// AddSubsection handles POST /admin/add-subsection
func AddSubsection(ctx *gin.Context) {
	var body struct {
		CategoryId      int    `json:"categoryId" binding:"required"`
		SubcategoryName string `json:"subcategoryName" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var section models.Section
	if result := initializers.DB.First(&section, body.CategoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching section:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if models.HasName(section.SubCategories, body.SubcategoryName) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Subcategory already exists in this category")
		return
	}

	section.SubCategories = append(section.SubCategories, body.SubcategoryName)
	if result := initializers.DB.Save(&section); result.Error != nil {
		log.Println("Error adding subcategory:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Subcategory added successfully",
		"category": section,
	})
}

// UpdateSubsection handles PUT /admin/update-subsection
func UpdateSubsection(ctx *gin.Context) {
	var body struct {
		CategoryId         int    `json:"categoryId" binding:"required"`
		OldSubcategoryName string `json:"oldSubcategoryName" binding:"required"`
		NewSubcategoryName string `json:"newSubcategoryName" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var section models.Section
	if result := initializers.DB.First(&section, body.CategoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching section:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if !models.HasName(section.SubCategories, body.OldSubcategoryName) {
		sendErrorResponse(ctx, http.StatusNotFound, "Subcategory not found")
		return
	}
	if body.OldSubcategoryName != body.NewSubcategoryName &&
		models.HasName(section.SubCategories, body.NewSubcategoryName) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Subcategory name already exists in this category")
		return
	}

	section.SubCategories = models.RenameIn(section.SubCategories, body.OldSubcategoryName, body.NewSubcategoryName)
	if result := initializers.DB.Save(&section); result.Error != nil {
		log.Println("Error updating subcategory:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Subcategory updated successfully",
		"category": section,
	})
}

// DeleteSubsection handles DELETE /admin/delete-subsection
func DeleteSubsection(ctx *gin.Context) {
	var body struct {
		CategoryId      int    `json:"categoryId" binding:"required"`
		SubcategoryName string `json:"subcategoryName" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	var section models.Section
	if result := initializers.DB.First(&section, body.CategoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching section:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if !models.HasName(section.SubCategories, body.SubcategoryName) {
		sendErrorResponse(ctx, http.StatusNotFound, "Subcategory not found")
		return
	}

	section.SubCategories = models.RemoveFrom(section.SubCategories, body.SubcategoryName)
	if result := initializers.DB.Save(&section); result.Error != nil {
		log.Println("Error deleting subcategory:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Subcategory deleted successfully",
		"category": section,
	})
}
