package controllers

import (
	"errors"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCategoryRows handles GET /admin/get-category
func GetCategoryRows(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Order("name asc").Find(&categories); result.Error != nil {
		log.Println("Error fetching categories:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"categories": categories})
}

// AddCategory handles POST /admin/add-category
func AddCategory(ctx *gin.Context) {
	var body struct {
		Categories    string   `json:"categories" binding:"required"`
		SubCategories []string `json:"subCategories"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category name is required")
		return
	}

	conflict, err := nameConflict(&models.Category{}, body.Categories, 0)
	if err != nil {
		log.Println("Error checking category name:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category already exists")
		return
	}

	if body.SubCategories == nil {
		body.SubCategories = []string{}
	}
	category := models.Category{Name: body.Categories, SubCategories: body.SubCategories}
	if result := initializers.DB.Create(&category); result.Error != nil {
		log.Println("Error adding category:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Category added successfully",
		"category": category,
	})
}

// UpdateCategory handles PUT /admin/update-category/:id
func UpdateCategory(ctx *gin.Context) {
	categoryId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var body struct {
		Categories    string   `json:"categories" binding:"required"`
		SubCategories []string `json:"subCategories"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category name is required")
		return
	}

	var category models.Category
	if result := initializers.DB.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching category:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	conflict, err := nameConflict(&models.Category{}, body.Categories, categoryId)
	if err != nil {
		log.Println("Error checking category name:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if conflict {
		sendErrorResponse(ctx, http.StatusBadRequest, "Category name already exists")
		return
	}

	category.Name = body.Categories
	if body.SubCategories != nil {
		category.SubCategories = body.SubCategories
	}
	if result := initializers.DB.Save(&category); result.Error != nil {
		log.Println("Error updating category:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Category updated successfully",
		"category": category,
	})
}

// DeleteCategory handles DELETE /admin/delete-category/:id
func DeleteCategory(ctx *gin.Context) {
	categoryId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var category models.Category
	if result := initializers.DB.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching category:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if result := initializers.DB.Delete(&category); result.Error != nil {
		log.Println("Error deleting category:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// AddSubcategory handles POST /admin/add-subcategory/:categoryId
func AddSubcategory(ctx *gin.Context) {
	categoryId, ok := parseIDParam(ctx, "categoryId")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var body struct {
		Subcategory string `json:"subcategory" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Subcategory name is required")
		return
	}

	var category models.Category
	if result := initializers.DB.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching category:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if models.HasNameFold(category.SubCategories, body.Subcategory) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Subcategory already exists")
		return
	}

	category.SubCategories = append(category.SubCategories, body.Subcategory)
	if result := initializers.DB.Save(&category); result.Error != nil {
		log.Println("Error adding subcategory:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Subcategory added successfully",
		"category": category,
	})
}

// DeleteCategorySubcategory handles DELETE /admin/delete-subcategory/:categoryId
func DeleteCategorySubcategory(ctx *gin.Context) {
	categoryId, ok := parseIDParam(ctx, "categoryId")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var body struct {
		Subcategory string `json:"subcategory" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Subcategory name is required")
		return
	}

	var category models.Category
	if result := initializers.DB.First(&category, categoryId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Error fetching category:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if !models.HasName(category.SubCategories, body.Subcategory) {
		sendErrorResponse(ctx, http.StatusNotFound, "Subcategory not found")
		return
	}

	category.SubCategories = models.RemoveFrom(category.SubCategories, body.Subcategory)
	if result := initializers.DB.Save(&category); result.Error != nil {
		log.Println("Error deleting subcategory:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":  "Subcategory deleted successfully",
		"category": category,
	})
}

// GetCategorySummaries handles GET /admin/categories, the id+name listing
// used by coupon targeting.
func GetCategorySummaries(ctx *gin.Context) {
	var categories []models.Category
	result := initializers.DB.Select("id", "name").Order("name asc").Find(&categories)
	if result.Error != nil {
		log.Println("Error fetching category summaries:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	summaries := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		summaries = append(summaries, gin.H{"id": category.ID, "name": category.Name})
	}
	ctx.JSON(http.StatusOK, summaries)
}

// GetSubcategorySummaries handles GET /admin/subcategories. Subcategories
// live inside their parent rows, so the listing is the sorted union of every
// category's array.
func GetSubcategorySummaries(ctx *gin.Context) {
	var categories []models.Category
	if result := initializers.DB.Select("id", "name", "sub_categories").Find(&categories); result.Error != nil {
		log.Println("Error fetching subcategories:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, category := range categories {
		for _, sub := range category.SubCategories {
			key := strings.ToLower(sub)
			if !seen[key] {
				seen[key] = true
				names = append(names, sub)
			}
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	summaries := make([]gin.H, 0, len(names))
	for _, name := range names {
		summaries = append(summaries, gin.H{"name": name})
	}
	ctx.JSON(http.StatusOK, summaries)
}
