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

const msgTestimonialNotFound = "Testimonial not found"

// GetTestimonials handles GET /admin/testimonials, a public read that feeds
// the storefront. Only active entries are returned.
func GetTestimonials(ctx *gin.Context) {
	var testimonials []models.Testimonial
	result := initializers.DB.Where("is_active = ?", true).
		Order("created_at desc").Find(&testimonials)
	if result.Error != nil {
		log.Println("Error fetching testimonials:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"testimonials": testimonials})
}

// CreateTestimonial handles POST /admin/testimonials
func CreateTestimonial(ctx *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Content  string `json:"content" binding:"required"`
		Rating   int    `json:"rating" binding:"required,min=1,max=5"`
		ImageUrl string `json:"imageUrl"`
		IsActive *bool  `json:"isActive"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name, content and a rating from 1 to 5 are required")
		return
	}

	testimonial := models.Testimonial{
		Name:     body.Name,
		Content:  body.Content,
		Rating:   body.Rating,
		ImageUrl: body.ImageUrl,
		IsActive: body.IsActive == nil || *body.IsActive,
	}
	if result := initializers.DB.Create(&testimonial); result.Error != nil {
		log.Println("Error creating testimonial:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":     "Testimonial created successfully",
		"testimonial": testimonial,
	})
}

// UpdateTestimonial handles PUT /admin/testimonials/:id
func UpdateTestimonial(ctx *gin.Context) {
	testimonialId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	var body struct {
		Name     string `json:"name" binding:"required"`
		Content  string `json:"content" binding:"required"`
		Rating   int    `json:"rating" binding:"required,min=1,max=5"`
		ImageUrl string `json:"imageUrl"`
		IsActive *bool  `json:"isActive"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name, content and a rating from 1 to 5 are required")
		return
	}

	var testimonial models.Testimonial
	if result := initializers.DB.First(&testimonial, testimonialId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgTestimonialNotFound)
		} else {
			log.Println("Error fetching testimonial:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	testimonial.Name = body.Name
	testimonial.Content = body.Content
	testimonial.Rating = body.Rating
	testimonial.ImageUrl = body.ImageUrl
	if body.IsActive != nil {
		testimonial.IsActive = *body.IsActive
	}
	if result := initializers.DB.Save(&testimonial); result.Error != nil {
		log.Println("Error updating testimonial:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":     "Testimonial updated successfully",
		"testimonial": testimonial,
	})
}

// DeleteTestimonial handles DELETE /admin/testimonials/:id
func DeleteTestimonial(ctx *gin.Context) {
	testimonialId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid testimonial ID")
		return
	}

	var testimonial models.Testimonial
	if result := initializers.DB.First(&testimonial, testimonialId); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgTestimonialNotFound)
		} else {
			log.Println("Error fetching testimonial:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if result := initializers.DB.Delete(&testimonial); result.Error != nil {
		log.Println("Error deleting testimonial:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Testimonial deleted successfully"})
}
