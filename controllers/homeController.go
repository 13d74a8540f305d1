package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/RISHIK92/gift-mama-admin-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetHome handles GET /admin/home
func GetHome(ctx *gin.Context) {
	var home models.HomeImages
	result := initializers.DB.Preload("CustomSections").First(&home)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Home content not found")
		} else {
			log.Println("Error fetching home content:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	var occasion models.HomeOccasion
	if err := initializers.DB.First(&occasion).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Error fetching home occasions:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if home.CustomSections == nil {
		home.CustomSections = []models.CustomSection{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"heroBanner": gin.H{
			"images":    emptyIfNilStrings(home.HeroImages),
			"titles":    emptyIfNilStrings(home.HeroTitles),
			"subtitles": emptyIfNilStrings(home.HeroSubtitles),
		},
		"flashSale": gin.H{
			"description": home.FlashSaleDescription,
			"enabled":     home.FlashSaleEnabled,
		},
		"advert": gin.H{
			"images": emptyIfNilStrings(home.AdvertImages),
		},
		"customSections": home.CustomSections,
		"occasions": gin.H{
			// Empty arrays, not null, when the singleton has not been saved.
			"occasionName":   emptyIfNilStrings(occasion.OccasionName),
			"occasionImages": emptyIfNilStrings(occasion.OccasionImages),
		},
	})
}

type customSectionInput struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Enabled  bool   `json:"enabled"`
}

// SaveHome handles POST /admin/home. The singleton is upserted, custom
// sections are replaced wholesale and the occasion banner singleton is
// upserted alongside, all in one transaction.
func SaveHome(ctx *gin.Context) {
	var body struct {
		HeroImages           []string             `json:"heroImages"`
		HeroTitles           []string             `json:"heroTitles"`
		HeroSubtitles        []string             `json:"heroSubtitles"`
		FlashSaleDescription string               `json:"flashSaleDescription"`
		FlashSaleEnabled     bool                 `json:"flashSaleEnabled"`
		AdvertImages         []string             `json:"advertImages"`
		CustomSections       []customSectionInput `json:"customSections"`
		OccasionName         []string             `json:"occasionName"`
		OccasionImages       []string             `json:"occasionImages"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	tx := initializers.DB.Begin()
	if tx.Error != nil {
		log.Println("Error starting transaction:", tx.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var home models.HomeImages
	err := tx.First(&home).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		log.Println("Error fetching home content:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	home.HeroImages = emptyIfNilStrings(body.HeroImages)
	home.HeroTitles = emptyIfNilStrings(body.HeroTitles)
	home.HeroSubtitles = emptyIfNilStrings(body.HeroSubtitles)
	home.FlashSaleDescription = body.FlashSaleDescription
	home.FlashSaleEnabled = body.FlashSaleEnabled
	home.AdvertImages = emptyIfNilStrings(body.AdvertImages)
	if err := tx.Omit("CustomSections").Save(&home).Error; err != nil {
		tx.Rollback()
		log.Println("Error saving home content:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := tx.Unscoped().Where("home_images_id = ?", home.ID).
		Delete(&models.CustomSection{}).Error; err != nil {
		tx.Rollback()
		log.Println("Error clearing custom sections:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if len(body.CustomSections) > 0 {
		sections := make([]models.CustomSection, 0, len(body.CustomSections))
		for _, section := range body.CustomSections {
			sections = append(sections, models.CustomSection{
				HomeImagesID: int(home.ID),
				Category:     section.Category,
				Title:        section.Title,
				Enabled:      section.Enabled,
			})
		}
		if err := tx.Create(&sections).Error; err != nil {
			tx.Rollback()
			log.Println("Error saving custom sections:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
		home.CustomSections = sections
	}

	var occasion models.HomeOccasion
	err = tx.First(&occasion).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		log.Println("Error fetching home occasions:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	occasion.OccasionName = emptyIfNilStrings(body.OccasionName)
	occasion.OccasionImages = emptyIfNilStrings(body.OccasionImages)
	if err := tx.Save(&occasion).Error; err != nil {
		tx.Rollback()
		log.Println("Error saving home occasions:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing home content:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Home content saved successfully",
		"home":    home,
	})
}

// UploadS3Image handles POST /admin/upload-s3-image, the generic single-file
// upload used by the homepage editor.
func UploadS3Image(ctx *gin.Context) {
	header, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Image file is required")
		return
	}
	if !utils.IsAllowedImageType(header.Header.Get("Content-Type")) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Images must be JPEG, PNG or WebP")
		return
	}

	storage, err := utils.NewStorage(ctx.Request.Context())
	if err != nil {
		log.Println("Error initializing storage:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	url, err := uploadFormFile(ctx.Request.Context(), storage, header, "home")
	if err != nil {
		log.Println("Error uploading image:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     url,
	})
}
