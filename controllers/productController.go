package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/RISHIK92/gift-mama-admin-backend/initializers"
	"github.com/RISHIK92/gift-mama-admin-backend/models"
	"github.com/RISHIK92/gift-mama-admin-backend/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	msgProductNotFound = "Product not found"
	maxExtraImages     = 5
)

type areaInput struct {
	Id               int      `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Shape            string   `json:"shape"`
	CenterX          float64  `json:"centerX"`
	CenterY          float64  `json:"centerY"`
	Width            *float64 `json:"width"`
	Height           *float64 `json:"height"`
	Radius           *float64 `json:"radius"`
	DefaultScale     float64  `json:"defaultScale"`
	DefaultRotation  float64  `json:"defaultRotation"`
	DefaultPositionX float64  `json:"defaultPositionX"`
	DefaultPositionY float64  `json:"defaultPositionY"`
	MaxFileSizeMB    float64  `json:"maxFileSizeMB"`
	OrderIndex       int      `json:"orderIndex"`
	AllowedFormats   []string `json:"allowedFormats"`
}

type templateInput struct {
	Id                int         `json:"id"`
	Name              string      `json:"name"`
	IsActive          *bool       `json:"isActive"`
	OrderIndex        int         `json:"orderIndex"`
	CustomizableAreas []areaInput `json:"customizableAreas"`
}

func (in areaInput) toModel(templateID int) models.CustomizableArea {
	formats := in.AllowedFormats
	if formats == nil {
		formats = []string{}
	}
	return models.CustomizableArea{
		TemplateID:       templateID,
		Name:             in.Name,
		Description:      in.Description,
		Shape:            in.Shape,
		CenterX:          in.CenterX,
		CenterY:          in.CenterY,
		Width:            in.Width,
		Height:           in.Height,
		Radius:           in.Radius,
		DefaultScale:     in.DefaultScale,
		DefaultRotation:  in.DefaultRotation,
		DefaultPositionX: in.DefaultPositionX,
		DefaultPositionY: in.DefaultPositionY,
		MaxFileSizeMB:    in.MaxFileSizeMB,
		OrderIndex:       in.OrderIndex,
		AllowedFormats:   formats,
	}
}

// parseStringList reads a form value holding a JSON string array. A bare
// value is treated as a single-element list.
func parseStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return []string{raw}
	}
	return list
}

func parseFloatField(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(raw, 64)
	return value, err == nil
}

type templateFiles struct {
	thumbnail *multipart.FileHeader
	svg       *multipart.FileHeader
}

// collectTemplateFiles pairs each template entry with its uploaded thumbnail
// and SVG parts and validates their content types. Templates without a
// persisted id must carry both files; existing templates may omit them to
// keep their stored assets.
func collectTemplateFiles(ctx *gin.Context, templates []templateInput) ([]templateFiles, string) {
	files := make([]templateFiles, len(templates))
	for i, tpl := range templates {
		thumbnail, err := ctx.FormFile(fmt.Sprintf("customizationTemplates[%d][thumbnail]", i))
		if err == nil {
			if !utils.IsAllowedImageType(thumbnail.Header.Get("Content-Type")) {
				return nil, fmt.Sprintf("Template %d requires a JPEG, PNG or WebP thumbnail", i)
			}
			files[i].thumbnail = thumbnail
		} else if tpl.Id <= 0 {
			return nil, fmt.Sprintf("Template %d requires a JPEG, PNG or WebP thumbnail", i)
		}

		svg, err := ctx.FormFile(fmt.Sprintf("customizationTemplates[%d][svg]", i))
		if err == nil {
			if svg.Header.Get("Content-Type") != utils.SVGMediaType {
				return nil, fmt.Sprintf("Template %d requires an SVG file", i)
			}
			files[i].svg = svg
		} else if tpl.Id <= 0 {
			return nil, fmt.Sprintf("Template %d requires an SVG file", i)
		}
	}
	return files, ""
}

// uploadFormFile streams one multipart file to storage under prefix.
func uploadFormFile(ctx context.Context, storage *utils.Storage, header *multipart.FileHeader, prefix string) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()
	return storage.Upload(ctx, utils.ObjectKey(prefix, header.Filename), file, header.Header.Get("Content-Type"))
}

// GetProducts handles GET /admin/products
func GetProducts(ctx *gin.Context) {
	var products []models.Product
	result := initializers.DB.Select("id", "name", "price").Order("name asc").Find(&products)
	if result.Error != nil {
		log.Println("Error fetching products:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /admin/products/:id
func GetProduct(ctx *gin.Context) {
	productId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	result := initializers.DB.Preload("Images").
		Preload("CustomizationTemplates", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("CustomizationTemplates.CustomizableAreas", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			log.Println("Error fetching product:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"product": product})
}

// CreateProduct handles POST /admin/products (multipart). Every file is
// validated before the first byte is uploaded; uploads then run in parallel
// and the database writes happen in one transaction only after all uploads
// succeed.
func CreateProduct(ctx *gin.Context) {
	name := ctx.PostForm("name")
	description := ctx.PostForm("description")
	if name == "" || description == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Name and description are required")
		return
	}

	price, ok := parseFloatField(ctx.PostForm("price"))
	if !ok || price <= 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "A valid price is required")
		return
	}
	stock, err := strconv.Atoi(ctx.PostForm("stock"))
	if err != nil || stock < 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "A valid stock count is required")
		return
	}

	product := models.Product{
		Name:             name,
		Description:      description,
		Price:            price,
		Stock:            stock,
		YoutubeLink:      ctx.PostForm("youtubeLink"),
		Requirements:     ctx.PostForm("requirements"),
		InclusiveOfTaxes: ctx.PostForm("inclusiveOfTaxes") == "true",
		IsCustomizable:   ctx.PostForm("isCustomizable") == "true",
		Categories:       parseStringList(ctx.PostForm("categories")),
		SubCategories:    parseStringList(ctx.PostForm("subCategories")),
		Occasion:         parseStringList(ctx.PostForm("occasion")),
		Recipients:       parseStringList(ctx.PostForm("recipients")),
	}

	if raw := ctx.PostForm("deliveryFee"); raw != "" {
		fee, ok := parseFloatField(raw)
		if !ok || fee < 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid delivery fee")
			return
		}
		product.DeliveryFee = fee
	}
	if raw := ctx.PostForm("discount"); raw != "" {
		discount, ok := parseFloatField(raw)
		if !ok || discount < 0 || discount > 100 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Discount must be between 0 and 100")
			return
		}
		discounted := price * (1 - discount/100)
		product.Discount = &discount
		product.DiscountedPrice = &discounted
	}

	mainImage, err := ctx.FormFile("mainImage")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Main image and display image are required")
		return
	}
	displayImage, err := ctx.FormFile("displayImage")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Main image and display image are required")
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	extraImages := form.File["images"]
	if len(extraImages) > maxExtraImages {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("A maximum of %d additional images is allowed", maxExtraImages))
		return
	}

	rasterFiles := append([]*multipart.FileHeader{mainImage, displayImage}, extraImages...)
	for _, header := range rasterFiles {
		if !utils.IsAllowedImageType(header.Header.Get("Content-Type")) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Images must be JPEG, PNG or WebP")
			return
		}
	}

	var templates []templateInput
	var templateUploads []templateFiles
	if product.IsCustomizable {
		if raw := ctx.PostForm("customizationTemplates"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &templates); err != nil {
				sendErrorResponse(ctx, http.StatusBadRequest, "Invalid customization templates")
				return
			}
		}
		// Every template is new on create, so each must carry both files.
		for i := range templates {
			templates[i].Id = 0
		}
		var msg string
		if templateUploads, msg = collectTemplateFiles(ctx, templates); msg != "" {
			sendErrorResponse(ctx, http.StatusBadRequest, msg)
			return
		}
	}

	storage, err := utils.NewStorage(ctx.Request.Context())
	if err != nil {
		log.Println("Error initializing storage:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var mainImageURL, displayImageURL string
	extraImageURLs := make([]string, len(extraImages))
	thumbnailURLs := make([]string, len(templateUploads))
	svgURLs := make([]string, len(templateUploads))

	group, groupCtx := errgroup.WithContext(ctx.Request.Context())
	group.Go(func() error {
		var err error
		mainImageURL, err = uploadFormFile(groupCtx, storage, mainImage, "products")
		return err
	})
	group.Go(func() error {
		var err error
		displayImageURL, err = uploadFormFile(groupCtx, storage, displayImage, "products")
		return err
	})
	for i, header := range extraImages {
		group.Go(func() error {
			var err error
			extraImageURLs[i], err = uploadFormFile(groupCtx, storage, header, "products")
			return err
		})
	}
	for i, files := range templateUploads {
		group.Go(func() error {
			var err error
			thumbnailURLs[i], err = uploadFormFile(groupCtx, storage, files.thumbnail, "templates")
			return err
		})
		group.Go(func() error {
			var err error
			svgURLs[i], err = uploadFormFile(groupCtx, storage, files.svg, "templates")
			return err
		})
	}
	if err := group.Wait(); err != nil {
		log.Println("Error uploading product files:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload product files")
		return
	}

	product.Images = []models.ProductImage{{
		MainImage:    mainImageURL,
		DisplayImage: displayImageURL,
		SubImages:    extraImageURLs,
	}}
	for i, tpl := range templates {
		template := models.CustomizationTemplate{
			Name:         tpl.Name,
			ThumbnailUrl: thumbnailURLs[i],
			SvgData:      svgURLs[i],
			IsActive:     tpl.IsActive == nil || *tpl.IsActive,
			OrderIndex:   tpl.OrderIndex,
		}
		for _, area := range tpl.CustomizableAreas {
			template.CustomizableAreas = append(template.CustomizableAreas, area.toModel(0))
		}
		product.CustomizationTemplates = append(product.CustomizationTemplates, template)
	}

	tx := initializers.DB.Begin()
	if tx.Error != nil {
		log.Println("Error starting transaction:", tx.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		log.Println("Error creating product:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing product:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct handles PUT /admin/update-product/:id (multipart). Text
// fields are partial; a new main or display image replaces the stored one;
// additional images append when keepExistingImages=true and replace
// otherwise. Templates with a positive id are updated in place, others are
// created; deleteTemplates=true drops them all. New templates must carry
// their thumbnail and SVG parts, existing ones replace stored files only
// when new parts arrive. Areas follow the same update-or-create rule with
// deleteAreaIds naming removals.
func UpdateProduct(ctx *gin.Context) {
	productId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	result := initializers.DB.Preload("Images").
		Preload("CustomizationTemplates.CustomizableAreas").
		First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			log.Println("Error fetching product:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if name := ctx.PostForm("name"); name != "" {
		product.Name = name
	}
	if description := ctx.PostForm("description"); description != "" {
		product.Description = description
	}
	if raw := ctx.PostForm("price"); raw != "" {
		price, ok := parseFloatField(raw)
		if !ok || price <= 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "A valid price is required")
			return
		}
		product.Price = price
	}
	if raw := ctx.PostForm("stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil || stock < 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "A valid stock count is required")
			return
		}
		product.Stock = stock
	}
	if raw := ctx.PostForm("deliveryFee"); raw != "" {
		fee, ok := parseFloatField(raw)
		if !ok || fee < 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid delivery fee")
			return
		}
		product.DeliveryFee = fee
	}
	if raw := ctx.PostForm("discount"); raw != "" {
		discount, ok := parseFloatField(raw)
		if !ok || discount < 0 || discount > 100 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Discount must be between 0 and 100")
			return
		}
		discounted := product.Price * (1 - discount/100)
		product.Discount = &discount
		product.DiscountedPrice = &discounted
	}
	if raw := ctx.PostForm("youtubeLink"); raw != "" {
		product.YoutubeLink = raw
	}
	if raw := ctx.PostForm("requirements"); raw != "" {
		product.Requirements = raw
	}
	if raw := ctx.PostForm("inclusiveOfTaxes"); raw != "" {
		product.InclusiveOfTaxes = raw == "true"
	}
	if raw := ctx.PostForm("isCustomizable"); raw != "" {
		product.IsCustomizable = raw == "true"
	}
	if raw := ctx.PostForm("categories"); raw != "" {
		product.Categories = parseStringList(raw)
	}
	if raw := ctx.PostForm("subCategories"); raw != "" {
		product.SubCategories = parseStringList(raw)
	}
	if raw := ctx.PostForm("occasion"); raw != "" {
		product.Occasion = parseStringList(raw)
	}
	if raw := ctx.PostForm("recipients"); raw != "" {
		product.Recipients = parseStringList(raw)
	}

	mainImage, _ := ctx.FormFile("mainImage")
	displayImage, _ := ctx.FormFile("displayImage")
	var extraImages []*multipart.FileHeader
	if form, err := ctx.MultipartForm(); err == nil {
		extraImages = form.File["images"]
	}
	if len(extraImages) > maxExtraImages {
		sendErrorResponse(ctx, http.StatusBadRequest,
			fmt.Sprintf("A maximum of %d additional images is allowed", maxExtraImages))
		return
	}
	for _, header := range extraImages {
		if !utils.IsAllowedImageType(header.Header.Get("Content-Type")) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Images must be JPEG, PNG or WebP")
			return
		}
	}
	for _, header := range []*multipart.FileHeader{mainImage, displayImage} {
		if header != nil && !utils.IsAllowedImageType(header.Header.Get("Content-Type")) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Images must be JPEG, PNG or WebP")
			return
		}
	}

	deleteTemplates := ctx.PostForm("deleteTemplates") == "true"
	var templates []templateInput
	var templateUploads []templateFiles
	if raw := ctx.PostForm("customizationTemplates"); raw != "" && !deleteTemplates {
		if err := json.Unmarshal([]byte(raw), &templates); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid customization templates")
			return
		}
		var msg string
		if templateUploads, msg = collectTemplateFiles(ctx, templates); msg != "" {
			sendErrorResponse(ctx, http.StatusBadRequest, msg)
			return
		}
	}
	var deleteAreaIds []int
	if raw := ctx.PostForm("deleteAreaIds"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &deleteAreaIds); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid deleteAreaIds")
			return
		}
	}

	storage, err := utils.NewStorage(ctx.Request.Context())
	if err != nil {
		log.Println("Error initializing storage:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	var mainImageURL, displayImageURL string
	extraImageURLs := make([]string, len(extraImages))
	thumbnailURLs := make([]string, len(templateUploads))
	svgURLs := make([]string, len(templateUploads))
	group, groupCtx := errgroup.WithContext(ctx.Request.Context())
	if mainImage != nil {
		group.Go(func() error {
			var err error
			mainImageURL, err = uploadFormFile(groupCtx, storage, mainImage, "products")
			return err
		})
	}
	if displayImage != nil {
		group.Go(func() error {
			var err error
			displayImageURL, err = uploadFormFile(groupCtx, storage, displayImage, "products")
			return err
		})
	}
	for i, header := range extraImages {
		group.Go(func() error {
			var err error
			extraImageURLs[i], err = uploadFormFile(groupCtx, storage, header, "products")
			return err
		})
	}
	for i, files := range templateUploads {
		if files.thumbnail != nil {
			group.Go(func() error {
				var err error
				thumbnailURLs[i], err = uploadFormFile(groupCtx, storage, files.thumbnail, "templates")
				return err
			})
		}
		if files.svg != nil {
			group.Go(func() error {
				var err error
				svgURLs[i], err = uploadFormFile(groupCtx, storage, files.svg, "templates")
				return err
			})
		}
	}
	if err := group.Wait(); err != nil {
		log.Println("Error uploading product files:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload product files")
		return
	}

	tx := initializers.DB.Begin()
	if tx.Error != nil {
		log.Println("Error starting transaction:", tx.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	if err := tx.Omit("Images", "CustomizationTemplates").Save(&product).Error; err != nil {
		tx.Rollback()
		log.Println("Error updating product:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	// Image row: replace main/display when new files arrived, append or
	// replace the additional set.
	if mainImage != nil || displayImage != nil || len(extraImages) > 0 {
		var imageRow models.ProductImage
		if len(product.Images) > 0 {
			imageRow = product.Images[0]
		} else {
			imageRow = models.ProductImage{ProductID: int(product.ID)}
		}
		if mainImage != nil {
			imageRow.MainImage = mainImageURL
		}
		if displayImage != nil {
			imageRow.DisplayImage = displayImageURL
		}
		if len(extraImages) > 0 {
			if ctx.PostForm("keepExistingImages") == "true" {
				imageRow.SubImages = append(imageRow.SubImages, extraImageURLs...)
			} else {
				imageRow.SubImages = extraImageURLs
			}
		}
		if err := tx.Save(&imageRow).Error; err != nil {
			tx.Rollback()
			log.Println("Error saving product images:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	if deleteTemplates {
		for _, template := range product.CustomizationTemplates {
			if err := tx.Unscoped().Where("template_id = ?", template.ID).
				Delete(&models.CustomizableArea{}).Error; err != nil {
				tx.Rollback()
				log.Println("Error deleting template areas:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
				return
			}
		}
		if err := tx.Unscoped().Where("product_id = ?", product.ID).
			Delete(&models.CustomizationTemplate{}).Error; err != nil {
			tx.Rollback()
			log.Println("Error deleting templates:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	} else {
		for i, tpl := range templates {
			if tpl.Id > 0 {
				updates := map[string]any{
					"name":        tpl.Name,
					"order_index": tpl.OrderIndex,
				}
				if tpl.IsActive != nil {
					updates["is_active"] = *tpl.IsActive
				}
				if templateUploads[i].thumbnail != nil {
					updates["thumbnail_url"] = thumbnailURLs[i]
				}
				if templateUploads[i].svg != nil {
					updates["svg_data"] = svgURLs[i]
				}
				if err := tx.Model(&models.CustomizationTemplate{}).
					Where("id = ? AND product_id = ?", tpl.Id, product.ID).
					Updates(updates).Error; err != nil {
					tx.Rollback()
					log.Println("Error updating template:", err)
					sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
					return
				}
				for _, area := range tpl.CustomizableAreas {
					if area.Id > 0 {
						// Map form so zero coordinates and rotations are
						// written rather than skipped.
						updates := map[string]any{
							"name":               area.Name,
							"description":        area.Description,
							"shape":              area.Shape,
							"center_x":           area.CenterX,
							"center_y":           area.CenterY,
							"width":              area.Width,
							"height":             area.Height,
							"radius":             area.Radius,
							"default_scale":      area.DefaultScale,
							"default_rotation":   area.DefaultRotation,
							"default_position_x": area.DefaultPositionX,
							"default_position_y": area.DefaultPositionY,
							"max_file_size_mb":   area.MaxFileSizeMB,
							"order_index":        area.OrderIndex,
							"allowed_formats":    datatypes.NewJSONSlice(emptyIfNilStrings(area.AllowedFormats)),
						}
						if err := tx.Model(&models.CustomizableArea{}).
							Where("id = ? AND template_id = ?", area.Id, tpl.Id).
							Updates(updates).Error; err != nil {
							tx.Rollback()
							log.Println("Error updating area:", err)
							sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
							return
						}
					} else {
						newArea := area.toModel(tpl.Id)
						if err := tx.Create(&newArea).Error; err != nil {
							tx.Rollback()
							log.Println("Error creating area:", err)
							sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
							return
						}
					}
				}
			} else {
				template := models.CustomizationTemplate{
					ProductID:    int(product.ID),
					Name:         tpl.Name,
					ThumbnailUrl: thumbnailURLs[i],
					SvgData:      svgURLs[i],
					IsActive:     tpl.IsActive == nil || *tpl.IsActive,
					OrderIndex:   tpl.OrderIndex,
				}
				for _, area := range tpl.CustomizableAreas {
					template.CustomizableAreas = append(template.CustomizableAreas, area.toModel(0))
				}
				if err := tx.Create(&template).Error; err != nil {
					tx.Rollback()
					log.Println("Error creating template:", err)
					sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
					return
				}
			}
		}
		if len(deleteAreaIds) > 0 {
			if err := tx.Unscoped().Where("id IN ?", deleteAreaIds).
				Delete(&models.CustomizableArea{}).Error; err != nil {
				tx.Rollback()
				log.Println("Error deleting areas:", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing product update:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

// DeleteProduct handles DELETE /admin/delete-product/:id. Stored objects are
// removed from S3 best effort; failures are logged and never block the
// database delete.
func DeleteProduct(ctx *gin.Context) {
	productId, ok := parseIDParam(ctx, "id")
	if !ok {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	result := initializers.DB.Preload("Images").
		Preload("CustomizationTemplates").
		First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		} else {
			log.Println("Error fetching product:", result.Error)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		}
		return
	}

	if storage, err := utils.NewStorage(ctx.Request.Context()); err != nil {
		log.Println("Error initializing storage, skipping object cleanup:", err)
	} else {
		var urls []string
		for _, image := range product.Images {
			urls = append(urls, image.MainImage, image.DisplayImage)
			urls = append(urls, image.SubImages...)
		}
		for _, template := range product.CustomizationTemplates {
			urls = append(urls, template.ThumbnailUrl, template.SvgData)
		}
		for _, url := range urls {
			key, ok := storage.KeyFromURL(url)
			if !ok {
				continue
			}
			if err := storage.Delete(ctx.Request.Context(), key); err != nil {
				log.Println("Error deleting object", key, ":", err)
			}
		}
	}

	tx := initializers.DB.Begin()
	if tx.Error != nil {
		log.Println("Error starting transaction:", tx.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	for _, template := range product.CustomizationTemplates {
		if err := tx.Unscoped().Where("template_id = ?", template.ID).
			Delete(&models.CustomizableArea{}).Error; err != nil {
			tx.Rollback()
			log.Println("Error deleting template areas:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}
	steps := []func() error{
		func() error {
			return tx.Unscoped().Where("product_id = ?", product.ID).
				Delete(&models.CustomizationTemplate{}).Error
		},
		func() error {
			return tx.Unscoped().Where("product_id = ?", product.ID).
				Delete(&models.ProductImage{}).Error
		},
		func() error {
			return tx.Unscoped().Where("product_id = ?", product.ID).
				Delete(&models.CartItem{}).Error
		},
		func() error {
			return tx.Unscoped().Where("product_id = ?", product.ID).
				Delete(&models.WishlistItem{}).Error
		},
		func() error { return tx.Unscoped().Delete(&product).Error },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			tx.Rollback()
			log.Println("Error deleting product:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		log.Println("Error committing product delete:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
