package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name                   string                      `json:"name"`
	Description            string                      `json:"description"`
	Price                  float64                     `json:"price"`
	Discount               *float64                    `json:"discount"`
	DiscountedPrice        *float64                    `json:"discountedPrice"`
	DeliveryFee            float64                     `json:"deliveryFee"`
	Stock                  int                         `json:"stock"`
	YoutubeLink            string                      `json:"youtubeLink"`
	Requirements           string                      `json:"requirements"`
	InclusiveOfTaxes       bool                        `json:"inclusiveOfTaxes"`
	IsCustomizable         bool                        `json:"isCustomizable"`
	Categories             datatypes.JSONSlice[string] `json:"categories"`
	SubCategories          datatypes.JSONSlice[string] `json:"subCategories"`
	Occasion               datatypes.JSONSlice[string] `json:"occasion"`
	Recipients             datatypes.JSONSlice[string] `json:"recipients"`
	Images                 []ProductImage              `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CustomizationTemplates []CustomizationTemplate     `json:"customizationTemplates" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// ProductImage is the single image-set record of a product: one main image,
// one display image and up to five additional images.
type ProductImage struct {
	gorm.Model
	ProductID    int                         `json:"productId"`
	MainImage    string                      `json:"mainImage"`
	DisplayImage string                      `json:"displayImage"`
	SubImages    datatypes.JSONSlice[string] `json:"subImages"`
}

type CustomizationTemplate struct {
	gorm.Model
	ProductID         int                `json:"productId"`
	Name              string             `json:"name"`
	ThumbnailUrl      string             `json:"thumbnailUrl"`
	SvgData           string             `json:"svgData"`
	IsActive          bool               `json:"isActive"`
	OrderIndex        int                `json:"orderIndex"`
	CustomizableAreas []CustomizableArea `json:"customizableAreas" gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

type CustomizableArea struct {
	gorm.Model
	TemplateID       int                         `json:"templateId"`
	Name             string                      `json:"name"`
	Description      string                      `json:"description"`
	Shape            string                      `json:"shape"`
	CenterX          float64                     `json:"centerX"`
	CenterY          float64                     `json:"centerY"`
	Width            *float64                    `json:"width"`
	Height           *float64                    `json:"height"`
	Radius           *float64                    `json:"radius"`
	DefaultScale     float64                     `json:"defaultScale"`
	DefaultRotation  float64                     `json:"defaultRotation"`
	DefaultPositionX float64                     `json:"defaultPositionX"`
	DefaultPositionY float64                     `json:"defaultPositionY"`
	MaxFileSizeMB    float64                     `json:"maxFileSizeMB"`
	OrderIndex       int                         `json:"orderIndex"`
	AllowedFormats   datatypes.JSONSlice[string] `json:"allowedFormats"`
}
