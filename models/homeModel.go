package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// HomeImages is the homepage content singleton; only the first row is used.
type HomeImages struct {
	gorm.Model
	HeroImages           datatypes.JSONSlice[string] `json:"heroImages"`
	HeroTitles           datatypes.JSONSlice[string] `json:"heroTitles"`
	HeroSubtitles        datatypes.JSONSlice[string] `json:"heroSubtitles"`
	FlashSaleDescription string                      `json:"flashSaleDescription"`
	FlashSaleEnabled     bool                        `json:"flashSaleEnabled"`
	AdvertImages         datatypes.JSONSlice[string] `json:"advertImages"`
	CustomSections       []CustomSection             `json:"customSections" gorm:"foreignKey:HomeImagesID;constraint:OnDelete:CASCADE"`
}

// CustomSection rows are replaced wholesale on every homepage save.
type CustomSection struct {
	gorm.Model
	HomeImagesID int    `json:"homeImagesId"`
	Category     string `json:"category"`
	Title        string `json:"title"`
	Enabled      bool   `json:"enabled"`
}

// HomeOccasion is the occasion banner singleton shown on the homepage.
type HomeOccasion struct {
	gorm.Model
	OccasionName   datatypes.JSONSlice[string] `json:"occasionName"`
	OccasionImages datatypes.JSONSlice[string] `json:"occasionImages"`
}
