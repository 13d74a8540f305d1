package models

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Section is a storefront navigation section with an embedded list of
// subsection names. The list is mutated by reconstruction, never by index.
type Section struct {
	gorm.Model
	Name          string                      `json:"category" gorm:"size:191"`
	SubCategories datatypes.JSONSlice[string] `json:"subCategory"`
}

// Category groups products and carries its own subcategory name list.
type Category struct {
	gorm.Model
	Name          string                      `json:"categories" gorm:"size:191"`
	SubCategories datatypes.JSONSlice[string] `json:"subCategories"`
}

type Occasion struct {
	gorm.Model
	Name string `json:"occasions" gorm:"size:191"`
}

type Recipient struct {
	gorm.Model
	Name string `json:"recipients" gorm:"size:191"`
}

// Catalog entry kinds. These replace the legacy single-document bucket that
// held three parallel name arrays with positional identity.
const (
	CatalogKindCategories = "categories"
	CatalogKindOccasions  = "occasions"
	CatalogKindRecipients = "recipients"
)

type CatalogEntry struct {
	gorm.Model
	Kind string `json:"type" gorm:"size:32;uniqueIndex:idx_catalog_kind_name"`
	Name string `json:"name" gorm:"size:191;uniqueIndex:idx_catalog_kind_name"`
}

func ValidCatalogKind(kind string) bool {
	switch kind {
	case CatalogKindCategories, CatalogKindOccasions, CatalogKindRecipients:
		return true
	}
	return false
}

// HasName reports whether the list contains name exactly.
func HasName(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

// HasNameFold reports whether the list contains name ignoring case.
func HasNameFold(list []string, name string) bool {
	for _, item := range list {
		if strings.EqualFold(item, name) {
			return true
		}
	}
	return false
}

// RenameIn returns a copy of list with every occurrence of oldName replaced
// by newName.
func RenameIn(list []string, oldName, newName string) []string {
	updated := make([]string, 0, len(list))
	for _, item := range list {
		if item == oldName {
			updated = append(updated, newName)
		} else {
			updated = append(updated, item)
		}
	}
	return updated
}

// RemoveFrom returns a copy of list without any occurrence of name.
func RemoveFrom(list []string, name string) []string {
	updated := make([]string, 0, len(list))
	for _, item := range list {
		if item != name {
			updated = append(updated, item)
		}
	}
	return updated
}
