package utils

// SVGMediaType is the only accepted content type for customization template
// SVG files.
const SVGMediaType = "image/svg+xml"

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// IsAllowedImageType reports whether contentType is an accepted raster image
// type for product images and template thumbnails.
func IsAllowedImageType(contentType string) bool {
	return allowedImageTypes[contentType]
}
