package utils

import (
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("products", "photo.png")
	if !strings.HasPrefix(key, "products/") {
		t.Errorf("key %q missing prefix", key)
	}
	if !strings.HasSuffix(key, "-photo.png") {
		t.Errorf("key %q missing filename suffix", key)
	}
	if key == ObjectKey("products", "photo.png") {
		t.Error("two keys for the same file must differ")
	}
}

func TestPublicURLAndKeyRoundTrip(t *testing.T) {
	storage := &Storage{cdnDomain: "cdn.example.com"}

	url := storage.PublicURL("products/abc-photo.png")
	if url != "https://cdn.example.com/products/abc-photo.png" {
		t.Errorf("PublicURL = %q", url)
	}

	key, ok := storage.KeyFromURL(url)
	if !ok || key != "products/abc-photo.png" {
		t.Errorf("KeyFromURL = %q, %v", key, ok)
	}
}

func TestKeyFromURLRejectsForeignURLs(t *testing.T) {
	storage := &Storage{cdnDomain: "cdn.example.com"}
	for _, url := range []string{
		"https://other.example.com/products/x.png",
		"http://cdn.example.com/products/x.png",
		"https://cdn.example.com/",
		"",
	} {
		if _, ok := storage.KeyFromURL(url); ok {
			t.Errorf("KeyFromURL(%q) accepted a foreign URL", url)
		}
	}
}

func TestIsAllowedImageType(t *testing.T) {
	for _, contentType := range []string{"image/jpeg", "image/png", "image/webp"} {
		if !IsAllowedImageType(contentType) {
			t.Errorf("%q should be allowed", contentType)
		}
	}
	for _, contentType := range []string{"image/gif", "image/svg+xml", "application/pdf", ""} {
		if IsAllowedImageType(contentType) {
			t.Errorf("%q should be rejected", contentType)
		}
	}
}
