package models

import (
	"reflect"
	"testing"
)

func TestHasName(t *testing.T) {
	list := []string{"Mugs", "Frames", "Cushions"}
	if !HasName(list, "Frames") {
		t.Error("expected exact match")
	}
	if HasName(list, "frames") {
		t.Error("HasName must be case sensitive")
	}
	if HasName(nil, "Mugs") {
		t.Error("empty list never matches")
	}
}

func TestHasNameFold(t *testing.T) {
	list := []string{"Mugs", "Frames"}
	if !HasNameFold(list, "FRAMES") {
		t.Error("expected case-insensitive match")
	}
	if HasNameFold(list, "Cushions") {
		t.Error("unexpected match")
	}
}

func TestRenameIn(t *testing.T) {
	list := []string{"Mugs", "Frames", "Mugs"}
	got := RenameIn(list, "Mugs", "Cups")
	want := []string{"Cups", "Frames", "Cups"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RenameIn = %v, want %v", got, want)
	}
	if list[0] != "Mugs" {
		t.Error("RenameIn must not mutate its input")
	}
}

func TestRemoveFrom(t *testing.T) {
	list := []string{"Mugs", "Frames", "Mugs"}
	got := RemoveFrom(list, "Mugs")
	want := []string{"Frames"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemoveFrom = %v, want %v", got, want)
	}
	if got := RemoveFrom(list, "Posters"); !reflect.DeepEqual(got, list) {
		t.Errorf("removing an absent name changed the list: %v", got)
	}
}

func TestValidCatalogKind(t *testing.T) {
	for _, kind := range []string{CatalogKindCategories, CatalogKindOccasions, CatalogKindRecipients} {
		if !ValidCatalogKind(kind) {
			t.Errorf("%q should be valid", kind)
		}
	}
	for _, kind := range []string{"", "Categories", "products", "sections"} {
		if ValidCatalogKind(kind) {
			t.Errorf("%q should be invalid", kind)
		}
	}
}
