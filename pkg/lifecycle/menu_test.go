package lifecycle_test

import (
	"errors"
	"testing"

	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"Grab-N-Go-Backend/pkg/lifecycle"
)

func TestValidCategory(t *testing.T) {
	for _, category := range lifecycle.Categories() {
		if err := lifecycle.ValidCategory(category); err != nil {
			t.Errorf("ValidCategory(%q) = %v, want nil", category, err)
		}
	}

	for _, category := range []string{"dinner", "Breakfast", "specialfood", ""} {
		if err := lifecycle.ValidCategory(category); !errors.Is(err, domain.ErrInvalidCategory) {
			t.Errorf("ValidCategory(%q) = %v, want ErrInvalidCategory", category, err)
		}
	}
}

func TestItemPatchPartialUpdate(t *testing.T) {
	item := entities.MenuItem{
		Name:        "Idli",
		Price:       30,
		Description: "Steamed rice cake",
		ImageURL:    "https://img.example.com/idli.jpg",
	}

	lifecycle.ItemPatch{Price: 35}.Apply(&item)

	if item.Price != 35 {
		t.Errorf("price = %v, want 35", item.Price)
	}
	if item.Name != "Idli" || item.Description != "Steamed rice cake" || item.ImageURL != "https://img.example.com/idli.jpg" {
		t.Errorf("untouched fields changed: %+v", item)
	}
}

func TestItemPatchEmptyIsNoop(t *testing.T) {
	item := entities.MenuItem{Name: "Dosa", Price: 50, Description: "Crispy"}
	before := item

	lifecycle.ItemPatch{}.Apply(&item)

	if item != before {
		t.Errorf("empty patch changed item: before %+v, after %+v", before, item)
	}
}
