package lifecycle

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
)

const (
	CategoryBreakfast   = "breakfast"
	CategoryLunch       = "lunch"
	CategoryChinese     = "chinese"
	CategorySpecialFood = "specialFood"
)

// Categories lists the four fixed menu partitions in display order.
func Categories() []string {
	return []string{CategoryBreakfast, CategoryLunch, CategoryChinese, CategorySpecialFood}
}

func ValidCategory(category string) error {
	switch category {
	case CategoryBreakfast, CategoryLunch, CategoryChinese, CategorySpecialFood:
		return nil
	}
	return domain.ErrInvalidCategory
}

// ItemPatch carries a partial menu-item update. Zero-valued fields are
// skipped, so an update only touches what the caller sent.
type ItemPatch struct {
	Name        string
	Price       float64
	Description string
	ImageURL    string
}

func (p ItemPatch) Apply(item *entities.MenuItem) {
	if p.Name != "" {
		item.Name = p.Name
	}
	if p.Price > 0 {
		item.Price = p.Price
	}
	if p.Description != "" {
		item.Description = p.Description
	}
	if p.ImageURL != "" {
		item.ImageURL = p.ImageURL
	}
}
