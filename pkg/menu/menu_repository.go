package menu

import (
	"Grab-N-Go-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	MenuRepository interface {
		GetMenuByCanteen(ctx context.Context, canteenID string) (*entities.Menu, error)
		CreateMenu(ctx context.Context, menu *entities.Menu) error
		CreateItem(ctx context.Context, item *entities.MenuItem) error
		GetItemByID(ctx context.Context, itemID string) (*entities.MenuItem, error)
		UpdateItem(ctx context.Context, item *entities.MenuItem) error
		DeleteItem(ctx context.Context, itemID string) error
		CountItemsInCategory(ctx context.Context, menuID, category string) (int64, error)
	}

	menuRepository struct {
		db *gorm.DB
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) GetMenuByCanteen(ctx context.Context, canteenID string) (*entities.Menu, error) {
	var menu entities.Menu
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("canteen_id = ?", canteenID).
		First(&menu).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) CreateMenu(ctx context.Context, menu *entities.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *menuRepository) CreateItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetItemByID(ctx context.Context, itemID string) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.MenuItem{}).Error
}

func (r *menuRepository) CountItemsInCategory(ctx context.Context, menuID, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.MenuItem{}).
		Where("menu_id = ? AND category = ?", menuID, category).
		Count(&count).Error
	return count, err
}
