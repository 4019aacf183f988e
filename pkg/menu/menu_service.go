package menu

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"Grab-N-Go-Backend/internal/utils/storage"
	"Grab-N-Go-Backend/pkg/canteen"
	"Grab-N-Go-Backend/pkg/lifecycle"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		AddItem(ctx context.Context, canteenID string, req domain.AddMenuItemRequest, actorID string) (domain.MenuItemResponse, error)
		GetMenu(ctx context.Context, canteenID string) (domain.MenuResponse, error)
		UpdateItem(ctx context.Context, canteenID, itemID string, req domain.UpdateMenuItemRequest, actorID string) (domain.MenuItemResponse, error)
		DeleteItem(ctx context.Context, canteenID, itemID string, actorID string) error
	}

	menuService struct {
		menuRepository    MenuRepository
		canteenRepository canteen.CanteenRepository
		s3                storage.AwsS3
	}
)

func NewMenuService(menuRepository MenuRepository, canteenRepository canteen.CanteenRepository, s3 storage.AwsS3) MenuService {
	return &menuService{
		menuRepository:    menuRepository,
		canteenRepository: canteenRepository,
		s3:                s3,
	}
}

func (s *menuService) AddItem(ctx context.Context, canteenID string, req domain.AddMenuItemRequest, actorID string) (domain.MenuItemResponse, error) {
	if err := lifecycle.ValidCategory(req.Category); err != nil {
		return domain.MenuItemResponse{}, err
	}

	menu, err := s.ownedMenu(ctx, canteenID, actorID)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	position, err := s.menuRepository.CountItemsInCategory(ctx, menu.ID.String(), req.Category)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	itemID := uuid.New()
	item := &entities.MenuItem{
		ID:          itemID,
		MenuID:      menu.ID,
		Category:    req.Category,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Position:    int(position),
	}

	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("item-%s", itemID.String()),
			req.Image,
			"menus",
			storage.AllowImage...,
		)
		if err != nil {
			return domain.MenuItemResponse{}, err
		}
		item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.menuRepository.CreateItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *menuService) GetMenu(ctx context.Context, canteenID string) (domain.MenuResponse, error) {
	if _, err := s.canteenRepository.GetCanteenByID(ctx, canteenID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuResponse{}, domain.ErrCanteenNotFound
		}
		return domain.MenuResponse{}, err
	}

	menu, err := s.menuRepository.GetMenuByCanteen(ctx, canteenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No items added yet. An empty menu is still a valid menu.
			return domain.MenuResponse{
				CanteenID:   canteenID,
				Breakfast:   []domain.MenuItemResponse{},
				Lunch:       []domain.MenuItemResponse{},
				Chinese:     []domain.MenuItemResponse{},
				SpecialFood: []domain.MenuItemResponse{},
			}, nil
		}
		return domain.MenuResponse{}, err
	}

	return toMenuResponse(menu), nil
}

func (s *menuService) UpdateItem(ctx context.Context, canteenID, itemID string, req domain.UpdateMenuItemRequest, actorID string) (domain.MenuItemResponse, error) {
	menu, err := s.ownedMenu(ctx, canteenID, actorID)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	item, err := s.itemInMenu(ctx, menu, itemID)
	if err != nil {
		return domain.MenuItemResponse{}, err
	}

	patch := lifecycle.ItemPatch{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	patch.Apply(item)

	if err := s.menuRepository.UpdateItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}

	return toItemResponse(item), nil
}

func (s *menuService) DeleteItem(ctx context.Context, canteenID, itemID string, actorID string) error {
	menu, err := s.ownedMenu(ctx, canteenID, actorID)
	if err != nil {
		return err
	}

	item, err := s.itemInMenu(ctx, menu, itemID)
	if err != nil {
		return err
	}

	if item.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.menuRepository.DeleteItem(ctx, item.ID.String())
}

// ownedMenu loads the canteen, enforces ownership, and returns its menu,
// creating an empty one on first use.
func (s *menuService) ownedMenu(ctx context.Context, canteenID, actorID string) (*entities.Menu, error) {
	c, err := s.canteenRepository.GetCanteenByID(ctx, canteenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCanteenNotFound
		}
		return nil, err
	}

	if c.OwnerID.String() != actorID {
		return nil, domain.ErrUserNotAllowed
	}

	menu, err := s.menuRepository.GetMenuByCanteen(ctx, canteenID)
	if err == nil {
		return menu, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	menu = &entities.Menu{
		ID:        uuid.New(),
		CanteenID: c.ID,
	}
	if err := s.menuRepository.CreateMenu(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *menuService) itemInMenu(ctx context.Context, menu *entities.Menu, itemID string) (*entities.MenuItem, error) {
	item, err := s.menuRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, err
	}
	if item.MenuID != menu.ID {
		return nil, domain.ErrMenuItemNotFound
	}
	return item, nil
}

func toItemResponse(item *entities.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:          item.ID.String(),
		Category:    item.Category,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Position:    item.Position,
	}
}

func toMenuResponse(menu *entities.Menu) domain.MenuResponse {
	res := domain.MenuResponse{
		ID:          menu.ID.String(),
		CanteenID:   menu.CanteenID.String(),
		Breakfast:   []domain.MenuItemResponse{},
		Lunch:       []domain.MenuItemResponse{},
		Chinese:     []domain.MenuItemResponse{},
		SpecialFood: []domain.MenuItemResponse{},
		CreatedAt:   menu.CreatedAt,
	}
	for _, item := range menu.Items {
		switch item.Category {
		case lifecycle.CategoryBreakfast:
			res.Breakfast = append(res.Breakfast, toItemResponse(item))
		case lifecycle.CategoryLunch:
			res.Lunch = append(res.Lunch, toItemResponse(item))
		case lifecycle.CategoryChinese:
			res.Chinese = append(res.Chinese, toItemResponse(item))
		case lifecycle.CategorySpecialFood:
			res.SpecialFood = append(res.SpecialFood, toItemResponse(item))
		}
	}
	return res
}
