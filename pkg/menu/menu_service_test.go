package menu

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeMenuRepository struct {
	menus map[uuid.UUID]*entities.Menu
	items map[uuid.UUID]*entities.MenuItem
}

func newFakeMenuRepository() *fakeMenuRepository {
	return &fakeMenuRepository{
		menus: make(map[uuid.UUID]*entities.Menu),
		items: make(map[uuid.UUID]*entities.MenuItem),
	}
}

func (f *fakeMenuRepository) GetMenuByCanteen(_ context.Context, canteenID string) (*entities.Menu, error) {
	for _, m := range f.menus {
		if m.CanteenID.String() == canteenID {
			loaded := *m
			loaded.Items = nil
			for _, item := range f.items {
				if item.MenuID == m.ID {
					loaded.Items = append(loaded.Items, item)
				}
			}
			return &loaded, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenuRepository) CreateMenu(_ context.Context, m *entities.Menu) error {
	f.menus[m.ID] = m
	return nil
}

func (f *fakeMenuRepository) CreateItem(_ context.Context, item *entities.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepository) GetItemByID(_ context.Context, itemID string) (*entities.MenuItem, error) {
	parsed, err := uuid.Parse(itemID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	item, ok := f.items[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeMenuRepository) UpdateItem(_ context.Context, item *entities.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepository) DeleteItem(_ context.Context, itemID string) error {
	parsed, err := uuid.Parse(itemID)
	if err != nil {
		return err
	}
	delete(f.items, parsed)
	return nil
}

func (f *fakeMenuRepository) CountItemsInCategory(_ context.Context, menuID, category string) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.MenuID.String() == menuID && item.Category == category {
			count++
		}
	}
	return count, nil
}

type fakeCanteenRepository struct {
	canteens map[uuid.UUID]*entities.Canteen
}

func (f *fakeCanteenRepository) CreateCanteen(_ context.Context, c *entities.Canteen) error {
	f.canteens[c.ID] = c
	return nil
}

func (f *fakeCanteenRepository) GetCanteenByID(_ context.Context, id string) (*entities.Canteen, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	c, ok := f.canteens[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeCanteenRepository) GetAllCanteens(_ context.Context) ([]*entities.Canteen, error) {
	return nil, nil
}

func (f *fakeCanteenRepository) GetCanteensByOwner(_ context.Context, _ string) ([]*entities.Canteen, error) {
	return nil, nil
}

func (f *fakeCanteenRepository) UpdateCanteen(_ context.Context, _ *entities.Canteen) error {
	return nil
}

func (f *fakeCanteenRepository) DeleteCanteen(_ context.Context, _ string) error { return nil }

func (f *fakeCanteenRepository) CreateRequest(_ context.Context, _ *entities.CanteenRequest) error {
	return nil
}

func (f *fakeCanteenRepository) GetRequestsByCanteenAndUser(_ context.Context, _, _ string) ([]*entities.CanteenRequest, error) {
	return nil, nil
}

func (f *fakeCanteenRepository) GetRequestsByCanteen(_ context.Context, _ string) ([]*entities.CanteenRequest, error) {
	return nil, nil
}

func (f *fakeCanteenRepository) DecideRequest(_ context.Context, _ uuid.UUID, _ string, _ *time.Time) (int64, error) {
	return 0, nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, dir string, _ ...string) (string, error) {
	return dir + "/" + fileName, nil
}
func (fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	return objectKey, nil
}
func (fakeS3) DeleteFile(string) error                 { return nil }
func (fakeS3) GetPublicLinkKey(key string) string      { return "https://cdn.test/" + key }
func (fakeS3) GetObjectKeyFromLink(link string) string { return "" }

func newTestService() (MenuService, *fakeMenuRepository, *fakeCanteenRepository) {
	menus := newFakeMenuRepository()
	canteens := &fakeCanteenRepository{canteens: make(map[uuid.UUID]*entities.Canteen)}
	return NewMenuService(menus, canteens, fakeS3{}), menus, canteens
}

func seedCanteen(repo *fakeCanteenRepository, ownerID uuid.UUID) *entities.Canteen {
	c := &entities.Canteen{ID: uuid.New(), CanteenName: "North Mess", OwnerID: ownerID}
	repo.canteens[c.ID] = c
	return c
}

func TestAddItemCreatesMenuOnFirstUse(t *testing.T) {
	svc, menus, canteens := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	c := seedCanteen(canteens, owner)

	res, err := svc.AddItem(ctx, c.ID.String(), domain.AddMenuItemRequest{
		Category: "breakfast",
		Name:     "Poha",
		Price:    30,
	}, owner.String())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Position != 0 {
		t.Fatalf("position = %d, want 0", res.Position)
	}
	if len(menus.menus) != 1 {
		t.Fatalf("menus = %d, want 1 lazily created", len(menus.menus))
	}

	// Second item in the same category takes the next slot.
	res2, err := svc.AddItem(ctx, c.ID.String(), domain.AddMenuItemRequest{
		Category: "breakfast",
		Name:     "Upma",
		Price:    25,
	}, owner.String())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res2.Position != 1 {
		t.Fatalf("position = %d, want 1", res2.Position)
	}
	if len(menus.menus) != 1 {
		t.Fatalf("menus = %d, a second add must reuse the menu", len(menus.menus))
	}
}

func TestAddItemRejectsUnknownCategory(t *testing.T) {
	svc, _, canteens := newTestService()
	owner := uuid.New()
	c := seedCanteen(canteens, owner)

	_, err := svc.AddItem(context.Background(), c.ID.String(), domain.AddMenuItemRequest{
		Category: "dinner",
		Name:     "Thali",
		Price:    90,
	}, owner.String())
	if !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("err = %v, want ErrInvalidCategory", err)
	}
}

func TestAddItemOnlyOwner(t *testing.T) {
	svc, _, canteens := newTestService()
	c := seedCanteen(canteens, uuid.New())

	_, err := svc.AddItem(context.Background(), c.ID.String(), domain.AddMenuItemRequest{
		Category: "lunch",
		Name:     "Thali",
		Price:    90,
	}, uuid.NewString())
	if !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("err = %v, want ErrUserNotAllowed", err)
	}
}

func TestUpdateItemPartialPatch(t *testing.T) {
	svc, _, canteens := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	c := seedCanteen(canteens, owner)

	added, err := svc.AddItem(ctx, c.ID.String(), domain.AddMenuItemRequest{
		Category:    "lunch",
		Name:        "Thali",
		Price:       90,
		Description: "full plate",
	}, owner.String())
	if err != nil {
		t.Fatalf("add: unexpected error %v", err)
	}

	res, err := svc.UpdateItem(ctx, c.ID.String(), added.ID, domain.UpdateMenuItemRequest{Price: 95}, owner.String())
	if err != nil {
		t.Fatalf("update: unexpected error %v", err)
	}
	if res.Price != 95 {
		t.Fatalf("price = %v, want 95", res.Price)
	}
	if res.Name != "Thali" || res.Description != "full plate" {
		t.Fatalf("untouched fields changed: %+v", res)
	}
}

func TestUpdateItemUnknownItem(t *testing.T) {
	svc, _, canteens := newTestService()
	owner := uuid.New()
	c := seedCanteen(canteens, owner)

	_, err := svc.UpdateItem(context.Background(), c.ID.String(), uuid.NewString(), domain.UpdateMenuItemRequest{Price: 10}, owner.String())
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("err = %v, want ErrMenuItemNotFound", err)
	}
}

func TestDeleteItemScopedToMenu(t *testing.T) {
	svc, _, canteens := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	first := seedCanteen(canteens, owner)
	second := seedCanteen(canteens, owner)

	added, err := svc.AddItem(ctx, first.ID.String(), domain.AddMenuItemRequest{
		Category: "chinese",
		Name:     "Hakka Noodles",
		Price:    80,
	}, owner.String())
	if err != nil {
		t.Fatalf("add: unexpected error %v", err)
	}

	// The item belongs to the first canteen's menu, not the second's.
	err = svc.DeleteItem(ctx, second.ID.String(), added.ID, owner.String())
	if !errors.Is(err, domain.ErrMenuItemNotFound) {
		t.Fatalf("cross-menu delete: err = %v, want ErrMenuItemNotFound", err)
	}

	if err := svc.DeleteItem(ctx, first.ID.String(), added.ID, owner.String()); err != nil {
		t.Fatalf("delete: unexpected error %v", err)
	}

	menu, err := svc.GetMenu(ctx, first.ID.String())
	if err != nil {
		t.Fatalf("get menu: unexpected error %v", err)
	}
	if len(menu.Chinese) != 0 {
		t.Fatalf("item still listed after delete: %+v", menu.Chinese)
	}
}

func TestGetMenuGroupsByCategory(t *testing.T) {
	svc, _, canteens := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	c := seedCanteen(canteens, owner)

	for _, it := range []struct {
		category, name string
	}{
		{"breakfast", "Poha"},
		{"lunch", "Thali"},
		{"specialFood", "Paneer Tikka"},
	} {
		if _, err := svc.AddItem(ctx, c.ID.String(), domain.AddMenuItemRequest{
			Category: it.category,
			Name:     it.name,
			Price:    50,
		}, owner.String()); err != nil {
			t.Fatalf("add %s: unexpected error %v", it.name, err)
		}
	}

	menu, err := svc.GetMenu(ctx, c.ID.String())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(menu.Breakfast) != 1 || len(menu.Lunch) != 1 || len(menu.SpecialFood) != 1 || len(menu.Chinese) != 0 {
		t.Fatalf("wrong grouping: %+v", menu)
	}
}

func TestGetMenuEmptyForNewCanteen(t *testing.T) {
	svc, _, canteens := newTestService()
	c := seedCanteen(canteens, uuid.New())

	menu, err := svc.GetMenu(context.Background(), c.ID.String())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if menu.Breakfast == nil || len(menu.Breakfast) != 0 {
		t.Fatalf("expected empty slices, got %+v", menu)
	}
}
