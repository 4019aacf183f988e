package order

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeOrderRepository struct {
	orders map[uuid.UUID]*entities.Order
	// raceOnce simulates a concurrent writer stealing the first
	// conditional update.
	raceOnce bool
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[uuid.UUID]*entities.Order)}
}

func (f *fakeOrderRepository) CreateOrder(_ context.Context, o *entities.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepository) GetOrderByID(_ context.Context, id string) (*entities.Order, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	o, ok := f.orders[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepository) GetOrdersByUser(_ context.Context, userID string) ([]*entities.Order, error) {
	var result []*entities.Order
	for _, o := range f.orders {
		if o.UserID.String() == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepository) GetOrdersByCanteen(_ context.Context, canteenID string) ([]*entities.Order, error) {
	var result []*entities.Order
	for _, o := range f.orders {
		if o.CanteenID.String() == canteenID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepository) UpdateStatus(_ context.Context, orderID uuid.UUID, current, target string) (int64, error) {
	if f.raceOnce {
		f.raceOnce = false
		return 0, nil
	}
	o, ok := f.orders[orderID]
	if !ok || o.Status != current {
		return 0, nil
	}
	o.Status = target
	return 1, nil
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

func (f *fakeCanteenRepository) UpdateCanteen(_ context.Context, c *entities.Canteen) error {
	f.canteens[c.ID] = c
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

func newTestService() (OrderService, *fakeOrderRepository, *fakeCanteenRepository) {
	orders := newFakeOrderRepository()
	canteens := &fakeCanteenRepository{canteens: make(map[uuid.UUID]*entities.Canteen)}
	return NewOrderService(orders, canteens), orders, canteens
}

func seedCanteen(repo *fakeCanteenRepository, ownerID uuid.UUID) *entities.Canteen {
	c := &entities.Canteen{ID: uuid.New(), CanteenName: "North Mess", OwnerID: ownerID}
	repo.canteens[c.ID] = c
	return c
}

func validCreateRequest(canteenID string) domain.CreateOrderRequest {
	return domain.CreateOrderRequest{
		CanteenID: canteenID,
		Items: []domain.OrderItemRequest{
			{Name: "Masala Dosa", Price: 60, Quantity: 2, Category: "breakfast"},
		},
		TotalAmount: 120,
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, canteens := newTestService()
	ctx := context.Background()
	c := seedCanteen(canteens, uuid.New())
	student := uuid.NewString()

	tests := []struct {
		name    string
		mutate  func(*domain.CreateOrderRequest)
		wantErr error
	}{
		{
			name:    "no items",
			mutate:  func(r *domain.CreateOrderRequest) { r.Items = nil },
			wantErr: domain.ErrEmptyOrder,
		},
		{
			name:    "zero total",
			mutate:  func(r *domain.CreateOrderRequest) { r.TotalAmount = 0 },
			wantErr: domain.ErrInvalidTotalAmount,
		},
		{
			name:    "negative total",
			mutate:  func(r *domain.CreateOrderRequest) { r.TotalAmount = -10 },
			wantErr: domain.ErrInvalidTotalAmount,
		},
		{
			name:    "unknown canteen",
			mutate:  func(r *domain.CreateOrderRequest) { r.CanteenID = uuid.NewString() },
			wantErr: domain.ErrCanteenNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest(c.ID.String())
			tt.mutate(&req)
			_, err := svc.CreateOrder(ctx, req, student)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateOrderSnapshotsItems(t *testing.T) {
	svc, orders, canteens := newTestService()
	ctx := context.Background()
	c := seedCanteen(canteens, uuid.New())
	student := uuid.NewString()

	res, err := svc.CreateOrder(ctx, validCreateRequest(c.ID.String()), student)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Status != "Pending" {
		t.Fatalf("status = %q, want Pending", res.Status)
	}
	if len(res.Items) != 1 || res.Items[0].Name != "Masala Dosa" {
		t.Fatalf("items not snapshotted: %+v", res.Items)
	}

	orderID, _ := uuid.Parse(res.ID)
	stored := orders.orders[orderID]
	if stored == nil || len(stored.Items) != 1 {
		t.Fatal("order not persisted with its items")
	}
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{name: "pending to preparing", from: "Pending", to: "Preparing"},
		{name: "skip ahead", from: "Pending", to: "Ready"},
		{name: "ready to delivered", from: "Ready", to: "Delivered"},
		{name: "backward", from: "Ready", to: "Preparing", wantErr: domain.ErrInvalidStatusTransition},
		{name: "same status", from: "Preparing", to: "Preparing", wantErr: domain.ErrInvalidStatusTransition},
		{name: "leave delivered", from: "Delivered", to: "Pending", wantErr: domain.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, orders, canteens := newTestService()
			ctx := context.Background()
			owner := uuid.New()
			c := seedCanteen(canteens, owner)

			o := &entities.Order{ID: uuid.New(), UserID: uuid.New(), CanteenID: c.ID, TotalAmount: 50, Status: tt.from}
			orders.orders[o.ID] = o

			res, err := svc.UpdateOrderStatus(ctx, o.ID.String(), tt.to, owner.String())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if res.Status != tt.to {
				t.Fatalf("status = %q, want %q", res.Status, tt.to)
			}
		})
	}
}

func TestUpdateOrderStatusOnlyOwner(t *testing.T) {
	svc, orders, canteens := newTestService()
	ctx := context.Background()
	c := seedCanteen(canteens, uuid.New())

	o := &entities.Order{ID: uuid.New(), UserID: uuid.New(), CanteenID: c.ID, TotalAmount: 50, Status: "Pending"}
	orders.orders[o.ID] = o

	_, err := svc.UpdateOrderStatus(ctx, o.ID.String(), "Preparing", uuid.NewString())
	if !errors.Is(err, domain.ErrUserNotAllowed) {
		t.Fatalf("err = %v, want ErrUserNotAllowed", err)
	}
}

func TestUpdateOrderStatusLosesRace(t *testing.T) {
	svc, orders, canteens := newTestService()
	ctx := context.Background()
	owner := uuid.New()
	c := seedCanteen(canteens, owner)

	o := &entities.Order{ID: uuid.New(), UserID: uuid.New(), CanteenID: c.ID, TotalAmount: 50, Status: "Pending"}
	orders.orders[o.ID] = o
	orders.raceOnce = true

	_, err := svc.UpdateOrderStatus(ctx, o.ID.String(), "Preparing", owner.String())
	if !errors.Is(err, domain.ErrConcurrentUpdate) {
		t.Fatalf("err = %v, want ErrConcurrentUpdate", err)
	}
}
