package order

import (
	"Grab-N-Go-Backend/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		CreateOrder(ctx context.Context, order *entities.Order) error
		GetOrderByID(ctx context.Context, id string) (*entities.Order, error)
		GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error)
		GetOrdersByCanteen(ctx context.Context, canteenID string) ([]*entities.Order, error)
		// UpdateStatus advances an order only when its stored status still
		// matches what the caller read. Zero affected rows means another
		// writer moved the order first.
		UpdateStatus(ctx context.Context, orderID uuid.UUID, current, target string) (int64, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetOrdersByUser(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Canteen").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrdersByCanteen(ctx context.Context, canteenID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("User").
		Where("canteen_id = ?", canteenID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, current, target string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entities.Order{}).
		Where("id = ? AND status = ?", orderID, current).
		Update("status", target)
	return res.RowsAffected, res.Error
}
