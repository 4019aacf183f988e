package order

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"Grab-N-Go-Backend/pkg/canteen"
	"Grab-N-Go-Backend/pkg/lifecycle"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error)
		GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetCanteenOrders(ctx context.Context, canteenID, actorID string) ([]domain.OrderResponse, error)
		UpdateOrderStatus(ctx context.Context, orderID, status, actorID string) (domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository   OrderRepository
		canteenRepository canteen.CanteenRepository
	}
)

func NewOrderService(orderRepository OrderRepository, canteenRepository canteen.CanteenRepository) OrderService {
	return &orderService{
		orderRepository:   orderRepository,
		canteenRepository: canteenRepository,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest, userID string) (domain.OrderResponse, error) {
	if err := lifecycle.ValidateOrder(len(req.Items), req.TotalAmount); err != nil {
		return domain.OrderResponse{}, err
	}

	c, err := s.canteenRepository.GetCanteenByID(ctx, req.CanteenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrCanteenNotFound
		}
		return domain.OrderResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	orderID := uuid.New()
	order := &entities.Order{
		ID:          orderID,
		UserID:      userUUID,
		CanteenID:   c.ID,
		TotalAmount: req.TotalAmount,
		Status:      string(lifecycle.OrderPending),
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, &entities.OrderItem{
			ID:       uuid.New(),
			OrderID:  orderID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Category: item.Category,
			ImageURL: item.ImageURL,
		})
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return domain.OrderResponse{}, err
	}

	res := toOrderResponse(order)
	res.CanteenName = c.CanteenName
	return res, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result, nil
}

func (s *orderService) GetCanteenOrders(ctx context.Context, canteenID, actorID string) ([]domain.OrderResponse, error) {
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

	orders, err := s.orderRepository.GetOrdersByCanteen(ctx, canteenID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID, status, actorID string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	c, err := s.canteenRepository.GetCanteenByID(ctx, order.CanteenID.String())
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if c.OwnerID.String() != actorID {
		return domain.OrderResponse{}, domain.ErrUserNotAllowed
	}

	if err := lifecycle.TransitionOrder(
		lifecycle.OrderStatus(order.Status),
		lifecycle.OrderStatus(status),
	); err != nil {
		return domain.OrderResponse{}, err
	}

	rows, err := s.orderRepository.UpdateStatus(ctx, order.ID, order.Status, status)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if rows == 0 {
		return domain.OrderResponse{}, domain.ErrConcurrentUpdate
	}

	order.Status = status
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entities.Order) domain.OrderResponse {
	res := domain.OrderResponse{
		ID:          o.ID.String(),
		UserID:      o.UserID.String(),
		CanteenID:   o.CanteenID.String(),
		Items:       make([]domain.OrderItemResponse, 0, len(o.Items)),
		TotalAmount: o.TotalAmount,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
	if o.Canteen != nil {
		res.CanteenName = o.Canteen.CanteenName
	}
	if o.User != nil {
		res.UserName = o.User.FullName
		res.UserEmail = o.User.Email
	}
	for _, item := range o.Items {
		res.Items = append(res.Items, domain.OrderItemResponse{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Category: item.Category,
			ImageURL: item.ImageURL,
		})
	}
	return res
}
