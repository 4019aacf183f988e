package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateOrder       = "order created successfully"
	MessageSuccessGetUserOrders     = "orders retrieved successfully"
	MessageSuccessGetCanteenOrders  = "canteen orders retrieved successfully"
	MessageSuccessUpdateOrderStatus = "order status updated"

	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedGetUserOrders     = "failed to retrieve orders"
	MessageFailedGetCanteenOrders  = "failed to retrieve canteen orders"
	MessageFailedUpdateOrderStatus = "failed to update order status"

	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyOrder         = errors.New("order must include at least one item")
	ErrInvalidTotalAmount = errors.New("total amount must be greater than zero")
)

type (
	OrderItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Price    float64 `json:"price" validate:"required,gt=0"`
		Quantity int     `json:"quantity" validate:"required,min=1"`
		Category string  `json:"category" validate:"omitempty"`
		ImageURL string  `json:"image_url" validate:"omitempty"`
	}

	CreateOrderRequest struct {
		CanteenID   string             `json:"canteen_id" validate:"required,uuid"`
		Items       []OrderItemRequest `json:"items" validate:"required,dive"`
		TotalAmount float64            `json:"total_amount" validate:"required"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Pending Preparing Ready Delivered"`
	}

	OrderItemResponse struct {
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
		Category string  `json:"category,omitempty"`
		ImageURL string  `json:"image_url,omitempty"`
	}

	OrderResponse struct {
		ID          string              `json:"id"`
		UserID      string              `json:"user_id"`
		CanteenID   string              `json:"canteen_id"`
		CanteenName string              `json:"canteen_name,omitempty"`
		UserName    string              `json:"user_name,omitempty"`
		UserEmail   string              `json:"user_email,omitempty"`
		Items       []OrderItemResponse `json:"items"`
		TotalAmount float64             `json:"total_amount"`
		Status      string              `json:"status"`
		CreatedAt   time.Time           `json:"created_at"`
	}
)
