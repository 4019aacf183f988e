package lifecycle

import (
	"Grab-N-Go-Backend/domain"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderPreparing OrderStatus = "Preparing"
	OrderReady     OrderStatus = "Ready"
	OrderDelivered OrderStatus = "Delivered"
)

// orderRank orders the statuses; transitions must move strictly forward.
var orderRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderPreparing: 1,
	OrderReady:     2,
	OrderDelivered: 3,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderRank[s]
	return ok
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered
}

// ValidateOrder checks the creation preconditions: at least one item and a
// positive total.
func ValidateOrder(itemCount int, totalAmount float64) error {
	if itemCount == 0 {
		return domain.ErrEmptyOrder
	}
	if totalAmount <= 0 {
		return domain.ErrInvalidTotalAmount
	}
	return nil
}

// TransitionOrder validates an order status change. Skipping ahead
// (Pending → Ready) is allowed, going backward or leaving Delivered is not.
func TransitionOrder(current, target OrderStatus) error {
	if !current.Valid() || !target.Valid() {
		return domain.ErrInvalidStatusTransition
	}
	if current.Terminal() {
		return domain.ErrInvalidStatusTransition
	}
	if orderRank[target] <= orderRank[current] {
		return domain.ErrInvalidStatusTransition
	}
	return nil
}
