package payment

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/entities"
	"Grab-N-Go-Backend/internal/utils"
	"Grab-N-Go-Backend/pkg/order"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error)
		GetPaymentByOrder(ctx context.Context, orderID, userID string) (domain.PaymentResponse, error)
		HandleNotification(ctx context.Context, notification domain.MidtransNotification) error
	}

	paymentService struct {
		paymentRepository PaymentRepository
		orderRepository   order.OrderRepository
		snapClient        snap.Client
	}
)

func NewPaymentService(paymentRepository PaymentRepository, orderRepository order.OrderRepository) PaymentService {
	var client snap.Client
	env := midtrans.Sandbox
	if utils.GetConfig("IsProd") == "true" {
		env = midtrans.Production
	}
	client.New(utils.GetConfig("SERVER_KEY"), env)

	return &paymentService{
		paymentRepository: paymentRepository,
		orderRepository:   orderRepository,
		snapClient:        client,
	}
}

func (s *paymentService) Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
	o, err := s.orderRepository.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, domain.ErrOrderNotFound
		}
		return domain.CheckoutResponse{}, err
	}

	if o.UserID.String() != userID {
		return domain.CheckoutResponse{}, domain.ErrUserNotAllowed
	}

	existing, err := s.paymentRepository.GetPaymentByOrder(ctx, req.OrderID)
	if err == nil {
		if existing.Status == "settled" {
			return domain.CheckoutResponse{}, domain.ErrOrderAlreadyPaid
		}
		if existing.Status == "pending" {
			// Re-issue the original snap session instead of opening a second one.
			return toCheckoutResponse(existing), nil
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CheckoutResponse{}, err
	}

	paymentID := uuid.New()
	midtransOrderID := fmt.Sprintf("GNG-%s", paymentID.String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  midtransOrderID,
			GrossAmt: int64(o.TotalAmount),
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CheckoutResponse{}, domain.ErrPaymentGateway
	}

	payment := &entities.Payment{
		ID:              paymentID,
		OrderID:         o.ID,
		UserID:          o.UserID,
		Amount:          o.TotalAmount,
		MidtransOrderID: midtransOrderID,
		SnapToken:       snapResp.Token,
		RedirectURL:     snapResp.RedirectURL,
		Status:          "pending",
	}

	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return domain.CheckoutResponse{}, err
	}

	return toCheckoutResponse(payment), nil
}

func (s *paymentService) GetPaymentByOrder(ctx context.Context, orderID, userID string) (domain.PaymentResponse, error) {
	payment, err := s.paymentRepository.GetPaymentByOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PaymentResponse{}, domain.ErrPaymentNotFound
		}
		return domain.PaymentResponse{}, err
	}

	if payment.UserID.String() != userID {
		return domain.PaymentResponse{}, domain.ErrUserNotAllowed
	}

	return domain.PaymentResponse{
		ID:        payment.ID.String(),
		OrderID:   payment.OrderID.String(),
		Amount:    payment.Amount,
		Status:    payment.Status,
		SettledAt: payment.SettledAt,
		CreatedAt: payment.CreatedAt,
	}, nil
}

// HandleNotification applies a Midtrans webhook callback. Unknown order ids
// and repeated notifications are ignored rather than failed so Midtrans does
// not keep retrying.
func (s *paymentService) HandleNotification(ctx context.Context, notification domain.MidtransNotification) error {
	payment, err := s.paymentRepository.GetPaymentByMidtransOrderID(ctx, notification.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	status := payment.Status
	switch notification.TransactionStatus {
	case "capture":
		if notification.FraudStatus == "accept" {
			status = "settled"
		}
	case "settlement":
		status = "settled"
	case "deny", "cancel":
		status = "failed"
	case "expire":
		status = "expired"
	}

	if status == payment.Status {
		return nil
	}

	payment.Status = status
	if status == "settled" {
		now := time.Now()
		payment.SettledAt = &now
	}

	return s.paymentRepository.UpdatePayment(ctx, payment)
}

func toCheckoutResponse(p *entities.Payment) domain.CheckoutResponse {
	return domain.CheckoutResponse{
		PaymentID:   p.ID.String(),
		OrderID:     p.OrderID.String(),
		Amount:      p.Amount,
		SnapToken:   p.SnapToken,
		RedirectURL: p.RedirectURL,
		Status:      p.Status,
	}
}
