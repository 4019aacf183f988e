package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreatePayment = "payment created successfully"
	MessageSuccessGetPayment    = "payment retrieved successfully"
	MessageSuccessWebhook       = "notification processed"

	MessageFailedCreatePayment = "failed to create payment"
	MessageFailedGetPayment    = "failed to retrieve payment"
	MessageFailedWebhook       = "failed to process notification"

	ErrPaymentNotFound  = errors.New("payment not found")
	ErrOrderAlreadyPaid = errors.New("order already paid")
	ErrPaymentGateway   = errors.New("payment gateway error")
)

type (
	CheckoutRequest struct {
		OrderID string `json:"order_id" validate:"required,uuid"`
	}

	CheckoutResponse struct {
		PaymentID   string  `json:"payment_id"`
		OrderID     string  `json:"order_id"`
		Amount      float64 `json:"amount"`
		SnapToken   string  `json:"snap_token"`
		RedirectURL string  `json:"redirect_url"`
		Status      string  `json:"status"`
	}

	MidtransNotification struct {
		TransactionStatus string `json:"transaction_status"`
		OrderID           string `json:"order_id"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
		GrossAmount       string `json:"gross_amount"`
	}

	PaymentResponse struct {
		ID        string     `json:"id"`
		OrderID   string     `json:"order_id"`
		Amount    float64    `json:"amount"`
		Status    string     `json:"status"`
		SettledAt *time.Time `json:"settled_at,omitempty"`
		CreatedAt time.Time  `json:"created_at"`
	}
)
