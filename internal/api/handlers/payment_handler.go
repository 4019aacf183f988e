package handlers

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/internal/api/presenters"
	"Grab-N-Go-Backend/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PaymentHandler interface {
		Checkout(c *fiber.Ctx) error
		GetPaymentByOrder(c *fiber.Ctx) error
		HandleNotification(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CheckoutRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	res, err := h.paymentService.Checkout(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreatePayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePayment)
}

func (h *paymentHandler) GetPaymentByOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.paymentService.GetPaymentByOrder(c.Context(), c.Params("orderId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetPayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPayment)
}

// HandleNotification is the Midtrans webhook target. It is unauthenticated
// and always answers 200 on processed input so the gateway stops retrying.
func (h *paymentHandler) HandleNotification(c *fiber.Ctx) error {
	req := new(domain.MidtransNotification)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.paymentService.HandleNotification(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
