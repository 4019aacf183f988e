package handlers

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/internal/api/presenters"
	"Grab-N-Go-Backend/pkg/tiffin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TiffinHandler interface {
		CreateTiffin(c *fiber.Ctx) error
		GetAllTiffins(c *fiber.Ctx) error
		GetTiffinByID(c *fiber.Ctx) error
		GetMyTiffins(c *fiber.Ctx) error
		UpdateTiffin(c *fiber.Ctx) error
		DeleteTiffin(c *fiber.Ctx) error

		RequestMess(c *fiber.Ctx) error
		UpdateRequestStatus(c *fiber.Ctx) error
		GetRequests(c *fiber.Ctx) error
		GetSubscribers(c *fiber.Ctx) error
		MarkDailyStatus(c *fiber.Ctx) error
	}

	tiffinHandler struct {
		tiffinService tiffin.TiffinService
		validator     *validator.Validate
	}
)

func NewTiffinHandler(tiffinService tiffin.TiffinService, validator *validator.Validate) TiffinHandler {
	return &tiffinHandler{
		tiffinService: tiffinService,
		validator:     validator,
	}
}

func (h *tiffinHandler) CreateTiffin(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	req := new(domain.CreateTiffinRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateTiffin, err)
	}

	res, err := h.tiffinService.CreateTiffin(c.Context(), *req, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateTiffin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTiffin)
}

func (h *tiffinHandler) GetAllTiffins(c *fiber.Ctx) error {
	res, err := h.tiffinService.GetAllTiffins(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetTiffins, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTiffins)
}

func (h *tiffinHandler) GetTiffinByID(c *fiber.Ctx) error {
	res, err := h.tiffinService.GetTiffinByID(c.Context(), c.Params("tiffinId"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetTiffin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTiffin)
}

func (h *tiffinHandler) GetMyTiffins(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	res, err := h.tiffinService.GetMyTiffins(c.Context(), ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetTiffins, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTiffins)
}

func (h *tiffinHandler) UpdateTiffin(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	req := new(domain.UpdateTiffinRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateTiffin, err)
	}

	if err := h.tiffinService.UpdateTiffin(c.Context(), c.Params("tiffinId"), *req, ownerID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateTiffin, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateTiffin)
}

func (h *tiffinHandler) DeleteTiffin(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	if err := h.tiffinService.DeleteTiffin(c.Context(), c.Params("tiffinId"), ownerID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteTiffin, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTiffin)
}

func (h *tiffinHandler) RequestMess(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.tiffinService.RequestMess(c.Context(), c.Params("tiffinId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedRequestMess, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRequestMess)
}

func (h *tiffinHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	req := new(domain.UpdateRequestStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMessRequest, err)
	}

	res, err := h.tiffinService.UpdateRequestStatus(
		c.Context(), c.Params("tiffinId"), c.Params("userId"), req.Status, actorID,
	)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateMessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMessRequest)
}

func (h *tiffinHandler) GetRequests(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	res, err := h.tiffinService.GetRequests(c.Context(), c.Params("tiffinId"), actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetMessRequests, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMessRequests)
}

func (h *tiffinHandler) GetSubscribers(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	res, err := h.tiffinService.GetSubscribers(c.Context(), c.Params("tiffinId"), actorID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetSubscribers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubscribers)
}

func (h *tiffinHandler) MarkDailyStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.MarkDailyStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMarkDailyStatus, err)
	}

	if err := h.tiffinService.MarkDailyStatus(c.Context(), c.Params("tiffinId"), userID, *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedMarkDailyStatus, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessMarkDailyStatus)
}
