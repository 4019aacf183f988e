package handlers

import (
	"Grab-N-Go-Backend/domain"
	"Grab-N-Go-Backend/internal/api/presenters"
	"Grab-N-Go-Backend/pkg/canteen"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CanteenHandler interface {
		CreateCanteen(c *fiber.Ctx) error
		GetAllCanteens(c *fiber.Ctx) error
		GetCanteenByID(c *fiber.Ctx) error
		GetMyCanteens(c *fiber.Ctx) error
		UpdateCanteen(c *fiber.Ctx) error
		DeleteCanteen(c *fiber.Ctx) error

		SubmitRequest(c *fiber.Ctx) error
		UpdateRequestStatus(c *fiber.Ctx) error
		GetRequestsForOwner(c *fiber.Ctx) error
	}

	canteenHandler struct {
		canteenService canteen.CanteenService
		validator      *validator.Validate
	}
)

func NewCanteenHandler(canteenService canteen.CanteenService, validator *validator.Validate) CanteenHandler {
	return &canteenHandler{
		canteenService: canteenService,
		validator:      validator,
	}
}

func (h *canteenHandler) CreateCanteen(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	req := new(domain.CreateCanteenRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("licenseImage"); err == nil {
		req.LicenseImage = file
	}
	if file, err := c.FormFile("canteenPhoto"); err == nil {
		req.CanteenPhoto = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCanteen, err)
	}

	res, err := h.canteenService.CreateCanteen(c.Context(), *req, ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedCreateCanteen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCanteen)
}

func (h *canteenHandler) GetAllCanteens(c *fiber.Ctx) error {
	res, err := h.canteenService.GetAllCanteens(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetCanteens, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCanteens)
}

func (h *canteenHandler) GetCanteenByID(c *fiber.Ctx) error {
	res, err := h.canteenService.GetCanteenByID(c.Context(), c.Params("canteenId"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetCanteen, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCanteen)
}

func (h *canteenHandler) GetMyCanteens(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	res, err := h.canteenService.GetMyCanteens(c.Context(), ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetCanteens, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCanteens)
}

func (h *canteenHandler) UpdateCanteen(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	req := new(domain.UpdateCanteenRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if file, err := c.FormFile("licenseImage"); err == nil {
		req.LicenseImage = file
	}
	if file, err := c.FormFile("canteenPhoto"); err == nil {
		req.CanteenPhoto = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCanteen, err)
	}

	if err := h.canteenService.UpdateCanteen(c.Context(), c.Params("canteenId"), *req, ownerID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateCanteen, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCanteen)
}

func (h *canteenHandler) DeleteCanteen(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	if err := h.canteenService.DeleteCanteen(c.Context(), c.Params("canteenId"), ownerID); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedDeleteCanteen, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCanteen)
}

func (h *canteenHandler) SubmitRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.canteenService.SubmitRequest(c.Context(), c.Params("canteenId"), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedSubmitRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitRequest)
}

func (h *canteenHandler) UpdateRequestStatus(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	req := new(domain.UpdateRequestStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRequestStatus, err)
	}

	res, err := h.canteenService.UpdateRequestStatus(
		c.Context(), c.Params("canteenId"), c.Params("userId"), req.Status, actorID,
	)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedUpdateRequestStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRequestStatus)
}

func (h *canteenHandler) GetRequestsForOwner(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	res, err := h.canteenService.GetRequestsForOwner(c.Context(), ownerID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedGetCanteenRequests, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCanteenRequests)
}
