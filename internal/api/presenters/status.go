package presenters

import (
	"Grab-N-Go-Backend/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps domain errors onto HTTP status codes so handlers stay
// uniform: forbidden 403, missing 404, conflicts 409, bad input 400.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCanteenNotFound),
		errors.Is(err, domain.ErrTiffinNotFound),
		errors.Is(err, domain.ErrMenuNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrSubscriberNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateRequest),
		errors.Is(err, domain.ErrRequestAlreadyDecided),
		errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrConcurrentUpdate),
		errors.Is(err, domain.ErrOrderAlreadyPaid),
		errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
