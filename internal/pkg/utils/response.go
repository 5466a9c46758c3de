package utils

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scenic-tour/internal/pkg/errors"
)

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// SendError writes err as an ErrorResponse. Anything that is not an AppError
// is reported as a generic internal error so provider details never leak.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
