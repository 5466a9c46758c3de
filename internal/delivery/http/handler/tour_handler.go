package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/scenic-tour/internal/pkg/errors"
	"github.com/scenic-tour/internal/pkg/utils"
	"github.com/scenic-tour/internal/usecase"
	"github.com/scenic-tour/internal/usecase/dto"
)

// TourHandler - обработчик запросов построения маршрута
type TourHandler struct {
	tourUC  *usecase.TourUseCase
	timeout time.Duration
	logger  *zap.Logger
}

// NewTourHandler - создание нового TourHandler
func NewTourHandler(tourUC *usecase.TourUseCase, timeout time.Duration, logger *zap.Logger) *TourHandler {
	return &TourHandler{
		tourUC:  tourUC,
		timeout: timeout,
		logger:  logger,
	}
}

// PlanTour godoc
// @Summary Построение быстрого и живописного маршрута
// @Description Returns the fastest route through the given stops and, when scenic is set, an alternative route through scenic points that stays within eta_tolerance percent of the fastest duration.
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.TourRequest true "Origin, destination, stops and scenic options"
// @Success 200 {object} dto.TourResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/tour [post]
func (h *TourHandler) PlanTour(c *fiber.Ctx) error {
	var req dto.TourRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON body",
		}))
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.tourUC.PlanTour(ctx, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
