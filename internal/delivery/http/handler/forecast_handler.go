package handler

import (
	"errors"
	"strconv"

	"skill-evolution/internal/delivery/http/middleware"
	"skill-evolution/internal/pkg/response"
	"skill-evolution/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ForecastHandler struct {
	uc usecase.ForecastUsecase
}

func NewForecastHandler(uc usecase.ForecastUsecase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

func (h *ForecastHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:skill", h.Predict)
}

func (h *ForecastHandler) Predict(c fiber.Ctx) error {
	skill := c.Params("skill")

	months := 0
	if raw := c.Query("months"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid months", nil, err)
		}
		months = v
	}

	result, err := h.uc.Predict(c.Context(), skill, months)
	if err != nil {
		if errors.Is(err, usecase.ErrNoForecastData) {
			return middleware.NewAppError(fiber.StatusNotFound, "No demand history for skill", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}
