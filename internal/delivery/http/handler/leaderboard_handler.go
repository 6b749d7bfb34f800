package handler

import (
	"strconv"

	"skill-evolution/internal/delivery/http/middleware"
	"skill-evolution/internal/pkg/response"
	"skill-evolution/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LeaderboardHandler struct {
	uc usecase.LeaderboardUsecase
}

func NewLeaderboardHandler(uc usecase.LeaderboardUsecase) *LeaderboardHandler {
	return &LeaderboardHandler{uc: uc}
}

func (h *LeaderboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Top)
}

func (h *LeaderboardHandler) Top(c fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = v
	}

	entries, err := h.uc.Top(c.Context(), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"leaderboard": entries})
}
