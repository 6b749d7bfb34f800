package handler

import (
	"skill-evolution/internal/delivery/http/dto"
	"skill-evolution/internal/delivery/http/middleware"
	"skill-evolution/internal/pkg/response"
	"skill-evolution/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobMatchUsecase
}

func NewJobsHandler(uc usecase.JobMatchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
}

// Match ranks stored postings against the caller's skills. A skills list in
// the body bypasses the stored skill set.
func (h *JobsHandler) Match(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.JobMatchRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		if err := dto.Validate(&req); err != nil {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", nil, err)
		}
	}

	matches, err := h.uc.MatchesForUser(c.Context(), userID, req.Skills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"matches": matches})
}
