package handler

import (
	"skill-evolution/internal/delivery/http/dto"
	"skill-evolution/internal/delivery/http/middleware"
	"skill-evolution/internal/pkg/response"
	"skill-evolution/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommend", h.Recommend)
}

// Recommend returns the gap analysis and learning pathway. The body may
// override the stored skill set or target role; an empty body uses both from
// the user's profile.
func (h *RecommendationHandler) Recommend(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.RecommendRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		if err := dto.Validate(&req); err != nil {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", nil, err)
		}
	}

	rec, err := h.uc.Recommend(c.Context(), userID, usecase.RecommendInput{
		Skills:     req.Skills,
		TargetRole: req.TargetRole,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rec)
}
