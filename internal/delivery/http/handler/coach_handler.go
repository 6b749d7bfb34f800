package handler

import (
	"skill-evolution/internal/delivery/http/dto"
	"skill-evolution/internal/delivery/http/middleware"
	"skill-evolution/internal/domain/coach"
	"skill-evolution/internal/pkg/response"
	"skill-evolution/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CoachHandler struct {
	uc usecase.CoachUsecase
}

func NewCoachHandler(uc usecase.CoachUsecase) *CoachHandler {
	return &CoachHandler{uc: uc}
}

func (h *CoachHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/chat", h.Chat)
}

func (h *CoachHandler) Chat(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.CoachChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := dto.Validate(&req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", nil, err)
	}

	history := make([]coach.Turn, 0, len(req.History))
	for _, t := range req.History {
		history = append(history, coach.Turn{Role: t.Role, Content: t.Content})
	}

	reply, err := h.uc.Chat(c.Context(), userID, req.Message, history)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, reply)
}
