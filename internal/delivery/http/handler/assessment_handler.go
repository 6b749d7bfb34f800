package handler

import (
	"strconv"

	"skill-evolution/internal/delivery/http/dto"
	"skill-evolution/internal/delivery/http/middleware"
	"skill-evolution/internal/domain/assessment"
	"skill-evolution/internal/pkg/response"
	"skill-evolution/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/history", h.History)
	r.Get("/:skill/questions", h.Questions)
	r.Post("/:skill/submit", h.Submit)
}

func (h *AssessmentHandler) Questions(c fiber.Ctx) error {
	qs, err := h.uc.Questions(c.Context(), c.Params("skill"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"questions": dto.NewQuestionResponses(qs),
	})
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req dto.AssessmentSubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := dto.Validate(&req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", nil, err)
	}

	subs := make([]assessment.Submission, 0, len(req.Answers))
	for _, a := range req.Answers {
		subs = append(subs, assessment.Submission{QuestionID: a.QuestionID, SelectedIndex: a.SelectedIndex})
	}

	result, err := h.uc.Submit(c.Context(), userID, c.Params("skill"), subs)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

func (h *AssessmentHandler) History(c fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
		}
		limit = v
	}

	entries, err := h.uc.History(c.Context(), userID, c.Query("skill"), limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"results": entries})
}
