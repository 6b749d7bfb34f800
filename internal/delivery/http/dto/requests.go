// Package dto holds the request and response shapes of the HTTP surface.
// Request structs carry validation tags; handlers call Validate before
// touching a usecase.
package dto

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation on a request DTO.
func Validate(req any) error {
	return validate.Struct(req)
}

type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Username   string `json:"username" validate:"omitempty,min=3,max=64"`
	Password   string `json:"password" validate:"required,min=8,max=128"`
	TargetRole string `json:"target_role" validate:"omitempty,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateTargetRoleRequest struct {
	TargetRole string `json:"target_role" validate:"required,max=128"`
}

type UpdateSkillsRequest struct {
	Skills []string `json:"skills" validate:"required,max=100,dive,min=1,max=64"`
}

type ResumeAnalyzeRequest struct {
	Text string `json:"text" validate:"required,min=1,max=100000"`
	Save bool   `json:"save"`
}

type AnswerRequest struct {
	QuestionID    int `json:"question_id" validate:"required,min=1"`
	SelectedIndex int `json:"selected_index" validate:"min=0,max=3"`
}

type AssessmentSubmitRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"required,min=1,max=50,dive"`
}

type RecommendRequest struct {
	Skills     []string `json:"skills" validate:"omitempty,max=100,dive,min=1,max=64"`
	TargetRole string   `json:"target_role" validate:"omitempty,max=128"`
}

type JobMatchRequest struct {
	Skills []string `json:"skills" validate:"omitempty,max=100,dive,min=1,max=64"`
}

type TurnRequest struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

type CoachChatRequest struct {
	Message string        `json:"message" validate:"required,min=1,max=4000"`
	History []TurnRequest `json:"history" validate:"omitempty,max=50,dive"`
}
