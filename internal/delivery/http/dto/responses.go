package dto

import (
	"github.com/google/uuid"

	"skill-evolution/internal/domain/assessment"
	"skill-evolution/internal/domain/user"
)

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	IsGuest    bool      `json:"is_guest"`
	TargetRole string    `json:"target_role"`
	TotalXP    int64     `json:"total_xp"`
	League     string    `json:"league"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		IsGuest:    u.IsGuest,
		TargetRole: u.TargetRole,
		TotalXP:    u.TotalXP,
		League:     u.League,
	}
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// QuestionResponse deliberately omits the correct answer; grading always
// regenerates the question set server-side.
type QuestionResponse struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

func NewQuestionResponses(qs []assessment.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, QuestionResponse{ID: q.ID, Text: q.Text, Options: q.Options})
	}
	return out
}
