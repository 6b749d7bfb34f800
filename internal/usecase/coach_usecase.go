package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/coach"
	"skill-evolution/internal/domain/user"
)

type CoachUsecase interface {
	// Chat drafts a coach reply from the user's stored progress and the
	// provided conversation history.
	Chat(ctx context.Context, userID uuid.UUID, message string, history []coach.Turn) (coach.Reply, error)
}

type Coach struct {
	users user.Repository
}

func NewCoachUsecase(users user.Repository) *Coach {
	return &Coach{users: users}
}

func (c *Coach) Chat(ctx context.Context, userID uuid.UUID, message string, history []coach.Turn) (coach.Reply, error) {
	if strings.TrimSpace(message) == "" {
		return coach.Reply{}, ErrInvalidInput
	}

	usr, err := c.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return coach.Reply{}, ErrNotFound
		}
		return coach.Reply{}, ErrInternal
	}

	return coach.Respond(message, history, coach.Context{
		TotalXP:    usr.TotalXP,
		League:     usr.League,
		TargetRole: usr.TargetRole,
	}), nil
}
