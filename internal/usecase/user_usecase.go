package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/lexicon"
	"skill-evolution/internal/domain/user"
	"skill-evolution/internal/repository"
)

// Profile is the authenticated user's own view of their account.
type Profile struct {
	ID         uuid.UUID     `json:"id"`
	Email      string        `json:"email"`
	Username   string        `json:"username"`
	IsGuest    bool          `json:"is_guest"`
	TargetRole string        `json:"target_role"`
	TotalXP    int64         `json:"total_xp"`
	League     string        `json:"league"`
	Skills     []SkillRecord `json:"skills"`
}

type SkillRecord struct {
	SkillName        string `json:"skill_name"`
	ProficiencyLevel int    `json:"proficiency_level"`
	IsValidated      bool   `json:"is_validated"`
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateTargetRole(ctx context.Context, userID uuid.UUID, targetRole string) (Profile, error)
	UpdateSkills(ctx context.Context, userID uuid.UUID, skills []string) ([]SkillRecord, error)
}

type User struct {
	users  user.Repository
	skills repository.UserSkillRepository
	lex    *lexicon.Lexicon
}

func NewUserUsecase(users user.Repository, skills repository.UserSkillRepository, lex *lexicon.Lexicon) *User {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &User{users: users, skills: skills, lex: lex}
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}

	rows, err := u.skills.FindByUserID(ctx, userID)
	if err != nil {
		return Profile{}, ErrInternal
	}

	return buildProfile(usr, rows), nil
}

func (u *User) UpdateTargetRole(ctx context.Context, userID uuid.UUID, targetRole string) (Profile, error) {
	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		return Profile{}, ErrInvalidInput
	}

	if err := u.users.UpdateTargetRole(ctx, userID, targetRole); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, ErrInternal
	}

	return u.GetProfile(ctx, userID)
}

// UpdateSkills replaces the user's self-declared skill set. Unknown terms are
// rejected so the stored set stays inside the tracked vocabulary; validated
// skills keep their validation when retained.
func (u *User) UpdateSkills(ctx context.Context, userID uuid.UUID, skills []string) ([]SkillRecord, error) {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		n := lexicon.Normalize(s)
		if n == "" {
			continue
		}
		if !u.lex.Contains(n) {
			return nil, ErrInvalidInput
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		normalized = append(normalized, n)
	}

	if err := u.skills.ReplaceForUser(ctx, userID, normalized); err != nil {
		return nil, ErrInternal
	}

	rows, err := u.skills.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return toSkillRecords(rows), nil
}

func buildProfile(usr user.User, rows []repository.UserSkill) Profile {
	return Profile{
		ID:         usr.ID,
		Email:      usr.Email,
		Username:   usr.Username,
		IsGuest:    usr.IsGuest,
		TargetRole: usr.TargetRole,
		TotalXP:    usr.TotalXP,
		League:     usr.League,
		Skills:     toSkillRecords(rows),
	}
}

func toSkillRecords(rows []repository.UserSkill) []SkillRecord {
	out := make([]SkillRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, SkillRecord{
			SkillName:        r.SkillName,
			ProficiencyLevel: r.ProficiencyLevel,
			IsValidated:      r.IsValidated,
		})
	}
	return out
}
