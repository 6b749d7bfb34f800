package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/gamify"
	"skill-evolution/internal/domain/user"
	"skill-evolution/internal/repository"
)

// DashboardSummary is the single payload the dashboard renders from: profile,
// progress toward the next league, and the most recent assessments.
type DashboardSummary struct {
	Profile           Profile        `json:"profile"`
	NextLeague        string         `json:"next_league,omitempty"`
	XPToNextLeague    int64          `json:"xp_to_next_league,omitempty"`
	ValidatedSkills   int            `json:"validated_skills"`
	Recommendation    Recommendation `json:"recommendation"`
	RecentAssessments []HistoryEntry `json:"recent_assessments"`
}

const recentAssessmentsLimit = 5

type DashboardUsecase interface {
	Summary(ctx context.Context, userID uuid.UUID) (DashboardSummary, error)
}

type Dashboard struct {
	users       user.Repository
	skills      repository.UserSkillRepository
	results     repository.AssessmentRepository
	recommender RecommendationUsecase
}

func NewDashboardUsecase(
	users user.Repository,
	skills repository.UserSkillRepository,
	results repository.AssessmentRepository,
	recommender RecommendationUsecase,
) *Dashboard {
	return &Dashboard{users: users, skills: skills, results: results, recommender: recommender}
}

func (d *Dashboard) Summary(ctx context.Context, userID uuid.UUID) (DashboardSummary, error) {
	usr, err := d.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return DashboardSummary{}, ErrNotFound
		}
		return DashboardSummary{}, ErrInternal
	}

	rows, err := d.skills.FindByUserID(ctx, userID)
	if err != nil {
		return DashboardSummary{}, ErrInternal
	}

	recent, err := d.results.ListByUser(ctx, userID, "", recentAssessmentsLimit)
	if err != nil {
		return DashboardSummary{}, ErrInternal
	}

	validated := 0
	for _, r := range rows {
		if r.IsValidated {
			validated++
		}
	}

	history := make([]HistoryEntry, 0, len(recent))
	for _, r := range recent {
		history = append(history, HistoryEntry{
			ID:          r.ID,
			SkillName:   r.SkillName,
			Score:       r.Score,
			Passed:      r.Passed,
			XPEarned:    r.XPEarned,
			CompletedAt: r.CompletedAt,
		})
	}

	rec, err := d.recommender.Recommend(ctx, userID, RecommendInput{})
	if err != nil {
		return DashboardSummary{}, err
	}

	next, toNext := gamify.NextLeague(usr.TotalXP)

	return DashboardSummary{
		Profile:           buildProfile(usr, rows),
		NextLeague:        next,
		XPToNextLeague:    toNext,
		ValidatedSkills:   validated,
		Recommendation:    rec,
		RecentAssessments: history,
	}, nil
}
