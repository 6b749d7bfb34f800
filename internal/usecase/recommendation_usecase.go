package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/gap"
	"skill-evolution/internal/domain/lexicon"
	"skill-evolution/internal/domain/pathway"
	"skill-evolution/internal/domain/user"
	"skill-evolution/internal/repository"
)

// Recommendation bundles the gap analysis for a target role with a learning
// pathway covering every missing skill.
type Recommendation struct {
	TargetRole string         `json:"target_role"`
	Gaps       []gap.Entry    `json:"gaps"`
	Pathway    []pathway.Step `json:"pathway"`
}

// RecommendInput optionally overrides the stored skill set and target role.
// Empty fields fall back to the user's stored state.
type RecommendInput struct {
	Skills     []string
	TargetRole string
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, userID uuid.UUID, in RecommendInput) (Recommendation, error)
}

type Recommender struct {
	users     user.Repository
	skills    repository.UserSkillRepository
	demand    repository.DemandRepository
	generator *pathway.Generator
}

func NewRecommendationUsecase(
	users user.Repository,
	skills repository.UserSkillRepository,
	demand repository.DemandRepository,
	generator *pathway.Generator,
) *Recommender {
	if generator == nil {
		generator = pathway.NewGenerator(pathway.DefaultCatalog())
	}
	return &Recommender{users: users, skills: skills, demand: demand, generator: generator}
}

func (r *Recommender) Recommend(ctx context.Context, userID uuid.UUID, in RecommendInput) (Recommendation, error) {
	targetRole := strings.TrimSpace(in.TargetRole)
	if targetRole == "" {
		usr, err := r.users.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return Recommendation{}, ErrNotFound
			}
			return Recommendation{}, ErrInternal
		}
		targetRole = usr.TargetRole
	}

	have := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		if n := lexicon.Normalize(s); n != "" {
			have = append(have, n)
		}
	}
	if len(have) == 0 {
		rows, err := r.skills.FindByUserID(ctx, userID)
		if err != nil {
			return Recommendation{}, ErrInternal
		}
		for _, row := range rows {
			have = append(have, row.SkillName)
		}
	}

	demandRows, err := r.demand.DemandForRole(ctx, targetRole)
	if err != nil {
		return Recommendation{}, ErrInternal
	}
	demand := make([]gap.DemandEntry, 0, len(demandRows))
	for _, d := range demandRows {
		demand = append(demand, gap.DemandEntry{Skill: d.SkillName, Importance: d.Importance})
	}

	gaps := gap.Analyze(have, demand)
	return Recommendation{
		TargetRole: targetRole,
		Gaps:       gaps,
		Pathway:    r.generator.Generate(gaps),
	}, nil
}
