package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/user"
	"skill-evolution/internal/repository"
)

type mockUserSkillRepo struct {
	rows []repository.UserSkill
	err  error
}

func (m mockUserSkillRepo) FindByUserID(context.Context, uuid.UUID) ([]repository.UserSkill, error) {
	return m.rows, m.err
}
func (m mockUserSkillRepo) ReplaceForUser(context.Context, uuid.UUID, []string) error { return nil }

type mockDemandRepo struct {
	history []repository.DemandPoint
	demand  []repository.RoleDemandRow
	err     error
}

func (m mockDemandRepo) HistoryBySkill(context.Context, string) ([]repository.DemandPoint, error) {
	return m.history, m.err
}
func (m mockDemandRepo) DemandForRole(context.Context, string) ([]repository.RoleDemandRow, error) {
	return m.demand, m.err
}

type mockLeaderboardRepo struct {
	rows []repository.LeaderboardRow
	err  error
}

func (m mockLeaderboardRepo) TopByXP(context.Context, int) ([]repository.LeaderboardRow, error) {
	return m.rows, m.err
}

func TestRecommendation_GapsRankedAndCovered(t *testing.T) {
	userID := uuid.New()
	uc := NewRecommendationUsecase(
		mockUserRepo{user: user.User{ID: userID, TargetRole: "Software Engineer"}},
		mockUserSkillRepo{rows: []repository.UserSkill{
			{SkillName: "python", ProficiencyLevel: 80},
		}},
		mockDemandRepo{demand: []repository.RoleDemandRow{
			{SkillName: "python", Importance: 90},
			{SkillName: "aws", Importance: 85},
			{SkillName: "docker", Importance: 80},
		}},
		nil,
	)

	rec, err := uc.Recommend(context.Background(), userID, RecommendInput{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.TargetRole != "Software Engineer" {
		t.Fatalf("unexpected target role %q", rec.TargetRole)
	}
	if len(rec.Gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %+v", rec.Gaps)
	}
	if rec.Gaps[0].Skill != "aws" || rec.Gaps[1].Skill != "docker" {
		t.Fatalf("gaps not ranked by importance: %+v", rec.Gaps)
	}
	// Every gap gets a pathway step in the same order.
	if len(rec.Pathway) != len(rec.Gaps) {
		t.Fatalf("pathway must cover every gap: %+v", rec.Pathway)
	}
	for i, step := range rec.Pathway {
		if step.TargetSkill != rec.Gaps[i].Skill {
			t.Fatalf("step %d targets %q, want %q", i, step.TargetSkill, rec.Gaps[i].Skill)
		}
	}
}

func TestRecommendation_UnknownUser(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockUserRepo{err: user.ErrNotFound},
		mockUserSkillRepo{},
		mockDemandRepo{},
		nil,
	)
	if _, err := uc.Recommend(context.Background(), uuid.New(), RecommendInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecommendation_SuppliedSkillsBypassStored(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockUserRepo{err: user.ErrNotFound},
		mockUserSkillRepo{err: errors.New("must not be called")},
		mockDemandRepo{demand: []repository.RoleDemandRow{
			{SkillName: "python", Importance: 90},
			{SkillName: "sql", Importance: 65},
		}},
		nil,
	)

	// Supplying both skills and target role means no user lookups at all.
	rec, err := uc.Recommend(context.Background(), uuid.New(), RecommendInput{
		Skills:     []string{"Python"},
		TargetRole: "Data Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec.Gaps) != 1 || rec.Gaps[0].Skill != "sql" {
		t.Fatalf("expected only sql gap, got %+v", rec.Gaps)
	}
}

func TestLeaderboard_NegativeLimitRejected(t *testing.T) {
	uc := NewLeaderboardUsecase(mockLeaderboardRepo{}, nil, 0)
	if _, err := uc.Top(context.Background(), -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeaderboard_AliasesOnly(t *testing.T) {
	uc := NewLeaderboardUsecase(mockLeaderboardRepo{rows: []repository.LeaderboardRow{
		{UserHandle: 3, TotalXP: 6000},
		{UserHandle: 1, TotalXP: 2500},
	}}, nil, 0)

	entries, err := uc.Top(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Alias != "Evolution Pioneer #1003" {
		t.Fatalf("unexpected alias %q", entries[0].Alias)
	}
	if entries[0].League != "Gold" || entries[1].League != "Silver" {
		t.Fatalf("leagues inconsistent: %+v", entries)
	}
}
