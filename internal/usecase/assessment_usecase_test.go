package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/assessment"
	"skill-evolution/internal/domain/user"
	"skill-evolution/internal/repository"
)

type mockUserRepo struct {
	user user.User
	err  error
}

func (m mockUserRepo) Create(context.Context, user.User) error { return nil }
func (m mockUserRepo) GetByID(context.Context, uuid.UUID) (user.User, error) {
	return m.user, m.err
}
func (m mockUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return m.user, m.err
}
func (m mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (m mockUserRepo) UpdateTargetRole(context.Context, uuid.UUID, string) error {
	return nil
}

type mockProgressRepo struct {
	record repository.ProgressRecord
	getErr error

	savedRecord    *repository.AssessmentRecord
	savedTotalXP   int64
	savedLeague    string
	savedValidated *repository.UserSkill
	saveErr        error
}

func (m *mockProgressRepo) GetByUserID(context.Context, uuid.UUID) (repository.ProgressRecord, error) {
	return m.record, m.getErr
}

func (m *mockProgressRepo) SaveAssessment(_ context.Context, rec repository.AssessmentRecord, totalXP int64, league string, validated *repository.UserSkill) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedRecord = &rec
	m.savedTotalXP = totalXP
	m.savedLeague = league
	m.savedValidated = validated
	return nil
}

type mockAssessmentRepo struct {
	rows []repository.AssessmentResultRow
	err  error
}

func (m mockAssessmentRepo) ListByUser(context.Context, uuid.UUID, string, int) ([]repository.AssessmentResultRow, error) {
	return m.rows, m.err
}

type mockCache struct {
	invalidated bool
}

func (m *mockCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (m *mockCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (m *mockCache) InvalidateLeaderboards(context.Context) error {
	m.invalidated = true
	return nil
}

func perfectSubmissions(skill string) []assessment.Submission {
	qs := assessment.Questions(skill)
	subs := make([]assessment.Submission, 0, len(qs))
	for _, q := range qs {
		subs = append(subs, assessment.Submission{QuestionID: q.ID, SelectedIndex: q.CorrectIndex})
	}
	return subs
}

func TestAssessmentSubmit_PassAwardsXPAndValidatesSkill(t *testing.T) {
	userID := uuid.New()
	progress := &mockProgressRepo{record: repository.ProgressRecord{
		UserID:  userID,
		TotalXP: 1500,
		League:  "Bronze",
	}}
	cache := &mockCache{}
	uc := NewAssessmentUsecase(
		mockUserRepo{user: user.User{ID: userID, UserHandle: 7}},
		progress,
		mockAssessmentRepo{},
		cache,
		nil,
	)

	res, err := uc.Submit(context.Background(), userID, "Python", perfectSubmissions("python"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.Passed || res.ScorePct != 100.0 {
		t.Fatalf("expected perfect pass, got %+v", res)
	}
	if res.XPEarned != 1000 || res.TotalXP != 2500 {
		t.Fatalf("expected 1000 xp on pass, got %+v", res)
	}
	if res.League != "Silver" {
		t.Fatalf("expected promotion to Silver at 2500 xp, got %q", res.League)
	}

	if progress.savedRecord == nil || progress.savedRecord.SkillName != "python" {
		t.Fatalf("expected saved record for python, got %+v", progress.savedRecord)
	}
	if progress.savedValidated == nil || !progress.savedValidated.IsValidated {
		t.Fatalf("expected validated skill upsert, got %+v", progress.savedValidated)
	}
	if progress.savedValidated.ProficiencyLevel != 100 {
		t.Fatalf("expected proficiency 100, got %d", progress.savedValidated.ProficiencyLevel)
	}
	if !cache.invalidated {
		t.Fatalf("expected leaderboard cache invalidation")
	}
}

func TestAssessmentSubmit_FailAwardsConsolationOnly(t *testing.T) {
	userID := uuid.New()
	progress := &mockProgressRepo{record: repository.ProgressRecord{UserID: userID}}
	uc := NewAssessmentUsecase(mockUserRepo{user: user.User{ID: userID}}, progress, mockAssessmentRepo{}, &mockCache{}, nil)

	// Answer only the first question correctly: 10% is well below passing.
	qs := assessment.Questions("go")
	subs := []assessment.Submission{{QuestionID: qs[0].ID, SelectedIndex: qs[0].CorrectIndex}}
	for _, q := range qs[1:] {
		subs = append(subs, assessment.Submission{QuestionID: q.ID, SelectedIndex: (q.CorrectIndex + 1) % len(q.Options)})
	}

	res, err := uc.Submit(context.Background(), userID, "go", subs)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Passed {
		t.Fatalf("expected fail, got %+v", res)
	}
	if res.XPEarned != 100 {
		t.Fatalf("expected consolation xp 100, got %d", res.XPEarned)
	}
	if progress.savedValidated != nil {
		t.Fatalf("failed assessment must not validate skill: %+v", progress.savedValidated)
	}
}

func TestAssessmentSubmit_UnknownUser(t *testing.T) {
	uc := NewAssessmentUsecase(
		mockUserRepo{},
		&mockProgressRepo{getErr: repository.ErrUserNotFound},
		mockAssessmentRepo{},
		&mockCache{},
		nil,
	)
	_, err := uc.Submit(context.Background(), uuid.New(), "python", perfectSubmissions("python"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssessmentSubmit_EmptyInput(t *testing.T) {
	uc := NewAssessmentUsecase(mockUserRepo{}, &mockProgressRepo{}, mockAssessmentRepo{}, &mockCache{}, nil)

	if _, err := uc.Submit(context.Background(), uuid.New(), "", perfectSubmissions("python")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty skill, got %v", err)
	}
	if _, err := uc.Submit(context.Background(), uuid.New(), "python", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for no submissions, got %v", err)
	}
}

func TestAssessmentHistory_NegativeLimit(t *testing.T) {
	uc := NewAssessmentUsecase(mockUserRepo{}, &mockProgressRepo{}, mockAssessmentRepo{}, &mockCache{}, nil)
	if _, err := uc.History(context.Background(), uuid.New(), "", -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
