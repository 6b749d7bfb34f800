package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/assessment"
	"skill-evolution/internal/domain/gamify"
	"skill-evolution/internal/domain/lexicon"
	"skill-evolution/internal/domain/user"
	"skill-evolution/internal/repository"
	"skill-evolution/internal/ws"
)

// SubmitResult is the graded outcome of one assessment attempt.
type SubmitResult struct {
	Skill        string  `json:"skill"`
	ScorePct     float64 `json:"score_pct"`
	CorrectCount int     `json:"correct_count"`
	Total        int     `json:"total"`
	Passed       bool    `json:"passed"`
	XPEarned     int64   `json:"xp_earned"`
	TotalXP      int64   `json:"total_xp"`
	League       string  `json:"league"`
}

// HistoryEntry is one past assessment result.
type HistoryEntry struct {
	ID          uuid.UUID `json:"id"`
	SkillName   string    `json:"skill_name"`
	Score       float64   `json:"score"`
	Passed      bool      `json:"passed"`
	XPEarned    int64     `json:"xp_earned"`
	CompletedAt time.Time `json:"completed_at"`
}

type AssessmentUsecase interface {
	Questions(ctx context.Context, skill string) ([]assessment.Question, error)
	Submit(ctx context.Context, userID uuid.UUID, skill string, submissions []assessment.Submission) (SubmitResult, error)
	History(ctx context.Context, userID uuid.UUID, skill string, limit int) ([]HistoryEntry, error)
}

type Assessment struct {
	users    user.Repository
	progress repository.ProgressRepository
	results  repository.AssessmentRepository
	cache    Cache
	logger   *log.Logger
}

func NewAssessmentUsecase(
	users user.Repository,
	progress repository.ProgressRepository,
	results repository.AssessmentRepository,
	c Cache,
	logger *log.Logger,
) *Assessment {
	return &Assessment{users: users, progress: progress, results: results, cache: c, logger: logger}
}

// Questions generates the deterministic ten-question set for a skill. The
// same skill always yields the same questions, so grading can regenerate
// them server-side instead of trusting the client.
func (a *Assessment) Questions(_ context.Context, skill string) ([]assessment.Question, error) {
	skill = lexicon.Normalize(skill)
	if skill == "" {
		return nil, ErrInvalidInput
	}
	return assessment.Questions(skill), nil
}

func (a *Assessment) Submit(ctx context.Context, userID uuid.UUID, skill string, submissions []assessment.Submission) (SubmitResult, error) {
	skill = lexicon.Normalize(skill)
	if skill == "" || len(submissions) == 0 {
		return SubmitResult{}, ErrInvalidInput
	}

	score := assessment.Score(skill, submissions)

	prog, err := a.progress.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return SubmitResult{}, ErrNotFound
		}
		return SubmitResult{}, ErrInternal
	}

	current := gamify.Progress{
		TotalXP: prog.TotalXP,
		League:  prog.League,
		Skills:  toGamifySkills(prog.Skills),
	}
	next, outcome := gamify.ApplyAssessmentResult(current, skill, score.ScorePct)

	var validated *repository.UserSkill
	if outcome.Passed {
		for _, s := range next.Skills {
			if s.SkillName == skill {
				validated = &repository.UserSkill{
					UserID:           userID,
					SkillName:        s.SkillName,
					ProficiencyLevel: s.Proficiency,
					IsValidated:      true,
				}
				break
			}
		}
	}

	rec := repository.AssessmentRecord{
		UserID:    userID,
		SkillName: skill,
		Score:     score.ScorePct,
		Passed:    outcome.Passed,
		XPEarned:  outcome.XPEarned,
	}
	if err := a.progress.SaveAssessment(ctx, rec, next.TotalXP, next.League, validated); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return SubmitResult{}, ErrNotFound
		}
		return SubmitResult{}, ErrInternal
	}

	a.publishProgress(ctx, userID, current.League, outcome)

	if a.cache != nil {
		if err := a.cache.InvalidateLeaderboards(ctx); err != nil && a.logger != nil {
			a.logger.Printf("Assessment | leaderboard cache invalidation failed err=%v", err)
		}
	}

	return SubmitResult{
		Skill:        skill,
		ScorePct:     score.ScorePct,
		CorrectCount: score.CorrectCount,
		Total:        score.Total,
		Passed:       outcome.Passed,
		XPEarned:     outcome.XPEarned,
		TotalXP:      outcome.NewTotalXP,
		League:       outcome.League,
	}, nil
}

func (a *Assessment) History(ctx context.Context, userID uuid.UUID, skill string, limit int) ([]HistoryEntry, error) {
	if limit < 0 {
		return nil, ErrInvalidInput
	}
	skill = lexicon.Normalize(skill)

	rows, err := a.results.ListByUser(ctx, userID, skill, limit)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, HistoryEntry{
			ID:          r.ID,
			SkillName:   r.SkillName,
			Score:       r.Score,
			Passed:      r.Passed,
			XPEarned:    r.XPEarned,
			CompletedAt: r.CompletedAt,
		})
	}
	return out, nil
}

// publishProgress pushes ws events after the save committed. Failures here
// never affect the response; the events are advisory.
func (a *Assessment) publishProgress(ctx context.Context, userID uuid.UUID, previousLeague string, outcome gamify.AssessmentOutcome) {
	usr, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return
	}

	ws.NotifyXPAwarded(usr.UserHandle, outcome.XPEarned, outcome.NewTotalXP)
	if outcome.League != previousLeague {
		ws.NotifyLeaguePromoted(usr.UserHandle, outcome.NewTotalXP, outcome.League)
	}
}

func toGamifySkills(rows []repository.UserSkill) []gamify.SkillRecord {
	out := make([]gamify.SkillRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, gamify.SkillRecord{
			SkillName:   r.SkillName,
			Proficiency: r.ProficiencyLevel,
			Validated:   r.IsValidated,
		})
	}
	return out
}
