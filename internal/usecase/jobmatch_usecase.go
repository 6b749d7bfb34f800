package usecase

import (
	"context"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/jobmatch"
	"skill-evolution/internal/domain/lexicon"
	"skill-evolution/internal/repository"
)

type JobMatchUsecase interface {
	// MatchesForUser ranks all stored postings. With supplied skills the
	// stored skill set is bypassed; otherwise the user's declared skills are
	// used.
	MatchesForUser(ctx context.Context, userID uuid.UUID, supplied []string) ([]jobmatch.Match, error)
}

type JobMatcher struct {
	skills repository.UserSkillRepository
	jobs   repository.JobRepository
}

func NewJobMatchUsecase(skills repository.UserSkillRepository, jobs repository.JobRepository) *JobMatcher {
	return &JobMatcher{skills: skills, jobs: jobs}
}

func (j *JobMatcher) MatchesForUser(ctx context.Context, userID uuid.UUID, supplied []string) ([]jobmatch.Match, error) {
	have := make([]string, 0, len(supplied))
	for _, s := range supplied {
		if n := lexicon.Normalize(s); n != "" {
			have = append(have, n)
		}
	}
	if len(have) == 0 {
		rows, err := j.skills.FindByUserID(ctx, userID)
		if err != nil {
			return nil, ErrInternal
		}
		for _, r := range rows {
			have = append(have, r.SkillName)
		}
	}

	postings, err := j.jobs.ListPostings(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	in := make([]jobmatch.Posting, 0, len(postings))
	for _, p := range postings {
		in = append(in, jobmatch.Posting{
			ID:             p.ID,
			Title:          p.Title,
			Company:        p.Company,
			RequiredSkills: p.RequiredSkills,
		})
	}

	return jobmatch.Rank(have, in), nil
}
