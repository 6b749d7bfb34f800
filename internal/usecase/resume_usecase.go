package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"skill-evolution/internal/domain/extract"
	"skill-evolution/internal/repository"
)

// ResumeAnalysis is the outcome of scanning free text for known skills.
type ResumeAnalysis struct {
	ExtractedSkills []string      `json:"extracted_skills"`
	Saved           bool          `json:"saved"`
	Skills          []SkillRecord `json:"skills,omitempty"`
}

type ResumeUsecase interface {
	// Analyze extracts known skills from resume text. When save is set the
	// extracted set replaces the user's stored skills.
	Analyze(ctx context.Context, userID uuid.UUID, text string, save bool) (ResumeAnalysis, error)
}

type Resume struct {
	extractor *extract.Extractor
	skills    repository.UserSkillRepository
}

func NewResumeUsecase(extractor *extract.Extractor, skills repository.UserSkillRepository) *Resume {
	return &Resume{extractor: extractor, skills: skills}
}

func (r *Resume) Analyze(ctx context.Context, userID uuid.UUID, text string, save bool) (ResumeAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return ResumeAnalysis{}, ErrInvalidInput
	}

	extracted := r.extractor.Extract(text)
	out := ResumeAnalysis{ExtractedSkills: extracted}

	if !save {
		return out, nil
	}

	if err := r.skills.ReplaceForUser(ctx, userID, extracted); err != nil {
		return ResumeAnalysis{}, ErrInternal
	}
	rows, err := r.skills.FindByUserID(ctx, userID)
	if err != nil {
		return ResumeAnalysis{}, ErrInternal
	}

	out.Saved = true
	out.Skills = toSkillRecords(rows)
	return out, nil
}
