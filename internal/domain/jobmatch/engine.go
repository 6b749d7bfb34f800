package jobmatch

import (
	"math"
	"sort"

	"skill-evolution/internal/domain/lexicon"

	"github.com/google/uuid"
)

// Posting is one job opening with its required skill set.
type Posting struct {
	ID             uuid.UUID
	Title          string
	Company        string
	RequiredSkills []string
}

// Match is one scored posting. HighlyRecommended marks an overlap of 80% or
// more.
type Match struct {
	JobID             uuid.UUID `json:"job_id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	MatchPercentage   float64   `json:"match_percentage"`
	MatchingSkills    []string  `json:"matching_skills"`
	MissingSkills     []string  `json:"missing_skills"`
	HighlyRecommended bool      `json:"highly_recommended"`
}

const highlyRecommendedThreshold = 80.0

// Rank scores every posting by overlap between the user's skills and the
// posting's required skills, sorted by match percentage descending (stable).
// Postings with no required skills are excluded entirely rather than scored
// as zero.
func Rank(skills []string, postings []Posting) []Match {
	have := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		have[lexicon.Normalize(s)] = struct{}{}
	}

	matches := make([]Match, 0, len(postings))
	for _, p := range postings {
		required := normalizeSet(p.RequiredSkills)
		if len(required) == 0 {
			continue
		}

		matching := make([]string, 0, len(required))
		missing := make([]string, 0, len(required))
		for _, r := range required {
			if _, ok := have[r]; ok {
				matching = append(matching, r)
			} else {
				missing = append(missing, r)
			}
		}

		pct := roundOneDecimal(float64(len(matching)) / float64(len(required)) * 100)
		matches = append(matches, Match{
			JobID:             p.ID,
			Title:             p.Title,
			Company:           p.Company,
			MatchPercentage:   pct,
			MatchingSkills:    matching,
			MissingSkills:     missing,
			HighlyRecommended: pct >= highlyRecommendedThreshold,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	return matches
}

// normalizeSet lowercases, dedupes, and sorts so skill lists in the output
// are deterministic.
func normalizeSet(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		n := lexicon.Normalize(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
