package gamify

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"skill-evolution/internal/domain/lexicon"
)

// XP awards. A failed assessment still earns consolation XP for trying.
const (
	XPAssessmentPass = 1000
	XPConsolation    = 100

	PassThreshold = 70.0

	DefaultLeaderboardLimit = 10
)

// leagueThresholds is ordered ascending; league derivation walks it in order,
// so the league is always the highest threshold not exceeding total XP.
var leagueThresholds = []struct {
	Name string
	XP   int64
}{
	{"Bronze", 0},
	{"Silver", 2000},
	{"Gold", 5000},
	{"Platinum", 10000},
	{"Diamond", 25000},
}

var ErrInvalidLimit = errors.New("invalid leaderboard limit")

// SkillRecord is one declared or validated skill in a user's progress
// snapshot.
type SkillRecord struct {
	SkillName   string `json:"skill_name"`
	Proficiency int    `json:"proficiency"`
	Validated   bool   `json:"validated"`
}

// Progress is a snapshot of the externally stored XP/league state. League is
// always derived from TotalXP, never set independently.
type Progress struct {
	TotalXP int64         `json:"total_xp"`
	League  string        `json:"league"`
	Skills  []SkillRecord `json:"skills"`
}

// AssessmentOutcome summarizes one processed assessment.
type AssessmentOutcome struct {
	Passed     bool   `json:"passed"`
	XPEarned   int64  `json:"xp_earned"`
	NewTotalXP int64  `json:"new_total_xp"`
	League     string `json:"league"`
}

// DeriveLeague returns the league for a total XP value.
func DeriveLeague(totalXP int64) string {
	league := leagueThresholds[0].Name
	for _, t := range leagueThresholds {
		if totalXP >= t.XP {
			league = t.Name
		}
	}
	return league
}

// NextLeague returns the next tier above a total XP value and the XP still
// needed to reach it. At the top tier it returns "" and 0.
func NextLeague(totalXP int64) (string, int64) {
	for _, t := range leagueThresholds {
		if totalXP < t.XP {
			return t.Name, t.XP - totalXP
		}
	}
	return "", 0
}

// Leagues returns the tier names in ascending threshold order.
func Leagues() []string {
	out := make([]string, 0, len(leagueThresholds))
	for _, t := range leagueThresholds {
		out = append(out, t.Name)
	}
	return out
}

// ApplyAssessmentResult advances a progress snapshot with one assessment
// score and returns the new snapshot plus the outcome. The input snapshot is
// never mutated; persistence is the caller's concern.
func ApplyAssessmentResult(p Progress, skill string, score float64) (Progress, AssessmentOutcome) {
	passed := score >= PassThreshold

	var earned int64 = XPConsolation
	if passed {
		earned = XPAssessmentPass
	}

	next := Progress{
		TotalXP: p.TotalXP + earned,
		Skills:  make([]SkillRecord, len(p.Skills)),
	}
	copy(next.Skills, p.Skills)
	next.League = DeriveLeague(next.TotalXP)

	if passed {
		name := lexicon.Normalize(skill)
		proficiency := int(math.Floor(score))

		found := false
		for i, rec := range next.Skills {
			if lexicon.Normalize(rec.SkillName) != name {
				continue
			}
			if rec.Proficiency > proficiency {
				proficiency = rec.Proficiency
			}
			next.Skills[i] = SkillRecord{SkillName: rec.SkillName, Proficiency: proficiency, Validated: true}
			found = true
			break
		}
		if !found {
			// Assessment for an unlisted skill adds it, already validated.
			next.Skills = append(next.Skills, SkillRecord{SkillName: name, Proficiency: proficiency, Validated: true})
		}
	}

	return next, AssessmentOutcome{
		Passed:     passed,
		XPEarned:   earned,
		NewTotalXP: next.TotalXP,
		League:     next.League,
	}
}

// Row is one leaderboard candidate. UserHandle is an opaque per-user number,
// never an email or username.
type Row struct {
	UserHandle int64
	TotalXP    int64
}

// LeaderboardEntry is one anonymized projection row.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Alias  string `json:"alias"`
	League string `json:"league"`
	XP     int64  `json:"xp"`
}

// BuildLeaderboard projects at most limit rows ranked by XP descending, ties
// keeping input order. Aliases derive from the opaque handle only. A negative
// limit is rejected eagerly.
func BuildLeaderboard(rows []Row, limit int) ([]LeaderboardEntry, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}

	ranked := make([]Row, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalXP > ranked[j].TotalXP
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]LeaderboardEntry, 0, len(ranked))
	for i, r := range ranked {
		out = append(out, LeaderboardEntry{
			Rank:   i + 1,
			Alias:  Alias(r.UserHandle),
			League: DeriveLeague(r.TotalXP),
			XP:     r.TotalXP,
		})
	}
	return out, nil
}

// Alias builds the public pseudonym for a user handle.
func Alias(handle int64) string {
	return fmt.Sprintf("Evolution Pioneer #%d", handle+1000)
}
