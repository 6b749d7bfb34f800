package gamify

import (
	"errors"
	"testing"
)

func TestDeriveLeague_Boundaries(t *testing.T) {
	cases := []struct {
		xp   int64
		want string
	}{
		{0, "Bronze"},
		{1999, "Bronze"},
		{2000, "Silver"},
		{4999, "Silver"},
		{5000, "Gold"},
		{9999, "Gold"},
		{10000, "Platinum"},
		{24999, "Platinum"},
		{25000, "Diamond"},
		{1000000, "Diamond"},
	}
	for _, c := range cases {
		if got := DeriveLeague(c.xp); got != c.want {
			t.Fatalf("DeriveLeague(%d): expected %s, got %s", c.xp, c.want, got)
		}
	}
}

func TestApplyAssessmentResult_Pass(t *testing.T) {
	prev := Progress{
		TotalXP: 1500,
		League:  DeriveLeague(1500),
		Skills:  []SkillRecord{{SkillName: "react", Proficiency: 40, Validated: false}},
	}

	next, out := ApplyAssessmentResult(prev, "React", 80.0)

	if !out.Passed || out.XPEarned != XPAssessmentPass {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if next.TotalXP != 2500 {
		t.Fatalf("expected 2500 XP, got %d", next.TotalXP)
	}
	if next.League != "Silver" || out.League != "Silver" {
		t.Fatalf("expected Silver after crossing 2000, got %s/%s", next.League, out.League)
	}
	if len(next.Skills) != 1 {
		t.Fatalf("expected existing record updated, got %v", next.Skills)
	}
	rec := next.Skills[0]
	if !rec.Validated || rec.Proficiency != 80 {
		t.Fatalf("expected validated @80, got %+v", rec)
	}
}

func TestApplyAssessmentResult_ProficiencyNeverLowered(t *testing.T) {
	prev := Progress{
		Skills: []SkillRecord{{SkillName: "go", Proficiency: 95, Validated: true}},
	}

	next, _ := ApplyAssessmentResult(prev, "go", 72.5)
	if next.Skills[0].Proficiency != 95 {
		t.Fatalf("proficiency must be max(existing, floor(score)), got %d", next.Skills[0].Proficiency)
	}
	if !next.Skills[0].Validated {
		t.Fatalf("skill must stay validated")
	}
}

func TestApplyAssessmentResult_Fail(t *testing.T) {
	prev := Progress{
		TotalXP: 500,
		Skills:  []SkillRecord{{SkillName: "sql", Proficiency: 30}},
	}

	next, out := ApplyAssessmentResult(prev, "sql", 69.9)
	if out.Passed {
		t.Fatalf("69.9 must not pass")
	}
	if out.XPEarned != XPConsolation || next.TotalXP != 600 {
		t.Fatalf("expected consolation XP, got %+v / %d", out, next.TotalXP)
	}
	if next.Skills[0].Validated {
		t.Fatalf("failed assessment must not validate the skill")
	}
}

func TestApplyAssessmentResult_NewSkillCreated(t *testing.T) {
	next, _ := ApplyAssessmentResult(Progress{}, "Docker", 77.5)
	if len(next.Skills) != 1 {
		t.Fatalf("expected new skill record, got %v", next.Skills)
	}
	rec := next.Skills[0]
	if rec.SkillName != "docker" || rec.Proficiency != 77 || !rec.Validated {
		t.Fatalf("unexpected new record: %+v", rec)
	}
}

func TestApplyAssessmentResult_InputNotMutated(t *testing.T) {
	prev := Progress{
		TotalXP: 100,
		League:  "Bronze",
		Skills:  []SkillRecord{{SkillName: "go", Proficiency: 10}},
	}

	_, _ = ApplyAssessmentResult(prev, "go", 90)

	if prev.TotalXP != 100 || prev.Skills[0].Validated || prev.Skills[0].Proficiency != 10 {
		t.Fatalf("input snapshot mutated: %+v", prev)
	}
}

func TestApplyAssessmentResult_LeagueConsistentWithXP(t *testing.T) {
	p := Progress{}
	// Repeated passes must keep league a pure function of XP at every step.
	for i := 0; i < 30; i++ {
		var out AssessmentOutcome
		p, out = ApplyAssessmentResult(p, "go", 100)
		if out.League != DeriveLeague(p.TotalXP) {
			t.Fatalf("league %s inconsistent with xp %d", out.League, p.TotalXP)
		}
	}
	if p.TotalXP != 30000 || p.League != "Diamond" {
		t.Fatalf("expected Diamond at 30000, got %s at %d", p.League, p.TotalXP)
	}
}

func TestBuildLeaderboard(t *testing.T) {
	rows := []Row{
		{UserHandle: 7, TotalXP: 8500},
		{UserHandle: 3, TotalXP: 12000},
		{UserHandle: 11, TotalXP: 8500},
		{UserHandle: 4, TotalXP: 100},
	}

	entries, err := BuildLeaderboard(rows, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Alias != "Evolution Pioneer #1003" || entries[0].Rank != 1 {
		t.Fatalf("unexpected top entry: %+v", entries[0])
	}
	// Ties keep input order: handle 7 arrived before handle 11.
	if entries[1].Alias != "Evolution Pioneer #1007" || entries[2].Alias != "Evolution Pioneer #1011" {
		t.Fatalf("tie order broken: %+v", entries)
	}
	if entries[0].League != "Platinum" || entries[1].League != "Gold" {
		t.Fatalf("leagues inconsistent with xp: %+v", entries)
	}
}

func TestBuildLeaderboard_NegativeLimit(t *testing.T) {
	_, err := BuildLeaderboard(nil, -1)
	if !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestBuildLeaderboard_DefaultLimit(t *testing.T) {
	rows := make([]Row, 15)
	for i := range rows {
		rows[i] = Row{UserHandle: int64(i), TotalXP: int64(1000 - i)}
	}
	entries, err := BuildLeaderboard(rows, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != DefaultLeaderboardLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLeaderboardLimit, len(entries))
	}
}

func TestNextLeague(t *testing.T) {
	cases := []struct {
		xp     int64
		league string
		toNext int64
	}{
		{0, "Silver", 2000},
		{1999, "Silver", 1},
		{2000, "Gold", 3000},
		{9999, "Platinum", 1},
		{24999, "Diamond", 1},
		{25000, "", 0},
		{100000, "", 0},
	}
	for _, c := range cases {
		league, toNext := NextLeague(c.xp)
		if league != c.league || toNext != c.toNext {
			t.Fatalf("NextLeague(%d) = (%q, %d), want (%q, %d)", c.xp, league, toNext, c.league, c.toNext)
		}
	}
}
