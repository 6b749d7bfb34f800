package gap

import "testing"

func TestAnalyze_MissingSkillsRankedByImportance(t *testing.T) {
	demand := []DemandEntry{
		{Skill: "javascript", Importance: 90},
		{Skill: "react", Importance: 85},
		{Skill: "node.js", Importance: 80},
		{Skill: "docker", Importance: 75},
	}

	got := Analyze([]string{"html", "css", "javascript"}, demand)
	if len(got) != 3 {
		t.Fatalf("expected 3 gaps, got %d: %v", len(got), got)
	}
	if got[0].Skill != "react" || got[1].Skill != "node.js" || got[2].Skill != "docker" {
		t.Fatalf("unexpected ordering: %v", got)
	}
	for _, e := range got {
		if e.Status != StatusMissing {
			t.Fatalf("expected status missing, got %q", e.Status)
		}
	}
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	demand := []DemandEntry{
		{Skill: "HTML", Importance: 60},
		{Skill: "react", Importance: 75},
	}

	got := Analyze([]string{"html", "css"}, demand)
	if len(got) != 1 {
		t.Fatalf("expected 1 gap, got %v", got)
	}
	if got[0].Skill != "react" || got[0].Importance != 75 {
		t.Fatalf("expected react@75, got %+v", got[0])
	}
}

func TestAnalyze_FullCoverage(t *testing.T) {
	demand := []DemandEntry{
		{Skill: "go", Importance: 80},
		{Skill: "sql", Importance: 70},
	}

	got := Analyze([]string{"Go", "SQL"}, demand)
	if len(got) != 0 {
		t.Fatalf("expected no gaps, got %v", got)
	}
}

func TestAnalyze_StableOnTies(t *testing.T) {
	demand := []DemandEntry{
		{Skill: "terraform", Importance: 70},
		{Skill: "ansible", Importance: 70},
		{Skill: "jenkins", Importance: 70},
	}

	got := Analyze(nil, demand)
	if len(got) != 3 {
		t.Fatalf("expected 3 gaps, got %v", got)
	}
	if got[0].Skill != "terraform" || got[1].Skill != "ansible" || got[2].Skill != "jenkins" {
		t.Fatalf("tie ordering must keep snapshot order, got %v", got)
	}
}

func TestAnalyze_NonIncreasingImportance(t *testing.T) {
	demand := []DemandEntry{
		{Skill: "a", Importance: 10},
		{Skill: "b", Importance: 95},
		{Skill: "c", Importance: 50},
		{Skill: "d", Importance: 95},
	}

	got := Analyze(nil, demand)
	for i := 1; i < len(got); i++ {
		if got[i].Importance > got[i-1].Importance {
			t.Fatalf("importance must be non-increasing: %v", got)
		}
	}
}
