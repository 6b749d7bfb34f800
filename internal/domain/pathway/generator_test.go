package pathway

import (
	"strings"
	"testing"

	"skill-evolution/internal/domain/gap"
)

func TestGenerate_CatalogHit(t *testing.T) {
	g := NewGenerator(DefaultCatalog())

	steps := g.Generate([]gap.Entry{{Skill: "react", Importance: 75, Status: gap.StatusMissing}})
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	if steps[0].TargetSkill != "react" {
		t.Fatalf("expected target_skill react, got %q", steps[0].TargetSkill)
	}
	if steps[0].Name != "Advanced React Patterns" {
		t.Fatalf("expected catalog course, got %q", steps[0].Name)
	}
}

func TestGenerate_FallbackForUnknownSkill(t *testing.T) {
	g := NewGenerator(DefaultCatalog())

	steps := g.Generate([]gap.Entry{{Skill: "quantum computing", Importance: 50, Status: gap.StatusMissing}})
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	s := steps[0]
	if s.XP != 300 || s.Duration != "2 weeks" || s.Category != "Free" {
		t.Fatalf("unexpected fallback shape: %+v", s)
	}
	if s.Name != "Comprehensive Guide to Quantum Computing" {
		t.Fatalf("unexpected fallback name: %q", s.Name)
	}
	if !strings.Contains(s.URL, "quantum") {
		t.Fatalf("fallback url must embed the skill, got %q", s.URL)
	}
	if s.TargetSkill != "quantum computing" {
		t.Fatalf("unexpected target skill: %q", s.TargetSkill)
	}
}

func TestGenerate_PreservesGapOrder(t *testing.T) {
	g := NewGenerator(DefaultCatalog())

	entries := []gap.Entry{
		{Skill: "docker", Importance: 80},
		{Skill: "react", Importance: 75},
		{Skill: "zig", Importance: 40},
	}
	steps := g.Generate(entries)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i, want := range []string{"docker", "react", "zig"} {
		if steps[i].TargetSkill != want {
			t.Fatalf("step %d: expected %q, got %q", i, want, steps[i].TargetSkill)
		}
	}
}

func TestGenerate_InjectedFixtureCatalog(t *testing.T) {
	g := NewGenerator(Catalog{
		"go": {Name: "Go Deep Dive", XP: 700, Duration: "6 weeks", Platform: "Test", Category: "Paid", URL: "https://example.com/go"},
	})

	steps := g.Generate([]gap.Entry{{Skill: "GO", Importance: 90}})
	if len(steps) != 1 || steps[0].Name != "Go Deep Dive" {
		t.Fatalf("fixture catalog not used: %+v", steps)
	}
}
