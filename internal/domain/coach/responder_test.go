package coach

import (
	"strings"
	"testing"
)

func TestRespond_LearnIntent(t *testing.T) {
	r := Respond("what should I learn next?", nil, Context{League: "Gold", TargetRole: "Data Engineer"})
	if !strings.Contains(r.Text, "Data Engineer") || !strings.Contains(r.Text, "Gold League") {
		t.Fatalf("learn reply missing context: %q", r.Text)
	}
}

func TestRespond_IntentPriority(t *testing.T) {
	// "learn" outranks "xp" even when both keywords appear.
	r := Respond("should I learn docker to earn xp?", nil, Context{})
	if !strings.Contains(r.Text, "market trends") {
		t.Fatalf("expected learn intent to win: %q", r.Text)
	}
}

func TestRespond_ResumeIntent(t *testing.T) {
	r := Respond("Can you look at my CV?", nil, Context{})
	if !strings.Contains(r.Text, "resume") {
		t.Fatalf("expected resume reply: %q", r.Text)
	}
}

func TestRespond_AssessIntent(t *testing.T) {
	r := Respond("give me a quick test", nil, Context{})
	if !strings.Contains(r.Text, "micro-assessment") {
		t.Fatalf("expected assessment reply: %q", r.Text)
	}
}

func TestRespond_PointsIntent(t *testing.T) {
	r := Respond("how many XP do I have?", nil, Context{TotalXP: 4200, League: "Silver"})
	if !strings.Contains(r.Text, "4200 XP") || !strings.Contains(r.Text, "Silver League") {
		t.Fatalf("points reply missing context: %q", r.Text)
	}
}

func TestRespond_Fallback(t *testing.T) {
	r := Respond("hello there", nil, Context{})
	if !strings.Contains(r.Text, "AI Career Coach") {
		t.Fatalf("expected fallback reply: %q", r.Text)
	}
	if !strings.Contains(r.Text, "Software Engineer") {
		t.Fatalf("expected default target role: %q", r.Text)
	}
}

func TestRespond_HistoryCopiedAndExtended(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}

	r := Respond("what about my league?", history, Context{TotalXP: 10, League: "Bronze"})

	if len(history) != 2 {
		t.Fatalf("input history mutated: %v", history)
	}
	if len(r.History) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(r.History))
	}
	if r.History[2].Role != RoleUser || r.History[2].Content != "what about my league?" {
		t.Fatalf("user turn not appended: %+v", r.History[2])
	}
	if r.History[3].Role != RoleAssistant || r.History[3].Content != r.Text {
		t.Fatalf("assistant turn must carry the reply: %+v", r.History[3])
	}
}
