package assessment

import (
	"reflect"
	"strings"
	"testing"
)

func correctSubmissions(skill string) []Submission {
	qs := Questions(skill)
	subs := make([]Submission, 0, len(qs))
	for _, q := range qs {
		subs = append(subs, Submission{QuestionID: q.ID, SelectedIndex: q.CorrectIndex})
	}
	return subs
}

func TestQuestions_Shape(t *testing.T) {
	qs := Questions("react")
	if len(qs) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Fatalf("expected sequential ids, got %d at %d", q.ID, i)
		}
		if len(q.Options) != 4 {
			t.Fatalf("question %d: expected 4 options, got %d", q.ID, len(q.Options))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			t.Fatalf("question %d: correct index out of range: %d", q.ID, q.CorrectIndex)
		}
		if !strings.Contains(q.Text, "React") {
			t.Fatalf("question %d: skill name not substituted: %q", q.ID, q.Text)
		}
	}

	easy, medium, hard := 0, 0, 0
	for _, q := range qs {
		switch {
		case strings.HasPrefix(q.Text, "(Easy)"):
			easy++
		case strings.HasPrefix(q.Text, "(Medium)"):
			medium++
		case strings.HasPrefix(q.Text, "(Hard)"):
			hard++
		}
	}
	if easy != 4 || medium != 3 || hard != 3 {
		t.Fatalf("expected 4/3/3 difficulty split, got %d/%d/%d", easy, medium, hard)
	}
}

func TestQuestions_Idempotent(t *testing.T) {
	a := Questions("docker")
	b := Questions("docker")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("question bank must be identical across calls")
	}
}

func TestScore_PerfectAndPartial(t *testing.T) {
	full := Score("go", correctSubmissions("go"))
	if full.ScorePct != 100.0 || full.CorrectCount != 10 || !full.Passed {
		t.Fatalf("unexpected full score: %+v", full)
	}

	subs := correctSubmissions("go")[:8]
	partial := Score("go", subs)
	if partial.ScorePct != 80.0 {
		t.Fatalf("expected 80.0, got %v", partial.ScorePct)
	}
	if partial.CorrectCount != 8 || partial.Total != 10 {
		t.Fatalf("unexpected counts: %+v", partial)
	}
	if !partial.Passed {
		t.Fatalf("80%% must pass")
	}
}

func TestScore_PassBoundary(t *testing.T) {
	if res := Score("go", correctSubmissions("go")[:7]); !res.Passed || res.ScorePct != 70.0 {
		t.Fatalf("70.0 must pass: %+v", res)
	}
	if res := Score("go", correctSubmissions("go")[:6]); res.Passed || res.ScorePct != 60.0 {
		t.Fatalf("60.0 must not pass: %+v", res)
	}
}

func TestScore_UnknownIDsIgnored(t *testing.T) {
	subs := append(correctSubmissions("go")[:5],
		Submission{QuestionID: 99, SelectedIndex: 0},
		Submission{QuestionID: -1, SelectedIndex: 2},
	)
	res := Score("go", subs)
	if res.CorrectCount != 5 {
		t.Fatalf("unknown ids must not score or crash: %+v", res)
	}
}

func TestScore_DuplicatesIgnored(t *testing.T) {
	qs := Questions("go")
	subs := []Submission{
		{QuestionID: qs[0].ID, SelectedIndex: qs[0].CorrectIndex},
		{QuestionID: qs[0].ID, SelectedIndex: qs[0].CorrectIndex},
		{QuestionID: qs[0].ID, SelectedIndex: qs[0].CorrectIndex},
	}
	res := Score("go", subs)
	if res.CorrectCount != 1 {
		t.Fatalf("duplicate ids must count once, got %+v", res)
	}
}

func TestScore_OrderInvariant(t *testing.T) {
	subs := correctSubmissions("go")[:8]
	forward := Score("go", subs)

	reversed := make([]Submission, len(subs))
	for i, s := range subs {
		reversed[len(subs)-1-i] = s
	}
	backward := Score("go", reversed)

	if forward != backward {
		t.Fatalf("score must be order invariant: %+v vs %+v", forward, backward)
	}
}

func TestScore_EmptySubmission(t *testing.T) {
	res := Score("go", nil)
	if res.ScorePct != 0 || res.CorrectCount != 0 || res.Passed {
		t.Fatalf("empty submission must score 0: %+v", res)
	}
}
