package extract

import (
	"testing"

	"skill-evolution/internal/domain/lexicon"
)

func newTestExtractor() *Extractor {
	return NewExtractor(lexicon.Default())
}

func countOf(found []string, term string) int {
	n := 0
	for _, f := range found {
		if f == term {
			n++
		}
	}
	return n
}

func TestExtract_EmptyText(t *testing.T) {
	e := newTestExtractor()

	for _, text := range []string{"", "   ", "\n\t"} {
		if got := e.Extract(text); len(got) != 0 {
			t.Fatalf("Extract(%q): expected empty, got %v", text, got)
		}
	}
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := newTestExtractor()

	found := e.Extract("Experienced in PYTHON, Docker and PostgreSQL.")
	for _, want := range []string{"python", "docker", "postgresql"} {
		if countOf(found, want) != 1 {
			t.Fatalf("expected %q exactly once, got %v", want, found)
		}
	}
}

func TestExtract_SymbolTerminatedTerms(t *testing.T) {
	e := newTestExtractor()

	found := e.Extract("We use C++ and Go, not just go-karts")
	if countOf(found, "c++") != 1 {
		t.Fatalf("expected c++ exactly once, got %v", found)
	}
	if countOf(found, "go") != 1 {
		t.Fatalf("expected go exactly once, got %v", found)
	}
	if countOf(found, "c") != 0 {
		t.Fatalf("c++ must not register a bare c match, got %v", found)
	}
}

func TestExtract_NoPartialMatches(t *testing.T) {
	e := newTestExtractor()

	found := e.Extract("a good javascripting restful gopher")
	// "good" must not yield go, "javascripting" must not yield javascript,
	// "restful" must not yield rest.
	for _, bad := range []string{"go", "javascript", "rest"} {
		if countOf(found, bad) != 0 {
			t.Fatalf("unexpected partial match %q in %v", bad, found)
		}
	}
}

func TestExtract_CSharpBoundaries(t *testing.T) {
	e := newTestExtractor()

	if found := e.Extract("shipping c# services"); countOf(found, "c#") != 1 {
		t.Fatalf("expected c# detected, got %v", found)
	}
	if found := e.Extract("misc#anchor"); countOf(found, "c#") != 0 {
		t.Fatalf("c# must require a boundary before it, got %v", found)
	}
}

func TestExtract_RepetitionRecordedOnce(t *testing.T) {
	e := newTestExtractor()

	found := e.Extract("python python python")
	if countOf(found, "python") != 1 {
		t.Fatalf("expected python once, got %v", found)
	}
}

func TestExtract_MultiWordTerms(t *testing.T) {
	e := newTestExtractor()

	found := e.Extract("Background in machine learning and data engineering, plus CI/CD.")
	for _, want := range []string{"machine learning", "data engineering", "ci/cd"} {
		if countOf(found, want) != 1 {
			t.Fatalf("expected %q exactly once, got %v", want, found)
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := newTestExtractor()

	text := "python, go, docker, aws, react and sql"
	a := e.Extract(text)
	b := e.Extract(text)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic result length: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic order: %v vs %v", a, b)
		}
	}
}
