package lexicon

import "strings"

// Lexicon is the fixed vocabulary of skill terms all text analysis operates
// on. Terms are stored normalized (lowercase, trimmed) and deduplicated,
// preserving first-seen order.
type Lexicon struct {
	terms []string
	index map[string]struct{}
}

func New(terms []string) *Lexicon {
	l := &Lexicon{index: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		n := Normalize(t)
		if n == "" {
			continue
		}
		if _, ok := l.index[n]; ok {
			continue
		}
		l.index[n] = struct{}{}
		l.terms = append(l.terms, n)
	}
	return l
}

// Normalize lowercases and trims a skill term. Skill identity is
// case-insensitive everywhere, so callers normalize before set operations.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

func (l *Lexicon) Contains(term string) bool {
	if l == nil {
		return false
	}
	_, ok := l.index[Normalize(term)]
	return ok
}

// Terms returns the vocabulary in stable order. The returned slice is a copy.
func (l *Lexicon) Terms() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.terms))
	copy(out, l.terms)
	return out
}

func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.terms)
}

// Default returns the curated tech-skill vocabulary.
func Default() *Lexicon {
	return New([]string{
		"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "ruby", "php",
		"react", "angular", "vue", "next.js", "node.js", "express", "django", "flask", "fastapi",
		"spring boot", "sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible", "jenkins",
		"git", "github", "gitlab", "ci/cd",
		"machine learning", "deep learning", "nlp", "computer vision", "tensorflow", "pytorch",
		"scikit-learn", "pandas", "numpy", "matplotlib", "seaborn", "nltk",
		"data analysis", "data science", "data engineering", "big data", "hadoop", "spark", "kafka",
		"rest", "graphql", "grpc", "microservices", "agile", "scrum", "kanban",
		"html", "css", "tailwind", "sass", "less", "bootstrap",
		"figma", "ui/ux", "seo",
	})
}
