package extract

import (
	"regexp"
	"strings"

	"skill-evolution/internal/domain/lexicon"
)

// Extractor scans free text for known skill terms. Patterns are compiled once
// at construction, so a single Extractor is cheap to share across requests.
type Extractor struct {
	patterns []termPattern
}

type termPattern struct {
	term string
	re   *regexp.Regexp
}

func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	terms := lex.Terms()
	e := &Extractor{patterns: make([]termPattern, 0, len(terms))}
	for _, term := range terms {
		re, err := regexp.Compile(boundaryPattern(term))
		if err != nil {
			continue
		}
		e.patterns = append(e.patterns, termPattern{term: term, re: re})
	}
	return e
}

// Extract returns the distinct lexicon terms mentioned in text, in lexicon
// order, at most once each. Blank text yields an empty result. There is no
// fuzzy or synonym matching: an unseen spelling is never detected.
func (e *Extractor) Extract(text string) []string {
	found := make([]string, 0)
	if e == nil || strings.TrimSpace(text) == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, p := range e.patterns {
		if p.re.MatchString(lower) {
			found = append(found, p.term)
		}
	}
	return found
}

// boundaryPattern builds a whole-token match for a term. Terms ending in a
// word character get ordinary \b boundaries. Terms ending in a symbol
// ("c++", "c#") get an explicit no-adjacent-word-character check instead,
// because \b does not behave usefully next to non-word characters.
func boundaryPattern(term string) string {
	quoted := regexp.QuoteMeta(term)

	prefix := `\b`
	if !isWordChar(term[0]) {
		prefix = `(?:^|[^0-9a-z_])`
	}

	suffix := `\b`
	if !isWordChar(term[len(term)-1]) {
		suffix = `(?:$|[^0-9a-z_])`
	}

	return prefix + quoted + suffix
}

func isWordChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '_':
		return true
	}
	return false
}
