package pathway

import (
	"fmt"
	"net/url"
	"strings"

	"skill-evolution/internal/domain/gap"
	"skill-evolution/internal/domain/lexicon"
)

// Course is one catalog record describing a learning module.
type Course struct {
	Name     string `json:"name"`
	XP       int    `json:"xp"`
	Duration string `json:"duration"`
	Platform string `json:"platform"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// Step is a recommended learning module targeting one missing skill.
type Step struct {
	Course
	TargetSkill string `json:"target_skill"`
}

// Catalog maps normalized skill names to course records.
type Catalog map[string]Course

// Generator turns a ranked gap list into an ordered learning pathway. The
// catalog is injected so tests and callers can substitute fixtures.
type Generator struct {
	catalog Catalog
}

func NewGenerator(catalog Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate emits one step per gap entry, preserving gap order. Skills unknown
// to the catalog get a generic free fallback module.
func (g *Generator) Generate(entries []gap.Entry) []Step {
	steps := make([]Step, 0, len(entries))
	for _, e := range entries {
		skill := lexicon.Normalize(e.Skill)
		if course, ok := g.catalog[skill]; ok {
			steps = append(steps, Step{Course: course, TargetSkill: skill})
			continue
		}
		steps = append(steps, fallbackStep(skill))
	}
	return steps
}

func fallbackStep(skill string) Step {
	return Step{
		Course: Course{
			Name:     fmt.Sprintf("Comprehensive Guide to %s", titleCase(skill)),
			XP:       300,
			Duration: "2 weeks",
			Platform: "General Learning",
			Category: "Free",
			URL:      "https://www.google.com/search?q=" + url.QueryEscape("free courses for "+skill),
		},
		TargetSkill: skill,
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// DefaultCatalog is the static course mapping used when no fixture is
// injected.
func DefaultCatalog() Catalog {
	return Catalog{
		"python": {
			Name: "Python for Data Science Masterclass", XP: 500, Duration: "4 weeks",
			Platform: "Coursera", Category: "Paid",
			URL: "https://www.coursera.org/specializations/python",
		},
		"react": {
			Name: "Advanced React Patterns", XP: 600, Duration: "3 weeks",
			Platform: "Udemy", Category: "Paid",
			URL: "https://www.udemy.com/course/react-the-complete-guide-incl-redux/",
		},
		"docker": {
			Name: "Docker and Kubernetes: The Complete Guide", XP: 800, Duration: "5 weeks",
			Platform: "Coursera", Category: "Paid",
			URL: "https://www.coursera.org/learn/docker-at-scale",
		},
		"aws": {
			Name: "AWS Certified Solutions Architect", XP: 1000, Duration: "8 weeks",
			Platform: "CloudGuru", Category: "Paid",
			URL: "https://www.pluralsight.com/cloud-guru/courses/aws-certified-solutions-architect-associate-saa-c03",
		},
		"machine learning": {
			Name: "Machine Learning by Andrew Ng", XP: 1200, Duration: "10 weeks",
			Platform: "Coursera", Category: "Free",
			URL: "https://www.coursera.org/specializations/machine-learning-introduction",
		},
		"html": {
			Name: "HTML5 & CSS3 Full Course", XP: 200, Duration: "1 week",
			Platform: "YouTube/FreeCodeCamp", Category: "Free",
			URL: "https://www.youtube.com/watch?v=mJgBOIoGihA",
		},
		"sql": {
			Name: "Database Management System", XP: 400, Duration: "4 weeks",
			Platform: "NPTEL", Category: "Free",
			URL: "https://nptel.ac.in/courses/106105175",
		},
	}
}
