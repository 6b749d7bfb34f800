package assessment

import (
	"fmt"
	"math"
	"strings"
)

// Question is one generated assessment item. Banks are never persisted:
// grading regenerates the same bank from the skill name, so the templates
// below must stay stable across versions or in-flight assessments would grade
// against a different bank than the one shown.
type Question struct {
	ID           int      `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Submission is one answered question.
type Submission struct {
	QuestionID    int `json:"question_id"`
	SelectedIndex int `json:"selected_index"`
}

// ScoreResult is the grading outcome for one submitted assessment.
type ScoreResult struct {
	ScorePct     float64 `json:"score_pct"`
	CorrectCount int     `json:"correct_count"`
	Total        int     `json:"total"`
	Passed       bool    `json:"passed"`
}

// PassThreshold is the minimum score percentage to validate a skill.
const PassThreshold = 70.0

type questionTemplate struct {
	id      int
	text    string
	options []string
	correct int
}

// questionBank holds the fixed ten templates: ids 1-4 easy, 5-7 medium,
// 8-10 hard. %s is replaced with the capitalized skill name.
var questionBank = []questionTemplate{
	{1, "(Easy) What is the primary purpose of %s in software development?",
		[]string{"To build and maintain applications", "To assemble hardware", "To manage office supplies", "To write emails"}, 0},
	{2, "(Easy) Which of these is a fundamental concept associated with %s?",
		[]string{"Syntax and logic", "Photosynthesis", "Thermodynamics", "Aerodynamics"}, 0},
	{3, "(Easy) Where is %s typically utilized?",
		[]string{"In agriculture", "In software engineering & IT", "In culinary arts", "In structural engineering"}, 1},
	{4, "(Easy) Is proficiency in %s considered valuable in the tech industry today?",
		[]string{"Yes, it is highly demanded", "No, it is obsolete", "Only for historical research", "It has never been used"}, 0},
	{5, "(Medium) How do you typically optimize performance when working extensively with %s?",
		[]string{"By ignoring memory constraints", "By utilizing efficient algorithms and best practices", "By writing more lines of code", "By deleting random files"}, 1},
	{6, "(Medium) Which common architectural pattern is frequently integrated with %s solutions?",
		[]string{"Model-View-Controller (MVC) or variations", "The Pyramids", "Randomized execution", "Linear uncoupled execution"}, 0},
	{7, "(Medium) What is a standard testing methodology for %s projects?",
		[]string{"Deploying immediately to production", "Unit testing and integration testing", "Guessing if it works", "Only visual inspection"}, 1},
	{8, "(Hard) Explain a low-level mechanism often discussed by seniors using %s.",
		[]string{"Magic variables", "Garbage collection and memory/resource referencing", "Manual hardware switch toggling", "It doesn't use resources"}, 1},
	{9, "(Hard) How can %s be architected to handle asynchronous data streams under heavy load?",
		[]string{"Using event loops, thread pools, or scalable queues", "By running an infinite while loop", "By slowing down the system constraints", "It automatically crashes"}, 0},
	{10, "(Hard) When scaling a highly complex %s application, what is a primary concern for the Big O complexity?",
		[]string{"O(1) is always guaranteed", "Keeping core data transformations to O(n log n) or better", "O(n!) is preferred for thoroughness", "Complexity does not matter at scale"}, 1},
}

// Questions generates the ten-question bank for a skill. The result is a pure
// function of the skill name and identical across calls.
func Questions(skill string) []Question {
	name := capitalize(skill)
	out := make([]Question, 0, len(questionBank))
	for _, tpl := range questionBank {
		opts := make([]string, len(tpl.options))
		copy(opts, tpl.options)
		out = append(out, Question{
			ID:           tpl.id,
			Text:         fmt.Sprintf(tpl.text, name),
			Options:      opts,
			CorrectIndex: tpl.correct,
		})
	}
	return out
}

// Score grades submissions against the regenerated bank. Unknown question ids
// and repeated ids beyond the first occurrence are silently ignored; they just
// leave the corresponding questions unanswered.
func Score(skill string, submissions []Submission) ScoreResult {
	questions := Questions(skill)
	correctByID := make(map[int]int, len(questions))
	for _, q := range questions {
		correctByID[q.ID] = q.CorrectIndex
	}

	answered := make(map[int]struct{}, len(submissions))
	correct := 0
	for _, sub := range submissions {
		want, known := correctByID[sub.QuestionID]
		if !known {
			continue
		}
		if _, dup := answered[sub.QuestionID]; dup {
			continue
		}
		answered[sub.QuestionID] = struct{}{}
		if sub.SelectedIndex == want {
			correct++
		}
	}

	total := len(questions)
	pct := math.Round(float64(correct)/float64(total)*1000) / 10
	return ScoreResult{
		ScorePct:     pct,
		CorrectCount: correct,
		Total:        total,
		Passed:       pct >= PassThreshold,
	}
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
