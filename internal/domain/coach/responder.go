package coach

import (
	"fmt"
	"strings"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Context is the caller-supplied user context the coach drafts replies from.
type Context struct {
	TotalXP    int64
	League     string
	TargetRole string
}

// Reply is a drafted coach response plus the extended conversation.
type Reply struct {
	Text    string `json:"reply"`
	History []Turn `json:"history"`
}

// Intent rules are keyword-containment checks evaluated in fixed priority
// order; the first matching rule wins.
type intent int

const (
	intentLearn intent = iota
	intentResume
	intentAssess
	intentPoints
	intentFallback
)

var intentKeywords = []struct {
	intent   intent
	keywords []string
}{
	{intentLearn, []string{"learn", "next", "path"}},
	{intentResume, []string{"resume", "cv"}},
	{intentAssess, []string{"test", "interview", "assess"}},
	{intentPoints, []string{"points", "xp", "league"}},
}

// Respond classifies the message and drafts a templated reply. The supplied
// history is copied, never mutated; the returned history carries the new
// user and assistant turns appended.
func Respond(message string, history []Turn, ctx Context) Reply {
	if ctx.League == "" {
		ctx.League = "Bronze"
	}
	if ctx.TargetRole == "" {
		ctx.TargetRole = "Software Engineer"
	}

	text := draft(classify(message), ctx)

	extended := make([]Turn, 0, len(history)+2)
	extended = append(extended, history...)
	extended = append(extended,
		Turn{Role: RoleUser, Content: message},
		Turn{Role: RoleAssistant, Content: text},
	)

	return Reply{Text: text, History: extended}
}

func classify(message string) intent {
	lower := strings.ToLower(message)
	for _, rule := range intentKeywords {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}
	return intentFallback
}

func draft(it intent, ctx Context) string {
	switch it {
	case intentLearn:
		return fmt.Sprintf(
			"Based on the market trends for %s, I highly recommend tackling Docker or AWS next. You are currently in the %s League, and mastering those will easily bump up your XP!",
			ctx.TargetRole, ctx.League,
		)
	case intentResume:
		return "Your resume looks strong on the fundamentals like Python and SQL. To make it stand out to ATS systems, we should add some cloud deployment experience. Want me to generate a tailored resume for you right now?"
	case intentAssess:
		return "Alright, let's do a quick micro-assessment for React! Question 1: What is the primary difference between a controlled and uncontrolled component? (Answer correctly for 1000 XP!)"
	case intentPoints:
		return fmt.Sprintf(
			"You currently have %d XP and are in the %s League! Keep validating your skills and tracking job trends to reach the Diamond League.",
			ctx.TotalXP, ctx.League,
		)
	default:
		return fmt.Sprintf(
			"I'm your AI Career Coach! I'm tracking the market for %s roles. I can help you find your skill gaps, practice for interviews, or check your rank. What would you like to focus on today?",
			ctx.TargetRole,
		)
	}
}
