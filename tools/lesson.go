package tools

import "strings"

const fallbackSubject = "the requested topic"

// LessonRequest is the input to lesson generation. Only Prompt is expected;
// the other fields add context when present.
type LessonRequest struct {
	Prompt          string
	Topic           string
	UserName        string
	CategoryName    string
	SubCategoryName string
}

// BuildPrompt renders the user message sent to the completion endpoint.
// Topic and learner name lead, taxonomy names trail.
func BuildPrompt(req LessonRequest) string {
	var parts []string
	if req.Topic != "" {
		parts = append(parts, "The learner is interested in "+req.Topic+".")
	}
	if req.UserName != "" {
		parts = append(parts, "The learner's name is "+req.UserName+".")
	}
	parts = append(parts,
		`Create a concise learning session for the following prompt: "`+req.Prompt+`".`,
		"The response should include:",
		"- a short introduction (2 sentences max)",
		"- 3-4 bullet points covering the core ideas",
		"- an actionable exercise to practice the material",
		"- a reflective question at the end",
	)
	if req.CategoryName != "" {
		parts = append(parts, "Category of interest: "+req.CategoryName+".")
	}
	if req.SubCategoryName != "" {
		parts = append(parts, "Sub-category of interest: "+req.SubCategoryName+".")
	}
	return strings.Join(parts, "\n")
}

// BuildFallback returns the fixed lesson used when no completion is
// available. The output depends only on Topic and CategoryName.
func BuildFallback(req LessonRequest) string {
	subject := fallbackSubject
	if req.Topic != "" {
		subject = req.Topic
	} else if req.CategoryName != "" {
		subject = req.CategoryName
	}

	return strings.Join([]string{
		"Intro: Here's a quick overview about " + subject + ".",
		"",
		"Key Takeaways:",
		"- Core concept #1",
		"- Core concept #2",
		"- Core concept #3",
		"",
		"Try this: Write a short paragraph explaining the most surprising fact you learned.",
		"",
		"Reflect: Which part of the topic feels unclear and why?",
	}, "\n")
}
