package quizgen

import (
	"fmt"
	"strings"

	"github.com/certlab/certquiz-backend/internal/model"
)

// SystemPrompt sets the model's role for every generation call.
const SystemPrompt = `You are an expert cloud-certification exam author. You write realistic, ` +
	`technically accurate multiple-choice practice questions in the style of official ` +
	`certification exams. You respond with raw JSON only, never with markdown fences or prose.`

// BuildPrompt constructs the generation instruction for a quiz request.
// Pure string construction; it cannot fail for a well-formed request.
func BuildPrompt(req model.GenerateQuizRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d multiple-choice questions for the %q certification exam (%s level).\n\n",
		req.QuestionCount, req.ExamName, req.ExamLevel)

	if len(req.SelectedTopics) > 0 {
		fmt.Fprintf(&b, "Focus on these topics: %s.\n", strings.Join(req.SelectedTopics, ", "))
	}

	b.WriteString(`
Requirements:
- Roughly 50% of the questions must be scenario-based ("A company needs to...") and 50% conceptual.
- Each question has exactly 4 answer options.
- Do NOT prefix options with letters or numbers (no "A.", "B)", "1."); plain option text only.
- Most questions have a single correct answer; a few may have multiple correct answers.
- Every question includes a short explanation of why the correct answer is right.

Return ONLY a JSON array in exactly this shape:
[
  {
    "id": 1,
    "question": "question text",
    "options": ["option 1", "option 2", "option 3", "option 4"],
    "correctAnswer": 0,
    "explanation": "why this answer is correct",
    "difficulty": "Easy|Medium|Hard",
    "topic": "topic name"
  }
]

For multi-answer questions, "correctAnswer" is an array of option indices, e.g. [0, 2].
`)

	return b.String()
}
