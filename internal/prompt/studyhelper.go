package prompt

import (
	"fmt"
	"strings"
)

const studyHelperRole = "You are an enthusiastic educational assistant for Guardian Classroom, " +
	"helping students aged 8-16. Given a subject, an optional specific question, and a " +
	"difficulty level, generate a study resource."

const studyHelperSchema = `{
  "topic": "specific topic name (e.g. 'Quadratic Equations', 'Photosynthesis')",
  "subject": "subject name",
  "explanation": {
    "beginner": "simple explanation for beginners (2-3 sentences, use analogies and everyday language)",
    "intermediate": "more detailed explanation with terminology (3-4 sentences)",
    "advanced": "in-depth explanation with technical detail (3-4 sentences)"
  },
  "keyPoints": [
    "key point 1",
    "key point 2",
    "key point 3",
    "key point 4"
  ],
  "practiceQuestions": [
    {
      "question": "multiple choice question",
      "options": ["option A", "option B", "option C", "option D"],
      "correctIndex": 0,
      "explanation": "why this answer is correct (1-2 sentences, encouraging tone)"
    }
  ]
}`

var studyHelperRules = []string{
	"keyPoints must have exactly 4 items",
	"practiceQuestions must have exactly 3 items, each with exactly 4 options",
	"correctIndex is 0-based (0 = first option)",
	"All language must be age-appropriate and engaging for students aged 8-16",
	"Use a friendly, enthusiastic tone - like a great teacher",
	"If the student provided a specific question, focus the topic and content around answering it",
	"The difficulty level is a hint for which explanation tier to emphasize; always fill in all three tiers",
}

// fallbackQuestion stands in for the student question when none was given.
const fallbackQuestion = "Give me a good topic to study in this subject"

// DefaultDifficulty is used when the caller omits the difficulty field.
const DefaultDifficulty = "beginner"

// BuildStudyHelper builds the prompt pair for a study resource request.
// The subject must be non-empty after trimming; question may be empty and
// difficulty defaults to DefaultDifficulty.
func BuildStudyHelper(subject, question, difficulty string) (Spec, error) {
	if strings.TrimSpace(subject) == "" {
		return Spec{}, fmt.Errorf("prompt: subject is empty")
	}
	if strings.TrimSpace(difficulty) == "" {
		difficulty = DefaultDifficulty
	}
	if strings.TrimSpace(question) == "" {
		question = fallbackQuestion
	}
	ctx := fmt.Sprintf("Subject: %s\nDifficulty level: %s\nStudent question: %s",
		subject, difficulty, question)
	return Spec{
		Instruction: renderInstruction(studyHelperRole, studyHelperSchema, studyHelperRules),
		Context:     ctx,
	}, nil
}
