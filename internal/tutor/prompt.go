package tutor

import (
	"fmt"
	"strings"
)

const explanationSystemPrompt = `You are a patient, encouraging statistics tutor. A learner just missed a quiz question and wants to understand the mistake before moving on.`

func buildExplanationUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Lesson: %s\n", input.LessonTitle))
	b.WriteString(fmt.Sprintf("Question: %s\n", input.Stem))
	b.WriteString(fmt.Sprintf("Learner's answer: %s\n", input.LearnerAnswer))
	b.WriteString(fmt.Sprintf("Correct answer: %s\n", input.CorrectAnswer))

	if input.ContentNote != "" {
		b.WriteString(fmt.Sprintf("\nContent note from the lesson author:\n%s\n", input.ContentNote))
	}

	b.WriteString(`
Instructions:
1. Explain in 1-2 sentences what the learner's answer got wrong. Be specific about the misconception, never about the learner.
2. Explain in 2-3 sentences why the correct answer is correct. Build on the content note above when one is given; do not contradict it.
3. Give one concrete study tip: a single thing to review or a quick exercise to try.
4. Use plain ASCII text for all math. No LaTeX, no Unicode symbols.`)

	return b.String()
}
