// Package tutor generates explanations for missed quiz questions.
//
// Generation is asynchronous and advisory: the result screen requests an
// explanation when the learner misses a question, polls for it, and renders
// it if and when it arrives. A missing or failed explanation never blocks
// the flow. The service is nil when no LLM API key is configured.
package tutor

// Input describes one missed question for explanation.
type Input struct {
	LessonTitle   string
	Stem          string
	LearnerAnswer string
	CorrectAnswer string
	// ContentNote is the content-authored explanation, when present. The
	// tutor builds on it rather than contradicting it.
	ContentNote string
}

// Explanation is the generated tutoring block for one missed question.
type Explanation struct {
	WhyWrong string // what the learner's answer got wrong
	WhyRight string // why the correct answer is correct
	StudyTip string // one concrete thing to review
}
