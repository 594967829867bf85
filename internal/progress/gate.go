package progress

// CanAdvanceToStep reports whether p satisfies every precondition for step.
// Gating is monotonic: each step requires all flags for the steps strictly
// before it, so no later flag can unlock an earlier gap.
func CanAdvanceToStep(step Step, p LessonProgress) bool {
	switch step {
	case StepLesson:
		return true
	case StepSummary:
		return p.ViewedLesson
	case StepQuiz:
		return p.ViewedLesson && p.ViewedSummary
	case StepResult:
		return p.ViewedLesson && p.ViewedSummary && p.QuizAttempted
	}
	return false
}

// CanCompleteLesson reports whether p earns progression credit. The pass
// threshold was already folded into Passed at submission time; credit only
// requires that a quiz attempt happened.
func CanCompleteLesson(p LessonProgress) bool {
	return p.QuizAttempted
}

// StepProgress maps a step to its display percentage. Presentation only,
// never used for gating.
func StepProgress(step Step) int {
	switch step {
	case StepLesson:
		return 25
	case StepSummary:
		return 50
	case StepQuiz:
		return 75
	case StepResult:
		return 100
	}
	return 0
}
