package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/statlab/internal/flow"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/ui/components"
	"github.com/abhisek/statlab/internal/ui/theme"
)

func (s *LearnScreen) View(width, height int) string {
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.ctrl.Phase() {
	case flow.PhaseLoading:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n\n  Preparing your lesson...")
	case flow.PhaseLesson:
		return s.renderLesson(width, height)
	case flow.PhaseSummary:
		return s.renderSummary(width)
	case flow.PhaseQuiz:
		if s.scoring {
			return lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
				Render("\n\n\n  Scoring your attempt...")
		}
		if s.showFeedback {
			return s.renderFeedback(width)
		}
		return s.renderQuestion(width)
	case flow.PhaseResult:
		return s.renderResult(width)
	}
	return ""
}

// statusLine renders the lesson-step line shown above every phase: step
// progress, and the offline badge when canned content is in play.
func (s *LearnScreen) statusLine(width int) string {
	bar := components.NewProgressBar("", float64(s.ctrl.StepProgress())/100, true, min(width-8, 44))
	line := bar.View()
	if s.ctrl.Offline() {
		line += "  " + lipgloss.NewStyle().
			Foreground(theme.Accent).Bold(true).
			Render("OFFLINE")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func (s *LearnScreen) renderLesson(width, height int) string {
	slide, ok := s.ctrl.CurrentSlide()
	if !ok {
		return ""
	}
	deck := s.ctrl.Deck()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.statusLine(width))
	b.WriteString("\n\n")

	typeLabel := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(slide.Type.Label())
	position := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Slide %d/%d", s.ctrl.SlideIndex()+1, len(deck)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, typeLabel+"   "+position))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render(slide.Title))
	b.WriteString("\n\n")

	bodyWidth := min(width-8, 70)
	body := lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text).Render(slide.Content)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n")

	if slide.Visual != "" {
		visual := lipgloss.NewStyle().Foreground(theme.Secondary).Render(slide.Visual)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, visual))
		b.WriteString("\n")
	}

	if slide.Highlight != "" {
		highlight := lipgloss.NewStyle().
			Foreground(theme.Highlight).Bold(true).
			Width(bodyWidth).Align(lipgloss.Center).
			Render("★ " + slide.Highlight)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, highlight))
		b.WriteString("\n")
	}

	if s.ctrl.DeckCompleted() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).Italic(true).
			Render("Press Enter for the recap"))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderErrorLine(width, s.errMsg))
	}

	return b.String()
}

func (s *LearnScreen) renderSummary(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.statusLine(width))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render("What you just learned"))
	b.WriteString("\n\n")

	bodyWidth := min(width-8, 64)
	for i, point := range s.ctrl.SummaryPoints() {
		marker := "•"
		style := lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text)
		if i == 0 {
			// First point is the catalog summary, set apart from the
			// slide headings under it.
			marker = "▸"
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(marker+" "+point)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).Italic(true).
		Render("Press Enter to start the quiz"))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderErrorLine(width, s.errMsg))
	}

	return b.String()
}

func (s *LearnScreen) renderQuestion(width int) string {
	engine := s.ctrl.Engine()
	if engine == nil {
		return ""
	}
	q, ok := engine.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.statusLine(width))
	b.WriteString("\n\n")

	// Hearts, streak, position.
	hearts := strings.Repeat("♥ ", engine.Hearts()) +
		strings.Repeat("♡ ", engine.MaxHearts()-engine.Hearts())
	info := lipgloss.NewStyle().Foreground(theme.Error).Render(strings.TrimSpace(hearts))
	info += lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("   Q %d/%d", engine.Index()+1, engine.Total()))
	if engine.Streak() > 1 {
		info += lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("   %d in a row!", engine.Streak()))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, info))
	b.WriteString("\n\n")

	// Question stem.
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).
		Render(q.Stem))
	b.WriteString("\n\n")

	switch q.Type {
	case quiz.TypeMCQ:
		b.WriteString(s.renderChoices(width, q.Choices))
	case quiz.TypeTF:
		b.WriteString(s.renderChoices(width, []string{"True", "False"}))
	case quiz.TypeFill:
		answerLine := lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	case quiz.TypeMatch:
		b.WriteString(s.renderMatch(width))
	}

	return b.String()
}

func (s *LearnScreen) renderChoices(width int, choices []string) string {
	var b strings.Builder
	for i, choice := range choices {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		if i == s.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\nSelect (1-%d) or use arrows + Enter", len(choices)))
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *LearnScreen) renderMatch(width int) string {
	var b strings.Builder

	for i, k := range s.matchKeys {
		assigned, done := s.matchAssign[k]
		switch {
		case done:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).
				Render(fmt.Sprintf("  %s → %s", k, assigned)))
		case i == s.matchKeyIdx:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
				Render(fmt.Sprintf("> %s → ?", k)))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %s → ?", k)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, v := range s.matchValues {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.mcSelected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(prefix + v))
		b.WriteString("\n")
	}

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("\nPick a value for the highlighted item, Enter to lock it in")
	b.WriteString(hint)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *LearnScreen) renderFeedback(width int) string {
	engine := s.ctrl.Engine()
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Success).Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n")

	q := s.feedbackQ
	if !s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.CorrectAnswerText())))
		b.WriteString("\n")
	}
	if q.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			expStyle.Render(q.Explanation)))
		b.WriteString("\n")
	}
	if engine != nil {
		if engine.Exhausted() {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).
				Foreground(theme.Error).Bold(true).
				Render("Out of hearts!"))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (s *LearnScreen) renderResult(width int) string {
	result := s.ctrl.Result()
	outcome := s.ctrl.Outcome()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.statusLine(width))
	b.WriteString("\n\n")

	tierStyle := lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Highlight).Bold(true)
	if !outcome.Passed {
		tierStyle = tierStyle.Foreground(theme.Accent)
	}
	b.WriteString(tierStyle.Render(outcome.Name))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(outcome.Message))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d%%   Correct: %d/%d   Best streak: %d   ✦ +%d XP",
		result.Score, result.CorrectAnswers, result.TotalQuestions,
		result.BestStreak, outcome.XPAwarded)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if result.Exhausted {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Ran out of hearts — partial attempt scored"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Tips.
	bodyWidth := min(width-8, 64)
	for _, tip := range outcome.Tips {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.TextDim).
				Render("· "+tip)))
		b.WriteString("\n")
	}

	// Missed questions with optional tutor explanations.
	if len(s.missed) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Missed questions")))
		b.WriteString("\n")
		for i, rec := range s.missed {
			prefix := "  "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.missedIdx {
				prefix = "> "
				style = style.Foreground(theme.Primary).Bold(true)
			}
			stem := rec.QuestionID
			if q, ok := s.questionByID(rec.QuestionID); ok {
				stem = q.Stem
			}
			line := fmt.Sprintf("%s%s  (you said: %s)", prefix, truncate(stem, 48), rec.UserAnswer)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}

		if s.explaining {
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("Asking the tutor...")))
			b.WriteString("\n")
		}
		if s.explanation != nil {
			b.WriteString("\n")
			expl := fmt.Sprintf("Why yours was off: %s\n\nWhy the answer works: %s\n\nStudy tip: %s",
				s.explanation.WhyWrong, s.explanation.WhyRight, s.explanation.StudyTip)
			card := lipgloss.NewStyle().
				Width(bodyWidth).
				Foreground(theme.Text).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Border).
				Padding(0, 1).
				Render(expl)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderErrorLine(width, s.errMsg))
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Render("Leave this lesson?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Progress you already earned is saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	card := components.Card(b.String(), components.ContentWidth(width))
	return "\n\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func renderErrorLine(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("⚠ " + msg)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
