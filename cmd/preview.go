package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/offline"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/slides"
)

var previewCmd = &cobra.Command{
	Use:   "preview <slug>",
	Short: "Print the slide deck and quiz for a lesson (no database)",
	Long: `Render the generated slides and quiz questions for a lesson to stdout.

This is a stateless developer tool — no database, no progress tracking, no
events. It always uses the canned offline content, so it shows exactly what
the app falls back to when the backend is unreachable.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	lesson, ok := catalog.Get(args[0])
	if !ok {
		return fmt.Errorf("no lesson found for slug %q — run 'statlab lessons' for the catalog", args[0])
	}

	rec := offline.Lesson(lesson)
	deck := slides.Generate(lesson.Slug, rec, lesson.Title)

	fmt.Printf("Lesson: %s — %s (%s, ~%d min)\n\n",
		lesson.Slug, lesson.Title, lesson.Unit.DisplayName(), lesson.EstimatedMins)

	for i, s := range deck {
		fmt.Printf("── Slide %d/%d · %s ──\n", i+1, len(deck), s.Type.Label())
		if s.Title != "" {
			fmt.Println(s.Title)
		}
		if s.Content != "" {
			fmt.Println(s.Content)
		}
		if s.Visual != "" {
			fmt.Println(s.Visual)
		}
		if s.Highlight != "" {
			fmt.Printf("★ %s\n", s.Highlight)
		}
		fmt.Println()
	}

	questions := offline.Questions(lesson)
	fmt.Printf("── Quiz · %d questions ──\n", len(questions))
	for i, q := range questions {
		fmt.Printf("\n%d) [%s] %s\n", i+1, q.Type, q.Stem)
		if q.Type == quiz.TypeMCQ {
			for j, c := range q.Choices {
				marker := " "
				if j == q.CorrectIndex {
					marker = "✓"
				}
				fmt.Printf("   %s %d. %s\n", marker, j+1, c)
			}
		} else {
			fmt.Printf("   Answer: %s\n", q.CorrectAnswerText())
		}
		if q.Explanation != "" {
			fmt.Printf("   Note: %s\n", q.Explanation)
		}
	}

	fmt.Println()
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("%d slides, %d questions\n", len(deck), len(questions))
	return nil
}
