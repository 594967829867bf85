package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/store"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List the lesson catalog with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		unitFilter, _ := cmd.Flags().GetString("unit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := progress.NewService(st.ProgressStore(), progress.DefaultConfig())
		ctx := context.Background()

		// Header.
		fmt.Printf("%-28s  %-34s  %-22s  %5s  %s\n",
			"Slug", "Title", "Unit", "Mins", "Status")
		fmt.Println(strings.Repeat("─", 104))

		var shown, passed int
		for _, l := range catalog.All() {
			if unitFilter != "" && string(l.Unit) != unitFilter {
				continue
			}
			shown++

			p, err := svc.Get(ctx, l.Slug)
			if err != nil {
				return fmt.Errorf("read progress for %q: %w", l.Slug, err)
			}
			locked, err := svc.IsLessonLocked(ctx, l.Slug)
			if err != nil {
				return fmt.Errorf("check lock for %q: %w", l.Slug, err)
			}

			score := 0
			if p.Score != nil {
				score = *p.Score
			}
			status := "available"
			switch {
			case p.Passed != nil && *p.Passed:
				status = fmt.Sprintf("passed (%d%%)", score)
				passed++
			case p.QuizAttempted:
				status = fmt.Sprintf("attempted (%d%%)", score)
			case locked:
				status = "locked"
			}

			title := l.Title
			if len(title) > 34 {
				title = title[:31] + "..."
			}
			fmt.Printf("%-28s  %-34s  %-22s  %5d  %s\n",
				l.Slug, title, l.Unit.DisplayName(), l.EstimatedMins, status)
		}

		if unitFilter != "" && shown == 0 {
			return fmt.Errorf("no lessons found for unit %q", unitFilter)
		}

		fmt.Printf("\n%d lessons, %d passed\n", shown, passed)
		return nil
	},
}

func init() {
	lessonsCmd.Flags().String("unit", "", "Filter by unit (e.g. descriptive-statistics)")
}
