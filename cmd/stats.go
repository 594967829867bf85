package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/llm"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics and LLM usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.EventRepo()
		svc := progress.NewService(st.ProgressStore(), progress.DefaultConfig())

		if err := printLessonStats(ctx, svc, repo); err != nil {
			return err
		}
		return printLLMStats(ctx, repo)
	},
}

func printLessonStats(ctx context.Context, svc *progress.Service, repo store.EventRepo) error {
	totalXP, err := repo.TotalXP(ctx)
	if err != nil {
		return fmt.Errorf("query total XP: %w", err)
	}

	fmt.Println("Lesson Progress")
	fmt.Println(strings.Repeat("─", 78))
	fmt.Printf("%-28s  %-22s  %8s  %6s  %s\n",
		"Lesson", "Unit", "Attempts", "Score", "Status")
	fmt.Println(strings.Repeat("─", 78))

	var passed, attempted int
	for _, l := range catalog.All() {
		p, err := svc.Get(ctx, l.Slug)
		if err != nil {
			return fmt.Errorf("read progress for %q: %w", l.Slug, err)
		}
		attempts, err := repo.AttemptCount(ctx, l.Slug)
		if err != nil {
			return fmt.Errorf("count attempts for %q: %w", l.Slug, err)
		}
		if attempts == 0 && !p.ViewedLesson {
			continue
		}

		status := "viewed"
		score := "-"
		if p.QuizAttempted {
			attempted++
			if p.Score != nil {
				score = fmt.Sprintf("%d%%", *p.Score)
			}
			if p.Passed != nil && *p.Passed {
				status = "passed"
				passed++
			} else {
				status = "not passed"
			}
		}
		fmt.Printf("%-28s  %-22s  %8d  %6s  %s\n",
			l.Slug, l.Unit.DisplayName(), attempts, score, status)
	}

	fmt.Println(strings.Repeat("─", 78))
	fmt.Printf("%d/%d lessons passed, %d attempted   ✦ %d XP total\n",
		passed, catalog.Count(), attempted, totalXP)
	return nil
}

func printLLMStats(ctx context.Context, repo store.EventRepo) error {
	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		return fmt.Errorf("query usage: %w", err)
	}
	if len(stats) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("LLM Usage by Purpose")
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-16s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
	fmt.Println(strings.Repeat("─", 72))

	var totalCalls, totalIn, totalOut int
	for _, s := range stats {
		total := s.InputTokens + s.OutputTokens
		fmt.Printf("%-16s  %6d  %10d  %10d  %10d  %8d\n",
			s.Purpose, s.Calls, s.InputTokens, s.OutputTokens, total, s.AvgLatencyMs)
		totalCalls += s.Calls
		totalIn += s.InputTokens
		totalOut += s.OutputTokens
	}

	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n",
		"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)

	modelUsage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		return fmt.Errorf("query model usage: %w", err)
	}
	if len(modelUsage) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Estimated Cost (USD)")
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
		"Model", "Calls", "Input", "Output", "Cost")
	fmt.Println(strings.Repeat("─", 72))

	var totalCost float64
	var unknownModels []string
	for _, mu := range modelUsage {
		cost := llm.LookupCost(mu.Model)
		if cost == nil {
			unknownModels = append(unknownModels, mu.Model)
			fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
				truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
			continue
		}
		c := cost.Cost(mu.InputTokens, mu.OutputTokens)
		totalCost += c
		fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
			truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
	}

	fmt.Println(strings.Repeat("─", 72))
	label := "TOTAL"
	if len(unknownModels) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n",
		label, "", "", "", formatCost(totalCost))

	if len(unknownModels) > 0 {
		fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
