package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/statlab/internal/api"
	"github.com/abhisek/statlab/internal/app"
	"github.com/abhisek/statlab/internal/llm"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/store"
	"github.com/abhisek/statlab/internal/tutor"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	skipSplash, _ := cmd.Flags().GetBool("no-splash")

	deps := app.Deps{
		Progress:   progress.NewService(st.ProgressStore(), progress.DefaultConfig()),
		Events:     eventRepo,
		QuizCfg:    quiz.DefaultConfig(),
		SkipSplash: skipSplash,
	}

	if baseURL := resolveContentURL(cmd); baseURL != "" {
		deps.Client = api.New(baseURL)
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutor explanations will be unavailable.")
	} else {
		deps.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
	}

	return app.Run(deps)
}
