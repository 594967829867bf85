package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset [slug]",
	Short: "Reset lesson progress",
	Long: `Clear recorded progress for one lesson, or for every lesson with --all.

Quiz and XP events are append-only history and are left in place; only the
per-lesson progress state (viewed steps, score, pass flag) is removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		switch {
		case all && len(args) > 0:
			return fmt.Errorf("use a slug or --all, not both")
		case !all && len(args) == 0:
			return fmt.Errorf("specify a lesson slug or --all")
		}

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
		progressStore := st.ProgressStore()

		if all {
			if err := progressStore.ResetAll(ctx); err != nil {
				return fmt.Errorf("reset progress: %w", err)
			}
			fmt.Printf("Progress cleared for all %d lessons.\n", catalog.Count())
			return nil
		}

		slug := args[0]
		if _, ok := catalog.Get(slug); !ok {
			return fmt.Errorf("no lesson found for slug %q — run 'statlab lessons' for the catalog", slug)
		}
		if err := progressStore.Reset(ctx, slug); err != nil {
			return fmt.Errorf("reset progress for %q: %w", slug, err)
		}
		fmt.Printf("Progress cleared for %s.\n", slug)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Reset progress for every lesson")
}
