package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/statlab/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "statlab",
	Short: "Terminal statistics tutor",
	Long:  "StatLab — a terminal app that teaches introductory statistics through short lessons, recaps, and hearts-gated quizzes.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STATLAB_DB env var)")
	rootCmd.Flags().String("content-url", "", "Lesson content backend base URL (overrides STATLAB_CONTENT_URL env var)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the splash screen")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STATLAB_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveContentURL returns the backend base URL from the --content-url flag
// or the STATLAB_CONTENT_URL env var. Empty means offline-only content.
func resolveContentURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("content-url"); u != "" {
		return u
	}
	return os.Getenv("STATLAB_CONTENT_URL")
}
