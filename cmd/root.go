package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyquiz/keyquiz/internal/config"
	"github.com/keyquiz/keyquiz/internal/deck"
	"github.com/keyquiz/keyquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "keyquiz",
	Short: "Korean history keyword quiz",
	Long:  "keyquiz is a terminal quiz that drills Korean history keywords against the clock.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KEYQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("remote", "", "Document server URL (overrides KEYQUIZ_REMOTE env var)")
	rootCmd.Flags().Int("duration", 0, "Quiz countdown in seconds (overrides KEYQUIZ_DURATION env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env and the environment, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if u, _ := cmd.Flags().GetString("remote"); u != "" {
		cfg.RemoteURL = u
	}
	if f := cmd.Flags().Lookup("duration"); f != nil && f.Changed {
		d, _ := cmd.Flags().GetInt("duration")
		cfg.DurationSeconds = d
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db / KEYQUIZ_DB first,
// then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the local store, seeding the bundled deck on first use.
func openStore(cmd *cobra.Command, cfg config.Config) (*store.Store, string, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, "", fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, "", fmt.Errorf("open store: %w", err)
	}
	if _, err := deck.SeedIfEmpty(cmd.Context(), st.KeywordRepo(), st.AnswerRepo()); err != nil {
		st.Close()
		return nil, "", fmt.Errorf("seed store: %w", err)
	}
	return st, dbPath, nil
}
