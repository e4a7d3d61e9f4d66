package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/keyquiz/keyquiz/internal/app"
	"github.com/keyquiz/keyquiz/internal/docs"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DurationSeconds <= 0 {
		return fmt.Errorf("duration must be positive, got %d", cfg.DurationSeconds)
	}

	st, dbPath, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	logPath := cfg.LogPath
	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "keyquiz.log")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, nil))

	opts := app.Options{
		Keywords:        st.KeywordRepo(),
		Answers:         st.AnswerRepo(),
		Events:          st.EventRepo(),
		Profile:         cfg.Profile(),
		DurationSeconds: cfg.DurationSeconds,
		Logger:          logger,
	}

	if cfg.RemoteURL != "" {
		client := docs.NewClient(cfg.ClientConfig())
		opts.Keywords = client
		opts.Answers = client
		logger.Info("using document server", "url", cfg.RemoteURL)
	}

	return app.Run(opts)
}
