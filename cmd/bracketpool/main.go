package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/omarshaarawi/bracketpool/internal/config"
	"github.com/omarshaarawi/bracketpool/internal/prompt"
	"github.com/omarshaarawi/bracketpool/internal/render"
	"github.com/omarshaarawi/bracketpool/internal/repository/memory"
	"github.com/omarshaarawi/bracketpool/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var resultsDir, logosDir string

	cmd := &cobra.Command{
		Use:           "bracketpool",
		Short:         "Score a playoff bracket pool and render bracket images",
		Long:          "bracketpool runs one interactive pool session: build the playoff field, collect each player's picks and the actual results, score everyone, and write bracket images to the results directory.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				slog.Debug("No .env file loaded", "error", err)
			}

			cfg, err := config.New()
			if err != nil {
				return err
			}
			if resultsDir != "" {
				cfg.Pool.ResultsDir = resultsDir
			}
			if logosDir != "" {
				cfg.Pool.LogosDir = logosDir
			}
			setupLogging(cfg.Pool.LogLevel)

			repo := memory.NewRepository()
			prompter := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
			renderer := render.New(cfg.Pool.LogosDir, cfg.Pool.ResultsDir)

			return service.NewPoolService(repo, prompter, renderer).Run()
		},
	}

	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "directory for rendered bracket images (overrides RESULTS_DIR)")
	cmd.Flags().StringVar(&logosDir, "logos-dir", "", "directory holding team logo PNGs (overrides LOGOS_DIR)")

	return cmd
}

func setupLogging(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
