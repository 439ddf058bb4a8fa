package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgym/internal/api"
	"github.com/abhisek/wordgym/internal/app"
	"github.com/abhisek/wordgym/internal/config"
	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/logging"
	"github.com/abhisek/wordgym/internal/speech"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp()
	},
}

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg.Debug)
	defer func() { _ = log.Sync() }()

	client := api.New(cfg.APIBaseURL, cfg.APIToken, log)
	reporter := game.NewReporter(client, client, log)
	speaker := speech.Detect(cfg.AudioCacheDir, cfg.PlayerCmd, log)

	return app.Run(app.Options{
		Config:   cfg,
		Client:   client,
		Reporter: reporter,
		Speaker:  speaker,
		Log:      log,
	})
}
