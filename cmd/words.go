package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordgym/internal/api"
	"github.com/abhisek/wordgym/internal/config"
	"github.com/abhisek/wordgym/internal/logging"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Print the word list",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logging.New(cfg.Debug)
		defer func() { _ = log.Sync() }()

		client := api.New(cfg.APIBaseURL, cfg.APIToken, log)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		ws, err := client.Words(ctx)
		if err != nil {
			return fmt.Errorf("fetch words: %w", err)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "WORD\tTRANSLATION\tSTATUS")
		for _, w := range ws {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", w.Text, w.Translation, w.Status)
		}
		return tw.Flush()
	},
}
