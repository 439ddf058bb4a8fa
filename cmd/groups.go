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

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Print the word groups",
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

		groups, err := client.Groups(ctx)
		if err != nil {
			return fmt.Errorf("fetch groups: %w", err)
		}
		ws, err := client.Words(ctx)
		if err != nil {
			return fmt.Errorf("fetch words: %w", err)
		}
		counts := make(map[string]int, len(groups))
		for _, w := range ws {
			counts[w.GroupID]++
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "GROUP\tWORDS")
		for _, g := range groups {
			fmt.Fprintf(tw, "%s\t%d\n", g.Name, counts[g.ID])
		}
		return tw.Flush()
	},
}
