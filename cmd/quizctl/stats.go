package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sngm3741/attachment-quiz/api/internal/config"
	"github.com/sngm3741/attachment-quiz/api/internal/quiz/application"
	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the number of stored responses per result type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			repo, closeFn, err := openRepository(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			stats, err := application.NewStatsService(repo).Stats(cmd.Context())
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
}

func printStats(out io.Writer, stats domain.Stats) {
	total := stats.Total()
	for _, rt := range domain.AllResultTypes {
		count := stats.Count(rt)
		share := 0.0
		if total > 0 {
			share = float64(count) / float64(total) * 100
		}
		fmt.Fprintf(out, "%-9s %6d  %5.1f%%\n", rt, count, share)
	}
	fmt.Fprintf(out, "%-9s %6d\n", "total", total)
}
