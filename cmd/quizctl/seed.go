package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/sngm3741/attachment-quiz/api/internal/config"
	"github.com/sngm3741/attachment-quiz/api/internal/quiz/application"
	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

type seedOptions struct {
	count      int
	drop       bool
	randomSeed int64
}

func newSeedCmd() *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert random questionnaires for local dashboards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			classifier, err := domain.NewClassifier(cfg.Threshold)
			if err != nil {
				return err
			}
			repo, closeFn, err := openRepository(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			if opts.drop {
				if err := repo.Drop(cmd.Context()); err != nil {
					return fmt.Errorf("drop collection: %w", err)
				}
			}

			svc := application.NewSubmissionService(classifier, repo)
			rng := rand.New(rand.NewSource(opts.randomSeed))
			for i := 0; i < opts.count; i++ {
				if _, err := svc.SubmitAnswers(cmd.Context(), randomAnswers(rng, domain.Questions)); err != nil {
					return fmt.Errorf("insert response %d: %w", i, err)
				}
			}

			stats, err := application.NewStatsService(repo).Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d responses\n", opts.count)
			printStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.count, "count", 100, "number of responses to insert")
	cmd.Flags().BoolVar(&opts.drop, "drop", false, "drop the collection before inserting")
	cmd.Flags().Int64Var(&opts.randomSeed, "seed", time.Now().UnixNano(), "random seed for reproducible data")
	return cmd
}

// randomAnswers answers roughly 80% of the questions; the rest fall back to the default value.
func randomAnswers(rng *rand.Rand, questions []domain.Question) domain.Answers {
	answers := make(domain.Answers, len(questions))
	for _, q := range questions {
		if rng.Float64() < 0.2 {
			continue
		}
		answers[q.ID] = domain.MinAnswer + rng.Intn(domain.MaxAnswer-domain.MinAnswer+1)
	}
	return answers
}
