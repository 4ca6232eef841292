package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

func newClassifyCmd() *cobra.Command {
	var (
		in        domain.SubmissionInput
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify raw axis sums without touching the database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClassify(cmd.OutOrStdout(), in, threshold)
		},
	}

	cmd.Flags().Float64Var(&in.AnxietyScore, "anxiety-score", 0, "sum of anxiety answers")
	cmd.Flags().Float64Var(&in.AvoidanceScore, "avoidance-score", 0, "sum of avoidance answers")
	cmd.Flags().Float64Var(&in.AnxietyCount, "anxiety-count", 4, "number of anxiety questions")
	cmd.Flags().Float64Var(&in.AvoidanceCount, "avoidance-count", 4, "number of avoidance questions")
	cmd.Flags().Float64Var(&threshold, "threshold", domain.DefaultThreshold, "high/low cutoff for both axes")
	return cmd
}

func runClassify(out io.Writer, in domain.SubmissionInput, threshold float64) error {
	classifier, err := domain.NewClassifier(threshold)
	if err != nil {
		return err
	}
	result, err := classifier.Classify(in)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "anxiety   %.4g\n", result.AnxietyPoint)
	fmt.Fprintf(out, "avoidance %.4g\n", result.AvoidancePoint)
	fmt.Fprintf(out, "result    %s  %s\n", result.ResultType, result.ResultType.DisplayName())
	return nil
}
