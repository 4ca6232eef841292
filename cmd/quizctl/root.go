package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/attachment-quiz/api/internal/config"
	mongodoc "github.com/sngm3741/attachment-quiz/api/internal/infrastructure/mongo"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizctl",
		Short:         "Operate the attachment quiz backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newSeedCmd())
	root.AddCommand(newStatsCmd())
	return root
}

// openRepository connects with the same environment the API server uses.
// The returned func disconnects the client.
func openRepository(ctx context.Context, cfg config.Config) (*mongodoc.ResponseRepository, func(), error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}
	closeFn := func() {
		_ = client.Disconnect(context.Background())
	}
	return mongodoc.NewResponseRepository(client.Database(cfg.MongoDatabase), cfg.ResponseCollection), closeFn, nil
}
