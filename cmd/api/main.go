package main

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/sngm3741/attachment-quiz/api/internal/config"
	"github.com/sngm3741/attachment-quiz/api/internal/logging"
	"github.com/sngm3741/attachment-quiz/api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗しました: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatal("MongoDB 接続に失敗しました", zap.Error(err))
	}

	logger.Info("loaded config",
		zap.String("addr", cfg.Addr),
		zap.String("database", cfg.MongoDatabase),
		zap.String("collection", cfg.ResponseCollection),
		zap.Float64("threshold", cfg.Threshold),
		zap.Bool("admin", cfg.AdminJWT.Enabled()),
	)

	app, err := server.New(cfg, logger, client)
	if err != nil {
		logger.Fatal("サーバーの構築に失敗しました", zap.Error(err))
	}
	if err := app.Run(); err != nil {
		logger.Fatal("サーバーが異常終了しました", zap.Error(err))
	}
}
