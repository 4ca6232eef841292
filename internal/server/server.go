package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/sngm3741/attachment-quiz/api/internal/config"
	mongodoc "github.com/sngm3741/attachment-quiz/api/internal/infrastructure/mongo"
	adminhttp "github.com/sngm3741/attachment-quiz/api/internal/interfaces/http/admin"
	commonhttp "github.com/sngm3741/attachment-quiz/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/attachment-quiz/api/internal/interfaces/http/public"
	"github.com/sngm3741/attachment-quiz/api/internal/metrics"
	quizapp "github.com/sngm3741/attachment-quiz/api/internal/quiz/application"
	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

// Server は HTTP サーバーのライフサイクルを管理し、Public/Admin の各ハンドラへ依存注入するコンポジションルート。
// Mongo クライアントは起動時に一度だけ受け取り、shutdown で切断する。
type Server struct {
	logger         *zap.Logger
	client         *mongo.Client
	ping           func(ctx context.Context) error
	repo           *mongodoc.ResponseRepository
	metrics        *metrics.Metrics
	submissions    quizapp.SubmissionService
	stats          quizapp.StatsService
	limiter        *commonhttp.ClientLimiter
	adminJWT       config.AdminJWTConfig
	settings       adminhttp.Settings
	addr           string
	allowedOrigins []string
}

// deps は New とテストの双方から Server を組み立てるための依存一式。
type deps struct {
	logger     *zap.Logger
	repo       quizapp.ResponseRepository
	ping       func(ctx context.Context) error
	classifier domain.Classifier
}

// New は Config と Mongo クライアントを受け取り、アプリケーションサービスとハンドラを組み立てた Server を返す。
func New(cfg config.Config, logger *zap.Logger, client *mongo.Client) (*Server, error) {
	classifier, err := domain.NewClassifier(cfg.Threshold)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}

	repo := mongodoc.NewResponseRepository(client.Database(cfg.MongoDatabase), cfg.ResponseCollection)
	srv := newServer(cfg, deps{
		logger: logger,
		repo:   repo,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		classifier: classifier,
	})
	srv.client = client
	srv.repo = repo
	return srv, nil
}

func newServer(cfg config.Config, d deps) *Server {
	logger := d.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger:      logger,
		ping:        d.ping,
		metrics:     metrics.New(),
		submissions: quizapp.NewSubmissionService(d.classifier, d.repo),
		stats:       quizapp.NewStatsService(d.repo),
		limiter:     commonhttp.NewClientLimiter(cfg.SubmitRatePerSec, cfg.SubmitBurst),
		adminJWT:    cfg.AdminJWT,
		settings: adminhttp.Settings{
			Threshold:          d.classifier.Threshold(),
			ResponseCollection: cfg.ResponseCollection,
		},
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}
}

// Run はHTTPサーバーを起動し、シグナル受信または異常終了まで待機する。
func (s *Server) Run() error {
	if s.repo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.repo.EnsureIndexes(ctx); err != nil {
			s.logger.Warn("インデックスの作成に失敗しました", zap.Error(err))
		}
		cancel()
	}

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP サーバー起動", zap.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	return waitForShutdown(httpServer, errChan, s)
}

// Router はミドルウェアと Public/Admin のルーティングを組み立てる。
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(commonhttp.PeerAddr)
	router.Use(middleware.RealIP)
	router.Use(commonhttp.RequestLogger(s.logger))
	router.Use(middleware.Recoverer)
	router.Use(s.metrics.Middleware)
	router.Use(newCORSPolicy(s.allowedOrigins).handler)

	router.Get("/healthz", s.healthHandler())
	router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:      s.logger,
		Submissions: s.submissions,
		Stats:       s.stats,
		Observer:    s.metrics,
		SubmitLimiter: s.limiter.Middleware(func(*http.Request) {
			s.metrics.ObserveRejection("rate_limited")
		}),
	})
	router.Route("/api", publicHandler.Register)

	if s.adminJWT.Enabled() {
		adminHandler := adminhttp.NewHandler(adminhttp.Config{
			Logger:   s.logger,
			Stats:    s.stats,
			Settings: s.settings,
		})
		router.Route("/admin", func(r chi.Router) {
			r.Use(s.authMiddleware)
			adminHandler.Register(r)
		})
	} else {
		s.logger.Info("ADMIN_JWT_SECRET が未設定のため管理 API を無効化します")
	}

	return router
}

// healthHandler は MongoDB への疎通確認を行い、監視系からのヘルスチェック要求に応える。
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if s.ping != nil {
			if err := s.ping(ctx); err != nil {
				commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
				return
			}
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// shutdown は MongoDB クライアントをタイムアウト付きで切断し、プロセス終了時のリソースリークを防ぐ。
func (s *Server) shutdown(ctx context.Context) {
	if s.client == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Warn("MongoDB 切断時にエラー", zap.Error(err))
	}
}

// waitForShutdown は ListenAndServe の終了と OS シグナルを監視し、graceful shutdown を実現する。
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	var runErr error
	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("http server: %w", err)
		}
	case sig := <-sigChan:
		srv.logger.Info("シグナルを受信。サーバー停止処理を開始します。", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Warn("サーバー停止時にエラー", zap.Error(err))
		}
	}

	srv.shutdown(context.Background())
	return runErr
}
