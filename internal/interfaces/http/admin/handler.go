package admin

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	quizapp "github.com/sngm3741/attachment-quiz/api/internal/quiz/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger   *zap.Logger
	stats    quizapp.StatsService
	settings Settings
}

// Settings is the read-only runtime configuration shown to operators.
type Settings struct {
	Threshold          float64 `json:"threshold"`
	ResponseCollection string  `json:"responseCollection"`
}

// Config provides dependencies for Handler.
type Config struct {
	Logger   *zap.Logger
	Stats    quizapp.StatsService
	Settings Settings
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:   logger,
		stats:    cfg.Stats,
		settings: cfg.Settings,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/responses", h.responseListHandler())
	r.Get("/settings", h.settingsHandler())
}
