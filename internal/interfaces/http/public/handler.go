package public

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	quizapp "github.com/sngm3741/attachment-quiz/api/internal/quiz/application"
)

// SubmissionObserver receives submission outcomes, typically for metrics.
type SubmissionObserver interface {
	ObserveSubmission(resultType string)
	ObserveRejection(reason string)
}

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger         *zap.Logger
	submissions    quizapp.SubmissionService
	stats          quizapp.StatsService
	observer       SubmissionObserver
	submitLimiter  func(http.Handler) http.Handler
	requestTimeout time.Duration
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *zap.Logger
	Submissions quizapp.SubmissionService
	Stats       quizapp.StatsService
	Observer    SubmissionObserver
	// SubmitLimiter wraps the write endpoints; nil means unlimited.
	SubmitLimiter  func(http.Handler) http.Handler
	RequestTimeout time.Duration
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	observer := cfg.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Handler{
		logger:         logger,
		submissions:    cfg.Submissions,
		stats:          cfg.Stats,
		observer:       observer,
		submitLimiter:  cfg.SubmitLimiter,
		requestTimeout: timeout,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/stats", h.statsHandler())
	r.Get("/questions", h.questionsHandler())
	r.Group(func(r chi.Router) {
		if h.submitLimiter != nil {
			r.Use(h.submitLimiter)
		}
		r.Post("/submit", h.submitHandler())
		r.Post("/answers", h.answersHandler())
	})
}

type nopObserver struct{}

func (nopObserver) ObserveSubmission(string) {}
func (nopObserver) ObserveRejection(string)  {}
