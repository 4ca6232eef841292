package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoutePattern(t *testing.T) {
	m := New()
	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/api/stats", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requestCounter.WithLabelValues(http.MethodGet, "/api/stats", "418")))
}

func TestQuizCounters(t *testing.T) {
	m := New()
	m.ObserveSubmission("secure")
	m.ObserveSubmission("secure")
	m.ObserveRejection("validation")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues("secure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues("validation")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.ObserveSubmission("fearful")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `quiz_submissions_total{result_type="fearful"} 1`)
}
