package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sngm3741/attachment-quiz/api/internal/config"
	"github.com/sngm3741/attachment-quiz/api/internal/quiz/domain"
)

const testSecret = "test-secret"

type memoryRepo struct {
	mu        sync.Mutex
	responses []domain.Response
}

func (m *memoryRepo) Create(_ context.Context, response *domain.Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	response.ID = "id"
	m.responses = append(m.responses, *response)
	return nil
}

func (m *memoryRepo) CountByResultType(context.Context) ([]domain.LabelCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	groups := make([]domain.LabelCount, 0, len(m.responses))
	for _, r := range m.responses {
		groups = append(groups, domain.LabelCount{Label: r.ResultType.String(), Count: 1})
	}
	return groups, nil
}

func (m *memoryRepo) Recent(context.Context, int) ([]domain.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Response(nil), m.responses...), nil
}

func testConfig() config.Config {
	return config.Config{
		Addr:               ":0",
		ResponseCollection: "surveyresponses",
		Threshold:          3.2,
		AllowedOrigins:     []string{"https://quiz.example"},
		AdminJWT: config.AdminJWTConfig{
			Secret:   testSecret,
			Issuer:   "attachment-quiz-admin",
			Audience: "quiz-admin",
		},
	}
}

func newTestServer(t *testing.T, cfg config.Config, ping func(context.Context) error) (*Server, *memoryRepo) {
	t.Helper()
	classifier, err := domain.NewClassifier(cfg.Threshold)
	require.NoError(t, err)
	repo := &memoryRepo{}
	return newServer(cfg, deps{repo: repo, ping: ping, classifier: classifier}), repo
}

func signToken(t *testing.T, secret string, claims authClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() authClaims {
	return authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator-1",
			Issuer:    "attachment-quiz-admin",
			Audience:  jwt.ClaimStrings{"quiz-admin"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name: "operator",
	}
}

func TestRouterSubmitAndStats(t *testing.T) {
	srv, repo := newTestServer(t, testConfig(), nil)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(`{"anxietyScore":20,"avoidanceScore":8,"anxietyCount":4,"avoidanceCount":4}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"resultType":"anxious"`)
	require.Len(t, repo.responses, 1)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"secure":0,"anxious":1,"avoidant":0,"fearful":0}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `quiz_submissions_total{result_type="anxious"} 1`)
}

func TestRouterRateLimitsSubmissions(t *testing.T) {
	cfg := testConfig()
	cfg.SubmitRatePerSec = 1
	cfg.SubmitBurst = 1
	srv, _ := newTestServer(t, cfg, nil)
	router := srv.Router()

	body := `{"anxietyScore":12,"avoidanceScore":12,"anxietyCount":4,"avoidanceCount":4}`
	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
		req.RemoteAddr = "192.0.2.10:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusTooManyRequests}, codes)
}

func TestRouterRateLimitIgnoresForwardedHeaders(t *testing.T) {
	cfg := testConfig()
	cfg.SubmitRatePerSec = 1
	cfg.SubmitBurst = 1
	srv, repo := newTestServer(t, cfg, nil)
	router := srv.Router()

	body := `{"anxietyScore":12,"avoidanceScore":12,"anxietyCount":4,"avoidanceCount":4}`
	forwarded := []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"}
	codes := make([]int, 0, len(forwarded))
	for i, ip := range forwarded {
		req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
		req.RemoteAddr = "192.0.2.10:1234"
		if i%2 == 0 {
			req.Header.Set("X-Forwarded-For", ip)
		} else {
			req.Header.Set("X-Real-IP", ip)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
	assert.Len(t, repo.responses, 1)
}

func TestHealthHandler(t *testing.T) {
	srv, _ := newTestServer(t, testConfig(), func(context.Context) error { return nil })
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	srv, _ = newTestServer(t, testConfig(), func(context.Context) error { return errors.New("no primary") })
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestAdminRequiresToken(t *testing.T) {
	srv, _ := newTestServer(t, testConfig(), nil)
	router := srv.Router()

	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"someone-else"}
	noSubject := validClaims()
	noSubject.Subject = ""
	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other", validClaims()), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, expired), http.StatusUnauthorized},
		{"wrong audience", "Bearer " + signToken(t, testSecret, wrongAudience), http.StatusUnauthorized},
		{"no subject", "Bearer " + signToken(t, testSecret, noSubject), http.StatusUnauthorized},
		{"no expiry", "Bearer " + signToken(t, testSecret, noExpiry), http.StatusUnauthorized},
		{"valid", "Bearer " + signToken(t, testSecret, validClaims()), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAdminDisabledWithoutSecret(t *testing.T) {
	cfg := testConfig()
	cfg.AdminJWT.Secret = ""
	srv, _ := newTestServer(t, cfg, nil)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/settings", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCORSPolicy(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		wantCode    int
		wantAllow   string
		wantMethods string
	}{
		{"preflight from allowed origin", []string{"https://quiz.example/"}, http.MethodOptions, "https://quiz.example", http.StatusNoContent, "https://quiz.example", corsAllowMethods},
		{"preflight from unknown origin", []string{"https://quiz.example"}, http.MethodOptions, "https://evil.example", http.StatusNoContent, "", ""},
		{"simple request from allowed origin", []string{"https://quiz.example"}, http.MethodGet, "https://quiz.example", http.StatusOK, "https://quiz.example", ""},
		{"simple request from unknown origin", []string{"https://quiz.example"}, http.MethodGet, "https://evil.example", http.StatusOK, "", ""},
		{"wildcard echoes origin", []string{"*"}, http.MethodGet, "https://any.example", http.StatusOK, "https://any.example", ""},
		{"empty list sends no headers", nil, http.MethodGet, "https://any.example", http.StatusOK, "", ""},
		{"same-origin request", []string{"*"}, http.MethodGet, "", http.StatusOK, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/stats", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()
			newCORSPolicy(tt.origins).handler(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantMethods, rec.Header().Get("Access-Control-Allow-Methods"))
		})
	}
}

func TestAdminLogsOperator(t *testing.T) {
	srv, _ := newTestServer(t, testConfig(), nil)
	core, logs := observer.New(zap.InfoLevel)
	srv.logger = zap.New(core)

	req := httptest.NewRequest(http.MethodGet, "/admin/responses", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	entries := logs.FilterMessage("admin response list").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "operator (operator-1)", entries[0].ContextMap()["operator"])
}
