package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "surveyresponses", cfg.ResponseCollection)
	assert.Equal(t, 3.2, cfg.Threshold)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.AdminJWT.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("QUIZ_THRESHOLD", "3.0")
	t.Setenv("API_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("MONGO_CONNECT_TIMEOUT", "2s")
	t.Setenv("ADMIN_JWT_SECRET", "s3cret")
	t.Setenv("ADMIN_JWT_AUDIENCE", "quiz")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Threshold)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.True(t, cfg.AdminJWT.Enabled())
	assert.Equal(t, "attachment-quiz-admin", cfg.AdminJWT.Issuer)
	assert.Equal(t, "quiz", cfg.AdminJWT.Audience)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric threshold", "QUIZ_THRESHOLD", "high"},
		{"zero threshold", "QUIZ_THRESHOLD", "0"},
		{"negative timeout", "MONGO_CONNECT_TIMEOUT", "-1s"},
		{"zero burst", "SUBMIT_RATE_BURST", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
