package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// AdminJWTConfig defines issuer/secret/audience for admin token verification.
type AdminJWTConfig struct {
	Secret   string `env:"ADMIN_JWT_SECRET"`
	Issuer   string `env:"ADMIN_JWT_ISSUER"   envDefault:"attachment-quiz-admin"`
	Audience string `env:"ADMIN_JWT_AUDIENCE"`
}

// Enabled reports whether admin routes should be mounted.
func (c AdminJWTConfig) Enabled() bool {
	return strings.TrimSpace(c.Secret) != ""
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr               string         `env:"HTTP_ADDR"               envDefault:":8080"`
	MongoURI           string         `env:"MONGO_URI"               envDefault:"mongodb://mongo:27017"`
	MongoDatabase      string         `env:"MONGO_DB"                envDefault:"attachment-quiz"`
	ResponseCollection string         `env:"RESPONSE_COLLECTION"     envDefault:"surveyresponses"`
	Timeout            time.Duration  `env:"MONGO_CONNECT_TIMEOUT"   envDefault:"10s"`
	Threshold          float64        `env:"QUIZ_THRESHOLD"          envDefault:"3.2"`
	AllowedOrigins     []string       `env:"API_ALLOWED_ORIGINS"     envDefault:"*"   envSeparator:","`
	SubmitRatePerSec   float64        `env:"SUBMIT_RATE_PER_SECOND"  envDefault:"1"`
	SubmitBurst        int            `env:"SUBMIT_RATE_BURST"       envDefault:"5"`
	LogLevel           string         `env:"LOG_LEVEL"               envDefault:"info"`
	LogFile            string         `env:"LOG_FILE"`
	AdminJWT           AdminJWTConfig
}

// Load reads environment variables and returns a validated Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.AllowedOrigins = cleanList(cfg.AllowedOrigins)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env.Parse cannot express through tags.
func (c Config) Validate() error {
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) || c.Threshold <= 0 {
		return fmt.Errorf("QUIZ_THRESHOLD must be a positive number, got %v", c.Threshold)
	}
	if c.Timeout <= 0 {
		return errors.New("MONGO_CONNECT_TIMEOUT must be positive")
	}
	if strings.TrimSpace(c.MongoDatabase) == "" || strings.TrimSpace(c.ResponseCollection) == "" {
		return errors.New("MONGO_DB and RESPONSE_COLLECTION must not be empty")
	}
	if c.SubmitRatePerSec > 0 && c.SubmitBurst <= 0 {
		return errors.New("SUBMIT_RATE_BURST must be positive when rate limiting is enabled")
	}
	return nil
}

func cleanList(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
