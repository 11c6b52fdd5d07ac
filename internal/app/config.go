package app

import (
	"strings"
	"time"

	"github.com/teamvote/voteboard-backend/internal/platform/envutil"
)

type Config struct {
	DatabaseURL    string
	Port           string
	Environment    string
	LogMode        string
	Version        string
	CORSOrigins    []string
	RateLimitRPM   int
	RequestTimeout time.Duration
}

func LoadConfig() Config {
	timeoutSeconds := envutil.Int("REQUEST_TIMEOUT", 30)

	var origins []string
	if raw := envutil.String("CORS_ORIGINS", ""); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}

	return Config{
		DatabaseURL:    envutil.String("DATABASE_URL", ""),
		Port:           envutil.String("PORT", "8080"),
		Environment:    envutil.String("ENVIRONMENT", "development"),
		LogMode:        envutil.String("LOG_MODE", "development"),
		Version:        envutil.String("SERVICE_VERSION", "dev"),
		CORSOrigins:    origins,
		RateLimitRPM:   envutil.Int("RATE_LIMIT_RPM", 120),
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
	}
}
