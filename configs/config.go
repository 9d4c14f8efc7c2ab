package config

import (
	"os"
	"strconv"
	"time"
)

type R2 struct {
	AccountID  string
	AccessKey  string
	SecretKey  string
	BucketName string
}

type Config struct {
	APIOrigin      string // base URL of the remote signage API
	ListenAddr     string
	PostgresURI    string
	RedisURI       string
	FrontendURL    string
	R2             R2
	SecretKey      string
	CookieName     string
	SessionTTL     time.Duration
	RemoteTimeout  time.Duration
	AttemptMaxAge  time.Duration
	ProbeInterval  time.Duration
	ProbeMaxChecks int
}

func LoadConfig() *Config {
	return &Config{
		APIOrigin:   getEnv("API_ORIGIN", "http://localhost:3000/api"),
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		PostgresURI: getEnv("POSTGRES_URI", ""),
		RedisURI:    getEnv("REDIS_URI", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		R2: R2{
			AccountID:  getEnv("R2_ACCOUNT_ID", ""),
			AccessKey:  getEnv("R2_ACCESS_KEY", ""),
			SecretKey:  getEnv("R2_SECRET_KEY", ""),
			BucketName: getEnv("R2_BUCKET_NAME", ""),
		},
		SecretKey:      getEnv("SECRET_KEY", ""),
		CookieName:     getEnv("COOKIE_NAME", "console_session"),
		SessionTTL:     durationEnv("SESSION_TTL_MINUTES", 24*60) * time.Minute,
		RemoteTimeout:  durationEnv("REMOTE_TIMEOUT_SECONDS", 60) * time.Second,
		AttemptMaxAge:  durationEnv("ATTEMPT_MAX_AGE_DAYS", 30) * 24 * time.Hour,
		ProbeInterval:  durationEnv("PROBE_INTERVAL_SECONDS", 60) * time.Second,
		ProbeMaxChecks: intEnv("PROBE_MAX_CHECKS", 10),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func intEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func durationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(intEnv(key, defaultValue))
}
