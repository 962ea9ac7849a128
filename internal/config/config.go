package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	MongoURI        string
	MongoDatabase   string
	ShutdownTimeout time.Duration
	UploadDir       string
	FrontendURL     string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:        envOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:   envOrDefault("MONGODB_DATABASE", "storefront"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		UploadDir:       envOrDefault("UPLOAD_DIR", "uploads"),
		FrontendURL:     envOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
