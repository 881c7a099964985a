// Package config centralises configuration parsing for the exercise
// tracker service.
package config

import (
	"os"
	"time"
)

// Config captures runtime configuration values for the service.
type Config struct {
	HTTPAddress     string
	MongoURI        string // empty selects the in-memory store
	MongoDatabase   string
	MongoTimeout    time.Duration // connect + ping deadline at startup
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying sensible
// defaults for local dev. PORT is honoured as a shorthand when
// HTTP_ADDRESS is unset.
func Load() Config {
	return Config{
		HTTPAddress:     listenAddress(),
		MongoURI:        getEnv("MONGO_URI", ""),
		MongoDatabase:   getEnv("MONGO_DATABASE", "exercise_tracker"),
		MongoTimeout:    getDurationEnv("MONGO_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func listenAddress() string {
	if addr := getEnv("HTTP_ADDRESS", ""); addr != "" {
		return addr
	}
	if port := getEnv("PORT", ""); port != "" {
		return ":" + port
	}
	return ":8080"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
