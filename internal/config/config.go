package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration, read from the environment with
// development defaults.
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       string
	IngestUser      string
	IngestPassword  string
	QueryServiceURL string
	QueryTimeout    time.Duration

	// ClusterThresholdMeters is the default proximity-clustering distance.
	ClusterThresholdMeters float64
}

// Load reads the configuration
func Load() *Config {
	cfg := &Config{
		Port:                   getEnv("PORT", ":8080"),
		DBPath:                 getEnv("DB_PATH", "./data/whereabouts.db"),
		JWTSecret:              getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		IngestUser:             getEnv("INGEST_USER", "admin"),
		IngestPassword:         getEnv("INGEST_PASSWORD", "admin"),
		QueryServiceURL:        getEnv("QUERY_SERVICE_URL", "http://localhost:8000"),
		QueryTimeout:           60 * time.Second,
		ClusterThresholdMeters: 50,
	}

	if v := os.Getenv("QUERY_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.QueryTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("CLUSTER_THRESHOLD_METERS"); v != "" {
		if meters, err := strconv.ParseFloat(v, 64); err == nil && meters >= 0 {
			cfg.ClusterThresholdMeters = meters
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
