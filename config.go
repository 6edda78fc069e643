package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

type Config struct {
	Port           string
	CORSOrigin     string
	PortalBaseURL  string
	RequestTimeout time.Duration
	UserAgent      string
}

// LoadConfig reads configuration from the environment, using an optional
// .env file in the working directory. Missing variables fall back to the
// defaults of the original deployment.
func LoadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:           envOr("PORT", "3000"),
		CORSOrigin:     envOr("CORS_ORIGIN", "http://localhost:3000"),
		PortalBaseURL:  envOr("PORTAL_BASE_URL", "https://estudent.mu.edu.et"),
		RequestTimeout: time.Duration(envInt("REQUEST_TIMEOUT", 30000)) * time.Millisecond,
		UserAgent:      envOr("USER_AGENT", defaultUserAgent),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
