package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the runtime settings for the server. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Port          string
	AllowedOrigin string
	UploadDir     string
	ReportRemark  bool // include the Remark line in report cards
}

func Load() Config {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8080"),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		ReportRemark:  getBoolEnv("REPORT_REMARK", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
