package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer auth on the API.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Formats returned when a request does not name any.
	DefaultFormats []string
}

func Load() Config {
	cfg := Config{
		Port:           envOr("PORT", "8090"),
		APIKey:         os.Getenv("CLAUSEMD_API_KEY"),
		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB
		DefaultFormats: splitCSV(envOr("DEFAULT_OUTPUT_FORMATS", "structured_json,markdown")),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if len(cfg.DefaultFormats) == 0 {
		cfg.DefaultFormats = []string{"structured_json", "markdown"}
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
