package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Library layout
	LibraryDir string
	DataDir    string

	// Auth: when empty, the API is open.
	APIKey string

	// Scanning
	ScanWorkers int

	// Upload limits
	MaxUploadBytes int64

	// Parser tuning
	ChunkThreshold int
	ValidateLines  int
	SnippetRadius  int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8095"),

		LibraryDir: envOr("NOVELSHELF_LIBRARY_DIR", "novel"),
		DataDir:    envOr("NOVELSHELF_DATA_DIR", "data"),

		APIKey: os.Getenv("NOVELSHELF_API_KEY"),

		ScanWorkers: envInt("SCAN_WORKERS", 4),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		ChunkThreshold: envInt("CHUNK_THRESHOLD", 3000),
		ValidateLines:  envInt("VALIDATE_LINES", 100),
		SnippetRadius:  envInt("SNIPPET_RADIUS", 60),
	}

	if cfg.ScanWorkers <= 0 {
		cfg.ScanWorkers = 4
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.ChunkThreshold <= 0 {
		cfg.ChunkThreshold = 3000
	}
	if cfg.ValidateLines <= 0 {
		cfg.ValidateLines = 100
	}
	if cfg.SnippetRadius <= 0 {
		cfg.SnippetRadius = 60
	}

	return cfg
}

func (c Config) Validate() error {
	if c.LibraryDir == "" {
		return fmt.Errorf("NOVELSHELF_LIBRARY_DIR must not be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("NOVELSHELF_DATA_DIR must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
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
