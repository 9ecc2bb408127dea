// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Workflow defaults.
const (
	DefaultSearchPageLength = 10
	DefaultExportWorkers    = 4
	DefaultFileCacheItems   = 64
	DefaultExportArchive    = "all_documents.zip"
)

// Config holds all configuration for the MCP server.
type Config struct {
	BaseURL           string        // DOCMGMT_BASE_URL, default https://apis.allsoft.co/api/documentManagement
	HTTPClientTimeout time.Duration // HTTP_CLIENT_TIMEOUT_MS, default 15000ms (15s)

	SearchPageLength int // SEARCH_PAGE_LENGTH, default 10 (fixed first page, no load-more)

	ExportWorkers     int    // EXPORT_WORKERS, default 4 (bound on parallel file fetches)
	ExportArchiveName string // EXPORT_ARCHIVE_NAME, default "all_documents.zip"

	FileCacheMaxItems int // FILE_CACHE_MAX_ITEMS, default 64

	StateDir string // DOCMGMT_STATE_DIR, default os.UserConfigDir()/docmgmt (session record)
	SaveDir  string // DOCMGMT_SAVE_DIR, default "." (downloads and archives)

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 5
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		BaseURL:           getEnvString("DOCMGMT_BASE_URL", "https://apis.allsoft.co/api/documentManagement"),
		HTTPClientTimeout: getEnvDurationMs("HTTP_CLIENT_TIMEOUT_MS", 15000),

		SearchPageLength: getEnvInt("SEARCH_PAGE_LENGTH", DefaultSearchPageLength),

		ExportWorkers:     getEnvInt("EXPORT_WORKERS", DefaultExportWorkers),
		ExportArchiveName: getEnvString("EXPORT_ARCHIVE_NAME", DefaultExportArchive),

		FileCacheMaxItems: getEnvInt("FILE_CACHE_MAX_ITEMS", DefaultFileCacheItems),

		StateDir: getEnvString("DOCMGMT_STATE_DIR", defaultStateDir()),
		SaveDir:  getEnvString("DOCMGMT_SAVE_DIR", "."),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

// defaultStateDir resolves the per-user directory for the persisted session
// record. Falls back to the working directory when the platform has no
// config dir.
func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "docmgmt")
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDurationMs(key string, defaultMs int) time.Duration {
	ms := getEnvInt(key, defaultMs)
	return time.Duration(ms) * time.Millisecond
}
