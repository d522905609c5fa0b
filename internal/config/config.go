package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Columns names the export headers that carry the two timestamps.
type Columns struct {
	CreateDate   string
	ResolvedDate string
}

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath            string
	LogDir              string
	Location            *time.Location
	Columns             Columns
	EnableMermaidCharts bool
	WeeklyTrendWeeks    int
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return FromEnv(exeDir)
}

// FromEnv builds the configuration from the process environment alone.
// exeDir is the DATA_PATH fallback; "." is used when it is empty.
func FromEnv(exeDir string) (*AppConfig, error) {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	loc, err := loadLocation(getEnv("TIMEZONE", "Local"))
	if err != nil {
		return nil, err
	}

	weeks, err := strconv.Atoi(getEnv("WEEKLY_TREND_WEEKS", "12"))
	if err != nil || weeks <= 0 {
		return nil, fmt.Errorf("invalid WEEKLY_TREND_WEEKS %q: must be a positive integer", os.Getenv("WEEKLY_TREND_WEEKS"))
	}

	cfg := &AppConfig{
		DataPath: dataPath,
		LogDir:   logDir,
		Location: loc,
		Columns: Columns{
			CreateDate:   getEnv("CREATE_DATE_COLUMN", "CreateDate"),
			ResolvedDate: getEnv("RESOLVED_DATE_COLUMN", "ResolvedDate"),
		},
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
		WeeklyTrendWeeks:    weeks,
	}

	return cfg, nil
}

// Now returns the current wall-clock instant in the configured zone.
func (c *AppConfig) Now() time.Time {
	return time.Now().In(c.Location)
}

// ParseAsOf reads a YYYY-MM-DD reference date as the end of that day in the
// configured zone. An empty string means Now.
func (c *AppConfig) ParseAsOf(s string) (time.Time, error) {
	if s == "" {
		return c.Now(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", s, c.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid as-of date %q (want YYYY-MM-DD): %w", s, err)
	}
	return d.AddDate(0, 0, 1).Add(-time.Second), nil
}

func loadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
