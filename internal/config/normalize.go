package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"seriesreport/internal/failure"
)

// Environment variables consulted after the config file is decoded.
const (
	EnvDataDir  = "SERIESREPORT_DATA_DIR"
	EnvLogLevel = "SERIESREPORT_LOG_LEVEL"
)

const dotEnvFile = ".env"

func (c *Config) normalize() error {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return err
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeReport()
	c.normalizeLogging()
	return nil
}

// loadDotEnv populates the environment from a .env file when present.
// Variables already set in the environment are left untouched.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return failure.Wrap(failure.ErrConfiguration, "config", "stat", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return failure.Wrap(failure.ErrConfiguration, "config", "load env file", path, err)
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(EnvDataDir); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	c.Paths.EpisodesFile = strings.TrimSpace(c.Paths.EpisodesFile)
	c.Paths.SeriesFile = strings.TrimSpace(c.Paths.SeriesFile)
	c.Paths.SeasonsFile = strings.TrimSpace(c.Paths.SeasonsFile)
	return nil
}

func (c *Config) normalizeReport() {
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if c.Report.Format == "" {
		c.Report.Format = defaultReportFormat
	}
	c.Report.Style = strings.ToLower(strings.TrimSpace(c.Report.Style))
	if c.Report.Style == "" {
		c.Report.Style = defaultReportStyle
	}
	c.Report.Queries = normalizeList(c.Report.Queries)
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv(EnvLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func normalizeList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.ToLower(strings.TrimSpace(value))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
