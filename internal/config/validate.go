package config

import (
	"fmt"

	"seriesreport/internal/failure"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateReport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return invalid("paths.data_dir must be set")
	}
	for key, value := range map[string]string{
		"paths.episodes_file": c.Paths.EpisodesFile,
		"paths.series_file":   c.Paths.SeriesFile,
		"paths.seasons_file":  c.Paths.SeasonsFile,
	} {
		if value == "" {
			return invalid(key + " must be set")
		}
	}
	return nil
}

func (c *Config) validateReport() error {
	switch c.Report.Format {
	case FormatTable, FormatJSON:
	default:
		return invalid(fmt.Sprintf("report.format must be %q or %q, got %q", FormatTable, FormatJSON, c.Report.Format))
	}
	switch c.Report.Style {
	case StyleGrid, StyleRounded, StyleASCII, StyleMarkdown:
	default:
		return invalid(fmt.Sprintf("report.style %q is not one of grid, rounded, ascii, markdown", c.Report.Style))
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return invalid(fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid(fmt.Sprintf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level))
	}
	return nil
}

func invalid(message string) error {
	return failure.Wrap(failure.ErrConfiguration, "config", "", message, nil)
}
