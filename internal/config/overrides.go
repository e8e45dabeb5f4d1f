package config

import (
	"fmt"
	"strings"
)

// Overrides carries command-line values that take precedence over the file
// and the environment. Nil fields leave the loaded value alone.
type Overrides struct {
	DataDir  *string
	Format   *string
	Style    *string
	LogLevel *string
	Color    *bool
	Queries  []string
}

// Apply merges o into the config, normalizes the touched fields and
// validates the result.
func (c *Config) Apply(o Overrides) error {
	if o.DataDir != nil {
		dir, err := expandPath(strings.TrimSpace(*o.DataDir))
		if err != nil {
			return fmt.Errorf("data dir: %w", err)
		}
		if dir != "" {
			c.Paths.DataDir = dir
		}
	}
	if o.Format != nil {
		c.Report.Format = strings.ToLower(strings.TrimSpace(*o.Format))
	}
	if o.Style != nil {
		c.Report.Style = strings.ToLower(strings.TrimSpace(*o.Style))
	}
	if o.LogLevel != nil {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(*o.LogLevel))
	}
	if o.Color != nil {
		c.Report.Color = *o.Color
	}
	if len(o.Queries) > 0 {
		c.Report.Queries = normalizeList(o.Queries)
	}
	return c.Validate()
}
