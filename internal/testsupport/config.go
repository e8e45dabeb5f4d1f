package testsupport

import (
	"testing"

	"seriesreport/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose data directory is a unique temp dir.
// Inputs are not written; pair with WriteDataset or WriteFiles.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Paths.DataDir = t.TempDir()
	cfgVal.Report.Color = false
	cfgVal.Logging.Level = "error"

	for _, opt := range opts {
		opt(&cfgVal)
	}
	if err := cfgVal.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfgVal
}

// WithFormat sets the report output format.
func WithFormat(format string) ConfigOption {
	return func(c *config.Config) {
		c.Report.Format = format
	}
}

// WithQueries restricts the run to the given query IDs.
func WithQueries(ids ...string) ConfigOption {
	return func(c *config.Config) {
		c.Report.Queries = ids
	}
}
