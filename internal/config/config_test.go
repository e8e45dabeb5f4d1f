package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"seriesreport/internal/config"
	"seriesreport/internal/failure"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvDataDir, "")
	t.Setenv(config.EnvLogLevel, "")
	chdir(t, work)
	return work
}

func TestLoadDefaultsUseWorkingDirectory(t *testing.T) {
	work := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent")
	}

	wantDir, _ := filepath.EvalSymlinks(work)
	gotDir, _ := filepath.EvalSymlinks(cfg.Paths.DataDir)
	if gotDir != wantDir {
		t.Fatalf("unexpected data dir: got %q want %q", gotDir, wantDir)
	}
	if filepath.Base(cfg.EpisodesPath()) != "all-episode-ratings.csv" {
		t.Fatalf("unexpected episodes path: %q", cfg.EpisodesPath())
	}
	if filepath.Base(cfg.SeriesPath()) != "all-series-ep-average.csv" {
		t.Fatalf("unexpected series path: %q", cfg.SeriesPath())
	}
	if filepath.Base(cfg.SeasonsPath()) != "top-seasons-full.csv" {
		t.Fatalf("unexpected seasons path: %q", cfg.SeasonsPath())
	}
	if cfg.Report.Format != config.FormatTable || cfg.Report.Style != config.StyleGrid {
		t.Fatalf("unexpected report defaults: %+v", cfg.Report)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	configPath := filepath.Join(dir, "report.toml")

	type payload struct {
		Paths struct {
			DataDir    string `toml:"data_dir"`
			SeriesFile string `toml:"series_file"`
		} `toml:"paths"`
		Report struct {
			Format  string   `toml:"format"`
			Style   string   `toml:"style"`
			Queries []string `toml:"queries"`
		} `toml:"report"`
	}
	custom := payload{}
	custom.Paths.DataDir = dir
	custom.Paths.SeriesFile = "series.csv"
	custom.Report.Format = " JSON "
	custom.Report.Style = "Rounded"
	custom.Report.Queries = []string{"most-popular", " ", "MOST-POPULAR", "series-low"}
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.SeriesPath() != filepath.Join(dir, "series.csv") {
		t.Fatalf("unexpected series path %q", cfg.SeriesPath())
	}
	if cfg.Report.Format != config.FormatJSON {
		t.Fatalf("expected json format, got %q", cfg.Report.Format)
	}
	if cfg.Report.Style != config.StyleRounded {
		t.Fatalf("expected rounded style, got %q", cfg.Report.Style)
	}
	if got := strings.Join(cfg.Report.Queries, ","); got != "most-popular,series-low" {
		t.Fatalf("unexpected query selection %q", got)
	}
}

func TestProjectConfigDiscovered(t *testing.T) {
	work := isolate(t)
	if err := os.WriteFile(filepath.Join(work, "seriesreport.toml"), []byte("[report]\nstyle = \"ascii\"\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected project config to be found")
	}
	if cfg.Report.Style != config.StyleASCII {
		t.Fatalf("expected ascii style, got %q", cfg.Report.Style)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	isolate(t)
	dataDir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "report.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\ndata_dir = \"/nowhere\"\n[logging]\nlevel = \"error\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(config.EnvDataDir, dataDir)
	t.Setenv(config.EnvLogLevel, "DEBUG")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DataDir != dataDir {
		t.Fatalf("expected env data dir %q, got %q", dataDir, cfg.Paths.DataDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected env log level, got %q", cfg.Logging.Level)
	}
}

func TestDotEnvFileLoaded(t *testing.T) {
	work := isolate(t)
	os.Unsetenv(config.EnvLogLevel)
	if err := os.WriteFile(filepath.Join(work, ".env"), []byte(config.EnvLogLevel+"=info\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv(config.EnvLogLevel) })

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected level from .env, got %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"format", func(c *config.Config) { c.Report.Format = "csv" }, "report.format"},
		{"style", func(c *config.Config) { c.Report.Style = "fancy" }, "report.style"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"series file", func(c *config.Config) { c.Paths.SeriesFile = "" }, "paths.series_file"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, failure.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in %q", tc.want, err.Error())
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolate(t)
	configPath := filepath.Join(t.TempDir(), "report.toml")
	if err := os.WriteFile(configPath, []byte("[paths]\ndatadir = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	isolate(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Report.Style != config.StyleGrid {
		t.Fatalf("unexpected sample style %q", cfg.Report.Style)
	}
}

func TestApplyOverridesWinOverEnvironment(t *testing.T) {
	work := isolate(t)
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	dir, format, level, color := "data", "JSON", "Error", false
	err = cfg.Apply(config.Overrides{
		DataDir:  &dir,
		Format:   &format,
		LogLevel: &level,
		Color:    &color,
		Queries:  []string{"Most-Popular", "most-popular"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if want := filepath.Join(work, "data"); cfg.Paths.DataDir != want {
		t.Fatalf("expected data dir %q, got %q", want, cfg.Paths.DataDir)
	}
	if cfg.Report.Format != config.FormatJSON || cfg.Logging.Level != "error" || cfg.Report.Color {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.Report.Queries) != 1 || cfg.Report.Queries[0] != "most-popular" {
		t.Fatalf("expected deduplicated query list, got %v", cfg.Report.Queries)
	}
	if cfg.Report.Style != config.StyleGrid {
		t.Fatalf("untouched style changed to %q", cfg.Report.Style)
	}
}

func TestApplyRejectsInvalidOverride(t *testing.T) {
	isolate(t)
	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	style := "fancy"
	if err := cfg.Apply(config.Overrides{Style: &style}); !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
