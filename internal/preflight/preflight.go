package preflight

import (
	"context"

	"seriesreport/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll checks the data directory, each input file and the embedded store.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckDirectoryAccess("Data directory", cfg.Paths.DataDir)}
	results = append(results,
		CheckInputFile("Episode ratings", cfg.EpisodesPath()),
		CheckInputFile("Series summary", cfg.SeriesPath()),
		CheckInputFile("Top seasons", cfg.SeasonsPath()),
	)
	results = append(results, CheckStore(ctx))
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
