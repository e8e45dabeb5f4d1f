package catalog

import (
	"fmt"

	"seriesreport/internal/dataset"
	"seriesreport/internal/failure"
)

type episodeKey struct {
	code    string
	season  int64
	episode int64
}

type seasonKey struct {
	code   string
	season int64
}

// Validate checks the keys of ds before anything is written: series codes are
// present and unique, episode and season keys are unique, and every episode
// and season references a loaded series.
func Validate(ds *dataset.Dataset) error {
	codes := make(map[string]struct{}, len(ds.Series))
	for i, s := range ds.Series {
		if s.Code == "" {
			return violation(TableSeries, fmt.Sprintf("row %d: empty code", i+1))
		}
		if _, dup := codes[s.Code]; dup {
			return violation(TableSeries, fmt.Sprintf("duplicate code %q", s.Code))
		}
		codes[s.Code] = struct{}{}
	}

	episodes := make(map[episodeKey]struct{}, len(ds.Episodes))
	for _, ep := range ds.Episodes {
		if _, ok := codes[ep.Code]; !ok {
			return violation(TableEpisodes, fmt.Sprintf("code %q (season %d, episode %d) has no series", ep.Code, ep.Season, ep.Episode))
		}
		key := episodeKey{code: ep.Code, season: ep.Season, episode: ep.Episode}
		if _, dup := episodes[key]; dup {
			return violation(TableEpisodes, fmt.Sprintf("duplicate key (%q, %d, %d)", ep.Code, ep.Season, ep.Episode))
		}
		episodes[key] = struct{}{}
	}

	seasons := make(map[seasonKey]struct{}, len(ds.Seasons))
	for _, season := range ds.Seasons {
		if _, ok := codes[season.Code]; !ok {
			return violation(TableSeasons, fmt.Sprintf("code %q (season %d) has no series", season.Code, season.Season))
		}
		key := seasonKey{code: season.Code, season: season.Season}
		if _, dup := seasons[key]; dup {
			return violation(TableSeasons, fmt.Sprintf("duplicate key (%q, %d)", season.Code, season.Season))
		}
		seasons[key] = struct{}{}
	}
	return nil
}

func violation(table, message string) error {
	return failure.Wrap(failure.ErrConstraint, "catalog", "validate "+table, message, nil)
}
