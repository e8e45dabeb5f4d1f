package dataset

import (
	"context"
	"io"
	"log/slog"
	"os"

	"seriesreport/internal/failure"
	"seriesreport/internal/logging"
)

const (
	episodeFields = 5
	seriesFields  = 6
	seasonFields  = 5
)

// ReadEpisodes maps (id, season, episode, rating, code) rows to episodes,
// dropping the leading id column.
func ReadEpisodes(r io.Reader, name string) ([]Episode, error) {
	var episodes []Episode
	err := readRecords(r, name, episodeFields, func(line int, record []string) error {
		p := newFieldParser(name, line, record)
		ep := Episode{
			Season:  p.integer(1, "season"),
			Episode: p.integer(2, "episode"),
			Rating:  p.float(3, "rating"),
			Code:    p.text(4),
		}
		if p.err != nil {
			return p.err
		}
		episodes = append(episodes, ep)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return episodes, nil
}

// ReadSeries maps (code, title, rating, rating_count, rank, rating_mean) rows.
// rating_count may carry thousands separators.
func ReadSeries(r io.Reader, name string) ([]Series, error) {
	var series []Series
	err := readRecords(r, name, seriesFields, func(line int, record []string) error {
		p := newFieldParser(name, line, record)
		s := Series{
			Code:        p.text(0),
			Title:       p.text(1),
			Rating:      p.float(2, "rating"),
			RatingCount: p.count(3, "rating_count"),
			Rank:        p.integer(4, "rank"),
			RatingMean:  p.float(5, "rating_mean"),
		}
		if p.err != nil {
			return p.err
		}
		series = append(series, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return series, nil
}

// ReadSeasons maps (code, title, season, rating_mean, number_of_episodes) rows.
func ReadSeasons(r io.Reader, name string) ([]SeasonSummary, error) {
	var seasons []SeasonSummary
	err := readRecords(r, name, seasonFields, func(line int, record []string) error {
		p := newFieldParser(name, line, record)
		s := SeasonSummary{
			Code:             p.text(0),
			Title:            p.text(1),
			Season:           p.integer(2, "season"),
			RatingMean:       p.float(3, "rating_mean"),
			NumberOfEpisodes: p.integer(4, "number_of_episodes"),
		}
		if p.err != nil {
			return p.err
		}
		seasons = append(seasons, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

// LoadFiles reads all three inputs. The first missing or malformed file aborts
// the load; no partial dataset is returned.
func LoadFiles(ctx context.Context, files Files, logger *slog.Logger) (*Dataset, error) {
	logger = logging.NewComponentLogger(logger, "dataset")

	episodes, err := readFile(ctx, files.Episodes, ReadEpisodes)
	if err != nil {
		return nil, err
	}
	logger.Info("episodes read", logging.String(logging.FieldFile, files.Episodes), logging.Int(logging.FieldRows, len(episodes)))

	series, err := readFile(ctx, files.Series, ReadSeries)
	if err != nil {
		return nil, err
	}
	logger.Info("series read", logging.String(logging.FieldFile, files.Series), logging.Int(logging.FieldRows, len(series)))

	seasons, err := readFile(ctx, files.Seasons, ReadSeasons)
	if err != nil {
		return nil, err
	}
	logger.Info("seasons read", logging.String(logging.FieldFile, files.Seasons), logging.Int(logging.FieldRows, len(seasons)))

	return &Dataset{Series: series, Episodes: episodes, Seasons: seasons}, nil
}

func readFile[T any](ctx context.Context, path string, read func(io.Reader, string) ([]T, error)) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrIO, "dataset", "open", path, err)
	}
	defer file.Close()
	return read(file, path)
}
