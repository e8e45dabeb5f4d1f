package run

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"seriesreport/internal/catalog"
	"seriesreport/internal/config"
	"seriesreport/internal/dataset"
	"seriesreport/internal/failure"
	"seriesreport/internal/logging"
	"seriesreport/internal/queries"
	"seriesreport/internal/report"
)

// Options configures a report run.
type Options struct {
	Config *config.Config
	// Stdout receives the report. Defaults to os.Stdout.
	Stdout io.Writer
	// Logger defaults to a logger built from Config.
	Logger *slog.Logger
	// RunID correlates log lines; a fresh UUID is used when empty.
	RunID string
}

// Execute loads the inputs, populates a fresh store, and reports every
// selected query in order. The first error aborts the run.
func Execute(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		return failure.Wrap(failure.ErrConfiguration, "run", "", "configuration is required", nil)
	}
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		var err error
		logger, err = logging.NewFromConfig(cfg)
		if err != nil {
			return failure.Wrap(failure.ErrConfiguration, "run", "init logger", "", err)
		}
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}
	logger = logger.With(logging.String(logging.FieldRunID, runID))
	runLogger := logging.NewComponentLogger(logger, "run")

	started := time.Now()
	err := execute(ctx, cfg, out, logger)
	if err != nil {
		runLogger.Error("report failed",
			logging.String(logging.FieldErrorKind, failure.Kind(err)),
			logging.Error(err),
		)
		return err
	}
	runLogger.Info("report complete", logging.Duration("elapsed", time.Since(started)))
	return nil
}

func execute(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) (err error) {
	selected, err := queries.Select(cfg.Report.Queries)
	if err != nil {
		return err
	}

	ds, err := dataset.LoadFiles(ctx, dataset.Files{
		Episodes: cfg.EpisodesPath(),
		Series:   cfg.SeriesPath(),
		Seasons:  cfg.SeasonsPath(),
	}, logger)
	if err != nil {
		return err
	}

	store, err := catalog.Open(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = failure.Wrap(failure.ErrIO, "run", "close store", "", closeErr)
		}
	}()

	if err := store.Load(ctx, ds); err != nil {
		return err
	}
	if counts, countErr := store.Counts(ctx); countErr == nil {
		logger.Debug("store populated",
			logging.Int64(catalog.TableSeries, counts[catalog.TableSeries]),
			logging.Int64(catalog.TableEpisodes, counts[catalog.TableEpisodes]),
			logging.Int64(catalog.TableSeasons, counts[catalog.TableSeasons]),
		)
	}

	opts := report.OptionsFromConfig(cfg)
	logger.Debug("rendering report", logging.String("options", opts.String()), logging.Int("queries", len(selected)))
	reporter := report.New(out, opts)
	runner := queries.NewRunner(store, logger)
	if err := runner.Run(ctx, selected, reporter.Write); err != nil {
		return err
	}
	return reporter.Close()
}

// Cancelled reports whether err stems from context cancellation.
func Cancelled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
