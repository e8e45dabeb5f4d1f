package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"seriesreport/internal/dataset"
	"seriesreport/internal/failure"
	"seriesreport/internal/logging"
)

// Store is an in-memory relational copy of the three datasets.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates a private in-memory database with foreign keys enforced and
// the schema applied. Callers own the returned Store and must Close it.
func Open(ctx context.Context, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Every connection to :memory: is a separate database; pin to one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, logger: logging.NewComponentLogger(logger, "catalog")}
	if err := store.createSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Version returns the embedded SQLite library version.
func (s *Store) Version(ctx context.Context) (string, error) {
	var version string
	if err := s.db.QueryRowContext(ctx, "SELECT sqlite_version()").Scan(&version); err != nil {
		return "", failure.Wrap(failure.ErrQuery, "catalog", "version", "", err)
	}
	return version, nil
}

// Load validates ds and replaces the store contents with it in one
// transaction. Existing rows are removed first, so loading the same dataset
// twice leaves the store unchanged.
func (s *Store) Load(ctx context.Context, ds *dataset.Dataset) error {
	if ds == nil {
		return errors.New("dataset is nil")
	}
	if err := Validate(ds); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{TableEpisodes, TableSeasons, TableSeries} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := insertSeries(ctx, tx, ds.Series); err != nil {
		return err
	}
	if err := insertEpisodes(ctx, tx, ds.Episodes); err != nil {
		return err
	}
	if err := insertSeasons(ctx, tx, ds.Seasons); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return classifyExecError("commit", TableSeries, err)
	}

	s.logger.Info("dataset loaded",
		logging.Int("series", len(ds.Series)),
		logging.Int("episodes", len(ds.Episodes)),
		logging.Int("seasons", len(ds.Seasons)),
	)
	return nil
}

func insertSeries(ctx context.Context, tx *sql.Tx, rows []dataset.Series) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO series_summary (
        code, title, rating, rating_count, rank, rating_mean
    ) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare series insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Code, row.Title, row.Rating, row.RatingCount, row.Rank, row.RatingMean); err != nil {
			return classifyExecError("insert "+row.Code, TableSeries, err)
		}
	}
	return nil
}

func insertEpisodes(ctx context.Context, tx *sql.Tx, rows []dataset.Episode) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO episode_ratings (
        code, season, episode, rating
    ) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare episode insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Code, row.Season, row.Episode, row.Rating); err != nil {
			return classifyExecError(fmt.Sprintf("insert %s s%d e%d", row.Code, row.Season, row.Episode), TableEpisodes, err)
		}
	}
	return nil
}

func insertSeasons(ctx context.Context, tx *sql.Tx, rows []dataset.SeasonSummary) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO top_seasons (
        code, season, title, rating_mean, number_of_episodes
    ) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare season insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Code, row.Season, row.Title, row.RatingMean, row.NumberOfEpisodes); err != nil {
			return classifyExecError(fmt.Sprintf("insert %s s%d", row.Code, row.Season), TableSeasons, err)
		}
	}
	return nil
}

// classifyExecError tags SQLite constraint failures as constraint errors.
func classifyExecError(operation, table string, err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return failure.Wrap(failure.ErrConstraint, "catalog", operation, table, err)
	}
	return fmt.Errorf("%s %s: %w", table, operation, err)
}

// Counts returns the number of rows in each table.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(Tables))
	for _, table := range Tables {
		var n int64
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
