package queries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"seriesreport/internal/catalog"
	"seriesreport/internal/failure"
	"seriesreport/internal/logging"
)

// Query is one named, parameterless report statement.
type Query struct {
	ID    string
	Title string
	SQL   string
}

// Outcome pairs a query with the relation it produced.
type Outcome struct {
	Query  Query
	Result *catalog.Result
}

// Executor is the part of catalog.Store the query set needs.
type Executor interface {
	Query(ctx context.Context, query string) (*catalog.Result, error)
	Prepare(ctx context.Context, query string) error
}

// All returns the full query set in report order.
func All() []Query {
	out := make([]Query, len(all))
	copy(out, all)
	return out
}

// Lookup returns the query with the given ID.
func Lookup(id string) (Query, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, q := range all {
		if q.ID == id {
			return q, true
		}
	}
	return Query{}, false
}

// Select returns the named queries in report order. No IDs selects all.
// Unknown IDs are a query error.
func Select(ids []string) ([]Query, error) {
	if len(ids) == 0 {
		return All(), nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if _, ok := Lookup(id); !ok {
			return nil, failure.Wrap(failure.ErrQuery, "queries", "select", fmt.Sprintf("unknown query %q", id), nil)
		}
		wanted[id] = struct{}{}
	}
	selected := make([]Query, 0, len(wanted))
	for _, q := range all {
		if _, ok := wanted[q.ID]; ok {
			selected = append(selected, q)
		}
	}
	return selected, nil
}

// Validate compiles every query against the store before any runs, so a
// malformed statement fails the report up front.
func Validate(ctx context.Context, store Executor, qs []Query) error {
	seen := make(map[string]struct{}, len(qs))
	for _, q := range qs {
		if strings.TrimSpace(q.ID) == "" {
			return failure.Wrap(failure.ErrQuery, "queries", "validate", "query without id", nil)
		}
		if _, dup := seen[q.ID]; dup {
			return failure.Wrap(failure.ErrQuery, "queries", "validate "+q.ID, "duplicate id", nil)
		}
		seen[q.ID] = struct{}{}
		if strings.TrimSpace(q.SQL) == "" {
			return failure.Wrap(failure.ErrQuery, "queries", "validate "+q.ID, "empty statement", nil)
		}
		if err := store.Prepare(ctx, q.SQL); err != nil {
			return failure.Wrap(nil, "queries", "validate "+q.ID, "", err)
		}
	}
	return nil
}

// Execute runs one query.
func Execute(ctx context.Context, store Executor, q Query) (*catalog.Result, error) {
	res, err := store.Query(ctx, q.SQL)
	if err != nil {
		return nil, failure.Wrap(nil, "queries", "run "+q.ID, "", err)
	}
	return res, nil
}

// Runner executes queries in order and hands each outcome to a sink.
type Runner struct {
	store  Executor
	logger *slog.Logger
}

// NewRunner constructs a Runner over store.
func NewRunner(store Executor, logger *slog.Logger) *Runner {
	return &Runner{store: store, logger: logging.NewComponentLogger(logger, "queries")}
}

// Run validates qs, then executes each in order, calling sink after each.
// The first failure stops the run.
func (r *Runner) Run(ctx context.Context, qs []Query, sink func(Outcome) error) error {
	if err := Validate(ctx, r.store, qs); err != nil {
		return err
	}
	for _, q := range qs {
		if err := ctx.Err(); err != nil {
			return err
		}
		started := time.Now()
		res, err := Execute(ctx, r.store, q)
		if err != nil {
			return err
		}
		r.logger.Debug("query executed",
			logging.String(logging.FieldQuery, q.ID),
			logging.Int(logging.FieldRows, res.Len()),
			logging.Duration("elapsed", time.Since(started)),
		)
		if err := sink(Outcome{Query: q, Result: res}); err != nil {
			return err
		}
	}
	return nil
}

// Collect runs qs and returns every outcome.
func (r *Runner) Collect(ctx context.Context, qs []Query) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(qs))
	err := r.Run(ctx, qs, func(o Outcome) error {
		outcomes = append(outcomes, o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return outcomes, nil
}
