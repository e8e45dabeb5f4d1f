package catalog

import (
	"context"
	"fmt"

	"seriesreport/internal/failure"
)

// Result is a query's output relation. Row values are int64, float64, string
// or nil, in column order.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool {
	return r.Len() == 0
}

// Maps returns each row as a column name to value mapping.
func (r *Result) Maps() []map[string]any {
	if r == nil {
		return nil
	}
	out := make([]map[string]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		m := make(map[string]any, len(r.Columns))
		for i, col := range r.Columns {
			m[col] = row[i]
		}
		out = append(out, m)
	}
	return out
}

// Column returns the values of the named column, or nil when absent.
func (r *Result) Column(name string) []any {
	if r == nil {
		return nil
	}
	idx := -1
	for i, col := range r.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	values := make([]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		values = append(values, row[idx])
	}
	return values
}

// Query runs a read-only statement and collects its result.
func (s *Store) Query(ctx context.Context, query string) (*Result, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, failure.Wrap(failure.ErrQuery, "catalog", "execute", "", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, failure.Wrap(failure.ErrQuery, "catalog", "columns", "", err)
	}

	result := &Result{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, failure.Wrap(failure.ErrQuery, "catalog", "scan", "", err)
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, failure.Wrap(failure.ErrQuery, "catalog", "iterate", "", err)
	}
	return result, nil
}

// Prepare compiles a statement against the schema without running it. The
// driver defers compilation to first use, so this goes through EXPLAIN.
func (s *Store) Prepare(ctx context.Context, query string) error {
	rows, err := s.db.QueryContext(ctx, "EXPLAIN "+query)
	if err != nil {
		return failure.Wrap(failure.ErrQuery, "catalog", "prepare", "", err)
	}
	defer rows.Close()
	for rows.Next() {
	}
	if err := rows.Err(); err != nil {
		return failure.Wrap(failure.ErrQuery, "catalog", "prepare", "", err)
	}
	return nil
}

func normalizeValue(v any) any {
	switch value := v.(type) {
	case []byte:
		return string(value)
	case int:
		return int64(value)
	case int32:
		return int64(value)
	case float32:
		return float64(value)
	case nil, int64, float64, string, bool:
		return value
	default:
		return fmt.Sprint(value)
	}
}
