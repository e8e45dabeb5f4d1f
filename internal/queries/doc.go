// Package queries defines the fixed, ordered report query set and runs it.
//
// Each Query is parameterless and read-only. The low-rating queries use an
// inclusive threshold of 5; the popularity queries require a series to hit
// both extremes at once (max rating count AND min rank, or the reverse), so
// their result may legitimately be empty. Ties return every qualifying series.
//
// Runner validates the whole set against the store before executing any of
// it, then returns structured results; rendering lives in package report.
package queries
