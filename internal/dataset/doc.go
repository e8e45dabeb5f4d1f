// Package dataset reads the three CSV inputs into canonical Go values.
//
// Columns are mapped by position, never by header name, because the source
// files name them inconsistently. Numeric columns are coerced here:
// thousands separators are stripped from rating counts and integral decimals
// are accepted for integer columns. A missing file is an io failure and a
// malformed value is a parse failure naming file, line and column.
package dataset
