// Package report renders query outcomes to a writer.
//
// Table output mirrors the console report: a blank line, the title, then a
// go-pretty table whose first column is the 1-based row number, or the line
// "No results found." when the relation is empty. JSON output collects every
// outcome and writes a single document on Close.
package report
