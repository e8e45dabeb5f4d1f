// Package preflight provides readiness checks for the report inputs and the
// embedded store.
//
// The CLI "seriesreport config validate" command runs RunAll and prints one
// row per check. A report run does not depend on these checks; the loader
// fails on the same conditions with a typed error.
package preflight
