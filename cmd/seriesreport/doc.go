// Package main hosts the seriesreport CLI entrypoint.
//
// The root command loads the three CSV inputs into an in-memory catalog and
// prints the rating report to stdout. Flags override the config file and
// environment. Subcommands list the query set and scaffold configuration.
package main
