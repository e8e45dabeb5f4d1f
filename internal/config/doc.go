// Package config loads, normalizes, and validates seriesreport configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads a working-directory .env file, and
// honours environment overrides such as SERIESREPORT_DATA_DIR. With no file
// and no environment the defaults reproduce the classic behaviour: the three
// CSV inputs are read from the current directory and every query is reported
// as a grid table.
package config
