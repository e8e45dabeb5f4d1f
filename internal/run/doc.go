// Package run wires configuration, logging, the dataset loader, the catalog
// store, the query set and the reporter into a single one-shot report.
package run
