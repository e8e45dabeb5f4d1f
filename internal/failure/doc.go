// Package failure classifies the fatal errors a report run can produce.
//
// Loader, store and query code tag their errors with one of the sentinel
// markers (ErrIO, ErrParse, ErrConstraint, ErrQuery, ErrConfiguration) via
// Wrap, which also records which component, operation and input failed. The
// CLI uses Kind and ExitCode to print a diagnostic and choose an exit status.
package failure
