package common

import "github.com/cockroachdb/errors"

var (
	// ErrRefreshInFlight rejects a refresh requested while another one is
	// still running; requests are dropped, not queued.
	ErrRefreshInFlight = errors.New("refresh already in flight")

	// ErrDeleteCritical wraps a failure of the local removal path itself,
	// as opposed to a failed backend confirmation. Callers are expected to
	// resynchronize from scratch.
	ErrDeleteCritical = errors.New("critical delete failure")

	ErrNotFound   = errors.New("transaction not found")
	ErrNoEndpoint = errors.New("no backend endpoint configured")
)
