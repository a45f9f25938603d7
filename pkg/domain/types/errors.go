package types

import "github.com/m-mizutani/goerr/v2"

var (
	// Request-level failures mapped to HTTP statuses by the controller.
	ErrAuthRequired       = goerr.New("authentication required")
	ErrForbidden          = goerr.New("forbidden")
	ErrNotFound           = goerr.New("not found")
	ErrTokenNotConfigured = goerr.New("repository token is not configured")

	// ErrUpstream wraps any GitHub API rejection or transport failure. The
	// wrapping site attaches "operation" and "status" values.
	ErrUpstream = goerr.New("upstream GitHub API call failed")

	// ErrAggregation is the single failure surfaced when any concurrent
	// workflow-run fetch fails. Callers never see partial results.
	ErrAggregation = goerr.New("pull request aggregation failed")

	// Credential vault failures. Both must fail closed.
	ErrCipherFormat = goerr.New("encrypted token has invalid format")
	ErrCipherAuth   = goerr.New("encrypted token failed authentication")

	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")
)
