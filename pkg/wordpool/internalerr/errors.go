package internalerr

import "errors"

// Sentinel errors for common cases
var (
	// Request-level failures surfaced to the caller.
	ErrNoSources        = errors.New("no sources selected")
	ErrAllSourcesFailed = errors.New("all selected sources failed")
	ErrNoMatches        = errors.New("no matching words")

	// Per-source fetch failures. These are recoverable at the batch
	// level: the orchestrator downgrades them to failed-source entries.
	ErrNetwork      = errors.New("network failure")
	ErrTimeout      = errors.New("fetch timed out")
	ErrBadStatus    = errors.New("bad response status")
	ErrParseFailure = errors.New("unparseable corpus body")
	ErrEmptyResult  = errors.New("corpus yielded no words")
)
