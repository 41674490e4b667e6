package intake

import "errors"

// Intake domain errors
var (
	// ErrNoData means the exchange artifact is missing or empty. This is the
	// normal idle state between producer writes, not a failure.
	ErrNoData = errors.New("no detection data available")

	// ErrMalformed means the artifact could not be parsed. Recovery is to
	// delete the artifact and report, never to crash.
	ErrMalformed = errors.New("malformed exchange data")
)
