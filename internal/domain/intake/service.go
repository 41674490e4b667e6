package intake

import "context"

// IntakeService defines business logic for detection intake
type IntakeService interface {
	// ProcessBatch consumes the exchange artifact: validates, deduplicates and
	// marks each event, then deletes the artifact unconditionally. Per-event
	// failures land in the result outcomes; only infrastructure failures
	// return an error.
	ProcessBatch(ctx context.Context) (BatchResult, error)

	// Status reports the exchange artifact state for the dashboard panel.
	Status(ctx context.Context) (ExchangeStatus, error)
}
