package intake

import "context"

// ExchangeRepository owns the producer hand-off artifact. The producer writes
// it; once read, this side owns it and deletes it as the consumption ack.
type ExchangeRepository interface {
	// Read parses the artifact as a single event or a sequence of events.
	// Returns ErrNoData when missing or empty, ErrMalformed when unparsable.
	Read(ctx context.Context) ([]DetectionEvent, error)

	// Clear deletes the artifact. Safe to call when it does not exist.
	Clear(ctx context.Context) error

	// Status reports existence, size and modification time without consuming.
	Status(ctx context.Context) (ExchangeStatus, error)
}
