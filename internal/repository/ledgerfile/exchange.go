package ledgerfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/intake"
)

// exchangeRepository owns the JSON hand-off artifact written by the
// recognition producer. The artifact holds either one detection object or an
// array of them; deleting it after a read is the consumption ack.
type exchangeRepository struct {
	path string
}

func NewExchangeRepository(path string) intake.ExchangeRepository {
	return &exchangeRepository{path: path}
}

// Read implements intake.ExchangeRepository.
func (r *exchangeRepository) Read(ctx context.Context) ([]intake.DetectionEvent, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, intake.ErrNoData
		}
		return nil, fmt.Errorf("failed to stat exchange artifact: %w", err)
	}
	if info.Size() == 0 {
		return nil, intake.ErrNoData
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read exchange artifact: %w", err)
	}

	// The producer writes either a single object or an array.
	var events []intake.DetectionEvent
	if err := json.Unmarshal(data, &events); err != nil {
		var single intake.DetectionEvent
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, intake.ErrMalformed
		}
		events = []intake.DetectionEvent{single}
	}
	return events, nil
}

// Clear implements intake.ExchangeRepository.
func (r *exchangeRepository) Clear(ctx context.Context) error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear exchange artifact: %w", err)
	}
	return nil
}

// Status implements intake.ExchangeRepository.
func (r *exchangeRepository) Status(ctx context.Context) (intake.ExchangeStatus, error) {
	info, err := os.Stat(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return intake.ExchangeStatus{Exists: false}, nil
		}
		return intake.ExchangeStatus{}, fmt.Errorf("failed to stat exchange artifact: %w", err)
	}
	return intake.ExchangeStatus{
		Exists:     true,
		Size:       info.Size(),
		ModifiedAt: info.ModTime().Format(time.RFC3339),
	}, nil
}
