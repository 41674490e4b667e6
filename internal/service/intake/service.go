package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/attendance"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/intake"
	"github.com/msnglobalit/attendance-backend-go/internal/domain/roster"
)

type IntakeServiceImpl struct {
	exchange        intake.ExchangeRepository
	ledger          attendance.LedgerService
	roster          roster.RosterRepository
	freshnessWindow time.Duration
	now             func() time.Time
}

// NewIntakeService wires detection intake. A zero freshnessWindow disables
// the stale-event filter.
func NewIntakeService(
	exchange intake.ExchangeRepository,
	ledger attendance.LedgerService,
	rosterRepo roster.RosterRepository,
	freshnessWindow time.Duration,
	now func() time.Time,
) intake.IntakeService {
	if now == nil {
		now = time.Now
	}
	return &IntakeServiceImpl{
		exchange:        exchange,
		ledger:          ledger,
		roster:          rosterRepo,
		freshnessWindow: freshnessWindow,
		now:             now,
	}
}

// ProcessBatch implements intake.IntakeService.
func (s *IntakeServiceImpl) ProcessBatch(ctx context.Context) (intake.BatchResult, error) {
	events, err := s.exchange.Read(ctx)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrNoData):
			// Normal idle state between producer writes.
			return intake.BatchResult{Message: "no new detection data"}, nil
		case errors.Is(err, intake.ErrMalformed):
			// Self-heal: a corrupt producer write must not wedge the loop.
			if clearErr := s.exchange.Clear(ctx); clearErr != nil {
				return intake.BatchResult{}, fmt.Errorf("failed to clear corrupted artifact: %w", clearErr)
			}
			slog.Warn("Cleared corrupted exchange data")
			return intake.BatchResult{Message: "cleared corrupted data"}, nil
		default:
			return intake.BatchResult{}, err
		}
	}

	result := s.processEvents(ctx, events)

	// Deleting the artifact is the consumption ack. Unconditional once the
	// batch has been read, whatever the per-event outcomes were.
	if err := s.exchange.Clear(ctx); err != nil {
		slog.Error("Failed to clear exchange artifact after batch", "error", err)
	}

	if result.Accepted > 0 {
		result.Message = fmt.Sprintf("%d attendance(s) marked", result.Accepted)
	} else {
		result.Message = "no new attendance marked"
	}
	return result, nil
}

func (s *IntakeServiceImpl) processEvents(ctx context.Context, events []intake.DetectionEvent) intake.BatchResult {
	var result intake.BatchResult
	seen := make(map[string]bool)

	for _, event := range events {
		outcome := intake.Outcome{
			EmployeeID: event.EmployeeID,
			UniqueID:   event.UniqueID,
		}

		if reason := event.Validate(); reason != intake.RejectNone {
			outcome.Reason = reason
			outcome.Message = "missing required field"
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		// The producer sometimes emits the same physical detection twice in
		// one write.
		if seen[event.UniqueID] {
			outcome.Reason = intake.RejectDuplicateInBatch
			outcome.Message = "duplicate detection in batch"
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}
		seen[event.UniqueID] = true

		entryAt := s.now()
		if ts, ok := event.ParsedTimestamp(); ok {
			if s.freshnessWindow > 0 && s.now().Sub(ts) > s.freshnessWindow {
				// Leftover from a crashed producer cycle.
				outcome.Reason = intake.RejectStale
				outcome.Message = "detection older than freshness window"
				result.Outcomes = append(result.Outcomes, outcome)
				continue
			}
			entryAt = ts
		}

		marked, err := s.ledger.HasMarked(ctx, event.EmployeeID, entryAt)
		if err != nil {
			outcome.Message = fmt.Sprintf("duplicate check failed: %v", err)
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}
		if marked {
			outcome.Reason = intake.RejectAlreadyMarked
			outcome.Message = "already marked attendance today"
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		resp, err := s.ledger.Mark(ctx, attendance.MarkRequest{
			EmployeeID: event.EmployeeID,
			Name:       s.resolveName(ctx, event),
			At:         entryAt,
		})
		switch {
		case errors.Is(err, attendance.ErrAlreadyMarked):
			outcome.Reason = intake.RejectAlreadyMarked
			outcome.Message = "already marked attendance today"
		case err != nil:
			outcome.Message = fmt.Sprintf("mark failed: %v", err)
		default:
			outcome.Accepted = true
			outcome.Message = fmt.Sprintf("marked %s as %s", resp.Name, resp.Status)
			result.Accepted++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	return result
}

// resolveName prefers the event's name, then the roster, then a placeholder.
// A roster miss is not an error.
func (s *IntakeServiceImpl) resolveName(ctx context.Context, event intake.DetectionEvent) string {
	if event.Name != "" {
		return event.Name
	}
	emp, err := s.roster.GetByID(ctx, event.EmployeeID)
	if err != nil {
		if !errors.Is(err, roster.ErrEmployeeNotFound) {
			slog.Warn("Roster lookup failed", "employee_id", event.EmployeeID, "error", err)
		}
		return roster.PlaceholderName(event.EmployeeID)
	}
	return emp.Name
}

// Status implements intake.IntakeService.
func (s *IntakeServiceImpl) Status(ctx context.Context) (intake.ExchangeStatus, error) {
	return s.exchange.Status(ctx)
}
