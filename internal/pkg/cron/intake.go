package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/intake"
)

type IntakeJobs struct {
	intakeService intake.IntakeService
	pollInterval  time.Duration
}

func NewIntakeJobs(intakeService intake.IntakeService, pollInterval time.Duration) *IntakeJobs {
	return &IntakeJobs{
		intakeService: intakeService,
		pollInterval:  pollInterval,
	}
}

func (j *IntakeJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("process_detection_batch", j.pollInterval, j.ProcessDetectionBatch)
}

// ProcessDetectionBatch drains the exchange artifact on each poll tick. A
// missing or empty artifact is the idle state between producer writes, so the
// job checks cheaply before consuming.
func (j *IntakeJobs) ProcessDetectionBatch(ctx context.Context) error {
	status, err := j.intakeService.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to stat exchange artifact: %w", err)
	}
	if !status.Exists || status.Size == 0 {
		return nil
	}

	result, err := j.intakeService.ProcessBatch(ctx)
	if err != nil {
		return fmt.Errorf("failed to process detection batch: %w", err)
	}

	if result.Accepted > 0 {
		slog.Info("Cron: detection batch processed",
			"accepted", result.Accepted,
			"outcomes", len(result.Outcomes))
	}
	return nil
}
