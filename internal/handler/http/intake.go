package http

import (
	"log/slog"
	"net/http"

	"github.com/msnglobalit/attendance-backend-go/internal/domain/intake"
	"github.com/msnglobalit/attendance-backend-go/internal/handler/http/response"
)

type IntakeHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type IntakeHandlerImpl struct {
	intakeService intake.IntakeService
}

func NewIntakeHandler(intakeService intake.IntakeService) IntakeHandler {
	return &IntakeHandlerImpl{intakeService: intakeService}
}

// Process triggers one intake cycle on demand, outside the scheduler.
func (h *IntakeHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	result, err := h.intakeService.ProcessBatch(r.Context())
	if err != nil {
		slog.Error("Process service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Status implements IntakeHandler.
func (h *IntakeHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.intakeService.Status(r.Context())
	if err != nil {
		slog.Error("Status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}
